package player_test

import (
	"math/rand"
	"testing"

	"github.com/jorisperrenet/durak/card"
	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/player"
)

func newOneCardState(t *testing.T, id card.Identity, visibility card.Visibility) (*engine.GameState, engine.Player) {
	t.Helper()
	rng := rand.New(rand.NewSource(3))
	p := player.NewRandom("P1", rng)
	gs := &engine.GameState{Players: []engine.Player{p}}
	gs.Cards[0].Bind(id)
	gs.Cards[0].Visibility = visibility
	p.SetHand([]card.Ref{0})
	return gs, p
}

func TestPossibleCardPlaysReturnsBoundIdentityWhenKnown(t *testing.T) {
	gs, p := newOneCardState(t, card.Identity{Suit: 1, Value: 2}, card.Private)
	out := p.PossibleCardPlays(gs, gs.NonPublicIdentities())
	if len(out) != 1 || !out[card.Identity{Suit: 1, Value: 2}] {
		t.Fatalf("expected exactly the bound identity, got %v", out)
	}
}

func TestDiscardCardBindsAnUnknownCardOnDemand(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := player.NewRandom("P1", rng)
	gs := &engine.GameState{Players: []engine.Player{p}}
	p.SetHand([]card.Ref{0})
	want := card.Identity{Suit: 2, Value: 4}

	ref := p.DiscardCard(gs, want, true)
	if ref != 0 {
		t.Fatalf("expected ref 0, got %d", ref)
	}
	if gs.Cards[0].Identity() != want {
		t.Fatalf("expected the card bound to %v, got %v", want, gs.Cards[0].Identity())
	}
	if gs.Cards[0].Visibility != card.Public {
		t.Fatalf("expected the discarded card to become Public, got %v", gs.Cards[0].Visibility)
	}
	if len(p.Hand()) != 0 {
		t.Fatalf("expected the card to be removed from hand, got %v", p.Hand())
	}
}

func TestCanThrowFailsWhenNoCardMatchesTheWantedRank(t *testing.T) {
	gs, p := newOneCardState(t, card.Identity{Suit: 0, Value: 5}, card.Private)
	fallback := gs.NonPublicIdentities()
	if p.CanThrow(gs, fallback, []card.Identity{{Suit: 1, Value: 1}}) {
		t.Fatal("expected CanThrow to fail: the only hand card doesn't match the wanted rank")
	}
}

func TestCanThrowSucceedsWithAMatchingUnknownCard(t *testing.T) {
	gs, p := newOneCardState(t, card.Identity{}, card.Unknown)
	fallback := gs.NonPublicIdentities()
	want := card.Identity{Suit: 1, Value: 1}
	if !fallback[want] {
		t.Fatalf("test setup: %v must be in fallback", want)
	}
	if !p.CanThrow(gs, fallback, []card.Identity{want}) {
		t.Fatal("expected an Unknown card to be able to serve any identity present in fallback")
	}
}
