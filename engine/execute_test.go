package engine_test

import (
	"math/rand"
	"testing"

	"github.com/jorisperrenet/durak/card"
	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/player"
)

// newBareGameState builds a minimal two-player GameState with exactly the
// two cards under test already bound, bypassing NewGameState's deal so the
// attack/defend sequence is fully deterministic.
func newBareGameState(t *testing.T) *engine.GameState {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	p0 := player.NewRandom("P1", rng)
	p1 := player.NewRandom("P2", rng)

	gs := &engine.GameState{
		Players:                 []engine.Player{p0, p1},
		Attackers:               []int{0},
		DefenderIdx:             1,
		CurrentAttacker:         0,
		PlayerToPlay:            0,
		CurrentAction:           engine.PhaseAttack,
		DrawOrder:               []int{0, 1},
		ReflectedTrumps:         map[card.Identity]bool{},
		AttackerToStartThrowing: -1,
		LastPlayedAttacker:      -1,
		LoserIdx:                -1,
	}
	for i := range gs.Cards {
		gs.Cards[i].TrumpSuit = card.Suit(3)
	}
	gs.Cards[0].Bind(card.Identity{Suit: 0, Value: 0})
	gs.Cards[0].Visibility = card.Private
	gs.Cards[1].Bind(card.Identity{Suit: 0, Value: 1})
	gs.Cards[1].Visibility = card.Private
	p0.SetHand([]card.Ref{0})
	p1.SetHand([]card.Ref{1})
	return gs
}

func TestAttackDefendPassAttackSequence(t *testing.T) {
	gs := newBareGameState(t)

	attacks := gs.AllowedPlays()
	if len(attacks) != 1 || attacks[0].Kind != engine.ActionAttack {
		t.Fatalf("expected a single Attack action, got %v", attacks)
	}
	gs.ExecuteAction(attacks[0])

	if gs.CurrentAction != engine.PhaseDefend || gs.PlayerToPlay != 1 {
		t.Fatalf("expected defend phase with P2 to play, got phase=%v toPlay=%d", gs.CurrentAction, gs.PlayerToPlay)
	}

	defends := gs.AllowedPlays()
	var defendAction engine.Action
	found := false
	for _, a := range defends {
		if a.Kind == engine.ActionDefend {
			defendAction = a
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Defend action among %v", defends)
	}
	gs.ExecuteAction(defendAction)

	if gs.CurrentAction != engine.PhaseAttack || gs.PlayerToPlay != 0 {
		t.Fatalf("expected attack phase with P1 to play after a fully defended trick, got phase=%v toPlay=%d", gs.CurrentAction, gs.PlayerToPlay)
	}
	if len(gs.PairsFinished) != 1 {
		t.Fatalf("expected one finished pair, got %d", len(gs.PairsFinished))
	}

	passOnly := gs.AllowedPlays()
	if len(passOnly) != 1 || passOnly[0].Kind != engine.ActionPassAttack {
		t.Fatalf("expected only PassAttack once both hands are empty, got %v", passOnly)
	}
	gs.ExecuteAction(passOnly[0])

	if !gs.Terminal {
		t.Fatal("expected the deal to end once neither player has cards or deck left")
	}
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	gs := newBareGameState(t)
	clone := gs.Clone()

	clone.ExecuteAction(gs.AllowedPlays()[0])

	if len(gs.History) != 0 {
		t.Fatalf("expected the original's history to be untouched, got %v", gs.History)
	}
	if len(clone.History) != 1 {
		t.Fatalf("expected the clone's history to record the action, got %v", clone.History)
	}
	if gs.CurrentAction != engine.PhaseAttack {
		t.Fatalf("original should remain in attack phase, got %v", gs.CurrentAction)
	}
}

func TestIDIsStableAcrossEqualHistories(t *testing.T) {
	gsA := newBareGameState(t)
	gsB := newBareGameState(t)

	action := gsA.AllowedPlays()[0]
	gsA.ExecuteAction(action)
	gsB.ExecuteAction(gsB.AllowedPlays()[0])

	if gsA.ID() != gsB.ID() {
		t.Fatalf("expected equal histories to hash equal, got %d vs %d", gsA.ID(), gsB.ID())
	}

	gsA.ExecuteAction(gsA.AllowedPlays()[0])
	if gsA.ID() == gsB.ID() {
		t.Fatal("expected a longer history to hash differently from a shorter one")
	}
}
