package player

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/jorisperrenet/durak/card"
	"github.com/jorisperrenet/durak/engine"
)

func newHumanAttackState(t *testing.T, h *Human, computerShuffle bool) *engine.GameState {
	t.Helper()
	rng := rand.New(rand.NewSource(9))
	defender := NewRandom("P2", rng)

	gs := &engine.GameState{
		Players:                 []engine.Player{h, defender},
		Attackers:               []int{0},
		DefenderIdx:             1,
		CurrentAttacker:         0,
		PlayerToPlay:            0,
		CurrentAction:           engine.PhaseAttack,
		ReflectedTrumps:         map[card.Identity]bool{},
		AttackerToStartThrowing: -1,
		LastPlayedAttacker:      -1,
		LoserIdx:                -1,
		ComputerShuffle:         computerShuffle,
	}
	h.SetHand([]card.Ref{0})
	defender.SetHand([]card.Ref{1})
	gs.Cards[1].Bind(card.Identity{Suit: 0, Value: 3})
	gs.Cards[1].Visibility = card.Private
	return gs
}

func TestChooseActionRevealsOwnHandUnderComputerShuffle(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	var out bytes.Buffer
	h := NewHuman("P1", rng, strings.NewReader("0\n"), &out)
	gs := newHumanAttackState(t, h, true)

	action := h.ChooseAction(gs)
	if action.Kind != engine.ActionAttack {
		t.Fatalf("expected an Attack action, got %v", action)
	}
	if gs.Cards[0].Visibility == card.Unknown {
		t.Fatal("expected a computer-shuffled human's own card to be bound and revealed")
	}
	if strings.Contains(out.String(), "??") {
		t.Fatalf("expected the printed hand to show a real identity, got %q", out.String())
	}
}

func TestChooseActionLeavesOwnHandUnknownUnderManualShuffle(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	var out bytes.Buffer
	h := NewHuman("P1", rng, strings.NewReader("0\n"), &out)
	gs := newHumanAttackState(t, h, false)

	action := h.ChooseAction(gs)
	if action.Kind != engine.ActionAttack {
		t.Fatalf("expected an Attack action, got %v", action)
	}
	if gs.Cards[0].Visibility != card.Unknown {
		t.Fatal("expected a manually-shuffled human's own card to stay Unknown")
	}
	if !strings.Contains(h.handString(gs), "??") {
		t.Fatalf("expected the hand string to mask an Unknown card, got %q", h.handString(gs))
	}
}
