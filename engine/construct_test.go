package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/player"
)

func newPlayers(n int, rng *rand.Rand) []engine.Player {
	out := make([]engine.Player, n)
	for i := range out {
		out[i] = player.NewRandom(string(rune('A'+i)), rng)
	}
	return out
}

func TestNewGameStateDealsFullHands(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	players := newPlayers(3, rng)
	gs, err := engine.NewGameState(players, true, players[0].Name(), nil, false, rng)
	require.NoError(t, err)

	for _, p := range players {
		require.Lenf(t, p.Hand(), engine.HandSize, "player %s", p.Name())
	}
	// The bottom card stays in gs.Deck (bound and Public, at the tail)
	// until it is actually drawn — only the dealt hands shrink it.
	require.Len(t, gs.Deck, engine.NumCards-3*engine.HandSize)
}

func TestNewGameStateRejectsBadPlayerCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := engine.NewGameState(newPlayers(1, rng), true, "A", nil, false, rng); err == nil {
		t.Fatal("expected an error with one player")
	}
	if _, err := engine.NewGameState(newPlayers(7, rng), true, "A", nil, false, rng); err == nil {
		t.Fatal("expected an error with seven players")
	}
}

func TestNewGameStateManualShuffleRequiresBottomCard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	players := newPlayers(2, rng)
	if _, err := engine.NewGameState(players, false, players[0].Name(), nil, false, rng); err == nil {
		t.Fatal("expected an error requesting a bottom card")
	}
}

func TestNewTrickTerminatesWithOnePlayerLeft(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	players := newPlayers(2, rng)
	gs, err := engine.NewGameState(players, true, players[0].Name(), nil, false, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gs.Deck = nil
	players[1].SetHand(nil)
	gs.NewTrick(players[0].Name())

	if !gs.Terminal {
		t.Fatal("expected terminal state once only one player has cards")
	}
	if gs.LoserIdx != 0 {
		t.Fatalf("expected player 0 (the one with cards left) to be the loser, got %d", gs.LoserIdx)
	}
}
