package engine

import (
	"fmt"

	"github.com/jorisperrenet/durak/card"
)

// NewTrick opens a fresh trick with mainAttacker as its first attacker,
// skipping any player with an empty hand and an empty deck (who has
// already left the game). It detects the one-or-zero-players-left
// terminal conditions (spec §4.2, "Terminal detection").
//
// mainAttacker must name a player in gs.Players; any other value is a
// programming error; this is the only place that panics on bad input
// rather than relaying it, since every caller (ThrowCards/PassAttack
// closing a trick, or construction) derives the name from gs.Players
// itself.
func (gs *GameState) NewTrick(mainAttacker string) {
	n := len(gs.Players)
	start := -1
	for i, p := range gs.Players {
		if p.Name() == mainAttacker {
			start = i
			break
		}
	}
	if start == -1 {
		panic(fmt.Errorf("engine: NewTrick: unknown player name %q", mainAttacker))
	}

	var living []int
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		p := gs.Players[idx]
		if len(p.Hand()) > 0 || len(gs.Deck) > 0 {
			living = append(living, idx)
		}
	}

	gs.PairsFinished = nil
	gs.CardsToDefend = nil
	gs.CurrentAction = PhaseAttack

	switch len(living) {
	case 0:
		gs.Terminal = true
		gs.LoserIdx = gs.DefenderIdx
		return
	case 1:
		gs.Terminal = true
		gs.LoserIdx = living[0]
		return
	}

	gs.DefenderIdx = living[1]
	gs.Attackers = append([]int{living[0]}, living[2:]...)
	gs.CurrentAttacker = 0
	gs.PlayerToPlay = gs.Attackers[0]
	gs.DrawOrder = append(append([]int{}, gs.Attackers...), gs.DefenderIdx)
	gs.AttackerToStartThrowing = -1
	gs.LastPlayedAttacker = -1
	gs.ReflectedTrumps = map[card.Identity]bool{}
}
