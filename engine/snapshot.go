package engine

import "github.com/jorisperrenet/durak/card"

// Clone returns a deep, independent snapshot of gs suitable for rollout
// search (spec §4.6). The card arena is copied by value; every slice
// field is copied into fresh backing storage; every Player is copied via
// its own MakeCopy. PrintInfo is always cleared on a clone — rollouts
// never log.
func (gs *GameState) Clone() *GameState {
	clone := &GameState{
		Cards:                   gs.Cards,
		Deck:                    append([]card.Ref(nil), gs.Deck...),
		Attackers:               append([]int(nil), gs.Attackers...),
		DefenderIdx:             gs.DefenderIdx,
		CurrentAttacker:         gs.CurrentAttacker,
		PairsFinished:           append([]Pair(nil), gs.PairsFinished...),
		CardsToDefend:           append([]card.Ref(nil), gs.CardsToDefend...),
		DrawOrder:               append([]int(nil), gs.DrawOrder...),
		ReflectedTrumps:         cloneIdentitySet(gs.ReflectedTrumps),
		AttackerToStartThrowing: gs.AttackerToStartThrowing,
		LastPlayedAttacker:      gs.LastPlayedAttacker,
		CurrentAction:           gs.CurrentAction,
		PlayerToPlay:            gs.PlayerToPlay,
		History:                 append([]Action(nil), gs.History...),
		Terminal:                gs.Terminal,
		LoserIdx:                gs.LoserIdx,
		ComputerShuffle:         gs.ComputerShuffle,
		PrintInfo:               false,
		Rng:                     gs.Rng,
	}

	clone.Players = make([]Player, len(gs.Players))
	for i, p := range gs.Players {
		clone.Players[i] = p.MakeCopy()
	}
	return clone
}

func cloneIdentitySet(m map[card.Identity]bool) map[card.Identity]bool {
	out := make(map[card.Identity]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
