package engine

import (
	"fmt"
	"sort"

	"github.com/jorisperrenet/durak/card"
)

// AllowedPlays enumerates every legal Action for gs.Players[gs.PlayerToPlay]
// in the current phase (spec §4.3). It never returns an empty slice: a
// player can always Take, PassAttack once a pair is open, or ThrowCards
// None — if none of those apply either, that is a fatal invariant
// violation (spec §7).
func (gs *GameState) AllowedPlays() []Action {
	var actions []Action
	switch gs.CurrentAction {
	case PhaseAttack:
		actions = gs.allowedAttacks()
	case PhaseDefend:
		actions = gs.allowedDefends()
	case PhaseThrowCards:
		actions = gs.allowedThrows()
	}
	if len(actions) == 0 {
		panic(fmt.Errorf("engine: AllowedPlays: no legal action in phase %v", gs.CurrentAction))
	}
	return actions
}

func (gs *GameState) allowedAttacks() []Action {
	attacker := gs.Attackers[gs.CurrentAttacker]
	if attacker != gs.PlayerToPlay {
		panic(fmt.Errorf("engine: allowedAttacks: player to play %d is not the current attacker %d", gs.PlayerToPlay, attacker))
	}
	player := gs.Players[gs.PlayerToPlay]
	possPlays := player.PossibleCardPlays(gs, gs.NonPublicIdentities())

	var actions []Action
	if len(gs.PairsFinished) > 0 {
		actions = append(actions, Action{Kind: ActionPassAttack, Weight: 1})
		onTable := gs.valuesOnTable()
		filtered := map[card.Identity]bool{}
		for id := range possPlays {
			if onTable[id.Value] {
				filtered[id] = true
			}
		}
		possPlays = filtered
	}

	if len(gs.Players[gs.DefenderIdx].Hand()) > 0 {
		for _, id := range sortedIdentities(possPlays) {
			actions = append(actions, Action{Kind: ActionAttack, Card: id, Weight: 1})
		}
	}
	return actions
}

func (gs *GameState) allowedDefends() []Action {
	player := gs.Players[gs.PlayerToPlay]
	toDefend := gs.Cards[gs.CardsToDefend[0]]
	nonPublic := gs.NonPublicIdentities()
	known := gs.KnownHandIdentities(player)
	trumpSuit := gs.TrumpSuit()

	playOptions := map[actionKey]float64{}
	for _, ref := range player.Hand() {
		c := gs.Cards[ref]

		var candidates map[card.Identity]bool
		if c.Visibility == card.Unknown {
			candidates = map[card.Identity]bool{}
			for id := range nonPublic {
				if !known[id] {
					candidates[id] = true
				}
			}
		} else {
			candidates = map[card.Identity]bool{c.Identity(): true}
		}

		var defend, reflect []actionKey
		for _, id := range sortedIdentities(candidates) {
			if id.Suit == toDefend.Suit && id.Value > toDefend.Value {
				defend = append(defend, actionKey{ActionDefend, id})
			} else if id.Suit == trumpSuit && !toDefend.IsTrump() {
				defend = append(defend, actionKey{ActionDefend, id})
			}

			if len(gs.PairsFinished) == 0 && id.Value == toDefend.Value {
				newDefenderIdx := gs.Attackers[1%len(gs.Attackers)]
				maxNewPiles := len(gs.Players[newDefenderIdx].Hand()) - len(gs.CardsToDefend)
				if maxNewPiles >= 1 {
					reflect = append(reflect, actionKey{ActionReflect, id})
				}
				if id.Suit == trumpSuit && maxNewPiles >= 0 && !gs.ReflectedTrumps[id] {
					reflect = append(reflect, actionKey{ActionReflectTrump, id})
				}
			}
		}

		for _, a := range defend {
			playOptions[a] += 1 / float64(len(defend))
		}
		for _, a := range reflect {
			playOptions[a] += 1 / float64(len(reflect))
		}
	}

	actions := make([]Action, 0, len(playOptions)+1)
	for _, key := range sortedActionKeys(playOptions) {
		actions = append(actions, Action{Kind: key.Kind, Card: key.Card, Weight: playOptions[key]})
	}
	actions = append(actions, Action{Kind: ActionTake, Weight: 0.5})
	return actions
}

func (gs *GameState) allowedThrows() []Action {
	player := gs.Players[gs.PlayerToPlay]
	possThrows := player.PossibleCardPlays(gs, gs.NonPublicIdentities())
	onTable := gs.valuesOnTable()
	filtered := map[card.Identity]bool{}
	for id := range possThrows {
		if onTable[id.Value] {
			filtered[id] = true
		}
	}

	actions := []Action{{Kind: ActionThrowCards, Throws: nil, Weight: 1}}

	available := len(gs.Players[gs.DefenderIdx].Hand()) - len(gs.CardsToDefend)
	maxThrow := min(available, len(filtered), len(player.Hand()))
	if maxThrow <= 0 {
		return actions
	}

	fallback := gs.NonPublicIdentities()
	ids := sortedIdentities(filtered)
	for r := 1; r <= maxThrow; r++ {
		for _, combo := range combinations(ids, r) {
			if player.CanThrow(gs, fallback, combo) {
				actions = append(actions, Action{Kind: ActionThrowCards, Throws: combo, Weight: 1})
			}
		}
	}
	return actions
}

func sortedActionKeys(m map[actionKey]float64) []actionKey {
	out := make([]actionKey, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Card.Suit != b.Card.Suit {
			return a.Card.Suit < b.Card.Suit
		}
		return a.Card.Value < b.Card.Value
	})
	return out
}
