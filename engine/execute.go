package engine

import (
	"fmt"

	"github.com/jorisperrenet/durak/card"
)

// ExecuteAction applies action, which must be one gs.AllowedPlays()
// returned for the current PlayerToPlay, and advances CurrentAction,
// PlayerToPlay and the dynamic seating accordingly (spec §4.4).
func (gs *GameState) ExecuteAction(action Action) {
	gs.History = append(gs.History, action)

	switch action.Kind {
	case ActionAttack:
		gs.executeAttack(action)
	case ActionDefend:
		gs.executeDefend(action)
	case ActionReflect:
		gs.executeReflect(action)
	case ActionReflectTrump:
		gs.executeReflectTrump(action)
	case ActionTake:
		gs.executeTake()
	case ActionPassAttack:
		gs.executePassAttack()
	case ActionThrowCards:
		gs.executeThrowCards(action)
	default:
		panic(fmt.Errorf("engine: ExecuteAction: unhandled action kind %v", action.Kind))
	}
}

func (gs *GameState) executeAttack(action Action) {
	player := gs.Players[gs.PlayerToPlay]
	ref := player.DiscardCard(gs, action.Card, true)
	gs.LastPlayedAttacker = gs.PlayerToPlay
	gs.CardsToDefend = append(gs.CardsToDefend, ref)
	gs.PlayerToPlay = gs.DefenderIdx
	gs.CurrentAction = PhaseDefend
}

func (gs *GameState) executeDefend(action Action) {
	defended := gs.CardsToDefend[0]
	gs.CardsToDefend = gs.CardsToDefend[1:]
	player := gs.Players[gs.PlayerToPlay]
	ref := player.DiscardCard(gs, action.Card, true)
	gs.PairsFinished = append(gs.PairsFinished, Pair{Attack: defended, Defend: ref})

	if len(gs.CardsToDefend) == 0 {
		gs.PlayerToPlay = gs.Attackers[gs.CurrentAttacker]
		gs.CurrentAction = PhaseAttack
	}
}

// reflectRotate performs the seat pivot shared by Reflect and
// ReflectTrump: the attacker adjacent to the defender becomes the new
// defender, the old defender rejoins as an attacker in that seat, and
// priority to attack next passes on (grounded on main.py's
// execute_action Reflect/ReflectTrump branches).
func (gs *GameState) reflectRotate() {
	gs.LastPlayedAttacker = gs.PlayerToPlay
	n := len(gs.Attackers)
	pos := 1 % n

	newDefenderIdx := gs.Attackers[pos]
	spliced := make([]int, 0, n)
	spliced = append(spliced, gs.Attackers[:pos]...)
	spliced = append(spliced, gs.DefenderIdx)
	spliced = append(spliced, gs.Attackers[pos+1:]...)

	gs.DefenderIdx = newDefenderIdx
	gs.DrawOrder = append(append([]int{}, spliced...), gs.DefenderIdx)
	gs.Attackers = append(append([]int{}, spliced[1:]...), spliced[0])
}

func (gs *GameState) executeReflect(action Action) {
	ref := gs.Players[gs.DefenderIdx].DiscardCard(gs, action.Card, true)
	gs.reflectRotate()
	gs.CardsToDefend = append(gs.CardsToDefend, ref)
	gs.CurrentAction = PhaseDefend
	gs.PlayerToPlay = gs.DefenderIdx
}

func (gs *GameState) executeReflectTrump(action Action) {
	gs.Players[gs.PlayerToPlay].DiscardCard(gs, action.Card, false)
	gs.ReflectedTrumps[action.Card] = true
	gs.reflectRotate()
	gs.CurrentAction = PhaseDefend
	gs.PlayerToPlay = gs.DefenderIdx
}

func (gs *GameState) executeTake() {
	gs.CurrentAction = PhaseThrowCards
	gs.PlayerToPlay = gs.Attackers[gs.CurrentAttacker]
	gs.AttackerToStartThrowing = gs.CurrentAttacker
}

func (gs *GameState) executeThrowCards(action Action) {
	if action.Throws != nil {
		player := gs.Players[gs.PlayerToPlay]
		for _, id := range action.Throws {
			ref := player.DiscardCard(gs, id, true)
			gs.CardsToDefend = append(gs.CardsToDefend, ref)
		}
	}

	gs.CurrentAttacker = (gs.CurrentAttacker + 1) % len(gs.Attackers)
	gs.PlayerToPlay = gs.Attackers[gs.CurrentAttacker]

	if gs.CurrentAttacker == gs.AttackerToStartThrowing {
		gs.defenderTakesTable()
		newMain := gs.Attackers[1%len(gs.Attackers)]
		gs.NewTrick(gs.Players[newMain].Name())
	}
}

func (gs *GameState) executePassAttack() {
	gs.CurrentAttacker = (gs.CurrentAttacker + 1) % len(gs.Attackers)
	gs.PlayerToPlay = gs.Attackers[gs.CurrentAttacker]

	if gs.PlayerToPlay == gs.LastPlayedAttacker {
		if len(gs.CardsToDefend) != 0 {
			panic(fmt.Errorf("engine: executePassAttack: trick closing with undefended cards remaining"))
		}
		for _, idx := range gs.DrawOrder {
			gs.Players[idx].FillHand(gs)
		}
		gs.NewTrick(gs.Players[gs.DefenderIdx].Name())
	}
}

// defenderTakesTable hands every pair and every undefended card to the
// defender, then refills every hand in draw order (spec §4.4, defender
// takes the table instead of fully defending).
func (gs *GameState) defenderTakesTable() {
	onTable := make([]card.Ref, 0, len(gs.PairsFinished)*2+len(gs.CardsToDefend))
	for _, p := range gs.PairsFinished {
		onTable = append(onTable, p.Attack, p.Defend)
	}
	onTable = append(onTable, gs.CardsToDefend...)

	defender := gs.Players[gs.DefenderIdx]
	defender.SetHand(append(defender.Hand(), onTable...))

	for _, idx := range gs.DrawOrder {
		gs.Players[idx].FillHand(gs)
	}
}
