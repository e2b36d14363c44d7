package player

import (
	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/mcts"
)

// ISMCTSFPV chooses actions with an FPV-ISMCTS search restricted to its
// own choice points (spec §4.7). A fresh tree is built for every decision
// and the traversal cache is cleared once ChooseAction returns — no
// transposition reuse across decisions (spec §4.9 "choose_action").
type ISMCTSFPV struct {
	Base
	Iterations int
	Scoring    mcts.ScoringMode
}

// NewISMCTSFPV returns a search-driven player running iterations
// playouts per decision.
func NewISMCTSFPV(name string, rng RandSource, iterations int) *ISMCTSFPV {
	return &ISMCTSFPV{Base: NewBase(name, rng), Iterations: iterations}
}

func (p *ISMCTSFPV) ChooseAction(gs *engine.GameState) engine.Action {
	world := p.HideOpponentKnowledge(gs)
	tree := mcts.NewFPVTree(world.PlayerToPlay, p.Scoring)
	action := tree.Search(world, p.Iterations, p.Rng)
	p.SetTree(nil)
	return action
}

func (p *ISMCTSFPV) MakeCopy() engine.Player {
	cp := &ISMCTSFPV{Iterations: p.Iterations, Scoring: p.Scoring}
	p.copyInto(&cp.Base)
	return cp
}
