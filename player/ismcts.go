package player

import (
	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/mcts"
)

// ISMCTS chooses actions with full ISMCTS (spec §4.9): a single tree
// re-determinized at every descent step rather than once per outer
// iteration. A fresh tree is built for every decision and the traversal
// cache is cleared once ChooseAction returns — no transposition reuse
// across decisions (spec §4.9 "choose_action").
type ISMCTS struct {
	Base
	Iterations int
	Scoring    mcts.ScoringMode
}

// NewISMCTS returns a search-driven player running iterations playouts
// per decision.
func NewISMCTS(name string, rng RandSource, iterations int) *ISMCTS {
	return &ISMCTS{Base: NewBase(name, rng), Iterations: iterations}
}

func (p *ISMCTS) ChooseAction(gs *engine.GameState) engine.Action {
	world := p.HideOpponentKnowledge(gs)
	tree := mcts.NewISMCTree(world.PlayerToPlay, p.Scoring)
	action := tree.Search(world, p.Iterations, p.Rng)
	p.SetTree(nil)
	return action
}

func (p *ISMCTS) MakeCopy() engine.Player {
	cp := &ISMCTS{Iterations: p.Iterations, Scoring: p.Scoring}
	p.copyInto(&cp.Base)
	return cp
}
