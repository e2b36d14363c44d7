package player

import (
	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/mcts"
)

// DeterminizedMCTS chooses actions by resampling a full perfect-
// information world per outer iteration and accumulating per-action
// statistics across those deals (spec §4.8). It carries no persistent
// tree between decisions — each ChooseAction starts its outer/inner loop
// fresh.
type DeterminizedMCTS struct {
	Base
	OuterIterations int
	InnerIterations int
	Scoring         mcts.ScoringMode
}

// NewDeterminizedMCTS returns a player that samples outerIterations
// perfect-information worlds, running innerIterations playouts in each.
func NewDeterminizedMCTS(name string, rng RandSource, outerIterations, innerIterations int) *DeterminizedMCTS {
	return &DeterminizedMCTS{Base: NewBase(name, rng), OuterIterations: outerIterations, InnerIterations: innerIterations}
}

func (p *DeterminizedMCTS) ChooseAction(gs *engine.GameState) engine.Action {
	world := p.HideOpponentKnowledge(gs)
	search := &mcts.DeterminizedSearch{POV: world.PlayerToPlay, Scoring: p.Scoring}
	return search.Search(world, p.OuterIterations, p.InnerIterations, p.Rng)
}

func (p *DeterminizedMCTS) MakeCopy() engine.Player {
	cp := &DeterminizedMCTS{OuterIterations: p.OuterIterations, InnerIterations: p.InnerIterations, Scoring: p.Scoring}
	p.copyInto(&cp.Base)
	return cp
}
