package mcts

import (
	"math"

	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/randutil"
)

// MCNode is a node of the plain (single determinized world) perfect-
// information search tree that PerfectInfoTree builds fresh for every
// outer iteration of Determinized MCTS (spec §4.8).
type MCNode struct {
	N        int
	Children map[actionKey]*MCEdge
}

// MCEdge is one action's accumulated statistic, plus the node it leads
// to (built lazily, the first time the edge is traversed past expansion).
type MCEdge struct {
	N     int
	W     float64
	Child *MCNode
}

// PerfectInfoTree runs a standard single-observer MCTS (every node,
// regardless of whose turn it is, is selected and valued purely from
// pov's perspective — a deliberate simplification consistent with FPV
// and ISMCTS's shared binary outcome, rather than modeling adversarial
// counterplay) over one already-determinized GameState.
type PerfectInfoTree struct {
	POV int
}

func (t *PerfectInfoTree) search(world *engine.GameState, iterations int, rng randutil.RandSource) *MCNode {
	root := &MCNode{Children: map[actionKey]*MCEdge{}}
	for i := 0; i < iterations; i++ {
		t.simulate(world.Clone(), root, rng)
	}
	return root
}

func (t *PerfectInfoTree) simulate(world *engine.GameState, node *MCNode, rng randutil.RandSource) float64 {
	if world.Terminal {
		return outcome(world, t.POV)
	}
	actions := world.AllowedPlays()

	for _, a := range actions {
		k := keyOf(a)
		if _, ok := node.Children[k]; !ok {
			edge := &MCEdge{}
			node.Children[k] = edge
			world.ExecuteAction(a)
			rolloutPolicy(world, rng)
			value := outcome(world, t.POV)
			node.N++
			edge.N++
			edge.W += value
			return value
		}
	}

	bestScore := math.Inf(-1)
	var bestKey actionKey
	var bestAct engine.Action
	for _, a := range actions {
		k := keyOf(a)
		edge := node.Children[k]
		if score := uct(edge.W, edge.N, node.N); score > bestScore {
			bestScore, bestKey, bestAct = score, k, a
		}
	}

	world.ExecuteAction(bestAct)
	edge := node.Children[bestKey]
	if edge.Child == nil {
		edge.Child = &MCNode{Children: map[actionKey]*MCEdge{}}
	}
	value := t.simulate(world, edge.Child, rng)
	node.N++
	edge.N++
	edge.W += value
	return value
}

// DeterminizedSearch is the outer loop of Determinized MCTS: each outer
// iteration samples a fresh perfect-information world and runs a fresh
// PerfectInfoTree search inside it; only the root's per-action W/N is
// kept, accumulated across every deal (spec §4.8).
type DeterminizedSearch struct {
	POV     int
	Scoring ScoringMode
}

// Search runs outerIterations deals of innerIterations playouts each and
// returns the action scoring best under s.Scoring (total visits or total
// win rate) across all deals.
func (s *DeterminizedSearch) Search(gs *engine.GameState, outerIterations, innerIterations int, rng randutil.RandSource) engine.Action {
	totals := map[actionKey]*MCEdge{}
	tree := &PerfectInfoTree{POV: s.POV}

	for i := 0; i < outerIterations; i++ {
		world := Determinize(gs, s.POV)
		root := tree.search(world, innerIterations, rng)
		for k, edge := range root.Children {
			total, ok := totals[k]
			if !ok {
				total = &MCEdge{}
				totals[k] = total
			}
			total.N += edge.N
			total.W += edge.W
		}
	}

	return bestRootAction(gs, s.Scoring, func(k actionKey) (float64, int, bool) {
		edge, ok := totals[k]
		if !ok {
			return 0, 0, false
		}
		return edge.W, edge.N, true
	})
}
