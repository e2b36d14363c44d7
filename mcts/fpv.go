package mcts

import (
	"math"

	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/randutil"
)

// FPVTree is the first-person-view ISMCTS tree (spec §4.7): nodes exist
// only at points where tree.POV must choose; every intervening opponent
// move (and every redeterminization they'd otherwise need) is absorbed
// into the single edge connecting one POV choice to the next, via a
// random rollout policy. Two histories that reach the POV player with
// the same executed-action sequence share a ChooseNode, since nodes are
// keyed by GameState.ID().
type FPVTree struct {
	POV     int
	Scoring ScoringMode
	Nodes   map[uint64]*ChooseNode
}

// ChooseNode is a decision point for the POV player.
type ChooseNode struct {
	N        int
	Children map[actionKey]*EndNode
}

// EndNode is the accumulated statistic for one action out of a
// ChooseNode — named for the trick-ending/intervening-play span it
// absorbs before the next ChooseNode (or a terminal state) is reached.
type EndNode struct {
	N int
	W float64
}

// NewFPVTree creates an empty tree for the given point-of-view player,
// scoring its final root action per mode.
func NewFPVTree(pov int, mode ScoringMode) *FPVTree {
	return &FPVTree{POV: pov, Scoring: mode, Nodes: map[uint64]*ChooseNode{}}
}

func (tree *FPVTree) nodeFor(world *engine.GameState) *ChooseNode {
	id := world.ID()
	node, ok := tree.Nodes[id]
	if !ok {
		node = &ChooseNode{Children: map[actionKey]*EndNode{}}
		tree.Nodes[id] = node
	}
	return node
}

// Search runs iterations determinized playouts from gs (whose
// PlayerToPlay must be tree.POV) and returns the root action scoring best
// under tree.Scoring.
func (tree *FPVTree) Search(gs *engine.GameState, iterations int, rng randutil.RandSource) engine.Action {
	for i := 0; i < iterations; i++ {
		world := Determinize(gs, tree.POV)
		tree.simulate(world, rng)
	}
	root := tree.nodeFor(gs)
	return bestRootAction(gs, tree.Scoring, func(k actionKey) (float64, int, bool) {
		edge, ok := root.Children[k]
		if !ok {
			return 0, 0, false
		}
		return edge.W, edge.N, true
	})
}

func (tree *FPVTree) simulate(world *engine.GameState, rng randutil.RandSource) float64 {
	rolloutUntilChoice(world, tree.POV, rng)
	if world.Terminal {
		return outcome(world, tree.POV)
	}

	node := tree.nodeFor(world)
	actions := world.AllowedPlays()

	for _, a := range actions {
		k := keyOf(a)
		if _, ok := node.Children[k]; !ok {
			edge := &EndNode{}
			node.Children[k] = edge
			world.ExecuteAction(a)
			rolloutPolicy(world, rng)
			value := outcome(world, tree.POV)
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
	value := tree.simulate(world, rng)
	node.N++
	edge := node.Children[bestKey]
	edge.N++
	edge.W += value
	return value
}
