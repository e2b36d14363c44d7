package mcts

import (
	"math"

	"github.com/jorisperrenet/durak/card"
	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/randutil"
)

// ISMCNode is a single-persistent-tree node, keyed (like FPVTree's
// ChooseNode) by the GameState's executed-action history rather than by
// object identity, so any path reaching the same history shares
// statistics regardless of which hidden world produced it.
type ISMCNode struct {
	N        int
	Children map[actionKey]*ISMCEdge
}

type ISMCEdge struct {
	N int
	W float64
}

// ISMCTree is full ISMCTS (spec §4.9): unlike FPVTree, every player's
// decision is a tree node, not just tree.POV's, and unlike
// DeterminizedSearch, the tree persists across the whole search instead
// of being rebuilt per outer iteration. The hidden world is resampled
// from the current mover's point of view at every descent step.
type ISMCTree struct {
	POV     int
	Scoring ScoringMode
	Nodes   map[uint64]*ISMCNode
}

// NewISMCTree creates an empty tree for the given point-of-view player,
// scoring its final root action per mode.
func NewISMCTree(pov int, mode ScoringMode) *ISMCTree {
	return &ISMCTree{POV: pov, Scoring: mode, Nodes: map[uint64]*ISMCNode{}}
}

func (tree *ISMCTree) nodeFor(world *engine.GameState) *ISMCNode {
	id := world.ID()
	node, ok := tree.Nodes[id]
	if !ok {
		node = &ISMCNode{Children: map[actionKey]*ISMCEdge{}}
		tree.Nodes[id] = node
	}
	return node
}

// Search runs iterations playouts and returns the root action scoring
// best under tree.Scoring.
func (tree *ISMCTree) Search(gs *engine.GameState, iterations int, rng randutil.RandSource) engine.Action {
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

func (tree *ISMCTree) simulate(world *engine.GameState, rng randutil.RandSource) float64 {
	if world.Terminal {
		return outcome(world, tree.POV)
	}

	// Re-determinize from whoever is about to move's own viewpoint at
	// every descent step, rather than once per outer iteration — the
	// trait distinguishing full ISMCTS from FPV-ISMCTS/Determinized MCTS.
	// Every Private card outside the mover's hand is reset to Unknown
	// first, since Determinize only binds cards that are still Unknown.
	mover := world.PlayerToPlay
	own := map[card.Ref]bool{}
	for _, ref := range world.Players[mover].Hand() {
		own[ref] = true
	}
	for i := range world.Cards {
		if world.Cards[i].Visibility == card.Private && !own[card.Ref(i)] {
			world.Cards[i].Reset()
		}
	}
	world = Determinize(world, mover)

	node := tree.nodeFor(world)
	actions := world.AllowedPlays()

	for _, a := range actions {
		k := keyOf(a)
		if _, ok := node.Children[k]; !ok {
			edge := &ISMCEdge{}
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
