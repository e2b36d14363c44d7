// Package mcts implements the three Durak search variants used by the
// MCTS-driven players in package player: FPV-ISMCTS (tree restricted to
// the point-of-view player's own choice points), Determinized MCTS
// (resample a perfect-information world per outer iteration, accumulate
// root statistics across deals), and full ISMCTS (a single persistent
// tree, re-determinized at every descent step).
//
// Grounded on mcts.py's MCTreeFPV/MCTree/ISMCTree classes for semantics;
// on darwindeck's mcts/search.go for Go idiom (UCT constant, package-level
// select/expand/simulate/backpropagate functions operating on node
// structs rather than a class hierarchy).
package mcts

import (
	"fmt"
	"math"

	"github.com/jorisperrenet/durak/card"
	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/randutil"
)

// ExplorationConstant is the UCT exploration weight shared by all three
// variants.
const ExplorationConstant = math.Sqrt2

// ScoringMode selects how a tree picks its final root action once search
// is done (spec §4.9 "choose_action"): by accumulated win rate or by raw
// visit count. Selection during search always uses UCT regardless of mode.
type ScoringMode int

const (
	ScoringVisitCount ScoringMode = iota
	ScoringWinRate
)

// actionKey identifies an action's outcome for use as a tree-edge key.
// engine.Action itself is not comparable (it carries a []card.Identity
// for ThrowCards), so every tree keys its children by this instead.
type actionKey struct {
	kind   engine.ActionKind
	card   card.Identity
	throws string
}

func keyOf(a engine.Action) actionKey {
	k := actionKey{kind: a.Kind, card: a.Card}
	if a.Kind == engine.ActionThrowCards {
		for _, id := range a.Throws {
			k.throws += id.String() + ","
		}
	}
	return k
}

// uct scores a child edge for selection. An unvisited child scores +Inf
// so every child is tried at least once before any is revisited.
func uct(w float64, n, parentN int) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	return w/float64(n) + ExplorationConstant*math.Sqrt(math.Log(float64(parentN))/float64(n))
}

// Determinize returns a clone of gs in which every player other than pov
// has had their still-Unknown hand cards bound to one sampled, mutually
// consistent hypothetical world (spec §4.8). pov's own hand, already
// known to itself, is left untouched.
func Determinize(gs *engine.GameState, pov int) *engine.GameState {
	clone := gs.Clone()
	for i, p := range clone.Players {
		if i != pov {
			p.DeterminizeHand(clone)
		}
	}
	return clone
}

// outcome is the value backpropagated for pov: Durak has exactly one
// loser per deal and every other player is credited equally, so survival
// (not being the loser) is the natural binary reward.
func outcome(gs *engine.GameState, pov int) float64 {
	if gs.LoserIdx == pov {
		return 0
	}
	return 1
}

func weightedChoice(actions []engine.Action, rng randutil.RandSource) engine.Action {
	weighted := make([]randutil.Weighted[engine.Action], len(actions))
	for i, a := range actions {
		weighted[i] = randutil.Weighted[engine.Action]{Value: a, Weight: a.Weight}
	}
	return randutil.ChooseWeighted(rng, weighted)
}

// rolloutPolicy advances gs to Terminal using the same weighted-random
// action choice as player.Random, ignoring whose turn it is. It is the
// default policy beyond every tree's horizon.
func rolloutPolicy(gs *engine.GameState, rng randutil.RandSource) {
	for !gs.Terminal {
		gs.ExecuteAction(weightedChoice(gs.AllowedPlays(), rng))
	}
}

// rolloutUntilChoice advances gs with rolloutPolicy's random policy until
// either it is pov's turn to choose or the deal ends — the mechanism by
// which FPV-ISMCTS absorbs intervening opponent moves into a single tree
// edge (spec §4.7).
func rolloutUntilChoice(gs *engine.GameState, pov int, rng randutil.RandSource) {
	for !gs.Terminal && gs.PlayerToPlay != pov {
		gs.ExecuteAction(weightedChoice(gs.AllowedPlays(), rng))
	}
}

// bestRootAction picks, among gs's true (non-determinized) legal actions,
// the one scoring highest under mode — accumulated win rate (W/N) or raw
// visit count (N) — breaking ties by first-seen order (spec §4.9
// "choose_action"). It falls back to the first legal action if nothing
// was ever visited (e.g. zero iterations). An unrecognized mode is a
// fatal configuration error (spec §7 "Unknown scoring mode").
func bestRootAction(gs *engine.GameState, mode ScoringMode, stats func(actionKey) (w float64, n int, ok bool)) engine.Action {
	actions := gs.AllowedPlays()
	var best engine.Action
	bestScore := math.Inf(-1)
	found := false
	for _, a := range actions {
		w, n, ok := stats(keyOf(a))
		if !ok || n == 0 {
			continue
		}
		var score float64
		switch mode {
		case ScoringVisitCount:
			score = float64(n)
		case ScoringWinRate:
			score = w / float64(n)
		default:
			panic(fmt.Errorf("mcts: unknown scoring mode %v", mode))
		}
		if score > bestScore {
			bestScore = score
			best = a
			found = true
		}
	}
	if !found {
		return actions[0]
	}
	return best
}
