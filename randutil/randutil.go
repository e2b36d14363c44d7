// Package randutil provides small generic helpers for picking among
// uniform and weighted alternatives, shared by package player's random
// rollout policy and package mcts's expansion/simulation steps.
//
// Grounded on tools.py's choose_random / choose_random_action.
package randutil

// RandSource is the minimal *math/rand.Rand surface these helpers need.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// Choose returns a uniformly random element of items. Calling it with an
// empty slice is a programming error.
func Choose[T any](rng RandSource, items []T) T {
	if len(items) == 0 {
		panic("randutil: Choose called with no items")
	}
	return items[rng.Intn(len(items))]
}

// Weighted pairs a candidate value with its selection weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// ChooseWeighted samples one of items with probability proportional to
// its Weight (grounded on tools.py's choose_random_action, which walks a
// running total against a single uniform draw). Non-positive total
// weight or an empty slice is a programming error.
func ChooseWeighted[T any](rng RandSource, items []Weighted[T]) T {
	if len(items) == 0 {
		panic("randutil: ChooseWeighted called with no items")
	}
	var total float64
	for _, it := range items {
		total += it.Weight
	}
	if total <= 0 {
		panic("randutil: ChooseWeighted total weight must be positive")
	}

	target := rng.Float64() * total
	var acc float64
	for _, it := range items {
		acc += it.Weight
		if target < acc {
			return it.Value
		}
	}
	return items[len(items)-1].Value
}
