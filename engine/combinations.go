package engine

import (
	"sort"

	"github.com/jorisperrenet/durak/card"
)

// sortedIdentities returns set's members in a stable (suit, value) order,
// so that e.g. two equal information sets always enumerate ThrowCards
// combinations identically (spec §8, "equal histories share a node").
func sortedIdentities(set map[card.Identity]bool) []card.Identity {
	out := make([]card.Identity, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Suit != out[j].Suit {
			return out[i].Suit < out[j].Suit
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// combinations returns every r-element subset of items, in lexicographic
// index order.
func combinations(items []card.Identity, r int) [][]card.Identity {
	n := len(items)
	if r < 0 || r > n {
		return nil
	}
	if r == 0 {
		return [][]card.Identity{{}}
	}

	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}

	var result [][]card.Identity
	for {
		combo := make([]card.Identity, r)
		for i, pos := range idx {
			combo[i] = items[pos]
		}
		result = append(result, combo)

		i := r - 1
		for i >= 0 && idx[i] == i+n-r {
			i--
		}
		if i < 0 {
			return result
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
