package randutil_test

import (
	"math/rand"
	"testing"

	"github.com/jorisperrenet/durak/randutil"
)

func TestChooseReturnsOneOfTheItems(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		got := randutil.Choose(rng, items)
		found := false
		for _, it := range items {
			if it == got {
				found = true
			}
		}
		if !found {
			t.Fatalf("Choose returned %q, not one of %v", got, items)
		}
	}
}

func TestChooseWeightedNeverPicksAZeroWeightItem(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := []randutil.Weighted[string]{
		{Value: "never", Weight: 0},
		{Value: "always", Weight: 1},
	}
	for i := 0; i < 50; i++ {
		if got := randutil.ChooseWeighted(rng, items); got != "always" {
			t.Fatalf("expected only \"always\" to be chosen, got %q", got)
		}
	}
}

func TestChooseWeightedRespectsProportions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	items := []randutil.Weighted[string]{
		{Value: "heavy", Weight: 99},
		{Value: "light", Weight: 1},
	}
	counts := map[string]int{}
	const trials = 2000
	for i := 0; i < trials; i++ {
		counts[randutil.ChooseWeighted(rng, items)]++
	}
	if counts["heavy"] < counts["light"] {
		t.Fatalf("expected heavy to dominate light, got %v", counts)
	}
}
