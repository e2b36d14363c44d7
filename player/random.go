package player

import (
	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/randutil"
)

// Random chooses among gs.AllowedPlays() with probability proportional
// to each Action's Weight (spec §4.3, §4.5).
type Random struct {
	Base
}

// NewRandom returns a Random player with an empty hand.
func NewRandom(name string, rng RandSource) *Random {
	return &Random{Base: NewBase(name, rng)}
}

func (r *Random) ChooseAction(gs *engine.GameState) engine.Action {
	actions := gs.AllowedPlays()
	weighted := make([]randutil.Weighted[engine.Action], len(actions))
	for i, a := range actions {
		weighted[i] = randutil.Weighted[engine.Action]{Value: a, Weight: a.Weight}
	}
	return randutil.ChooseWeighted(r.Rng, weighted)
}

func (r *Random) MakeCopy() engine.Player {
	cp := &Random{}
	r.copyInto(&cp.Base)
	return cp
}
