package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID returns a stable hash of gs's executed-action history: two
// GameStates reached via the same sequence of actions always hash equal,
// regardless of which concrete Player values produced them (spec §3,
// "History" and §8 property 8). Weight is deliberately excluded — it is
// rollout-policy bookkeeping, not part of what happened.
func (gs *GameState) ID() uint64 {
	h := xxhash.New()
	for _, a := range gs.History {
		writeAction(h, a)
	}
	return h.Sum64()
}

func writeAction(h *xxhash.Digest, a Action) {
	h.Write([]byte{byte(a.Kind), byte(a.Card.Suit), byte(a.Card.Value)})

	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(a.Throws)))
	h.Write(lenBuf[:])
	for _, id := range a.Throws {
		h.Write([]byte{byte(id.Suit), byte(id.Value)})
	}
}
