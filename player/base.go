// Package player implements the five Durak seat behaviors: Random,
// Human, and the three search-driven players (ISMCTSFPV,
// DeterminizedMCTS, ISMCTS) built on package mcts.
//
// Grounded on players.py's Player/Random/Human/ISMCTSFPV/
// DeterminizedMCTS/ISMCTS classes. Unlike that original, where a hand is
// a list of directly-held Card objects, every method below that needs a
// card's identity takes the owning *engine.GameState and resolves
// card.Ref through it.
package player

import (
	"fmt"
	"sort"

	"github.com/jorisperrenet/durak/card"
	"github.com/jorisperrenet/durak/engine"
)

// RandSource is the minimal *math/rand.Rand surface these players need.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// Base implements the hand-management portion of engine.Player shared by
// every concrete seat. Concrete types embed it and supply only
// ChooseAction (and MakeCopy, to preserve their own type on clone).
type Base struct {
	name string
	hand []card.Ref
	tree engine.SearchTree
	Rng  RandSource
}

// NewBase returns a Base ready to embed in a concrete player type.
func NewBase(name string, rng RandSource) Base {
	return Base{name: name, Rng: rng}
}

func (b *Base) Name() string                    { return b.name }
func (b *Base) Hand() []card.Ref                { return b.hand }
func (b *Base) SetHand(h []card.Ref)            { b.hand = h }
func (b *Base) Tree() engine.SearchTree         { return b.tree }
func (b *Base) SetTree(t engine.SearchTree)     { b.tree = t }

// FillHand draws from the front of the deck (the order cards were
// physically stacked in, spec §4.2) until the hand holds
// engine.HandSize cards or the deck runs out. Drawn cards remain
// Unknown until MakeCardsKnown binds them.
func (b *Base) FillHand(gs *engine.GameState) {
	for len(b.hand) < engine.HandSize && len(gs.Deck) > 0 {
		ref := gs.Deck[0]
		gs.Deck = gs.Deck[1:]
		b.hand = append(b.hand, ref)
	}
}

// MakeCardsKnown binds every still-Unknown hand card to a concrete
// identity sampled without replacement from gs.UnknownIdentities() and
// marks it Private — modeling a player immediately seeing their own
// freshly dealt or drawn cards.
func (b *Base) MakeCardsKnown(gs *engine.GameState) {
	for _, ref := range b.hand {
		c := &gs.Cards[ref]
		if c.Visibility != card.Unknown {
			continue
		}
		pool := identitySlice(gs.UnknownIdentities())
		id := pool[b.Rng.Intn(len(pool))]
		c.Bind(id)
		c.Visibility = card.Private
	}
}

// PossibleCardPlays returns, for every hand card, either its already-
// bound identity or — if it is still Unknown to this player — the full
// nonPublic set (spec §4.5).
func (b *Base) PossibleCardPlays(gs *engine.GameState, nonPublic map[card.Identity]bool) map[card.Identity]bool {
	out := map[card.Identity]bool{}
	for _, ref := range b.hand {
		c := &gs.Cards[ref]
		if c.Visibility == card.Unknown {
			for id := range nonPublic {
				out[id] = true
			}
		} else {
			out[c.Identity()] = true
		}
	}
	return out
}

// DiscardCard finds the hand card matching id — preferring an
// already-bound exact match, otherwise binding the first remaining
// Unknown card to id — marks it Public, and removes it from the hand
// unless remove is false (ReflectTrump: the shown trump stays in the
// hand, now Public, and can still be played later — spec §4.4). No
// matching card is fatal (spec §7).
func (b *Base) DiscardCard(gs *engine.GameState, id card.Identity, remove bool) card.Ref {
	take := func(i int, ref card.Ref) card.Ref {
		gs.Cards[ref].Visibility = card.Public
		if remove {
			b.hand = append(b.hand[:i], b.hand[i+1:]...)
		}
		return ref
	}

	for i, ref := range b.hand {
		c := &gs.Cards[ref]
		if c.Visibility != card.Unknown && c.Identity() == id {
			return take(i, ref)
		}
	}
	for i, ref := range b.hand {
		c := &gs.Cards[ref]
		if c.Visibility == card.Unknown {
			c.Bind(id)
			return take(i, ref)
		}
	}
	panic(fmt.Errorf("player: %s cannot discard %v: no matching card in hand", b.name, id))
}

// CanThrow greedily first-fits each wanted identity against an unused
// hand card (an Unknown card can serve any identity present in
// fallback), in the order throws were given. This is a deliberate
// simplification of true bipartite matching: it can report false when
// a different assignment of the same cards would have worked (spec §9,
// open question — kept as the original's greedy algorithm).
func (b *Base) CanThrow(gs *engine.GameState, fallback map[card.Identity]bool, throws []card.Identity) bool {
	used := make([]bool, len(b.hand))
	for _, want := range throws {
		matched := false
		for i, ref := range b.hand {
			if used[i] {
				continue
			}
			c := &gs.Cards[ref]
			if c.Visibility == card.Unknown {
				if fallback[want] {
					used[i] = true
					matched = true
					break
				}
				continue
			}
			if c.Identity() == want {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// DeterminizeHand binds every still-Unknown hand card to a uniform
// sample, without replacement, from gs.UnknownIdentities() (spec §4.8) —
// used to produce one concrete hypothetical world for search rollouts,
// never for real play.
func (b *Base) DeterminizeHand(gs *engine.GameState) {
	for _, ref := range b.hand {
		c := &gs.Cards[ref]
		if c.Visibility == card.Unknown {
			pool := identitySlice(gs.UnknownIdentities())
			id := pool[b.Rng.Intn(len(pool))]
			c.Bind(id)
			c.Visibility = card.Private
		}
	}
}

// HideOpponentKnowledge returns a clone of gs with every Private card not
// in b's own hand reset to Unknown, mirroring a real player who only ever
// sees their own hand's true identities. Every search-driven ChooseAction
// calls this before handing the result to mcts.Determinize, which only
// rebinds cards already sitting at Unknown (spec §2 "hide others' private
// cards").
func (b *Base) HideOpponentKnowledge(gs *engine.GameState) *engine.GameState {
	clone := gs.Clone()
	own := make(map[card.Ref]bool, len(b.hand))
	for _, ref := range b.hand {
		own[ref] = true
	}
	for i := range clone.Cards {
		c := &clone.Cards[i]
		if c.Visibility == card.Private && !own[card.Ref(i)] {
			c.Reset()
		}
	}
	return clone
}

// copyInto gives dst a detached copy of b's name and hand — the common
// part of every concrete player's MakeCopy.
func (b *Base) copyInto(dst *Base) {
	dst.name = b.name
	dst.hand = append([]card.Ref(nil), b.hand...)
	dst.Rng = b.Rng
}

func identitySlice(set map[card.Identity]bool) []card.Identity {
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
