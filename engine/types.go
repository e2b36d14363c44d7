// Package engine implements the Durak rules engine: deck and seating
// construction, per-trick attack/defend/reflect/throw legality, action
// execution, and cheap snapshotting for search rollouts.
//
// Grounded on original_source/python_version/main.py's GameTree, ported
// to the index-based card identity scheme described in spec.md §9
// ("Card identity vs value") rather than the identity map the spec's
// prose otherwise calls for: every card lives at a fixed position
// (card.Ref) in GameState.Cards for the lifetime of a deal, so a
// snapshot needs only a plain array copy, not a remap.
package engine

import "github.com/jorisperrenet/durak/card"

// NumCards is the size of a Durak deck: 4 suits × 9 ranks.
const NumCards = card.NumSuits * card.NumValues

// HandSize is the number of cards a player tries to hold after refilling.
const HandSize = 6

// ActionPhase is the three-state enum driving which kind of action
// AllowedPlays enumerates and ExecuteAction accepts.
type ActionPhase uint8

const (
	PhaseAttack ActionPhase = iota
	PhaseDefend
	PhaseThrowCards
)

func (p ActionPhase) String() string {
	switch p {
	case PhaseAttack:
		return "Attack"
	case PhaseDefend:
		return "Defend"
	case PhaseThrowCards:
		return "ThrowCards"
	default:
		return "Unknown"
	}
}

// ActionKind tags the discriminated union of legal Durak actions.
type ActionKind uint8

const (
	ActionAttack ActionKind = iota
	ActionDefend
	ActionReflect
	ActionReflectTrump
	ActionTake
	ActionPassAttack
	ActionThrowCards
)

func (k ActionKind) String() string {
	switch k {
	case ActionAttack:
		return "Attack"
	case ActionDefend:
		return "Defend"
	case ActionReflect:
		return "Reflect"
	case ActionReflectTrump:
		return "ReflectTrump"
	case ActionTake:
		return "Take"
	case ActionPassAttack:
		return "PassAttack"
	case ActionThrowCards:
		return "ThrowCards"
	default:
		return "Unknown"
	}
}

// Action is a single legal move. Card is meaningful for Attack, Defend,
// Reflect and ReflectTrump. Throws is meaningful only for ThrowCards: nil
// is the distinguished "None" pass, a non-empty slice is the ordered set
// of cards thrown. Weight is an exploration weight consumed only by
// random-rollout action selection (spec §4.3) — never by search
// bookkeeping.
type Action struct {
	Kind   ActionKind
	Card   card.Identity
	Throws []card.Identity
	Weight float64
}

func (a Action) String() string {
	switch a.Kind {
	case ActionAttack, ActionDefend, ActionReflect, ActionReflectTrump:
		return a.Kind.String() + "(" + a.Card.String() + ")"
	case ActionThrowCards:
		if a.Throws == nil {
			return "ThrowCards(None)"
		}
		s := "ThrowCards("
		for i, id := range a.Throws {
			if i > 0 {
				s += ","
			}
			s += id.String()
		}
		return s + ")"
	default:
		return a.Kind.String() + "()"
	}
}

// actionKey identifies an action's outcome (ignoring Weight and Throws,
// which Defend-phase actions never carry) for use as a map key while
// accumulating weights (spec §4.3).
type actionKey struct {
	Kind ActionKind
	Card card.Identity
}

// Pair is a successfully defended (attack, defend) card pair.
type Pair struct {
	Attack card.Ref
	Defend card.Ref
}

// SearchTree is the opaque handle a Player stores between decisions. The
// engine never inspects it; it exists purely so Player implementations
// (package player) can keep a tree alive across ChooseAction calls within
// a single decision and discard it afterwards (spec §9 "Tree sharing").
type SearchTree interface{}

// Player is the capability surface the engine requires of every seat
// (spec §6). Unlike the Python original, where a Player's hand is a list
// of shared Card objects, hands here are []card.Ref — stable indices into
// the owning GameState's card arena — so every method that must inspect
// or mutate a held card's identity takes the GameState as a parameter.
type Player interface {
	Name() string
	Hand() []card.Ref
	SetHand(hand []card.Ref)
	Tree() SearchTree
	SetTree(tree SearchTree)

	// FillHand draws from gs.Deck until the hand holds HandSize cards or
	// the deck is exhausted.
	FillHand(gs *GameState)
	// MakeCardsKnown binds every still-Unknown card in the hand to a
	// concrete identity and marks it Private.
	MakeCardsKnown(gs *GameState)
	// PossibleCardPlays returns, for each hand card, its bound identity
	// or (if still Unknown) the full nonPublic set.
	PossibleCardPlays(gs *GameState, nonPublic map[card.Identity]bool) map[card.Identity]bool
	// DiscardCard locates a hand card matching id (binding it first if it
	// is Unknown), marks it Public, and — unless remove is false, as for
	// ReflectTrump — removes it from the hand. It returns the discarded
	// card's Ref. Failing to find a matching card is fatal (spec §7).
	DiscardCard(gs *GameState, id card.Identity, remove bool) card.Ref
	// CanThrow decides whether the given throws can be simultaneously
	// realized by this hand, treating every Unknown card's identity as
	// drawn from fallback.
	CanThrow(gs *GameState, fallback map[card.Identity]bool, throws []card.Identity) bool
	// DeterminizeHand leaves already-bound cards untouched and binds
	// every remaining Unknown card to a uniform sample, without
	// replacement, from gs.UnknownIdentities() — the pool of identities
	// not yet bound to any card anywhere, so two hands determinized in
	// the same pass never collide.
	DeterminizeHand(gs *GameState)
	// ChooseAction picks the next action to execute from AllowedPlays.
	ChooseAction(gs *GameState) Action
	// MakeCopy returns a fresh Player with the same name and a detached
	// copy of the hand's Ref slice (the underlying cards are cloned at
	// the GameState level, not here — spec §4.6).
	MakeCopy() Player
}

// GameState is the full Durak rules-engine state: the card arena, dynamic
// seating, current trick structure, and history.
type GameState struct {
	// Cards is the insertion-order-preserved arena of all 36 physical
	// cards for the deal. A card's index here is its identity.
	Cards [NumCards]card.Card

	// Players is the full, fixed-order roster (2..6). Attackers and
	// DefenderIdx are indices into this slice, reshuffled trick to trick;
	// Players itself never gains or loses entries.
	Players []Player

	Deck []card.Ref

	Attackers               []int
	DefenderIdx             int // -1 when absent (terminal states)
	CurrentAttacker         int
	PairsFinished           []Pair
	CardsToDefend           []card.Ref
	DrawOrder               []int
	ReflectedTrumps         map[card.Identity]bool
	AttackerToStartThrowing int // -1 sentinel
	LastPlayedAttacker      int // -1 sentinel; index into Players
	CurrentAction           ActionPhase

	PlayerToPlay int // index into Players

	History []Action

	Terminal bool
	LoserIdx int // -1 until Terminal

	ComputerShuffle bool
	PrintInfo       bool

	Rng RandSource
}

// RandSource is the minimal *math/rand.Rand surface the engine needs.
// Random seeding is an external concern (spec §1); callers supply an
// already-seeded source.
type RandSource interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// TrumpSuit returns the deal's trump suit, fixed on every card (including
// still-Unknown ones) at construction time.
func (gs *GameState) TrumpSuit() card.Suit {
	return gs.Cards[0].TrumpSuit
}

// AllIdentities returns all 36 (suit, value) pairs in a stable order.
func AllIdentities() []card.Identity {
	ids := make([]card.Identity, 0, NumCards)
	for s := card.Suit(0); int(s) < card.NumSuits; s++ {
		for v := card.Value(0); int(v) < card.NumValues; v++ {
			ids = append(ids, card.Identity{Suit: s, Value: v})
		}
	}
	return ids
}

// UnknownIdentities returns the identities of every card that is still
// Unknown to everyone.
func (gs *GameState) UnknownIdentities() map[card.Identity]bool {
	return gs.identitiesNotIn(card.Unknown)
}

// NonPublicIdentities returns the identities not yet bound to a Public
// card: every Unknown or Private card's (suit, value) is still "in play"
// from an outside observer's perspective.
func (gs *GameState) NonPublicIdentities() map[card.Identity]bool {
	used := map[card.Identity]bool{}
	for i := range gs.Cards {
		if gs.Cards[i].Visibility == card.Public {
			used[gs.Cards[i].Identity()] = true
		}
	}
	out := map[card.Identity]bool{}
	for _, id := range AllIdentities() {
		if !used[id] {
			out[id] = true
		}
	}
	return out
}

// identitiesNotIn returns every identity not currently bound to a card
// whose visibility is strictly beyond bound (i.e. any visibility except
// Unknown, when called with Unknown).
func (gs *GameState) identitiesNotIn(unbound card.Visibility) map[card.Identity]bool {
	used := map[card.Identity]bool{}
	for i := range gs.Cards {
		if gs.Cards[i].Visibility != unbound {
			used[gs.Cards[i].Identity()] = true
		}
	}
	out := map[card.Identity]bool{}
	for _, id := range AllIdentities() {
		if !used[id] {
			out[id] = true
		}
	}
	return out
}

// KnownHandIdentities returns the bound identities already held (and
// known) elsewhere in p's own hand — used while enumerating candidate
// identities for one of p's Unknown cards, so the same Unknown card never
// offers an identity another of p's cards already owns (spec §4.3, §4.5).
func (gs *GameState) KnownHandIdentities(p Player) map[card.Identity]bool {
	out := map[card.Identity]bool{}
	for _, ref := range p.Hand() {
		c := &gs.Cards[ref]
		if c.Visibility != card.Unknown {
			out[c.Identity()] = true
		}
	}
	return out
}

// valuesOnTable returns every rank currently present in PairsFinished or
// CardsToDefend.
func (gs *GameState) valuesOnTable() map[card.Value]bool {
	out := map[card.Value]bool{}
	for _, p := range gs.PairsFinished {
		out[gs.Cards[p.Attack].Value] = true
		out[gs.Cards[p.Defend].Value] = true
	}
	for _, ref := range gs.CardsToDefend {
		out[gs.Cards[ref].Value] = true
	}
	return out
}
