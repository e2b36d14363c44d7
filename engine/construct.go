package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/jorisperrenet/durak/card"
)

// ErrAceBottomRedeal is returned by NewGameState when the deck's bottom
// card was an ace and computerShuffle is false: redealing requires a
// freshly shuffled deck and a new bottomCard, which only the caller
// soliciting input from a human can supply (spec §4.2, §6).
var ErrAceBottomRedeal = errors.New("engine: ace on the bottom, redeal required")

// NewGameState deals a fresh game (spec §4.2): it binds the deck's bottom
// card (sampling uniformly if computerShuffle, otherwise trusting the
// caller-supplied bottomCard), fixes the trump suit from it, fills every
// hand, and opens the first trick with mainAttacker first to act.
//
// An ace on the bottom triggers a redeal. Under computerShuffle this
// recurses transparently; otherwise it returns ErrAceBottomRedeal so the
// caller can solicit a new bottom card.
func NewGameState(players []Player, computerShuffle bool, mainAttacker string, bottomCard *card.Identity, printInfo bool, rng RandSource) (*GameState, error) {
	if len(players) < 2 || len(players) > 6 {
		return nil, fmt.Errorf("engine: player count must be between 2 and 6, got %d", len(players))
	}

	gs := &GameState{
		Players:         players,
		ComputerShuffle: computerShuffle,
		PrintInfo:       printInfo,
		Rng:             rng,
		DefenderIdx:     -1,
	}

	gs.Deck = make([]card.Ref, NumCards)
	for i := range gs.Deck {
		gs.Deck[i] = card.Ref(i)
	}

	var bottomID card.Identity
	if computerShuffle {
		all := AllIdentities()
		bottomID = all[rng.Intn(len(all))]
	} else {
		if bottomCard == nil {
			return nil, fmt.Errorf("engine: manual shuffle requires a supplied bottom card")
		}
		bottomID = *bottomCard
	}

	bottomRef := gs.Deck[len(gs.Deck)-1]
	gs.Cards[bottomRef].Bind(bottomID)
	gs.Cards[bottomRef].Visibility = card.Public

	if bottomID.Value == card.AceValue {
		if !computerShuffle {
			return nil, ErrAceBottomRedeal
		}
		if printInfo {
			log.Println("engine: ace on the bottom, redealing")
		}
		return NewGameState(players, computerShuffle, mainAttacker, nil, printInfo, rng)
	}

	for i := range gs.Cards {
		gs.Cards[i].TrumpSuit = bottomID.Suit
	}

	for _, p := range players {
		p.FillHand(gs)
	}

	gs.NewTrick(mainAttacker)
	return gs, nil
}

// Next asks the current player to choose and execute one action. Calling
// Next on a terminal state is a fatal programming error (spec §7).
func (gs *GameState) Next() {
	if gs.Terminal {
		panic(fmt.Errorf("engine: Next called on a terminal state"))
	}
	player := gs.Players[gs.PlayerToPlay]
	action := player.ChooseAction(gs)
	if gs.PrintInfo {
		log.Printf("%s: %v", player.Name(), action)
	}
	gs.ExecuteAction(action)
}
