package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jorisperrenet/durak/card"
	"github.com/jorisperrenet/durak/engine"
)

// Human solicits a move from an external reader/writer pair, either by
// index into the enumerated legal actions or — for the common case of a
// bare card attack/defend — by typing the card as it is listed (e.g. "♥Q"),
// matching players.py's Human, which accepted both an action index and a
// shorthand card string.
type Human struct {
	Base
	in  *bufio.Reader
	out io.Writer
}

// NewHuman returns a Human player reading prompts from in and writing
// them to out.
func NewHuman(name string, rng RandSource, in io.Reader, out io.Writer) *Human {
	return &Human{Base: NewBase(name, rng), in: bufio.NewReader(in), out: out}
}

// ChooseAction follows players.py's Human.choose_action dual input mode:
// under a computer shuffle the engine already knows the bottom card, so it
// also reveals the human's own hand before prompting; under a manual
// shuffle the human dealt the physical cards themselves and the engine
// never binds their hand, so every still-Unknown card is offered as
// "could be any non-public identity" instead (spec §4.1, §4.5).
func (h *Human) ChooseAction(gs *engine.GameState) engine.Action {
	if gs.ComputerShuffle {
		h.MakeCardsKnown(gs)
	}
	actions := gs.AllowedPlays()

	fmt.Fprintf(h.out, "%s, your hand: %s\n", h.Name(), h.handString(gs))
	for i, a := range actions {
		fmt.Fprintf(h.out, "  [%d] %v\n", i, a)
	}

	for {
		fmt.Fprint(h.out, "> ")
		line, err := h.in.ReadString('\n')
		if err != nil {
			fmt.Fprintf(h.out, "input error, try again (%v)\n", err)
			continue
		}
		line = strings.TrimSpace(line)

		if idx, err := strconv.Atoi(line); err == nil {
			if idx >= 0 && idx < len(actions) {
				return actions[idx]
			}
			fmt.Fprintf(h.out, "no such action %d\n", idx)
			continue
		}

		if a, ok := matchByCardText(actions, line); ok {
			return a
		}
		fmt.Fprintf(h.out, "could not parse %q as an action index or card\n", line)
	}
}

// matchByCardText accepts a bare card text like "♥Q" (suit glyph, then
// rank, as the card is listed) and returns the first enumerated action
// naming that card, for any action kind carrying a single Card (not Take
// or PassAttack, which carry none, and not ThrowCards, which always needs
// an index).
func matchByCardText(actions []engine.Action, text string) (engine.Action, bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	for _, a := range actions {
		switch a.Kind {
		case engine.ActionAttack, engine.ActionDefend, engine.ActionReflect, engine.ActionReflectTrump:
		default:
			continue
		}
		if strings.EqualFold(a.Card.String(), text) {
			return a, true
		}
	}
	return engine.Action{}, false
}

func (h *Human) handString(gs *engine.GameState) string {
	var sb strings.Builder
	for i, ref := range h.Hand() {
		if i > 0 {
			sb.WriteString(" ")
		}
		c := gs.Cards[ref]
		if c.Visibility == card.Unknown {
			sb.WriteString("??")
			continue
		}
		sb.WriteString(c.Identity().String())
	}
	return sb.String()
}

func (h *Human) MakeCopy() engine.Player {
	cp := &Human{in: h.in, out: h.out}
	h.copyInto(&cp.Base)
	return cp
}
