package leitner

import (
	"strings"

	"github.com/at-ishikawa/leitner/internal/card"
)

// Outcome is the learner's answer to a card.
type Outcome int

const (
	OutcomeUnrecognized Outcome = iota
	OutcomeKnow
	OutcomeDontKnow
	OutcomeReveal
	OutcomeDiscard
	OutcomeQuit
)

// ParseOutcome maps one of y, n, s, d, q to an outcome.
func ParseOutcome(input string) Outcome {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y":
		return OutcomeKnow
	case "n":
		return OutcomeDontKnow
	case "s":
		return OutcomeReveal
	case "d":
		return OutcomeDiscard
	case "q":
		return OutcomeQuit
	default:
		return OutcomeUnrecognized
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeKnow:
		return "know"
	case OutcomeDontKnow:
		return "dont_know"
	case OutcomeReveal:
		return "reveal"
	case OutcomeDiscard:
		return "discard"
	case OutcomeQuit:
		return "quit"
	default:
		return "unrecognized"
	}
}

// Mutates reports whether the outcome changes the card's category and last update.
func Mutates(o Outcome) bool {
	return o == OutcomeKnow || o == OutcomeDontKnow
}

// NextCategory returns the category a card moves to.
// A known new card skips box 1, a known box card moves up one box and mastered cards stay mastered.
// A forgotten card always restarts in box 1.
func NextCategory(current card.Category, o Outcome) card.Category {
	switch o {
	case OutcomeKnow:
		switch {
		case current == card.CategoryNew:
			return card.MinBox + 1
		case current.IsBox():
			return current + 1
		default:
			return card.CategoryMastered
		}
	case OutcomeDontKnow:
		return card.MinBox
	default:
		return current
	}
}

// Advance applies o to c reviewed on today.
// The second value is false, and c is returned as is, when o does not change the card.
func Advance(c card.Card, o Outcome, today card.DayStamp) (card.Card, bool) {
	if !Mutates(o) {
		return c, false
	}
	return c.Reviewed(NextCategory(c.Category, o), today), true
}
