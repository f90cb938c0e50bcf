package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/leitner/internal/card"
	"github.com/at-ishikawa/leitner/internal/leitner"
	"github.com/at-ishikawa/leitner/internal/statistics"
)

const (
	shortInputHelp = "y,n,s,d,q : "
	longInputHelp  = "Yes, No, Show, Delete, Quit (y,n,s,d,q): "
	confirmDelete  = "Are you sure to delete it? (y/n) : "
	noExample      = "no example available"
)

//go:generate mockgen -source=review.go -destination=../mocks/cli/mock_card_store.go -package=mock_cli CardStore

// CardStore persists the outcome of each reviewed card.
type CardStore interface {
	Update(ctx context.Context, c card.Card) error
	Delete(ctx context.Context, id int64) error
	FetchAll(ctx context.Context) ([]card.Card, error)
}

// ReviewOptions configures the display and the scoring of a review.
type ReviewOptions struct {
	Today         card.DayStamp
	Table         card.CoefficientTable
	FrontLanguage string
	BackLanguage  string
	HideInputHelp bool
}

// ReviewCLI walks through a session, one card at a time.
type ReviewCLI struct {
	store   CardStore
	cards   leitner.Session
	options ReviewOptions
	rng     *rand.Rand
	log     *slog.Logger

	position   int
	displayed  bool
	front      bool
	exampleIdx int
	counts     map[leitner.Outcome]int

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
}

// NewReviewCLI creates a review of cards reading commands from stdin and writing to stdout.
func NewReviewCLI(
	store CardStore,
	cards leitner.Session,
	options ReviewOptions,
	rng *rand.Rand,
	stdin io.Reader,
	stdout io.Writer,
	log *slog.Logger,
) *ReviewCLI {
	if log == nil {
		log = slog.Default()
	}
	return &ReviewCLI{
		store:        store,
		cards:        cards,
		options:      options,
		rng:          rng,
		log:          log,
		counts:       make(map[leitner.Outcome]int),
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
	}
}

// Remaining returns the number of cards not answered yet.
func (r *ReviewCLI) Remaining() int {
	return len(r.cards) - r.position
}

// Session displays the current card, reads one command and applies it.
func (r *ReviewCLI) Session(ctx context.Context) error {
	if r.position >= len(r.cards) {
		_, _ = fmt.Fprintln(r.stdoutWriter, "No more cards to review!")
		return r.end(ctx)
	}

	current := r.cards[r.position]
	if !r.displayed {
		r.front = true
		r.exampleIdx = r.pickExample(current)
		r.display(current)
		r.displayed = true
	}

	_, _ = fmt.Fprint(r.stdoutWriter, r.inputHelp())
	input, err := r.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return r.end(ctx)
		}
		return fmt.Errorf("error reading input: %w", err)
	}
	return r.dispatch(ctx, current, leitner.ParseOutcome(input))
}

func (r *ReviewCLI) dispatch(ctx context.Context, current card.Card, outcome leitner.Outcome) error {
	switch outcome {
	case leitner.OutcomeKnow, leitner.OutcomeDontKnow:
		next, _ := leitner.Advance(current, outcome, r.options.Today)
		if err := r.store.Update(ctx, next); err != nil {
			return fmt.Errorf("Update(%d) > %w", current.ID, err)
		}
		r.log.Debug("card reviewed",
			"id", current.ID,
			"outcome", outcome.String(),
			"from", current.Category.String(),
			"to", next.Category.String(),
		)
		r.cards[r.position] = next
		r.counts[outcome]++
		r.advance()
	case leitner.OutcomeReveal:
		r.front = !r.front
		r.display(current)
	case leitner.OutcomeDiscard:
		_, _ = fmt.Fprint(r.stdoutWriter, confirmDelete)
		answer, err := r.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading input: %w", err)
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			return nil
		}
		if err := r.store.Delete(ctx, current.ID); err != nil {
			return fmt.Errorf("Delete(%d) > %w", current.ID, err)
		}
		r.log.Debug("card deleted", "id", current.ID)
		r.counts[outcome]++
		r.advance()
	case leitner.OutcomeQuit:
		return r.end(ctx)
	case leitner.OutcomeUnrecognized:
	}
	return nil
}

func (r *ReviewCLI) advance() {
	_, _ = fmt.Fprint(r.stdoutWriter, "\n\n")
	r.position++
	r.displayed = false
}

func (r *ReviewCLI) end(ctx context.Context) error {
	r.log.Info("review ended",
		"reviewed", r.counts[leitner.OutcomeKnow]+r.counts[leitner.OutcomeDontKnow],
		"known", r.counts[leitner.OutcomeKnow],
		"deleted", r.counts[leitner.OutcomeDiscard],
		"remaining", r.Remaining(),
	)

	cards, err := r.store.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("FetchAll() > %w", err)
	}
	_, _ = fmt.Fprintln(r.stdoutWriter)
	if err := statistics.Write(r.stdoutWriter, statistics.Summarize(cards, r.options.Today, r.options.Table)); err != nil {
		return fmt.Errorf("statistics.Write() > %w", err)
	}
	return errEnd
}

func (r *ReviewCLI) pickExample(c card.Card) int {
	n := c.Examples.Count()
	if n <= 1 {
		return 0
	}
	return r.rng.IntN(n)
}

func (r *ReviewCLI) display(c card.Card) {
	if r.front {
		_, _ = fmt.Fprintf(r.stdoutWriter, "\n%d) Question: %s\n", r.position+1, r.bold.Sprint(c.Question))
		_, _ = fmt.Fprintf(r.stdoutWriter, "Example: %s\n", r.example(c, r.options.FrontLanguage))
		return
	}
	_, _ = fmt.Fprintf(r.stdoutWriter, "\nResponse: %s\n", r.bold.Sprint(c.Answer))
	_, _ = fmt.Fprintf(r.stdoutWriter, "Example: %s\n", r.example(c, r.options.BackLanguage))
}

func (r *ReviewCLI) example(c card.Card, lang string) string {
	sentence, ok := c.Examples.Example(lang, r.exampleIdx)
	if !ok {
		return noExample
	}
	return sentence
}

func (r *ReviewCLI) inputHelp() string {
	if r.options.HideInputHelp {
		return shortInputHelp
	}
	return longInputHelp
}

// readLine returns io.EOF only when the input ends before any character.
func (r *ReviewCLI) readLine() (string, error) {
	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
