// Package card provides the flashcard data model shared by the store, the selection engine and the CLI.
package card

import (
	"fmt"
	"strings"
)

// Card is a single vocabulary flashcard.
// An ID of 0 means the card has not been persisted yet.
type Card struct {
	ID         int64     `db:"id"`
	Category   Category  `db:"category"`
	LastUpdate *DayStamp `db:"last_update"`
	Question   string    `db:"question"`
	Answer     string    `db:"answer"`
	Examples   Examples  `db:"examples"`
}

// NewCard creates an unseen card with no review history.
func NewCard(question, answer string, examples Examples) Card {
	if examples == nil {
		examples = Examples{}
	}
	return Card{
		Category: CategoryNew,
		Question: question,
		Answer:   answer,
		Examples: examples,
	}
}

// IsPersisted reports whether the store has assigned an ID to the card.
func (c Card) IsPersisted() bool {
	return c.ID != 0
}

// Reviewed returns a copy of the card moved to category and stamped with day.
func (c Card) Reviewed(category Category, day DayStamp) Card {
	c.Category = category
	c.LastUpdate = &day
	return c
}

// Age returns the number of days since the last review.
// The second value is false when the card has never been reviewed.
func (c Card) Age(today DayStamp) (int64, bool) {
	if c.LastUpdate == nil {
		return 0, false
	}
	return int64(today - *c.LastUpdate), true
}

// Validate checks the invariants every stored card must hold.
func (c Card) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Question) == "" {
		problems = append(problems, "question is empty")
	}
	if strings.TrimSpace(c.Answer) == "" {
		problems = append(problems, "answer is empty")
	}
	if !c.Category.Valid() {
		problems = append(problems, fmt.Sprintf("category %d is out of range", c.Category))
	} else if c.Category != CategoryNew && c.LastUpdate == nil {
		problems = append(problems, fmt.Sprintf("category %d requires a last update", c.Category))
	}
	if err := c.Examples.Validate(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCard, strings.Join(problems, ", "))
	}
	return nil
}

func (c Card) String() string {
	age := "-"
	if c.LastUpdate != nil {
		age = c.LastUpdate.String()
	}
	return fmt.Sprintf("%d|%s|%s|%s", c.ID, c.Category, age, c.Question)
}

// Scored pairs a card with its urgency score for a given day.
type Scored struct {
	Card
	Score int64 `db:"score"`
}
