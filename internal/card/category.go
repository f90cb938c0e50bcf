package card

import "fmt"

// Category is the Leitner box of a card.
// 0 is an unseen card, 1 to 7 are boxes of increasing mastery and 8 is a retired card.
type Category int

const (
	CategoryNew      Category = 0
	MinBox           Category = 1
	MaxBox           Category = 7
	CategoryMastered Category = 8
)

// Categories lists every category in ascending order.
func Categories() []Category {
	res := make([]Category, 0, CategoryMastered+1)
	for c := CategoryNew; c <= CategoryMastered; c++ {
		res = append(res, c)
	}
	return res
}

// Boxes lists the review boxes 1 to 7.
func Boxes() []Category {
	res := make([]Category, 0, MaxBox)
	for c := MinBox; c <= MaxBox; c++ {
		res = append(res, c)
	}
	return res
}

// Valid reports whether c is within [0, 8].
func (c Category) Valid() bool {
	return c >= CategoryNew && c <= CategoryMastered
}

// IsBox reports whether c is a review box.
func (c Category) IsBox() bool {
	return c >= MinBox && c <= MaxBox
}

func (c Category) String() string {
	switch {
	case c == CategoryNew:
		return "new"
	case c == CategoryMastered:
		return "mastered"
	case c.IsBox():
		return fmt.Sprintf("box %d", int(c))
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}
