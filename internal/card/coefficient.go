package card

import "fmt"

// AgeCoefficient configures one review box: how many days a card rests before it is due,
// and how strongly an overdue card of the box is weighted.
type AgeCoefficient struct {
	Age         int64 `mapstructure:"age" yaml:"age" validate:"min=0"`
	Coefficient int64 `mapstructure:"coefficient" yaml:"coefficient" validate:"min=0"`
}

// CategoryCoefficient is one row of the scoring table.
type CategoryCoefficient struct {
	Category     Category `db:"category"`
	AgeThreshold int64    `db:"age"`
	Coefficient  int64    `db:"coefficient"`
}

// CoefficientTable holds a row for every category 0 to 8.
// Categories 0 and 8 never score and carry zero values.
type CoefficientTable [CategoryMastered + 1]CategoryCoefficient

// NewCoefficientTable builds a table from the seven box settings, box 1 first.
func NewCoefficientTable(boxes []AgeCoefficient) (CoefficientTable, error) {
	var table CoefficientTable
	if len(boxes) != int(MaxBox) {
		return table, fmt.Errorf("%d box coefficients given, %d required", len(boxes), MaxBox)
	}
	for _, c := range Categories() {
		table[c] = CategoryCoefficient{Category: c}
	}
	for i, box := range boxes {
		if box.Age < 0 || box.Coefficient < 0 {
			return table, fmt.Errorf("box %d has a negative age or coefficient", i+1)
		}
		c := MinBox + Category(i)
		table[c] = CategoryCoefficient{
			Category:     c,
			AgeThreshold: box.Age,
			Coefficient:  box.Coefficient,
		}
	}
	return table, nil
}

// CoefficientTableFromRows builds a table from stored rows.
// Categories missing from rows keep zero values.
func CoefficientTableFromRows(rows []CategoryCoefficient) (CoefficientTable, error) {
	var table CoefficientTable
	for _, c := range Categories() {
		table[c] = CategoryCoefficient{Category: c}
	}
	for _, row := range rows {
		if !row.Category.Valid() {
			return table, fmt.Errorf("coefficient row for category %d is out of range", row.Category)
		}
		table[row.Category] = row
	}
	return table, nil
}

// PowerOfTwoCoefficients returns the (2^k, 2^(6-k)) curve for k = 0..6.
func PowerOfTwoCoefficients() []AgeCoefficient {
	res := make([]AgeCoefficient, 0, MaxBox)
	for k := 0; k < int(MaxBox); k++ {
		res = append(res, AgeCoefficient{
			Age:         1 << k,
			Coefficient: 1 << (6 - k),
		})
	}
	return res
}

// Rows returns every row of the table in category order.
func (t CoefficientTable) Rows() []CategoryCoefficient {
	return t[:]
}

// Get returns the row for c; out-of-range categories yield a zero row.
func (t CoefficientTable) Get(c Category) CategoryCoefficient {
	if !c.Valid() {
		return CategoryCoefficient{Category: c}
	}
	return t[c]
}
