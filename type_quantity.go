package fitlog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is a measured amount, a body weight in pounds or an energy amount
// in kcal. It is decimal backed so that averaging over weeks does not drift.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient factory for Quantity.
func Q(value float64) Quantity { return Quantity{value: decimal.NewFromFloat(value)} }

// quantityCleaner strips the noise tracker exports put around numbers:
// thousands separators, stray quotes and non breaking spaces, plus the
// en dash LoseIt sometimes uses as an empty placeholder.
var quantityCleaner = strings.NewReplacer(",", "", `"`, "", " ", "", "–", "-")

// ParseQuantity reads a numeric field from a tracker export, so "1,932" and
// `"1,222"` both parse. It reports false when the field holds no value
// (blank or the "-" placeholder).
func ParseQuantity(s string) (Quantity, bool) {
	s = strings.TrimSpace(quantityCleaner.Replace(s))
	if s == "" || s == "-" {
		return Quantity{}, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, false
	}
	return Quantity{value: v}, true
}

func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }

// DivInt divides the quantity by a count, for averaging.
func (q Quantity) DivInt(n int) Quantity {
	return Quantity{value: q.value.Div(decimal.NewFromInt(int64(n)))}
}

func (q Quantity) Float64() float64 {
	f, _ := q.value.Float64()
	return f
}

func (q Quantity) String() string { return q.value.String() }

// StringFixed formats the quantity with a fixed number of decimal places.
func (q Quantity) StringFixed(places int32) string { return q.value.StringFixed(places) }
