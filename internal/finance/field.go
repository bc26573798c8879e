// Package finance validates raw salary inputs and aggregates them into reports.
package finance

import (
	"golang.org/x/exp/slices"
)

// Field is the name of one of the input fields.
type Field string

const (
	BasicSalary Field = "basic_salary"
	Incentives  Field = "incentives"
	Spends      Field = "spends"
	Recharges   Field = "recharges"
	Grocery     Field = "grocery"
)

// Fields lists all input fields in the order they are validated and reported in.
var Fields = []Field{BasicSalary, Incentives, Spends, Recharges, Grocery}

// ParseField returns the Field for a name and whether the name is known.
func ParseField(name string) (Field, bool) {
	f := Field(name)
	if !slices.Contains(Fields, f) {
		return "", false
	}
	return f, true
}

func (f Field) String() string {
	return string(f)
}

// index returns the position of the field in Fields.
func (f Field) index() int {
	return slices.Index(Fields, f)
}
