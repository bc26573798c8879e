package finance

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// RawInput is the unvalidated input for a report.
type RawInput struct {
	BasicSalary Value `json:"basic_salary" swaggertype:"number" example:"5000"`
	Incentives  Value `json:"incentives" swaggertype:"number" example:"500"`
	Spends      Value `json:"spends" swaggertype:"number" example:"1000"`
	Recharges   Value `json:"recharges" swaggertype:"number" example:"200"`
	Grocery     Value `json:"grocery" swaggertype:"number" example:"300"`
}

// Get returns the value for a field. Unknown fields are absent.
func (r RawInput) Get(f Field) Value {
	switch f {
	case BasicSalary:
		return r.BasicSalary
	case Incentives:
		return r.Incentives
	case Spends:
		return r.Spends
	case Recharges:
		return r.Recharges
	case Grocery:
		return r.Grocery
	}

	return Absent()
}

// ParseRawInput builds a RawInput from loosely typed data, e.g. a decoded
// JSON object. Keys that are not field names are ignored.
//
// Strings are kept as text, Go numbers and json.Number are converted to text,
// nil is absent and every other type is kept as an invalid value.
func ParseRawInput(data map[string]any) RawInput {
	var r RawInput

	for key, raw := range data {
		field, ok := ParseField(key)
		if !ok {
			continue
		}

		r.set(field, toValue(raw))
	}

	return r
}

func (r *RawInput) set(f Field, v Value) {
	switch f {
	case BasicSalary:
		r.BasicSalary = v
	case Incentives:
		r.Incentives = v
	case Spends:
		r.Spends = v
	case Recharges:
		r.Recharges = v
	case Grocery:
		r.Grocery = v
	}
}

func toValue(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Absent()
	case Value:
		return v
	case string:
		return Text(v)
	case json.Number:
		return Text(v.String())
	case decimal.Decimal:
		return Text(v.String())
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Text(fmt.Sprintf("%d", v))
	}

	return Value{kind: kindInvalid, text: fmt.Sprintf("%v", raw)}
}

// Record is a validated input. Every amount is a finite, non-negative number.
//
// The only way to obtain a non-zero Record is Validate.
type Record struct {
	amounts [5]decimal.Decimal
}

// Amount returns the validated amount for a field.
func (r Record) Amount(f Field) decimal.Decimal {
	i := f.index()
	if i < 0 {
		return decimal.Zero
	}
	return r.amounts[i]
}

// Validate checks every field of the input in the order of Fields.
//
// All fields are checked, so the returned *ValidationError lists every
// problem in the input.
func Validate(raw RawInput) (Record, error) {
	var (
		record Record
		issues []Issue
	)

	for i, field := range Fields {
		amount, reason, ok := coerce(raw.Get(field))
		if !ok {
			issues = append(issues, Issue{Field: field, Reason: reason})
			continue
		}

		record.amounts[i] = amount
	}

	if len(issues) > 0 {
		return Record{}, &ValidationError{Issues: issues}
	}

	return record, nil
}
