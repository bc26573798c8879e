package finance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type valueKind int

const (
	kindAbsent valueKind = iota
	kindText
	kindInvalid
)

// Value is an unvalidated field value as sent by a client.
//
// Numbers are kept as their literal text so that no precision is lost before
// validation. The zero Value is absent.
type Value struct {
	kind valueKind
	text string
}

// Text returns a Value for numeric-looking (or not) text.
func Text(s string) Value {
	return Value{kind: kindText, text: s}
}

// Number returns a Value for a float. NaN and infinities are kept and rejected
// during validation.
func Number(f float64) Value {
	return Value{kind: kindText, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Absent returns a Value for a field that was not sent.
func Absent() Value {
	return Value{}
}

// Present reports whether the field was sent at all.
func (v Value) Present() bool {
	return v.kind != kindAbsent
}

// UnmarshalJSON accepts JSON numbers, strings and null. Any other JSON type
// decodes successfully but never validates as a number.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*v = Absent()
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		*v = Text(string(data))
	default:
		*v = Value{kind: kindInvalid, text: string(data)}
	}

	return nil
}

// MarshalJSON writes the value back as it was received, which is used when
// echoing inputs.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindAbsent:
		return []byte("null"), nil
	case kindInvalid:
		return []byte(v.text), nil
	default:
		return json.Marshal(v.text)
	}
}

func (v Value) String() string {
	if v.kind == kindAbsent {
		return "<absent>"
	}
	return v.text
}

// coerce converts a Value to a non-negative decimal.
//
// The returned Reason is only meaningful when ok is false.
func coerce(v Value) (amount decimal.Decimal, reason Reason, ok bool) {
	if v.kind == kindAbsent {
		return decimal.Zero, ReasonMissing, false
	}

	if v.kind == kindInvalid {
		return decimal.Zero, ReasonNotANumber, false
	}

	s := strings.TrimSpace(v.text)
	if s == "" {
		return decimal.Zero, ReasonMissing, false
	}

	f, err := parseFinite(s)
	if err != nil {
		return decimal.Zero, ReasonNotANumber, false
	}

	amount = decimal.NewFromFloat(f)
	if amount.IsNegative() {
		return decimal.Zero, ReasonNegative, false
	}

	return amount, "", true
}

// parseFinite parses plain decimal notation with an optional exponent.
//
// decimal.NewFromString defines the accepted syntax, which excludes NaN,
// infinities, hex and digit separators. strconv.ParseFloat then rejects values
// beyond the float64 range.
func parseFinite(s string) (float64, error) {
	if _, err := decimal.NewFromString(s); err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(s, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%q is out of range", s)
	}

	// Underflow to zero is reported as ErrRange, the value is still finite
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}

	return f, nil
}
