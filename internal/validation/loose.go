package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Form bodies come from a static site and are not strictly typed: numbers
// may arrive as strings, booleans as "on", fields may be missing. The types
// below accept any JSON scalar and expose the parsed value explicitly.

var errNotScalar = errors.New("expected a JSON scalar")

// Text is a JSON scalar read as a trimmed string. Missing and null are "".
type Text string

// UnmarshalJSON accepts strings, numbers and booleans.
func (t *Text) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return err
	}
	*t = Text(strings.TrimSpace(s))
	return nil
}

// String returns the trimmed value.
func (t Text) String() string { return string(t) }

// Number is a JSON scalar holding a number in any representation.
type Number struct {
	raw string
}

// UnmarshalJSON keeps the raw scalar for lenient parsing later.
func (n *Number) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return err
	}
	n.raw = strings.TrimSpace(s)
	return nil
}

// NumberOf builds a Number from a raw value.
func NumberOf(raw string) Number { return Number{raw: strings.TrimSpace(raw)} }

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// IntPrefix parses the leading integer ("3 knihy" -> 3, "2.7" -> 2).
// Anything unparseable yields 0.
func (n Number) IntPrefix() int {
	v, err := strconv.Atoi(leadingInt.FindString(n.raw))
	if err != nil {
		return 0
	}
	return v
}

// DecimalPrefix parses the leading decimal number ("120,50" -> 120).
// The prefix goes through float64 so the magnitude stays bounded; anything
// unparseable or out of float64 range ("1e400") yields 0.
func (n Number) DecimalPrefix() decimal.Decimal {
	v, err := strconv.ParseFloat(leadingFloat.FindString(n.raw), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Strict parses the whole value. Empty and false are 0; anything that is
// not a number is NaN.
func (n Number) Strict() float64 {
	switch n.raw {
	case "", "false":
		return 0
	case "true":
		return 1
	}
	v, err := strconv.ParseFloat(n.raw, 64)
	if err != nil {
		// out of range still yields ±Inf, which validation rejects
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

// Flag is a JSON value read by truthiness: false, 0, "", null and a missing
// field are false; everything else is true.
type Flag bool

// UnmarshalJSON implements truthiness over any JSON value.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "false", `""`:
		*f = false
		return nil
	case "true":
		*f = true
		return nil
	}
	if len(data) > 0 && (data[0] == '{' || data[0] == '[' || data[0] == '"') {
		*f = true
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Flag(v != 0)
	return nil
}

func scalarString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return "", nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", errNotScalar
	}
	return string(data), nil
}
