package caml

import (
	"strconv"
	"time"

	"golang.org/x/text/unicode/norm"
)

// value is the sealed scalar union rendered inside Value elements.
// Keeping a closed set of renderable types means an operand the
// translator cannot express is rejected at compile time instead of
// leaking a Go default format into the query.
type value interface {
	// text returns the unescaped element content.
	text() string
}

type textValue string

// NFC normalization keeps byte-level snapshot comparisons stable across
// differently-composed Unicode inputs.
func (v textValue) text() string { return norm.NFC.String(string(v)) }

type intValue int64

func (v intValue) text() string { return strconv.FormatInt(int64(v), 10) }

type floatValue float64

// Minimal decimal form: 28 renders as "28", 2.5 as "2.5".
func (v floatValue) text() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }

type boolValue bool

// The store encodes Boolean values as integers.
func (v boolValue) text() string {
	if v {
		return "1"
	}
	return "0"
}

type timeValue time.Time

func (v timeValue) text() string {
	return time.Time(v).UTC().Format(time.RFC3339)
}

// toValue converts a caller-supplied operand to a renderable value.
func toValue(v any) (value, bool) {
	switch val := v.(type) {
	case string:
		return textValue(val), true
	case bool:
		return boolValue(val), true
	case int:
		return intValue(val), true
	case int32:
		return intValue(val), true
	case int64:
		return intValue(val), true
	case uint:
		return intValue(val), true
	case uint32:
		return intValue(val), true
	case float32:
		return floatValue(val), true
	case float64:
		return floatValue(val), true
	case time.Time:
		return timeValue(val), true
	default:
		return nil, false
	}
}

// toValues converts a multi-value operand. Sequences arrive as []any
// from decoded JSON, but programmatic callers may hand over typed slices.
func toValues(v any) ([]value, bool) {
	switch seq := v.(type) {
	case []any:
		out := make([]value, 0, len(seq))
		for _, item := range seq {
			val, ok := toValue(item)
			if !ok {
				return nil, false
			}
			out = append(out, val)
		}
		return out, true
	case []string:
		out := make([]value, 0, len(seq))
		for _, item := range seq {
			out = append(out, textValue(item))
		}
		return out, true
	case []int:
		out := make([]value, 0, len(seq))
		for _, item := range seq {
			out = append(out, intValue(item))
		}
		return out, true
	case []int64:
		out := make([]value, 0, len(seq))
		for _, item := range seq {
			out = append(out, intValue(item))
		}
		return out, true
	case []float64:
		out := make([]value, 0, len(seq))
		for _, item := range seq {
			out = append(out, floatValue(item))
		}
		return out, true
	case []time.Time:
		out := make([]value, 0, len(seq))
		for _, item := range seq {
			out = append(out, timeValue(item))
		}
		return out, true
	default:
		return nil, false
	}
}
