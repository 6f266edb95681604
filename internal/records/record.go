// Package records defines the raw occupation record handed to the profile
// builder by a record source, with typed accessors that tolerate the value
// shapes each source produces (JSON numbers, SQLite integers and blobs,
// spreadsheet strings).
package records

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is one flat DOT row keyed by column name.
type Record map[string]any

// Presence describes the outcome of a typed read.
type Presence int

// Presence values.
const (
	Missing Presence = iota
	Invalid
	Present
)

// IsEmpty reports whether the record carries no non-blank value.
func (r Record) IsEmpty() bool {
	for _, v := range r {
		if !blank(v) {
			return false
		}
	}
	return true
}

// Lookup returns the first non-blank value among keys.
func (r Record) Lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && !blank(v) {
			return v, true
		}
	}
	return nil, false
}

// Int reads an integer from the first present key. Floats with a fractional
// part and non-numeric text are Invalid.
func (r Record) Int(keys ...string) (int, Presence) {
	v, ok := r.Lookup(keys...)
	if !ok {
		return 0, Missing
	}
	n, ok := toInt(v)
	if !ok {
		return 0, Invalid
	}
	return n, Present
}

// String reads trimmed text from the first present key.
func (r Record) String(keys ...string) string {
	v, ok := r.Lookup(keys...)
	if !ok {
		return ""
	}
	return Format(v)
}

// Raw formats the first present value for diagnostics, or "" when missing.
func (r Record) Raw(keys ...string) string {
	return r.String(keys...)
}

// Format renders a value the way it would appear in the source row.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case []byte:
		return strings.TrimSpace(string(x))
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return Format(float64(x))
	case json.Number:
		return x.String()
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case []byte:
		return parseInt(string(x))
	case string:
		return parseInt(x)
	default:
		return 0, false
	}
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatToInt(f)
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func blank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []byte:
		return strings.TrimSpace(string(x)) == ""
	default:
		return false
	}
}
