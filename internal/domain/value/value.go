// Package value coerces loosely typed form values (as decoded from JSON or
// YAML) into dates and numbers. Coercion never panics; callers get an ok
// flag instead.
package value

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout used on the wire.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// IsEmpty reports whether v counts as "not provided": nil, an empty string,
// or a nil *time.Time.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case *time.Time:
		return x == nil
	default:
		return false
	}
}

// Date converts v to a calendar date at midnight UTC. Accepted inputs are
// time.Time, *time.Time and strings in ISO date or RFC 3339 form.
func Date(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return Day(x), true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return Day(*x), true
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return Day(t), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Float converts v to a float64. Numeric strings and booleans (1 or 0) are
// coerced; anything else reports false.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
