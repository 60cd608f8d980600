package quorum

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/formflow/internal/domain/value"
)

// NaturalKey derives a subject identity by joining the values of fields with
// "_", e.g. "1965-04-12_1990-01-01" for birth and entry date. Missing values
// become empty segments; when every value is missing the key is "".
//
// Natural keys can collide for distinct subjects that share the same values.
// Callers that need stronger identity must supply their own key.
func NaturalKey(data map[string]any, fields ...string) string {
	parts := make([]string, len(fields))
	empty := true
	for i, f := range fields {
		if s := segment(data[f]); s != "" {
			parts[i] = s
			empty = false
		}
	}
	if empty {
		return ""
	}
	return strings.Join(parts, "_")
}

func segment(v any) string {
	if value.IsEmpty(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		if d, ok := value.Date(x); ok {
			return d.Format(value.DateLayout)
		}
		return x
	case time.Time, *time.Time:
		d, _ := value.Date(x)
		return d.Format(value.DateLayout)
	default:
		return fmt.Sprint(v)
	}
}
