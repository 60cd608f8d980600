package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/formflow/internal/domain"
	"github.com/jsamuelsen11/formflow/internal/domain/value"
)

// Condition name prefixes understood by ParseCondition.
const (
	CondHasValue      = "has_value"
	CondIsTrue        = "is_true"
	CondDateOnOrAfter = "date_on_or_after"
)

// ParseCondition builds a Condition from its declared name. Supported forms:
//
//	has_value:<field>                       field is present and not empty
//	is_true:<field>                         field is boolean true
//	date_on_or_after:<field>:<YYYY-MM-DD>   field is a date on or after the cutoff
//
// The returned Condition keeps the declared name. Unknown forms are rejected
// with domain.ErrInvalidDefinition.
func ParseCondition(name string) (*Condition, error) {
	parts := strings.Split(name, ":")

	switch {
	case len(parts) == 2 && parts[0] == CondHasValue && parts[1] != "":
		return &Condition{Name: name, Fn: HasValue(parts[1])}, nil
	case len(parts) == 2 && parts[0] == CondIsTrue && parts[1] != "":
		return &Condition{Name: name, Fn: IsTrue(parts[1])}, nil
	case len(parts) == 3 && parts[0] == CondDateOnOrAfter && parts[1] != "":
		cutoff, err := time.Parse(value.DateLayout, parts[2])
		if err != nil {
			return nil, domain.NewDefinitionError(map[string]string{
				"show_if": fmt.Sprintf("invalid cutoff date in %q", name),
			})
		}
		return &Condition{Name: name, Fn: DateOnOrAfter(parts[1], cutoff)}, nil
	}

	return nil, domain.NewDefinitionError(map[string]string{
		"show_if": fmt.Sprintf("unknown condition %q", name),
	})
}

// HasValue holds when field is present and not empty.
func HasValue(field string) Predicate {
	return func(data map[string]any) bool {
		return !value.IsEmpty(data[field])
	}
}

// IsTrue holds when field is the boolean true.
func IsTrue(field string) Predicate {
	return func(data map[string]any) bool {
		b, ok := data[field].(bool)
		return ok && b
	}
}

// DateOnOrAfter holds when field parses as a date that is not before cutoff.
// Missing or unparsable values do not hold.
func DateOnOrAfter(field string, cutoff time.Time) Predicate {
	cutoff = value.Day(cutoff)
	return func(data map[string]any) bool {
		d, ok := value.Date(data[field])
		return ok && !d.Before(cutoff)
	}
}
