package validation

import (
	"github.com/jsamuelsen11/formflow/internal/domain"
	"github.com/jsamuelsen11/formflow/internal/domain/field"
	"github.com/jsamuelsen11/formflow/internal/domain/value"
)

// Failure is one rule a field value did not satisfy.
type Failure struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Report collects the failures of validating a whole record.
type Report struct {
	Failures []Failure `json:"failures"`
}

// Valid reports whether no rule failed.
func (r *Report) Valid() bool {
	return len(r.Failures) == 0
}

// Err converts the report to a *domain.ValidationError carrying the first
// failure message per field, or nil when the report is valid.
func (r *Report) Err() error {
	if r.Valid() {
		return nil
	}
	fields := make(map[string]string, len(r.Failures))
	for _, f := range r.Failures {
		if _, seen := fields[f.Field]; !seen {
			fields[f.Field] = f.Message
		}
	}
	return &domain.ValidationError{Fields: fields}
}

// ValidateRecord evaluates every rule of every field against data, in field
// order and then rule order. The whole record serves as sibling context.
//
// A value that was not provided is only checked by the required rule; the
// other rules describe the shape of a value and have nothing to check.
func (e *Engine) ValidateRecord(fields []field.Definition, data map[string]any) Report {
	report := Report{Failures: []Failure{}}

	for i := range fields {
		f := &fields[i]
		v := data[f.ID]
		empty := value.IsEmpty(v)

		for _, rule := range f.Validation {
			if empty && rule != RuleRequired {
				continue
			}
			res := e.Evaluate(rule, v, data)
			if !res.Valid {
				report.Failures = append(report.Failures, Failure{
					Field:   f.ID,
					Rule:    rule,
					Message: res.Message,
				})
			}
		}
	}

	return report
}
