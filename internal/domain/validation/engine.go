// Package validation evaluates named validation rules against a field value
// and the values of its sibling fields.
//
// Evaluation never fails: every call returns a Result, including for
// malformed values and for rule names the engine does not know. Unknown rule
// names are accepted as valid so that declarations may reference rules a
// newer engine will implement.
package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jsamuelsen11/formflow/internal/domain/value"
)

// Built-in rule names.
const (
	RuleRequired   = "required"
	RuleDateInPast = "date_in_past"
	RulePositive   = "positive"

	// RuleDateAfterPrefix starts the date_after_<field> rule family.
	RuleDateAfterPrefix = "date_after_"
)

// Messages reported by the built-in rules.
const (
	MsgRequired      = "This field is required"
	MsgDateNotInPast = "Date must be in the past"
	MsgInvalidDate   = "Invalid date"
	MsgNotPositive   = "Value must be positive"
	MsgInvalidNumber = "Invalid number"
	MsgRuleFailed    = "Rule could not be evaluated"
)

// referencePrefix prefixes evaluator references published in schemas.
const referencePrefix = "validation."

// Result is the outcome of evaluating one rule. Message is empty when Valid.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Evaluator checks a value given the sibling values of the same record.
type Evaluator func(v any, siblings map[string]any) Result

// Rule pairs a rule name with its evaluator.
type Rule struct {
	Name     string
	Ref      string
	Evaluate Evaluator
}

// Engine evaluates validation rules. The zero value is not usable; construct
// with NewEngine. An Engine is safe for concurrent use.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock date_in_past compares against. Defaults to
// time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an Engine with the built-in rules.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var valid = Result{Valid: true}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

// Lookup resolves a rule name to its built-in Rule. The second return value
// is false for names the engine does not know.
func (e *Engine) Lookup(name string) (Rule, bool) {
	switch name {
	case RuleRequired:
		return Rule{Name: name, Ref: referencePrefix + RuleRequired, Evaluate: checkRequired}, true
	case RuleDateInPast:
		return Rule{Name: name, Ref: referencePrefix + RuleDateInPast, Evaluate: e.checkDateInPast}, true
	case RulePositive:
		return Rule{Name: name, Ref: referencePrefix + RulePositive, Evaluate: checkPositive}, true
	}

	if ref, ok := strings.CutPrefix(name, RuleDateAfterPrefix); ok && ref != "" {
		return Rule{
			Name:     name,
			Ref:      referencePrefix + "date_after",
			Evaluate: dateAfter(ref),
		}, true
	}

	return Rule{}, false
}

// Known reports whether name resolves to a built-in rule.
func (e *Engine) Known(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// Reference returns the stable identifier of the evaluator behind name.
// Unknown names resolve to the fail-open evaluator.
func (e *Engine) Reference(name string) string {
	if r, ok := e.Lookup(name); ok {
		return r.Ref
	}
	return referencePrefix + "fail_open"
}

// Evaluate checks v against the named rule. Unknown rules evaluate as valid
// with an empty message. A panicking evaluator yields an invalid result
// rather than propagating.
func (e *Engine) Evaluate(name string, v any, siblings map[string]any) (res Result) {
	r, ok := e.Lookup(name)
	if !ok {
		return valid
	}

	defer func() {
		if p := recover(); p != nil {
			res = invalid(MsgRuleFailed)
		}
	}()

	return r.Evaluate(v, siblings)
}

func checkRequired(v any, _ map[string]any) Result {
	if value.IsEmpty(v) {
		return invalid(MsgRequired)
	}
	return valid
}

func (e *Engine) checkDateInPast(v any, _ map[string]any) Result {
	if value.IsEmpty(v) {
		return valid
	}
	d, ok := value.Date(v)
	if !ok {
		return invalid(MsgInvalidDate)
	}
	if !d.Before(value.Day(e.now())) {
		return invalid(MsgDateNotInPast)
	}
	return valid
}

// dateAfter builds the evaluator for date_after_<ref>. The rule only applies
// when both the value and the referenced sibling are present; a missing
// sibling passes.
func dateAfter(ref string) Evaluator {
	return func(v any, siblings map[string]any) Result {
		other, present := siblings[ref]
		if value.IsEmpty(v) || !present || value.IsEmpty(other) {
			return valid
		}

		d, ok := value.Date(v)
		if !ok {
			return invalid(MsgInvalidDate)
		}
		refDate, ok := value.Date(other)
		if !ok {
			return invalid(MsgInvalidDate)
		}

		if d.Before(refDate) {
			return invalid(fmt.Sprintf("Date must not be before %s", ref))
		}
		return valid
	}
}

func checkPositive(v any, _ map[string]any) Result {
	n, ok := value.Float(v)
	if !ok || math.IsNaN(n) {
		return invalid(MsgInvalidNumber)
	}
	if n <= 0 {
		return invalid(MsgNotPositive)
	}
	return valid
}
