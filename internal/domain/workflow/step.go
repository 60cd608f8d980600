// Package workflow holds the ordered list of steps a form is filled in by and
// the named conditions that decide whether a step is shown.
package workflow

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/formflow/internal/domain"
)

// ComponentType selects how a renderer presents a step.
type ComponentType string

// Supported component types.
const (
	ComponentForm        ComponentType = "form"
	ComponentCalculation ComponentType = "calculation"
	ComponentSummary     ComponentType = "summary"
	ComponentCustom      ComponentType = "custom"
)

// IsValid reports whether c is one of the supported component types.
func (c ComponentType) IsValid() bool {
	switch c {
	case ComponentForm, ComponentCalculation, ComponentSummary, ComponentCustom:
		return true
	default:
		return false
	}
}

// String returns the string representation of the component type.
func (c ComponentType) String() string {
	return string(c)
}

// Predicate decides from a record's values whether a step applies.
type Predicate func(data map[string]any) bool

// Condition is a named Predicate. Schemas only carry the name.
type Condition struct {
	Name string
	Fn   Predicate
}

// Step is one stage of a form workflow.
type Step struct {
	// Order positions the step. Orders are meant to be unique but duplicates
	// are kept in registration sequence.
	Order         int
	Title         string
	Description   string
	Groups        []string
	ShowIf        *Condition
	ComponentType ComponentType
}

// Validate checks that the step can be registered. An empty ComponentType is
// accepted and defaults to ComponentForm on registration.
func (s *Step) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if s.ComponentType != "" && !s.ComponentType.IsValid() {
		fields["component_type"] = fmt.Sprintf("invalid: %q", s.ComponentType)
	}
	if s.ShowIf != nil && (s.ShowIf.Name == "" || s.ShowIf.Fn == nil) {
		fields["show_if"] = "condition needs a name and a predicate"
	}

	if len(fields) > 0 {
		return domain.NewDefinitionError(fields)
	}
	return nil
}

// ConditionName returns the name of ShowIf, or "" when the step is
// unconditional.
func (s *Step) ConditionName() string {
	if s.ShowIf == nil {
		return ""
	}
	return s.ShowIf.Name
}

func (s Step) clone() Step {
	s.Groups = slices.Clone(s.Groups)
	if s.Groups == nil {
		s.Groups = []string{}
	}
	if s.ShowIf != nil {
		c := *s.ShowIf
		s.ShowIf = &c
	}
	return s
}
