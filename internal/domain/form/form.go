// Package form defines the Form aggregate: a record type together with the
// calculated fields and workflow steps declared for it.
package form

import (
	"github.com/jsamuelsen11/formflow/internal/domain/calc"
	"github.com/jsamuelsen11/formflow/internal/domain/field"
	"github.com/jsamuelsen11/formflow/internal/domain/quorum"
	"github.com/jsamuelsen11/formflow/internal/domain/workflow"
)

// Form is one declared form. Calcs and Steps are owned by the form; no two
// forms share a registry.
type Form struct {
	Name   string
	Record field.RecordType
	// Config holds free-form plan parameters, embedded in the schema and
	// passed to the compute function library.
	Config map[string]any
	Calcs  *calc.Registry
	Steps  *workflow.Registry
	// SubjectFields name the record fields whose values identify a subject
	// for confirmations.
	SubjectFields []string
}

// New creates a Form with empty registries.
func New(name string, record field.RecordType) *Form {
	return &Form{
		Name:   name,
		Record: record,
		Config: map[string]any{},
		Calcs:  calc.NewRegistry(),
		Steps:  workflow.NewRegistry(),
	}
}

// SubjectID derives the subject identity of a record from SubjectFields.
// Returns "" when the form declares no subject fields or none has a value.
func (f *Form) SubjectID(data map[string]any) string {
	if len(f.SubjectFields) == 0 {
		return ""
	}
	return quorum.NaturalKey(data, f.SubjectFields...)
}

// Summary describes a form without its contents.
type Summary struct {
	Name         string
	Title        string
	Fields       int
	Calculations int
	Steps        int
}

// Summary returns the summary of f.
func (f *Form) Summary() Summary {
	return Summary{
		Name:         f.Name,
		Title:        f.Record.DisplayTitle(),
		Fields:       len(f.Record.Attributes),
		Calculations: f.Calcs.Len(),
		Steps:        f.Steps.Len(),
	}
}
