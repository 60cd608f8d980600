// Package schema assembles the complete form description handed to
// renderers: input fields, calculated fields, their grouping, the workflow
// and the validation rules in use.
//
// Assemble is pure. Given the same record type, registry snapshots and
// options it produces byte-identical JSON.
package schema

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/formflow/internal/domain/field"
	"github.com/jsamuelsen11/formflow/internal/domain/workflow"
)

// FieldType distinguishes user-entered from computed fields.
type FieldType string

// Field types.
const (
	FieldInput      FieldType = "input"
	FieldCalculated FieldType = "calculated"
)

// Field is an entry of Schema.AllFields.
type Field interface {
	FieldID() string
	Type() FieldType
}

// InputField is an introspected field tagged as input.
type InputField struct {
	FieldType FieldType `json:"field_type"`
	field.Definition
}

// FieldID implements Field.
func (f InputField) FieldID() string { return f.ID }

// Type implements Field.
func (f InputField) Type() FieldType { return FieldInput }

// CalculatedField is the schema projection of a calculated-field definition.
type CalculatedField struct {
	ID                    string    `json:"id"`
	FieldType             FieldType `json:"field_type"`
	Label                 string    `json:"label"`
	Formula               string    `json:"formula"`
	Requires              []string  `json:"requires"`
	Unit                  string    `json:"unit"`
	Editable              bool      `json:"editable"`
	NeedsConfirmation     bool      `json:"needs_confirmation"`
	ConfirmationThreshold int       `json:"confirmation_threshold"`
	Group                 string    `json:"group"`
	Hint                  string    `json:"hint,omitempty"`
	Precision             int       `json:"precision"`
	FunctionName          string    `json:"function_name,omitempty"`
}

// FieldID implements Field.
func (f CalculatedField) FieldID() string { return f.ID }

// Type implements Field.
func (f CalculatedField) Type() FieldType { return FieldCalculated }

// Meta identifies the record type a schema was built from.
type Meta struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	GeneratedAt string `json:"generated_at,omitempty"`
}

// Step is the schema projection of a workflow step. ShowIf carries only the
// condition name; predicates are never serialized.
type Step struct {
	Order         int                    `json:"order"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Groups        []string               `json:"groups"`
	ComponentType workflow.ComponentType `json:"component_type"`
	ShowIf        *string                `json:"show_if"`
}

// Workflow lists the steps in display order.
type Workflow struct {
	Steps []Step `json:"steps"`
}

// ValidationRules lists every rule name used by an input field, sorted, and
// the evaluator reference each one resolves to.
type ValidationRules struct {
	Rules           []string          `json:"rules"`
	Implementations map[string]string `json:"implementations"`
}

// Schema is the assembled form description.
type Schema struct {
	Meta             Meta              `json:"meta"`
	Config           map[string]any    `json:"config"`
	InputFields      []InputField      `json:"input_fields"`
	CalculatedFields []CalculatedField `json:"calculated_fields"`
	AllFields        []Field           `json:"all_fields"`
	Groups           *Groups           `json:"groups"`
	Workflow         Workflow          `json:"workflow"`
	ValidationRules  ValidationRules   `json:"validation_rules"`
}

// Groups maps group names to their input fields, keeping the order in which
// groups first appear in the sorted input fields.
type Groups struct {
	names  []string
	fields map[string][]InputField
}

func newGroups() *Groups {
	return &Groups{fields: make(map[string][]InputField)}
}

func (g *Groups) add(f InputField) {
	if _, ok := g.fields[f.Group]; !ok {
		g.names = append(g.names, f.Group)
	}
	g.fields[f.Group] = append(g.fields[f.Group], f)
}

// Names returns the group names in order.
func (g *Groups) Names() []string {
	return append([]string(nil), g.names...)
}

// Fields returns the input fields of group name.
func (g *Groups) Fields(name string) []InputField {
	return append([]InputField(nil), g.fields[name]...)
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.names)
}

// MarshalJSON encodes the groups as a JSON object whose keys appear in group
// order.
func (g *Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range g.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g.fields[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// options holds Assemble settings.
type options struct {
	generatedAt time.Time
	config      map[string]any
}

// Option configures Assemble.
type Option func(*options)

// WithGeneratedAt stamps the schema with t in RFC 3339 form. Without it the
// generated_at field is omitted.
func WithGeneratedAt(t time.Time) Option {
	return func(o *options) { o.generatedAt = t }
}

// WithConfig embeds the form's configuration values.
func WithConfig(cfg map[string]any) Option {
	return func(o *options) { o.config = cfg }
}
