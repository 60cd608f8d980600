// Package calc holds calculated-field metadata and evaluates the compute
// functions behind it.
//
// A calculated field is a derived numeric value with a human-readable
// formula, the input fields it requires and a confirmation policy: until
// enough independent subjects have confirmed the result (see package
// quorum), it is treated as unverified.
package calc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/formflow/internal/domain"
)

// Defaults applied by NewDefinition.
const (
	DefaultGroup     = "berechnungen"
	DefaultThreshold = 3
	DefaultPrecision = 2
)

// ComputeFunc derives a value from the record's input values. Implementations
// receive every field of the record, not only the required ones.
type ComputeFunc func(inputs map[string]any) (float64, error)

// Definition describes a calculated field.
type Definition struct {
	Key      string
	Label    string
	Formula  string
	Requires []string
	Compute  ComputeFunc
	// FunctionName names Compute for schema consumers. Optional.
	FunctionName string

	Unit                  string
	Editable              bool
	NeedsConfirmation     bool
	ConfirmationThreshold int
	Group                 string
	Hint                  string
	Precision             int
}

// DefinitionOption adjusts a Definition built by NewDefinition.
type DefinitionOption func(*Definition)

// WithUnit sets the display unit (e.g. "EUR", "Jahre").
func WithUnit(unit string) DefinitionOption {
	return func(d *Definition) { d.Unit = unit }
}

// WithHint sets the help text.
func WithHint(hint string) DefinitionOption {
	return func(d *Definition) { d.Hint = hint }
}

// WithGroup overrides DefaultGroup.
func WithGroup(group string) DefinitionOption {
	return func(d *Definition) { d.Group = group }
}

// WithPrecision sets the number of decimals results are rounded to.
func WithPrecision(precision int) DefinitionOption {
	return func(d *Definition) { d.Precision = precision }
}

// WithThreshold sets how many distinct subjects must confirm the value.
func WithThreshold(n int) DefinitionOption {
	return func(d *Definition) { d.ConfirmationThreshold = n }
}

// WithoutConfirmation marks the value as trusted without a quorum.
func WithoutConfirmation() DefinitionOption {
	return func(d *Definition) { d.NeedsConfirmation = false }
}

// ReadOnly prevents manual overrides of the computed value.
func ReadOnly() DefinitionOption {
	return func(d *Definition) { d.Editable = false }
}

// WithFunctionName records the name Compute is known by.
func WithFunctionName(name string) DefinitionOption {
	return func(d *Definition) { d.FunctionName = name }
}

// NewDefinition builds a Definition with the default policy: editable,
// confirmation required from DefaultThreshold subjects, grouped under
// DefaultGroup and rounded to DefaultPrecision decimals.
func NewDefinition(key, label, formula string, requires []string, compute ComputeFunc, opts ...DefinitionOption) Definition {
	d := Definition{
		Key:                   key,
		Label:                 label,
		Formula:               formula,
		Requires:              slices.Clone(requires),
		Compute:               compute,
		Editable:              true,
		NeedsConfirmation:     true,
		ConfirmationThreshold: DefaultThreshold,
		Group:                 DefaultGroup,
		Precision:             DefaultPrecision,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Validate checks that the definition can be registered.
// Returns a *domain.ValidationError wrapping domain.ErrInvalidDefinition,
// or nil if all rules pass.
func (d *Definition) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(d.Key) == "" {
		fields["key"] = domain.MsgRequired
	}
	if strings.TrimSpace(d.Label) == "" {
		fields["label"] = domain.MsgRequired
	}
	if strings.TrimSpace(d.Formula) == "" {
		fields["formula"] = domain.MsgRequired
	}
	if d.Compute == nil {
		fields["compute"] = domain.MsgRequired
	}
	if d.ConfirmationThreshold < 0 {
		fields["confirmation_threshold"] = fmt.Sprintf("must not be negative, got %d", d.ConfirmationThreshold)
	}
	if d.Precision < 0 {
		fields["precision"] = fmt.Sprintf("must not be negative, got %d", d.Precision)
	}
	for _, r := range d.Requires {
		if strings.TrimSpace(r) == "" {
			fields["requires"] = "must not contain empty field names"
			break
		}
	}

	if len(fields) > 0 {
		return domain.NewDefinitionError(fields)
	}
	return nil
}

func (d Definition) clone() Definition {
	d.Requires = slices.Clone(d.Requires)
	if d.Requires == nil {
		d.Requires = []string{}
	}
	return d
}
