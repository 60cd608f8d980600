package schema

import (
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/jsamuelsen11/formflow/internal/domain/calc"
	"github.com/jsamuelsen11/formflow/internal/domain/field"
	"github.com/jsamuelsen11/formflow/internal/domain/validation"
	"github.com/jsamuelsen11/formflow/internal/domain/workflow"
)

// Assemble builds the schema of rt. calcs and steps are registry snapshots
// (calc.Registry.All, workflow.Registry.All); engine resolves the evaluator
// reference of each validation rule. An error from field.ExtractFields stops
// assembly and no schema is returned.
func Assemble(rt field.RecordType, calcs []calc.Definition, steps []workflow.Step, engine *validation.Engine, opts ...Option) (*Schema, error) {
	if engine == nil {
		return nil, errors.New("assembling schema: nil validation engine")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	defs, err := field.ExtractFields(rt)
	if err != nil {
		return nil, err
	}

	s := &Schema{
		Meta: Meta{
			Title: rt.DisplayTitle(),
			Name:  rt.Name,
		},
		Config:           maps.Clone(o.config),
		InputFields:      make([]InputField, 0, len(defs)),
		CalculatedFields: make([]CalculatedField, 0, len(calcs)),
		AllFields:        make([]Field, 0, len(defs)+len(calcs)),
		Groups:           newGroups(),
		Workflow:         Workflow{Steps: make([]Step, 0, len(steps))},
	}
	if s.Config == nil {
		s.Config = map[string]any{}
	}
	if !o.generatedAt.IsZero() {
		s.Meta.GeneratedAt = o.generatedAt.UTC().Format(time.RFC3339)
	}

	for _, d := range defs {
		in := InputField{FieldType: FieldInput, Definition: d}
		s.InputFields = append(s.InputFields, in)
		s.AllFields = append(s.AllFields, in)
		s.Groups.add(in)
	}

	for i := range calcs {
		cf := projectCalculated(&calcs[i])
		s.CalculatedFields = append(s.CalculatedFields, cf)
		s.AllFields = append(s.AllFields, cf)
	}

	for i := range steps {
		s.Workflow.Steps = append(s.Workflow.Steps, projectStep(&steps[i]))
	}

	s.ValidationRules = collectRules(defs, engine)
	return s, nil
}

func projectCalculated(d *calc.Definition) CalculatedField {
	requires := slices.Clone(d.Requires)
	if requires == nil {
		requires = []string{}
	}
	return CalculatedField{
		ID:                    d.Key,
		FieldType:             FieldCalculated,
		Label:                 d.Label,
		Formula:               d.Formula,
		Requires:              requires,
		Unit:                  d.Unit,
		Editable:              d.Editable,
		NeedsConfirmation:     d.NeedsConfirmation,
		ConfirmationThreshold: d.ConfirmationThreshold,
		Group:                 d.Group,
		Hint:                  d.Hint,
		Precision:             d.Precision,
		FunctionName:          d.FunctionName,
	}
}

func projectStep(st *workflow.Step) Step {
	groups := slices.Clone(st.Groups)
	if groups == nil {
		groups = []string{}
	}
	out := Step{
		Order:         st.Order,
		Title:         st.Title,
		Description:   st.Description,
		Groups:        groups,
		ComponentType: st.ComponentType,
	}
	if name := st.ConditionName(); name != "" {
		out.ShowIf = &name
	}
	return out
}

func collectRules(defs []field.Definition, engine *validation.Engine) ValidationRules {
	seen := make(map[string]struct{})
	for i := range defs {
		for _, rule := range defs[i].Validation {
			seen[rule] = struct{}{}
		}
	}

	rules := slices.Sorted(maps.Keys(seen))
	impls := make(map[string]string, len(rules))
	for _, rule := range rules {
		impls[rule] = engine.Reference(rule)
	}
	if rules == nil {
		rules = []string{}
	}
	return ValidationRules{Rules: rules, Implementations: impls}
}
