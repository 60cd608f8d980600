package declare

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/formflow/internal/domain"
	"github.com/jsamuelsen11/formflow/internal/domain/calc"
	"github.com/jsamuelsen11/formflow/internal/domain/field"
	"github.com/jsamuelsen11/formflow/internal/domain/workflow"
)

type document struct {
	Form         string           `yaml:"form"`
	Record       recordDoc        `yaml:"record"`
	Config       map[string]any   `yaml:"config"`
	Calculations []calculationDoc `yaml:"calculations"`
	Steps        []stepDoc        `yaml:"steps"`
	SubjectKey   []string         `yaml:"subject_key"`
}

type recordDoc struct {
	Name       string         `yaml:"name"`
	Title      string         `yaml:"title"`
	Attributes []attributeDoc `yaml:"attributes"`
}

type optionDoc struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// attributeDoc mirrors field.Attribute with the metadata inlined. Pointer
// fields keep "not declared" apart from zero values.
type attributeDoc struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`

	Label       *string     `yaml:"label"`
	UIType      *string     `yaml:"ui_type"`
	Required    *bool       `yaml:"required"`
	Hint        *string     `yaml:"hint"`
	Placeholder *string     `yaml:"placeholder"`
	Group       *string     `yaml:"group"`
	Order       *int        `yaml:"order"`
	Validation  ruleList    `yaml:"validation"`
	Min         *float64    `yaml:"min"`
	Max         *float64    `yaml:"max"`
	DependsOn   *string     `yaml:"depends_on"`
	ShowWhen    *string     `yaml:"show_when"`
	Options     []optionDoc `yaml:"options"`
	Width       *string     `yaml:"width"`
	CSSClass    *string     `yaml:"css_class"`
}

type calculationDoc struct {
	Key                   string   `yaml:"key"`
	Label                 string   `yaml:"label"`
	Formula               string   `yaml:"formula"`
	Requires              []string `yaml:"requires"`
	Function              string   `yaml:"function"`
	Unit                  string   `yaml:"unit"`
	Editable              *bool    `yaml:"editable"`
	NeedsConfirmation     *bool    `yaml:"needs_confirmation"`
	ConfirmationThreshold *int     `yaml:"confirmation_threshold"`
	Group                 *string  `yaml:"group"`
	Hint                  string   `yaml:"hint"`
	Precision             *int     `yaml:"precision"`
}

type stepDoc struct {
	Order         int      `yaml:"order"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Groups        []string `yaml:"groups"`
	ShowIf        string   `yaml:"show_if"`
	ComponentType string   `yaml:"component_type"`
}

// ruleList accepts a single rule name or a list of names.
type ruleList []string

func (r *ruleList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*r = ruleList{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*r = list
		return nil
	default:
		return fmt.Errorf("line %d: validation must be a rule name or a list of rule names", node.Line)
	}
}

var semanticTypes = map[string]field.SemanticType{
	"text":    field.TypeText,
	"string":  field.TypeText,
	"integer": field.TypeInteger,
	"int":     field.TypeInteger,
	"decimal": field.TypeDecimal,
	"float":   field.TypeDecimal,
	"boolean": field.TypeBoolean,
	"bool":    field.TypeBoolean,
	"date":    field.TypeDate,
}

// recordType maps declared type names onto semantic types. Names outside
// semanticTypes, including an empty one, are kept as is; the introspector
// renders them as text fields.
func (d *recordDoc) recordType() field.RecordType {
	rt := field.RecordType{
		Name:       d.Name,
		Title:      d.Title,
		Attributes: make([]field.Attribute, 0, len(d.Attributes)),
	}

	for i := range d.Attributes {
		a := &d.Attributes[i]
		t, ok := semanticTypes[a.Type]
		if !ok {
			t = field.SemanticType(a.Type)
		}
		rt.Attributes = append(rt.Attributes, field.Attribute{
			Name:     a.Name,
			Type:     t,
			Optional: a.Optional,
			Meta:     a.meta(),
		})
	}
	return rt
}

func (a *attributeDoc) meta() *field.Meta {
	m := &field.Meta{
		Label:       a.Label,
		Required:    a.Required,
		Hint:        a.Hint,
		Placeholder: a.Placeholder,
		Group:       a.Group,
		Order:       a.Order,
		Validation:  []string(a.Validation),
		Min:         a.Min,
		Max:         a.Max,
		DependsOn:   a.DependsOn,
		ShowWhen:    a.ShowWhen,
		CSSClass:    a.CSSClass,
	}
	if a.UIType != nil {
		m.UIType = field.Ptr(field.UIType(*a.UIType))
	}
	if a.Width != nil {
		m.Width = field.Ptr(field.Width(*a.Width))
	}
	for _, o := range a.Options {
		m.Options = append(m.Options, field.Option{Value: o.Value, Label: o.Label})
	}
	return m
}

func (c *calculationDoc) definition(funcs map[string]calc.ComputeFunc) (calc.Definition, error) {
	name := c.Function
	if name == "" {
		name = c.Key
	}
	compute, ok := funcs[name]
	if !ok {
		return calc.Definition{}, domain.NewDefinitionError(map[string]string{
			"calculations." + c.Key + ".function": fmt.Sprintf("unknown compute function %q", name),
		})
	}

	opts := []calc.DefinitionOption{
		calc.WithUnit(c.Unit),
		calc.WithHint(c.Hint),
		calc.WithFunctionName(name),
	}
	if c.Editable != nil && !*c.Editable {
		opts = append(opts, calc.ReadOnly())
	}
	if c.NeedsConfirmation != nil && !*c.NeedsConfirmation {
		opts = append(opts, calc.WithoutConfirmation())
	}
	if c.ConfirmationThreshold != nil {
		opts = append(opts, calc.WithThreshold(*c.ConfirmationThreshold))
	}
	if c.Group != nil {
		opts = append(opts, calc.WithGroup(*c.Group))
	}
	if c.Precision != nil {
		opts = append(opts, calc.WithPrecision(*c.Precision))
	}

	return calc.NewDefinition(c.Key, c.Label, c.Formula, c.Requires, compute, opts...), nil
}

func (s *stepDoc) step() (workflow.Step, error) {
	st := workflow.Step{
		Order:         s.Order,
		Title:         s.Title,
		Description:   s.Description,
		Groups:        s.Groups,
		ComponentType: workflow.ComponentType(s.ComponentType),
	}
	if s.ShowIf != "" {
		cond, err := workflow.ParseCondition(s.ShowIf)
		if err != nil {
			return workflow.Step{}, fmt.Errorf("step %q: %w", s.Title, err)
		}
		st.ShowIf = cond
	}
	return st, nil
}
