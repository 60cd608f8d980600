package field

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/formflow/internal/domain"
)

// uiTypeBySemantic maps declared semantic types to UI types. Types not in
// the table fall back to UIText.
var uiTypeBySemantic = map[SemanticType]UIType{
	TypeText:    UIText,
	TypeInteger: UINumber,
	TypeDecimal: UINumber,
	TypeBoolean: UICheckbox,
	TypeDate:    UIDate,
}

// ExtractFields derives one Definition per attribute of rt, merging inferred
// defaults with the attribute's explicit metadata. The result is sorted by
// (group, order) ascending; attributes that tie keep their declaration order.
//
// A record type that cannot be introspected (no name, no attributes, blank or
// duplicate attribute names, unknown UI type or width overrides) yields an
// error wrapping domain.ErrNotIntrospectable and no definitions.
func ExtractFields(rt RecordType) ([]Definition, error) {
	if err := checkIntrospectable(rt); err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(rt.Attributes))
	for i := range rt.Attributes {
		defs = append(defs, resolve(&rt.Attributes[i]))
	}

	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].Group != defs[j].Group {
			return defs[i].Group < defs[j].Group
		}
		return defs[i].Order < defs[j].Order
	})

	return defs, nil
}

// InferUIType maps a semantic type to its default UI type.
func InferUIType(t SemanticType) UIType {
	if ui, ok := uiTypeBySemantic[t]; ok {
		return ui
	}
	return UIText
}

// InferLabel turns an attribute name into a display label: separators become
// spaces and each word is title-cased ("austritts_datum" -> "Austritts Datum").
func InferLabel(name string) string {
	spaced := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	// A Caser keeps state between calls and must not be shared.
	return cases.Title(language.Und).String(spaced)
}

func resolve(attr *Attribute) Definition {
	def := Definition{
		ID:         attr.Name,
		Label:      InferLabel(attr.Name),
		UIType:     InferUIType(attr.Type),
		Required:   !attr.Optional,
		Group:      DefaultGroup,
		Validation: []string{},
		Width:      WidthFull,
	}

	m := attr.Meta
	if m == nil {
		return def
	}

	if m.Label != nil && *m.Label != "" {
		def.Label = *m.Label
	}
	if m.UIType != nil && *m.UIType != "" {
		def.UIType = *m.UIType
	}
	if m.Required != nil {
		def.Required = *m.Required
	}
	if m.Group != nil && *m.Group != "" {
		def.Group = *m.Group
	}
	if m.Order != nil {
		def.Order = *m.Order
	}
	if m.Width != nil && *m.Width != "" {
		def.Width = *m.Width
	}
	if len(m.Validation) > 0 {
		def.Validation = slices.Clone(m.Validation)
	}
	if len(m.Options) > 0 {
		def.Options = slices.Clone(m.Options)
	}

	def.Hint = deref(m.Hint)
	def.Placeholder = deref(m.Placeholder)
	def.DependsOn = deref(m.DependsOn)
	def.ShowWhen = deref(m.ShowWhen)
	def.CSSClass = deref(m.CSSClass)
	def.Min = clonePtr(m.Min)
	def.Max = clonePtr(m.Max)

	return def
}

func checkIntrospectable(rt RecordType) error {
	if strings.TrimSpace(rt.Name) == "" {
		return fmt.Errorf("record type without name: %w", domain.ErrNotIntrospectable)
	}
	if len(rt.Attributes) == 0 {
		return fmt.Errorf("record type %q declares no attributes: %w", rt.Name, domain.ErrNotIntrospectable)
	}

	seen := make(map[string]struct{}, len(rt.Attributes))
	for i := range rt.Attributes {
		attr := &rt.Attributes[i]
		if strings.TrimSpace(attr.Name) == "" {
			return fmt.Errorf("record type %q: attribute %d has no name: %w",
				rt.Name, i, domain.ErrNotIntrospectable)
		}
		if _, dup := seen[attr.Name]; dup {
			return fmt.Errorf("record type %q: duplicate attribute %q: %w",
				rt.Name, attr.Name, domain.ErrNotIntrospectable)
		}
		seen[attr.Name] = struct{}{}

		if attr.Meta == nil {
			continue
		}
		if ui := attr.Meta.UIType; ui != nil && *ui != "" && !ui.IsValid() {
			return fmt.Errorf("record type %q: attribute %q has unknown ui type %q: %w",
				rt.Name, attr.Name, *ui, domain.ErrNotIntrospectable)
		}
		if w := attr.Meta.Width; w != nil && *w != "" && !w.IsValid() {
			return fmt.Errorf("record type %q: attribute %q has unknown width %q: %w",
				rt.Name, attr.Name, *w, domain.ErrNotIntrospectable)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
