package field

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/formflow/internal/domain"
)

func pensionRecord() RecordType {
	return RecordType{
		Name:  "MitarbeiterFormular",
		Title: "Eingabeformular Leistungsverwaltung",
		Attributes: []Attribute{
			{
				Name: "id",
				Type: TypeText,
				Meta: &Meta{
					Label:      Ptr("Personal-Nr."),
					Group:      Ptr("identifikation"),
					Order:      Ptr(1),
					Validation: []string{"required"},
				},
			},
			{
				Name: "name",
				Type: TypeText,
				Meta: &Meta{Group: Ptr("identifikation"), Order: Ptr(2)},
			},
			{
				Name:     "geburtsdatum",
				Type:     TypeDate,
				Optional: true,
				Meta: &Meta{
					Required:   Ptr(true),
					Group:      Ptr("stammdaten"),
					Order:      Ptr(1),
					Validation: []string{"required", "date_in_past"},
				},
			},
			{
				Name:     "letztes_gehalt",
				Type:     TypeDecimal,
				Optional: true,
				Meta: &Meta{
					Group:     Ptr("gehalt"),
					Min:       Ptr(0.0),
					DependsOn: Ptr("eintrittsdatum"),
				},
			},
		},
	}
}

func TestExtractFields_OptionalDateWithoutMeta(t *testing.T) {
	t.Parallel()

	rt := RecordType{
		Name:       "Case",
		Attributes: []Attribute{{Name: "austritts_datum", Type: TypeDate, Optional: true}},
	}

	defs, err := ExtractFields(rt)
	if err != nil {
		t.Fatalf("ExtractFields() error = %v, want nil", err)
	}
	if len(defs) != 1 {
		t.Fatalf("len(defs) = %d, want 1", len(defs))
	}

	got := defs[0]
	if got.UIType != UIDate {
		t.Errorf("UIType = %q, want %q", got.UIType, UIDate)
	}
	if got.Required {
		t.Error("Required = true, want false for optional attribute")
	}
	if got.Label != "Austritts Datum" {
		t.Errorf("Label = %q, want %q", got.Label, "Austritts Datum")
	}
	if got.Group != DefaultGroup {
		t.Errorf("Group = %q, want %q", got.Group, DefaultGroup)
	}
	if got.Width != WidthFull {
		t.Errorf("Width = %q, want %q", got.Width, WidthFull)
	}
	if got.Validation == nil || len(got.Validation) != 0 {
		t.Errorf("Validation = %#v, want empty non-nil slice", got.Validation)
	}
}

func TestExtractFields_TypeInference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  SemanticType
		want UIType
	}{
		{name: "text", typ: TypeText, want: UIText},
		{name: "integer", typ: TypeInteger, want: UINumber},
		{name: "decimal", typ: TypeDecimal, want: UINumber},
		{name: "boolean", typ: TypeBoolean, want: UICheckbox},
		{name: "date", typ: TypeDate, want: UIDate},
		{name: "unmapped type defaults to text", typ: SemanticType("duration"), want: UIText},
		{name: "missing type defaults to text", typ: "", want: UIText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, optional := range []bool{false, true} {
				rt := RecordType{
					Name:       "R",
					Attributes: []Attribute{{Name: "value", Type: tt.typ, Optional: optional}},
				}
				defs, err := ExtractFields(rt)
				if err != nil {
					t.Fatalf("ExtractFields() error = %v", err)
				}
				if defs[0].UIType != tt.want {
					t.Errorf("optional=%v: UIType = %q, want %q", optional, defs[0].UIType, tt.want)
				}
				if defs[0].Required == optional {
					t.Errorf("optional=%v: Required = %v, want %v", optional, defs[0].Required, !optional)
				}
			}
		})
	}
}

func TestExtractFields_ExplicitMetadataWins(t *testing.T) {
	t.Parallel()

	rt := RecordType{
		Name: "R",
		Attributes: []Attribute{{
			Name: "kind",
			Type: TypeText,
			Meta: &Meta{
				Label:       Ptr("Art der Leistung"),
				UIType:      Ptr(UISelect),
				Required:    Ptr(false),
				Hint:        Ptr("choose one"),
				Placeholder: Ptr("..."),
				Width:       Ptr(WidthHalf),
				CSSClass:    Ptr("wide"),
				ShowWhen:    Ptr("eintrittsdatum >= '2003-01-01'"),
				Options:     []Option{{Value: "alt", Label: "Alt"}, {Value: "neu", Label: "Neu"}},
			},
		}},
	}

	defs, err := ExtractFields(rt)
	if err != nil {
		t.Fatalf("ExtractFields() error = %v", err)
	}
	got := defs[0]

	if got.Label != "Art der Leistung" {
		t.Errorf("Label = %q, want explicit label", got.Label)
	}
	if got.UIType != UISelect {
		t.Errorf("UIType = %q, want %q", got.UIType, UISelect)
	}
	if got.Required {
		t.Error("Required = true, want explicit false to win over inference")
	}
	if got.Width != WidthHalf {
		t.Errorf("Width = %q, want %q", got.Width, WidthHalf)
	}
	if len(got.Options) != 2 || got.Options[1].Value != "neu" {
		t.Errorf("Options = %#v, want two options", got.Options)
	}
	if got.Hint != "choose one" || got.Placeholder != "..." || got.CSSClass != "wide" {
		t.Errorf("hint/placeholder/css = %q/%q/%q, want explicit values", got.Hint, got.Placeholder, got.CSSClass)
	}
}

func TestExtractFields_EmptyOverridesFallBack(t *testing.T) {
	t.Parallel()

	rt := RecordType{
		Name: "R",
		Attributes: []Attribute{{
			Name: "first_name",
			Type: TypeText,
			Meta: &Meta{Label: Ptr(""), UIType: Ptr(UIType("")), Group: Ptr("")},
		}},
	}

	defs, err := ExtractFields(rt)
	if err != nil {
		t.Fatalf("ExtractFields() error = %v", err)
	}
	if defs[0].Label != "First Name" {
		t.Errorf("Label = %q, want inferred %q", defs[0].Label, "First Name")
	}
	if defs[0].UIType != UIText {
		t.Errorf("UIType = %q, want inferred %q", defs[0].UIType, UIText)
	}
	if defs[0].Group != DefaultGroup {
		t.Errorf("Group = %q, want %q", defs[0].Group, DefaultGroup)
	}
}

func TestExtractFields_SortByGroupThenOrder(t *testing.T) {
	t.Parallel()

	rt := RecordType{
		Name: "R",
		Attributes: []Attribute{
			{Name: "c", Meta: &Meta{Group: Ptr("b"), Order: Ptr(2)}},
			{Name: "a", Meta: &Meta{Group: Ptr("b"), Order: Ptr(1)}},
			{Name: "x", Meta: &Meta{Group: Ptr("a"), Order: Ptr(5)}},
			{Name: "tie1", Meta: &Meta{Group: Ptr("b"), Order: Ptr(1)}},
			{Name: "tie2", Meta: &Meta{Group: Ptr("b"), Order: Ptr(1)}},
		},
	}

	defs, err := ExtractFields(rt)
	if err != nil {
		t.Fatalf("ExtractFields() error = %v", err)
	}

	want := []string{"x", "a", "tie1", "tie2", "c"}
	for i, id := range want {
		if defs[i].ID != id {
			t.Errorf("defs[%d].ID = %q, want %q", i, defs[i].ID, id)
		}
	}
}

func TestExtractFields_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := ExtractFields(pensionRecord())
	if err != nil {
		t.Fatalf("ExtractFields() error = %v", err)
	}
	second, err := ExtractFields(pensionRecord())
	if err != nil {
		t.Fatalf("ExtractFields() error = %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("ExtractFields() not deterministic:\n%s\n%s", a, b)
	}
}

func TestExtractFields_DoesNotAliasMeta(t *testing.T) {
	t.Parallel()

	rules := []string{"required"}
	rt := RecordType{
		Name:       "R",
		Attributes: []Attribute{{Name: "v", Meta: &Meta{Validation: rules}}},
	}

	defs, err := ExtractFields(rt)
	if err != nil {
		t.Fatalf("ExtractFields() error = %v", err)
	}
	defs[0].Validation[0] = "mutated"

	if rules[0] != "required" {
		t.Errorf("meta validation mutated through definition: %v", rules)
	}
}

func TestExtractFields_CompactJSON(t *testing.T) {
	t.Parallel()

	rt := RecordType{
		Name:       "R",
		Attributes: []Attribute{{Name: "note", Type: TypeText, Optional: true}},
	}

	defs, err := ExtractFields(rt)
	if err != nil {
		t.Fatalf("ExtractFields() error = %v", err)
	}

	raw, err := json.Marshal(defs[0])
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	for _, absent := range []string{"hint", "placeholder", "min", "max", "depends_on", "show_when", "options", "css_class"} {
		if _, ok := got[absent]; ok {
			t.Errorf("serialized definition contains %q, want it omitted", absent)
		}
	}
	for _, present := range []string{"id", "label", "ui_type", "required", "group", "order", "validation", "width"} {
		if _, ok := got[present]; !ok {
			t.Errorf("serialized definition missing %q", present)
		}
	}
}

func TestExtractFields_NotIntrospectable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rt   RecordType
	}{
		{name: "missing name", rt: RecordType{Attributes: []Attribute{{Name: "a"}}}},
		{name: "no attributes", rt: RecordType{Name: "R"}},
		{name: "blank attribute name", rt: RecordType{Name: "R", Attributes: []Attribute{{Name: " "}}}},
		{
			name: "duplicate attribute",
			rt:   RecordType{Name: "R", Attributes: []Attribute{{Name: "a"}, {Name: "a"}}},
		},
		{
			name: "unknown ui type",
			rt:   RecordType{Name: "R", Attributes: []Attribute{{Name: "a", Meta: &Meta{UIType: Ptr(UIType("slider"))}}}},
		},
		{
			name: "unknown width",
			rt:   RecordType{Name: "R", Attributes: []Attribute{{Name: "a", Meta: &Meta{Width: Ptr(Width("quarter"))}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defs, err := ExtractFields(tt.rt)
			if !errors.Is(err, domain.ErrNotIntrospectable) {
				t.Fatalf("ExtractFields() error = %v, want ErrNotIntrospectable", err)
			}
			if defs != nil {
				t.Errorf("ExtractFields() returned %d definitions with error, want nil", len(defs))
			}
		})
	}
}

func TestInferLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "name", want: "Name"},
		{in: "letztes_gehalt", want: "Letztes Gehalt"},
		{in: "start-date", want: "Start Date"},
		{in: "ID", want: "Id"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := InferLabel(tt.in); got != tt.want {
				t.Errorf("InferLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
