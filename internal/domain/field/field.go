// Package field derives normalized form field definitions from record type
// descriptors. A record type lists its attributes in declaration order, each
// carrying a semantic type tag and optional explicit UI metadata; the
// introspector merges inferred defaults with those overrides.
package field

// SemanticType is the closed set of value tags a record type attribute can
// declare. The UI type of a field is inferred from it.
type SemanticType string

const (
	TypeText    SemanticType = "text"
	TypeInteger SemanticType = "integer"
	TypeDecimal SemanticType = "decimal"
	TypeBoolean SemanticType = "boolean"
	TypeDate    SemanticType = "date"
)

// UIType is the input widget a renderer should use for a field.
type UIType string

const (
	UIText     UIType = "text"
	UINumber   UIType = "number"
	UIDate     UIType = "date"
	UISelect   UIType = "select"
	UICheckbox UIType = "checkbox"
)

// IsValid returns true if the UI type is one of the defined constants.
func (u UIType) IsValid() bool {
	switch u {
	case UIText, UINumber, UIDate, UISelect, UICheckbox:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (u UIType) String() string {
	return string(u)
}

// Width is the layout width hint of a field.
type Width string

const (
	WidthFull  Width = "full"
	WidthHalf  Width = "half"
	WidthThird Width = "third"
)

// IsValid returns true if the width is one of the defined constants.
func (w Width) IsValid() bool {
	switch w {
	case WidthFull, WidthHalf, WidthThird:
		return true
	default:
		return false
	}
}

// DefaultGroup is the group of fields that declare none.
const DefaultGroup = "default"

// Option is one (value, label) choice of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Definition is the normalized description of one input field. Values are
// produced by ExtractFields and treated as immutable; slices are never shared
// with the record type they came from.
//
// Optional attributes that resolve to their zero value are omitted from the
// serialized form. Validation is always present, even when empty.
type Definition struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	UIType      UIType   `json:"ui_type"`
	Required    bool     `json:"required"`
	Hint        string   `json:"hint,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Group       string   `json:"group"`
	Order       int      `json:"order"`
	Validation  []string `json:"validation"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	DependsOn   string   `json:"depends_on,omitempty"`
	ShowWhen    string   `json:"show_when,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Width       Width    `json:"width"`
	CSSClass    string   `json:"css_class,omitempty"`
}
