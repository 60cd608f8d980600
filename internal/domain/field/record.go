package field

// RecordType describes a structured type with named, typed attributes. It is
// the only input of the introspector; no reflection is involved.
type RecordType struct {
	// Name identifies the record type (e.g. "MitarbeiterFormular").
	Name string
	// Title is a human-readable description used as the schema title.
	// Falls back to Name when empty.
	Title      string
	Attributes []Attribute
}

// Attribute is one declared attribute of a record type.
type Attribute struct {
	Name string
	// Type is the inner declared type. For optional attributes this is the
	// wrapped type, not the wrapper.
	Type SemanticType
	// Optional marks an attribute declared as optional/nullable.
	Optional bool
	// Meta carries explicit per-attribute overrides. Nil means none.
	Meta *Meta
}

// Meta holds explicit UI metadata for an attribute. Every attribute is
// nil-able so that an unset override is distinguishable from a zero value;
// an explicit value always wins over the inferred default.
type Meta struct {
	Label       *string
	UIType      *UIType
	Required    *bool
	Hint        *string
	Placeholder *string
	Group       *string
	Order       *int
	Validation  []string
	Min         *float64
	Max         *float64
	DependsOn   *string
	ShowWhen    *string
	Options     []Option
	Width       *Width
	CSSClass    *string
}

// Ptr returns a pointer to v. It keeps Meta literals short:
//
//	&field.Meta{Label: field.Ptr("Geburtsdatum"), Order: field.Ptr(1)}
func Ptr[T any](v T) *T {
	return &v
}

// DisplayTitle returns Title, or Name when no title was given.
func (rt *RecordType) DisplayTitle() string {
	if rt.Title != "" {
		return rt.Title
	}
	return rt.Name
}
