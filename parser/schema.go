package parser

// Schema represents the subset of a JSON Schema / OAS schema object that
// participates in compatibility comparison. A Schema with a non-empty Ref is
// a reference; its other fields are empty and the referenced component
// schema carries the actual definition.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type validation
	Type     any    `yaml:"type,omitempty" json:"type,omitempty"` // string or []string (OAS 3.1+)
	Enum     []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Format   string `yaml:"format,omitempty" json:"format,omitempty"`
	Nullable bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"`

	// Object validation
	Properties map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required   []string           `yaml:"required,omitempty" json:"required,omitempty"`

	// Array validation
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	Default any `yaml:"default,omitempty" json:"default,omitempty"`
	Example any `yaml:"example,omitempty" json:"example,omitempty"`
}

// IsRef reports whether the schema is a $ref placeholder rather than an
// inline definition.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// IsRequired reports whether the named property appears in the schema's
// required list.
func (s *Schema) IsRequired(property string) bool {
	if s == nil {
		return false
	}
	for _, name := range s.Required {
		if name == property {
			return true
		}
	}
	return false
}
