package parser

// Document is the root of a parsed OpenAPI 3.x description.
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       *Info       `yaml:"info,omitempty" json:"info,omitempty"`
	Paths      Paths       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
}

// Components holds the reusable objects of the document. Only schemas
// participate in comparison.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// SchemaNames returns the names of all component schemas, or nil when the
// document declares none.
func (d *Document) SchemaNames() []string {
	if d == nil || d.Components == nil || len(d.Components.Schemas) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.Components.Schemas))
	for name := range d.Components.Schemas {
		names = append(names, name)
	}
	return names
}

// Schema returns the named component schema, or nil when the document does
// not declare it.
func (d *Document) Schema(name string) *Schema {
	if d == nil || d.Components == nil {
		return nil
	}
	return d.Components.Schemas[name]
}
