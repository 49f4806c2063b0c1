package parser

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// HTTPMethods lists the operation slots a PathItem exposes, in comparison
// order.
var HTTPMethods = []string{"get", "post", "put", "delete", "patch", "head", "options"}

// PathItem describes the operations available on a single path
type PathItem struct {
	Summary     string     `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
}

// Operation returns the operation for the given lower-case HTTP method, or
// nil when the slot is empty or the method is not one of HTTPMethods.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	switch method {
	case "get":
		return p.Get
	case "put":
		return p.Put
	case "post":
		return p.Post
	case "delete":
		return p.Delete
	case "options":
		return p.Options
	case "head":
		return p.Head
	case "patch":
		return p.Patch
	}
	return nil
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags        []string             `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Response describes a single response from an API Operation
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// MediaType provides the schema for a single content type
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}
