package parser

import "reflect"

// Equals reports whether two operations are structurally identical. Both nil
// is identical; one nil is not. The comparison is deep: parameters, request
// body, and responses are compared field by field, including any inline
// schemas they carry.
func (op *Operation) Equals(other *Operation) bool {
	if op == nil || other == nil {
		return op == other
	}
	if op.Summary != other.Summary ||
		op.Description != other.Description ||
		op.OperationID != other.OperationID ||
		op.Deprecated != other.Deprecated {
		return false
	}
	if !stringSlicesEqual(op.Tags, other.Tags) {
		return false
	}
	if !parametersEqual(op.Parameters, other.Parameters) {
		return false
	}
	if !op.RequestBody.Equals(other.RequestBody) {
		return false
	}
	return responsesEqual(op.Responses, other.Responses)
}

// Equals reports whether two parameters are structurally identical.
func (p *Parameter) Equals(other *Parameter) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Ref == other.Ref &&
		p.Name == other.Name &&
		p.In == other.In &&
		p.Description == other.Description &&
		p.Required == other.Required &&
		p.Deprecated == other.Deprecated &&
		p.Schema.Equals(other.Schema)
}

// Equals reports whether two request bodies are structurally identical.
func (rb *RequestBody) Equals(other *RequestBody) bool {
	if rb == nil || other == nil {
		return rb == other
	}
	return rb.Ref == other.Ref &&
		rb.Description == other.Description &&
		rb.Required == other.Required &&
		contentEqual(rb.Content, other.Content)
}

// Equals reports whether two responses are structurally identical.
func (r *Response) Equals(other *Response) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Ref == other.Ref &&
		r.Description == other.Description &&
		contentEqual(r.Content, other.Content)
}

// Equals reports whether two schemas are structurally identical. References
// are compared textually, not resolved.
func (s *Schema) Equals(other *Schema) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Ref != other.Ref ||
		s.Title != other.Title ||
		s.Description != other.Description ||
		s.Format != other.Format ||
		s.Nullable != other.Nullable {
		return false
	}
	if !reflect.DeepEqual(s.Type, other.Type) ||
		!reflect.DeepEqual(s.Enum, other.Enum) ||
		!reflect.DeepEqual(s.Default, other.Default) ||
		!reflect.DeepEqual(s.Example, other.Example) {
		return false
	}
	if !stringSlicesEqual(s.Required, other.Required) {
		return false
	}
	if !s.Items.Equals(other.Items) {
		return false
	}
	if len(s.Properties) != len(other.Properties) {
		return false
	}
	for name, prop := range s.Properties {
		otherProp, ok := other.Properties[name]
		if !ok || !prop.Equals(otherProp) {
			return false
		}
	}
	return true
}

func parametersEqual(a, b []*Parameter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func responsesEqual(a, b map[string]*Response) bool {
	if len(a) != len(b) {
		return false
	}
	for status, resp := range a {
		otherResp, ok := b[status]
		if !ok || !resp.Equals(otherResp) {
			return false
		}
	}
	return true
}

func contentEqual(a, b map[string]*MediaType) bool {
	if len(a) != len(b) {
		return false
	}
	for contentType, mt := range a {
		otherMT, ok := b[contentType]
		if !ok {
			return false
		}
		if mt == nil || otherMT == nil {
			if mt != otherMT {
				return false
			}
			continue
		}
		if !mt.Schema.Equals(otherMT.Schema) {
			return false
		}
	}
	return true
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
