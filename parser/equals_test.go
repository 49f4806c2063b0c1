package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseOperation() *Operation {
	return &Operation{
		Summary:     "List pets",
		Description: "Lists all pets",
		OperationID: "listPets",
		Tags:        []string{"pets"},
		Parameters: []*Parameter{
			{Name: "limit", In: "query", Schema: &Schema{Type: "integer", Format: "int32"}},
		},
		RequestBody: &RequestBody{
			Required: true,
			Content: map[string]*MediaType{
				"application/json": {Schema: &Schema{Ref: "#/components/schemas/Pet"}},
			},
		},
		Responses: map[string]*Response{
			"200": {
				Description: "OK",
				Content: map[string]*MediaType{
					"application/json": {Schema: &Schema{Ref: "#/components/schemas/Pet"}},
				},
			},
		},
	}
}

func TestOperationEquals(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(op *Operation)
		expected bool
	}{
		{"identical", func(*Operation) {}, true},
		{"summary differs", func(op *Operation) { op.Summary = "changed" }, false},
		{"description differs", func(op *Operation) { op.Description = "changed" }, false},
		{"operationId differs", func(op *Operation) { op.OperationID = "changed" }, false},
		{"deprecated differs", func(op *Operation) { op.Deprecated = true }, false},
		{"tags differ", func(op *Operation) { op.Tags = []string{"animals"} }, false},
		{"parameter added", func(op *Operation) {
			op.Parameters = append(op.Parameters, &Parameter{Name: "sort", In: "query"})
		}, false},
		{"parameter required flipped", func(op *Operation) { op.Parameters[0].Required = true }, false},
		{"parameter schema format differs", func(op *Operation) { op.Parameters[0].Schema.Format = "int64" }, false},
		{"request body removed", func(op *Operation) { op.RequestBody = nil }, false},
		{"request body ref differs", func(op *Operation) {
			op.RequestBody.Content["application/json"].Schema.Ref = "#/components/schemas/Animal"
		}, false},
		{"response status added", func(op *Operation) {
			op.Responses["404"] = &Response{Description: "Not Found"}
		}, false},
		{"response schema ref differs", func(op *Operation) {
			op.Responses["200"].Content["application/json"].Schema.Ref = "#/components/schemas/Animal"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := baseOperation()
			b := baseOperation()
			tt.mutate(b)
			assert.Equal(t, tt.expected, a.Equals(b))
		})
	}
}

func TestOperationEqualsNil(t *testing.T) {
	var a, b *Operation
	assert.True(t, a.Equals(b))
	assert.False(t, baseOperation().Equals(nil))
	assert.False(t, a.Equals(baseOperation()))
}

func TestSchemaEquals(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Schema
		expected bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", &Schema{}, nil, false},
		{"identical inline", &Schema{Type: "string", Format: "uuid"}, &Schema{Type: "string", Format: "uuid"}, true},
		{"type differs", &Schema{Type: "string"}, &Schema{Type: "integer"}, false},
		{"nullable differs", &Schema{Nullable: true}, &Schema{}, false},
		{"enum differs", &Schema{Enum: []any{"a"}}, &Schema{Enum: []any{"a", "b"}}, false},
		{"required order matters", &Schema{Required: []string{"a", "b"}}, &Schema{Required: []string{"b", "a"}}, false},
		{
			"nested property differs",
			&Schema{Properties: map[string]*Schema{"id": {Type: "integer"}}},
			&Schema{Properties: map[string]*Schema{"id": {Type: "string"}}},
			false,
		},
		{
			"items differ",
			&Schema{Type: "array", Items: &Schema{Type: "string"}},
			&Schema{Type: "array", Items: &Schema{Type: "integer"}},
			false,
		},
		{"refs compared textually", &Schema{Ref: "#/components/schemas/Pet"}, &Schema{Ref: "#/components/schemas/Pet"}, true},
		{"ref differs", &Schema{Ref: "#/components/schemas/Pet"}, &Schema{Ref: "#/components/schemas/Animal"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equals(tt.b))
		})
	}
}
