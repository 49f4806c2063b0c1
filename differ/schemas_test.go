package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apidrift/apidrift/parser"
)

func docWithSchemas(schemas map[string]*parser.Schema) *parser.Document {
	return &parser.Document{
		OpenAPI:    "3.0.3",
		Components: &parser.Components{Schemas: schemas},
	}
}

// requireSingleResult asserts exactly one MatchResult and returns it.
func requireSingleResult(t *testing.T, results []MatchResult, name string) MatchResult {
	t.Helper()
	require.Len(t, results, 1)
	assert.Equal(t, name, results[0].Name)
	return results[0]
}

func ruleNames(violations []Violation) []string {
	names := make([]string, len(violations))
	for i, v := range violations {
		names[i] = v.RuleName
	}
	return names
}

func TestSchemaAdded(t *testing.T) {
	base := docWithSchemas(nil)
	current := docWithSchemas(map[string]*parser.Schema{
		"User": {Type: "object"},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "User")
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "SchemaAdded", v.RuleName)
	assert.Equal(t, SeverityChange, v.Level)
	assert.Equal(t, "Schema 'User' was added", v.Description)
	assert.Equal(t, SeverityChange, result.ChangeLevel)
}

func TestSchemaRemoved(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{
		"User": {Type: "object"},
	})
	current := docWithSchemas(nil)

	result := requireSingleResult(t, CompareSchemas(base, current), "User")
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "SchemaRemoved", v.RuleName)
	assert.Equal(t, SeverityBreaking, v.Level)
	assert.Equal(t, SeverityBreaking, result.ChangeLevel)
}

func TestPropertyFullyRemovedIsBreaking(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"id":   {Type: "integer"},
				"name": {Type: "string"},
			},
			Required: []string{"id"},
		},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"id": {Type: "integer"},
			},
			Required: []string{"id"},
		},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "User")
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "PropertyRemoved", v.RuleName)
	assert.Equal(t, SeverityBreaking, v.Level)
	assert.Equal(t, "Property removed: name", v.Description)
	assert.Equal(t, PropertyAnchor("name"), v.Anchor)
}

func TestRequiredPropertyRemovedButKeptIsChange(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"id":   {Type: "integer"},
				"name": {Type: "string"},
			},
			Required: []string{"id", "name"},
		},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"id":   {Type: "integer"},
				"name": {Type: "string"},
			},
			Required: []string{"id"},
		},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "User")
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "RequiredPropertyRemoved", v.RuleName)
	assert.Equal(t, SeverityChange, v.Level)
	assert.NotContains(t, ruleNames(result.Violations), "PropertyRemoved")
	assert.Equal(t, SeverityChange, result.ChangeLevel)
}

func TestRequiredPropertyAddedIsBreaking(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{
		"User": {
			Type:       "object",
			Properties: map[string]*parser.Schema{"email": {Type: "string"}},
		},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"User": {
			Type:       "object",
			Properties: map[string]*parser.Schema{"email": {Type: "string"}},
			Required:   []string{"email"},
		},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "User")
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "RequiredPropertyAdded", v.RuleName)
	assert.Equal(t, SeverityBreaking, v.Level)
}

func TestNullableTransitions(t *testing.T) {
	tests := []struct {
		name          string
		base, current bool
		expected      *Severity
	}{
		{"true to false is breaking", true, false, severityPtr(SeverityBreaking)},
		{"false to true is warning", false, true, severityPtr(SeverityWarning)},
		{"unchanged yields nothing", true, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := docWithSchemas(map[string]*parser.Schema{
				"User": {Type: "object", Nullable: tt.base},
			})
			current := docWithSchemas(map[string]*parser.Schema{
				"User": {Type: "object", Nullable: tt.current},
			})

			results := CompareSchemas(base, current)
			if tt.expected == nil {
				assert.Empty(t, results)
				return
			}
			result := requireSingleResult(t, results, "User")
			require.Len(t, result.Violations, 1)
			assert.Equal(t, "NullableChanged", result.Violations[0].RuleName)
			assert.Equal(t, *tt.expected, result.Violations[0].Level)
		})
	}
}

func severityPtr(s Severity) *Severity { return &s }

func TestTypeChangedIsBreaking(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{"ID": {Type: "integer"}})
	current := docWithSchemas(map[string]*parser.Schema{"ID": {Type: "string"}})

	result := requireSingleResult(t, CompareSchemas(base, current), "ID")
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "TypeChanged", v.RuleName)
	assert.Equal(t, SeverityBreaking, v.Level)
	assert.Equal(t, "Type changed from 'integer' to 'string'", v.Description)
}

func TestFormatChangedIsWarning(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{"ID": {Type: "integer", Format: "int32"}})
	current := docWithSchemas(map[string]*parser.Schema{"ID": {Type: "integer", Format: "int64"}})

	result := requireSingleResult(t, CompareSchemas(base, current), "ID")
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "FormatChanged", v.RuleName)
	assert.Equal(t, SeverityWarning, v.Level)
}

func TestEnumValues(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{
		"Status": {Type: "string", Enum: []any{"active", "archived"}},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"Status": {Type: "string", Enum: []any{"active", "pending"}},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "Status")
	names := ruleNames(result.Violations)
	assert.Contains(t, names, "EnumValuesAdded")
	assert.Contains(t, names, "EnumValuesRemoved")

	for _, v := range result.Violations {
		switch v.RuleName {
		case "EnumValuesAdded":
			assert.Equal(t, SeverityChange, v.Level)
			assert.Equal(t, `Enum values added: "pending"`, v.Description)
		case "EnumValuesRemoved":
			assert.Equal(t, SeverityBreaking, v.Level)
			assert.Equal(t, `Enum values removed: "archived"`, v.Description)
		}
	}
	assert.Equal(t, SeverityBreaking, result.ChangeLevel)
}

func TestEnumValuesKeepTypeDistinction(t *testing.T) {
	// The number 1 and the string "1" are different enum values; swapping
	// one for the other is an add plus a remove.
	base := docWithSchemas(map[string]*parser.Schema{
		"Code": {Type: "string", Enum: []any{1}},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"Code": {Type: "string", Enum: []any{"1"}},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "Code")
	names := ruleNames(result.Violations)
	assert.Contains(t, names, "EnumValuesAdded")
	assert.Contains(t, names, "EnumValuesRemoved")
	for _, v := range result.Violations {
		switch v.RuleName {
		case "EnumValuesAdded":
			assert.Equal(t, `Enum values added: "1"`, v.Description)
		case "EnumValuesRemoved":
			assert.Equal(t, "Enum values removed: 1", v.Description)
		}
	}
}

func TestDescriptionChangedIsChange(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{"User": {Type: "object", Description: "a user"}})
	current := docWithSchemas(map[string]*parser.Schema{"User": {Type: "object", Description: "an account"}})

	result := requireSingleResult(t, CompareSchemas(base, current), "User")
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "DescriptionChanged", result.Violations[0].RuleName)
	assert.Equal(t, SeverityChange, result.Violations[0].Level)
}

func TestNestedPropertyPaths(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"address": {
					Type: "object",
					Properties: map[string]*parser.Schema{
						"street": {Type: "string"},
					},
				},
			},
		},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"address": {
					Type: "object",
					Properties: map[string]*parser.Schema{
						"street": {Type: "integer"},
					},
				},
			},
		},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "User")
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "TypeChanged", v.RuleName)
	assert.Equal(t, PropertyTypeAnchor("address.street"), v.Anchor)
	assert.Equal(t, "address.street", v.Anchor.PropertyPath())
	assert.False(t, v.Anchor.IsSchemaLevel())
}

func TestSelfReferentialSchemaTerminates(t *testing.T) {
	// Node references itself through its "next" property. The comparison
	// must stop at the depth cap instead of recursing forever.
	base := docWithSchemas(map[string]*parser.Schema{
		"Node": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"next":  {Ref: "#/components/schemas/Node"},
				"value": {Type: "string"},
			},
		},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"Node": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"next":  {Ref: "#/components/schemas/Node"},
				"value": {Type: "integer"},
			},
		},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "Node")
	assert.NotEmpty(t, result.Violations)
	assert.Contains(t, ruleNames(result.Violations), "TypeChanged")
	// Violations are collected per level below the cap, never beyond it.
	assert.LessOrEqual(t, len(result.Violations), maxComparisonDepth)
}

func TestMultiHopReferenceIsSkipped(t *testing.T) {
	// A aliases B which aliases C. Resolving A stops after one hop and
	// fails open, so A itself contributes no violations.
	base := docWithSchemas(map[string]*parser.Schema{
		"A": {Ref: "#/components/schemas/B"},
		"B": {Ref: "#/components/schemas/C"},
		"C": {Type: "object"},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"A": {Ref: "#/components/schemas/B"},
		"B": {Ref: "#/components/schemas/C"},
		"C": {Type: "string"},
	})

	results := CompareSchemas(base, current)
	// B is one hop from C and resolves; C compares directly. A never appears.
	require.Len(t, results, 2)
	assert.Equal(t, "B", results[0].Name)
	assert.Equal(t, "C", results[1].Name)
}

func TestDanglingReferenceCountsAsAbsent(t *testing.T) {
	// Presence is judged after resolution: a dangling reference on one side
	// means the schema is effectively absent there.
	base := docWithSchemas(map[string]*parser.Schema{
		"User": {Ref: "#/components/schemas/Missing"},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"User": {Type: "object"},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "User")
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "SchemaAdded", result.Violations[0].RuleName)
	assert.Equal(t, SeverityChange, result.Violations[0].Level)
}

func TestUnresolvableOnBothSidesIsSkipped(t *testing.T) {
	// A name that resolves on neither side produces nothing, even when the
	// entry exists on only one of them.
	base := docWithSchemas(nil)
	current := docWithSchemas(map[string]*parser.Schema{
		"User": {Ref: "#/components/schemas/Missing"},
	})

	assert.Empty(t, CompareSchemas(base, current))

	bothDangling := docWithSchemas(map[string]*parser.Schema{
		"User": {Ref: "#/components/schemas/Missing"},
	})
	assert.Empty(t, CompareSchemas(bothDangling, current))
}

func TestDanglingReferenceInCurrentIsRemoval(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{
		"User": {Type: "object"},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"User": {Ref: "#/components/schemas/Missing"},
	})

	result := requireSingleResult(t, CompareSchemas(base, current), "User")
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "SchemaRemoved", result.Violations[0].RuleName)
	assert.Equal(t, SeverityBreaking, result.Violations[0].Level)
}

func TestSingleHopReferenceResolves(t *testing.T) {
	base := docWithSchemas(map[string]*parser.Schema{
		"User": {Ref: "#/components/schemas/Account"},
		"Account": {
			Type:       "object",
			Properties: map[string]*parser.Schema{"id": {Type: "integer"}},
		},
	})
	current := docWithSchemas(map[string]*parser.Schema{
		"User": {Ref: "#/components/schemas/Account"},
		"Account": {
			Type:       "object",
			Properties: map[string]*parser.Schema{"id": {Type: "string"}},
		},
	})

	results := CompareSchemas(base, current)
	// Both User (via the reference) and Account (directly) report the change.
	require.Len(t, results, 2)
	assert.Equal(t, "Account", results[0].Name)
	assert.Equal(t, "User", results[1].Name)
}

func TestSchemaResultsSortedByName(t *testing.T) {
	base := docWithSchemas(nil)
	current := docWithSchemas(map[string]*parser.Schema{
		"Zebra": {Type: "object"},
		"Apple": {Type: "object"},
		"Mango": {Type: "object"},
	})

	results := CompareSchemas(base, current)
	require.Len(t, results, 3)
	assert.Equal(t, "Apple", results[0].Name)
	assert.Equal(t, "Mango", results[1].Name)
	assert.Equal(t, "Zebra", results[2].Name)
}

func TestUnchangedSchemasProduceNoResult(t *testing.T) {
	schemas := map[string]*parser.Schema{
		"User": {
			Type:       "object",
			Properties: map[string]*parser.Schema{"id": {Type: "integer"}},
			Required:   []string{"id"},
		},
	}
	assert.Empty(t, CompareSchemas(docWithSchemas(schemas), docWithSchemas(schemas)))
}
