package differ

import (
	"encoding/json"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/apidrift/apidrift/parser"
)

// SchemaAddedRule fires when a schema exists only in the current document.
type SchemaAddedRule struct{}

// Name implements SchemaRule.
func (SchemaAddedRule) Name() string { return "SchemaAdded" }

// Detect implements SchemaRule.
func (r SchemaAddedRule) Detect(schemaName, _ string, base, current *parser.Schema) []Violation {
	if base != nil || current == nil {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: fmt.Sprintf("Schema '%s' was added", schemaName),
		Level:       SeverityChange,
		Anchor:      SchemaAnchor(),
		Category:    CategorySchema,
	}}
}

// SchemaRemovedRule fires when a schema exists only in the base document.
type SchemaRemovedRule struct{}

// Name implements SchemaRule.
func (SchemaRemovedRule) Name() string { return "SchemaRemoved" }

// Detect implements SchemaRule.
func (r SchemaRemovedRule) Detect(schemaName, _ string, base, current *parser.Schema) []Violation {
	if base == nil || current != nil {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: fmt.Sprintf("Schema '%s' was removed", schemaName),
		Level:       SeverityBreaking,
		Anchor:      SchemaAnchor(),
		Category:    CategorySchema,
	}}
}

// TypeChangedRule fires when the type tag(s) at the current path differ.
type TypeChangedRule struct{}

// Name implements SchemaRule.
func (TypeChangedRule) Name() string { return "TypeChanged" }

// Detect implements SchemaRule.
func (r TypeChangedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	baseType := typeLabel(base.Type)
	currentType := typeLabel(current.Type)
	if baseType == currentType {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: fmt.Sprintf("Type changed from '%s' to '%s'", baseType, currentType),
		Level:       SeverityBreaking,
		Anchor:      PropertyTypeAnchor(propertyPath),
		Category:    CategorySchema,
	}}
}

// typeLabel normalizes the type field, which may be a single string or a
// list of strings (OAS 3.1+), into a comparable label.
func typeLabel(t any) string {
	switch v := t.(type) {
	case nil:
		return "none"
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// PropertyAddedRule fires for each property present only in the current
// schema.
type PropertyAddedRule struct{}

// Name implements SchemaRule.
func (PropertyAddedRule) Name() string { return "PropertyAdded" }

// Detect implements SchemaRule.
func (r PropertyAddedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	baseKeys := mapset.NewThreadUnsafeSetFromMapKeys(base.Properties)
	currentKeys := mapset.NewThreadUnsafeSetFromMapKeys(current.Properties)
	var violations []Violation
	for _, name := range mapset.Sorted(currentKeys.Difference(baseKeys)) {
		path := joinPropertyPath(propertyPath, name)
		violations = append(violations, Violation{
			RuleName:    r.Name(),
			Description: fmt.Sprintf("Property added: %s", path),
			Level:       SeverityChange,
			Anchor:      PropertyAnchor(path),
			Category:    CategorySchema,
		})
	}
	return violations
}

// PropertyRemovedRule fires for each property present only in the base
// schema. Full removal is always breaking regardless of whether the
// property was required; dropping a kept property from the required list is
// RequiredPropertyRemovedRule's business.
type PropertyRemovedRule struct{}

// Name implements SchemaRule.
func (PropertyRemovedRule) Name() string { return "PropertyRemoved" }

// Detect implements SchemaRule.
func (r PropertyRemovedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	baseKeys := mapset.NewThreadUnsafeSetFromMapKeys(base.Properties)
	currentKeys := mapset.NewThreadUnsafeSetFromMapKeys(current.Properties)
	var violations []Violation
	for _, name := range mapset.Sorted(baseKeys.Difference(currentKeys)) {
		path := joinPropertyPath(propertyPath, name)
		violations = append(violations, Violation{
			RuleName:    r.Name(),
			Description: fmt.Sprintf("Property removed: %s", path),
			Level:       SeverityBreaking,
			Anchor:      PropertyAnchor(path),
			Category:    CategorySchema,
		})
	}
	return violations
}

// RequiredPropertyAddedRule fires for each name newly present in the
// required list. Existing clients that omit the property stop validating.
type RequiredPropertyAddedRule struct{}

// Name implements SchemaRule.
func (RequiredPropertyAddedRule) Name() string { return "RequiredPropertyAdded" }

// Detect implements SchemaRule.
func (r RequiredPropertyAddedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	baseRequired := mapset.NewThreadUnsafeSet(base.Required...)
	currentRequired := mapset.NewThreadUnsafeSet(current.Required...)
	var violations []Violation
	for _, name := range mapset.Sorted(currentRequired.Difference(baseRequired)) {
		path := joinPropertyPath(propertyPath, name)
		violations = append(violations, Violation{
			RuleName:    r.Name(),
			Description: fmt.Sprintf("Required property added: %s", path),
			Level:       SeverityBreaking,
			Anchor:      RequiredAnchor(path),
			Category:    CategorySchema,
		})
	}
	return violations
}

// RequiredPropertyRemovedRule fires for each name dropped from the required
// list while the property itself is kept. Making a property optional is a
// relaxation, distinct from deleting it.
type RequiredPropertyRemovedRule struct{}

// Name implements SchemaRule.
func (RequiredPropertyRemovedRule) Name() string { return "RequiredPropertyRemoved" }

// Detect implements SchemaRule.
func (r RequiredPropertyRemovedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	baseRequired := mapset.NewThreadUnsafeSet(base.Required...)
	currentRequired := mapset.NewThreadUnsafeSet(current.Required...)
	var violations []Violation
	for _, name := range mapset.Sorted(baseRequired.Difference(currentRequired)) {
		if _, kept := current.Properties[name]; !kept {
			continue
		}
		path := joinPropertyPath(propertyPath, name)
		violations = append(violations, Violation{
			RuleName:    r.Name(),
			Description: fmt.Sprintf("Property no longer required: %s", path),
			Level:       SeverityChange,
			Anchor:      RequiredAnchor(path),
			Category:    CategorySchema,
		})
	}
	return violations
}

// DescriptionChangedRule fires when the description text at the current
// path differs.
type DescriptionChangedRule struct{}

// Name implements SchemaRule.
func (DescriptionChangedRule) Name() string { return "DescriptionChanged" }

// Detect implements SchemaRule.
func (r DescriptionChangedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	if base.Description == current.Description {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: "Description changed",
		Level:       SeverityChange,
		Anchor:      DescriptionAnchor(propertyPath),
		Category:    CategorySchema,
	}}
}

// EnumValuesAddedRule fires when the current enum carries values the base
// enum does not. Values are compared by their JSON text, keeping type
// distinctions.
type EnumValuesAddedRule struct{}

// Name implements SchemaRule.
func (EnumValuesAddedRule) Name() string { return "EnumValuesAdded" }

// Detect implements SchemaRule.
func (r EnumValuesAddedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	added := enumValueSet(current.Enum).Difference(enumValueSet(base.Enum))
	if added.Cardinality() == 0 {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: fmt.Sprintf("Enum values added: %s", strings.Join(mapset.Sorted(added), ", ")),
		Level:       SeverityChange,
		Anchor:      EnumValuesAnchor(propertyPath),
		Category:    CategorySchema,
	}}
}

// EnumValuesRemovedRule fires when the base enum carries values the current
// enum does not. Clients sending a removed literal are rejected.
type EnumValuesRemovedRule struct{}

// Name implements SchemaRule.
func (EnumValuesRemovedRule) Name() string { return "EnumValuesRemoved" }

// Detect implements SchemaRule.
func (r EnumValuesRemovedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	removed := enumValueSet(base.Enum).Difference(enumValueSet(current.Enum))
	if removed.Cardinality() == 0 {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: fmt.Sprintf("Enum values removed: %s", strings.Join(mapset.Sorted(removed), ", ")),
		Level:       SeverityBreaking,
		Anchor:      EnumValuesAnchor(propertyPath),
		Category:    CategorySchema,
	}}
}

// enumValueSet renders enum literals to their JSON text so mixed-type values
// can be set-compared without the number 1 and the string "1" colliding.
func enumValueSet(values []any) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			set.Add(fmt.Sprintf("%v", v))
			continue
		}
		set.Add(string(data))
	}
	return set
}

// FormatChangedRule fires when the format string at the current path
// differs.
type FormatChangedRule struct{}

// Name implements SchemaRule.
func (FormatChangedRule) Name() string { return "FormatChanged" }

// Detect implements SchemaRule.
func (r FormatChangedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	if base.Format == current.Format {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: fmt.Sprintf("Format changed from '%s' to '%s'", base.Format, current.Format),
		Level:       SeverityWarning,
		Anchor:      FormatAnchor(propertyPath),
		Category:    CategorySchema,
	}}
}

// NullableChangedRule fires when the nullable flag flips. Forbidding a
// previously allowed null is breaking; allowing a new null is a warning
// because clients may not expect it in responses.
type NullableChangedRule struct{}

// Name implements SchemaRule.
func (NullableChangedRule) Name() string { return "NullableChanged" }

// Detect implements SchemaRule.
func (r NullableChangedRule) Detect(_, propertyPath string, base, current *parser.Schema) []Violation {
	if base == nil || current == nil {
		return nil
	}
	if base.Nullable == current.Nullable {
		return nil
	}
	level := SeverityWarning
	if base.Nullable && !current.Nullable {
		level = SeverityBreaking
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: fmt.Sprintf("Nullable changed from %t to %t", base.Nullable, current.Nullable),
		Level:       level,
		Anchor:      NullableAnchor(propertyPath),
		Category:    CategorySchema,
	}}
}

// ArrayItemsChangedRule is registered but deliberately inert: array item
// schemas are not compared. See the package documentation.
type ArrayItemsChangedRule struct{}

// Name implements SchemaRule.
func (ArrayItemsChangedRule) Name() string { return "ArrayItemsChanged" }

// Detect implements SchemaRule.
func (ArrayItemsChangedRule) Detect(_, _ string, _, _ *parser.Schema) []Violation {
	return nil
}

// joinPropertyPath extends a dotted property path by one segment.
func joinPropertyPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
