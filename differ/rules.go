package differ

import (
	"fmt"

	"github.com/apidrift/apidrift/internal/severity"
	"github.com/apidrift/apidrift/parser"
)

// Severity indicates the compatibility impact of a violation
type Severity = severity.ChangeLevel

const (
	// SeverityChange indicates compatible changes (additions, relaxed constraints)
	SeverityChange = severity.ChangeLevelChange
	// SeverityWarning indicates potentially problematic changes
	SeverityWarning = severity.ChangeLevelWarning
	// SeverityBreaking indicates breaking changes (removed features, stricter constraints)
	SeverityBreaking = severity.ChangeLevelBreaking
)

// ChangeCategory indicates which part of the API description a violation
// belongs to.
type ChangeCategory string

const (
	// CategorySchema indicates a component schema change
	CategorySchema ChangeCategory = "schema"
	// CategoryEndpoint indicates a route-level change
	CategoryEndpoint ChangeCategory = "endpoint"
	// CategoryParameter indicates a parameter change
	CategoryParameter ChangeCategory = "parameter"
	// CategoryRequestBody indicates a request body change
	CategoryRequestBody ChangeCategory = "request_body"
	// CategoryResponse indicates a response change
	CategoryResponse ChangeCategory = "response"
)

// AnchorKind identifies the structural location class a violation is
// attributed to.
type AnchorKind string

const (
	// AnchorKindSchema anchors to the whole schema
	AnchorKindSchema AnchorKind = "schema"
	// AnchorKindProperty anchors to a dotted property path
	AnchorKindProperty AnchorKind = "property"
	// AnchorKindPropertyType anchors to the type of a property path
	AnchorKindPropertyType AnchorKind = "type"
	// AnchorKindRequired anchors to the required list
	AnchorKindRequired AnchorKind = "required"
	// AnchorKindEnumValues anchors to the enum values of a property path
	AnchorKindEnumValues AnchorKind = "enum"
	// AnchorKindFormat anchors to the format of a property path
	AnchorKindFormat AnchorKind = "format"
	// AnchorKindNullable anchors to the nullable flag of a property path
	AnchorKindNullable AnchorKind = "nullable"
	// AnchorKindArrayItems anchors to the array item schema of a property path
	AnchorKindArrayItems AnchorKind = "items"
	// AnchorKindDescription anchors to the description of a property path
	AnchorKindDescription AnchorKind = "description"
	// AnchorKindRoute anchors to the whole route
	AnchorKindRoute AnchorKind = "route"
	// AnchorKindParameter anchors to a named parameter
	AnchorKindParameter AnchorKind = "parameter"
	// AnchorKindResponseStatus anchors to a response status code
	AnchorKindResponseStatus AnchorKind = "response_status"
)

// Anchor is the structural location a violation occurred at. For schema
// violations Path is the dotted property path (empty at the schema root);
// for route violations Path is the parameter name or status code.
type Anchor struct {
	Kind AnchorKind
	Path string
}

// String renders the anchor for display and grouping.
func (a Anchor) String() string {
	if a.Path == "" {
		return string(a.Kind)
	}
	return fmt.Sprintf("%s(%s)", a.Kind, a.Path)
}

// IsSchemaLevel reports whether the anchor points at a schema root rather
// than a nested property path.
func (a Anchor) IsSchemaLevel() bool {
	return a.Path == ""
}

// PropertyPath returns the dotted property path the anchor points at, or the
// empty string for schema-level and route-level anchors.
func (a Anchor) PropertyPath() string {
	switch a.Kind {
	case AnchorKindRoute, AnchorKindParameter, AnchorKindResponseStatus:
		return ""
	}
	return a.Path
}

// SchemaAnchor anchors a violation to the whole schema.
func SchemaAnchor() Anchor { return Anchor{Kind: AnchorKindSchema} }

// PropertyAnchor anchors a violation to a dotted property path.
func PropertyAnchor(path string) Anchor { return Anchor{Kind: AnchorKindProperty, Path: path} }

// PropertyTypeAnchor anchors a violation to the type at a property path.
func PropertyTypeAnchor(path string) Anchor { return Anchor{Kind: AnchorKindPropertyType, Path: path} }

// RequiredAnchor anchors a violation to the required list entry for a
// property path.
func RequiredAnchor(path string) Anchor { return Anchor{Kind: AnchorKindRequired, Path: path} }

// EnumValuesAnchor anchors a violation to the enum values at a property path.
func EnumValuesAnchor(path string) Anchor { return Anchor{Kind: AnchorKindEnumValues, Path: path} }

// FormatAnchor anchors a violation to the format at a property path.
func FormatAnchor(path string) Anchor { return Anchor{Kind: AnchorKindFormat, Path: path} }

// NullableAnchor anchors a violation to the nullable flag at a property path.
func NullableAnchor(path string) Anchor { return Anchor{Kind: AnchorKindNullable, Path: path} }

// ArrayItemsAnchor anchors a violation to the array item schema at a
// property path.
func ArrayItemsAnchor(path string) Anchor { return Anchor{Kind: AnchorKindArrayItems, Path: path} }

// DescriptionAnchor anchors a violation to the description at a property path.
func DescriptionAnchor(path string) Anchor { return Anchor{Kind: AnchorKindDescription, Path: path} }

// RouteAnchor anchors a violation to the whole route.
func RouteAnchor() Anchor { return Anchor{Kind: AnchorKindRoute} }

// ParameterAnchor anchors a violation to a named parameter.
func ParameterAnchor(name string) Anchor { return Anchor{Kind: AnchorKindParameter, Path: name} }

// ResponseStatusAnchor anchors a violation to a response status code.
func ResponseStatusAnchor(code string) Anchor {
	return Anchor{Kind: AnchorKindResponseStatus, Path: code}
}

// Violation is a single classified difference produced by a rule. Immutable
// once produced.
type Violation struct {
	// RuleName is the stable identity of the check that fired
	RuleName string
	// Description is the rendered human-readable message
	Description string
	// Level is the compatibility impact of this violation
	Level Severity
	// Anchor is the structural location the violation is attributed to
	Anchor Anchor
	// Category indicates which part of the API description changed
	Category ChangeCategory
}

// String returns a formatted representation of the violation.
func (v Violation) String() string {
	return fmt.Sprintf("[%s] %s: %s", v.Level, v.RuleName, v.Description)
}

// MatchResult collects the violations for one subject: a schema name, or
// a "METHOD path" route key. Subjects with zero violations produce no
// MatchResult.
type MatchResult struct {
	// Name is the schema name or "METHOD path" route key
	Name string
	// Violations are the classified differences found for this subject
	Violations []Violation
	// ChangeLevel is the aggregate of all violation levels
	ChangeLevel Severity
}

func newMatchResult(name string, violations []Violation) MatchResult {
	return MatchResult{
		Name:        name,
		Violations:  violations,
		ChangeLevel: aggregate(violations),
	}
}

// aggregate folds violation levels into one overall verdict. Empty input
// aggregates to Change.
func aggregate(violations []Violation) Severity {
	levels := make([]severity.ChangeLevel, len(violations))
	for i, v := range violations {
		levels[i] = v.Level
	}
	return severity.Aggregate(levels)
}

// SchemaRule detects differences between a pair of resolved schemas at one
// position in the schema tree. Rules are stateless and pure: they never
// mutate their inputs and depend only on the two fragments and the path
// context supplied. A nil side means the fragment is absent in that version.
type SchemaRule interface {
	// Name returns the stable rule identity used in violations and reports.
	Name() string
	// Detect returns zero or more violations for the given schema pair.
	// propertyPath is the dotted path from the schema root, empty at the root.
	Detect(schemaName, propertyPath string, base, current *parser.Schema) []Violation
}

// RouteRule detects differences between a pair of operations for one
// path+method. A nil side means the operation is absent in that version.
type RouteRule interface {
	// Name returns the stable rule identity used in violations and reports.
	Name() string
	// Detect returns zero or more violations for the given operation pair.
	Detect(path, method string, base, current *parser.Operation) []Violation
}

// Registered rule lists. Orchestration iterates these statically; adding a
// check means implementing the interface and appending it here.
var (
	// schemaPresenceRules run when a schema exists on only one side.
	schemaPresenceRules = []SchemaRule{
		SchemaAddedRule{},
		SchemaRemovedRule{},
	}

	// schemaStructureRules run before recursing into shared properties.
	schemaStructureRules = []SchemaRule{
		TypeChangedRule{},
		RequiredPropertyAddedRule{},
		PropertyAddedRule{},
		PropertyRemovedRule{},
		RequiredPropertyRemovedRule{},
	}

	// schemaMetadataRules run after recursion, at the current path.
	schemaMetadataRules = []SchemaRule{
		DescriptionChangedRule{},
		EnumValuesAddedRule{},
		EnumValuesRemovedRule{},
		FormatChangedRule{},
		NullableChangedRule{},
		ArrayItemsChangedRule{},
	}

	// routePresenceRules run when an operation exists on only one side.
	routePresenceRules = []RouteRule{
		RouteAddedRule{},
		RouteRemovedRule{},
	}

	// routeDetailRules run when both operations exist and are not
	// structurally identical.
	routeDetailRules = []RouteRule{
		RouteDescriptionChangedRule{},
		RouteSummaryChangedRule{},
		RequiredParameterAddedRule{},
		ParameterRemovedRule{},
		ResponseStatusAddedRule{},
		ResponseStatusRemovedRule{},
		RequestSchemaChangedRule{},
		ResponseSchemaChangedRule{},
	}
)

// SchemaRules returns the registered schema rules in execution order.
// Exposed for reporting layers that need the full rule inventory.
func SchemaRules() []SchemaRule {
	rules := make([]SchemaRule, 0, len(schemaPresenceRules)+len(schemaStructureRules)+len(schemaMetadataRules))
	rules = append(rules, schemaPresenceRules...)
	rules = append(rules, schemaStructureRules...)
	rules = append(rules, schemaMetadataRules...)
	return rules
}

// RouteRules returns the registered route rules in execution order.
func RouteRules() []RouteRule {
	rules := make([]RouteRule, 0, len(routePresenceRules)+len(routeDetailRules))
	rules = append(rules, routePresenceRules...)
	rules = append(rules, routeDetailRules...)
	return rules
}
