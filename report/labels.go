package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/apidrift/apidrift/differ"
)

// ruleEmoji maps rule names to their display emoji. Constructed once;
// unknown rules fall back to a neutral marker.
var ruleEmoji = map[string]string{
	"SchemaAdded":             "➕",
	"SchemaRemoved":           "➖",
	"TypeChanged":             "📝",
	"PropertyAdded":           "🔧",
	"PropertyRemoved":         "🔧",
	"RequiredPropertyAdded":   "⚠️",
	"RequiredPropertyRemoved": "⚠️",
	"DescriptionChanged":      "📄",
	"EnumValuesAdded":         "➕",
	"EnumValuesRemoved":       "➖",
	"FormatChanged":           "🏷️",
	"NullableChanged":         "❓",
	"ArrayItemsChanged":       "📦",
	"RouteAdded":              "➕",
	"RouteRemoved":            "➖",
	"RouteDescriptionChanged": "📄",
	"RouteSummaryChanged":     "📝",
	"RequiredParameterAdded":  "⚠️",
	"ParameterRemoved":        "⚠️",
	"ResponseStatusAdded":     "➕",
	"ResponseStatusRemoved":   "➖",
	"RequestSchemaChanged":    "📋",
	"ResponseSchemaChanged":   "📋",
	"RequestSchemaViolation":  "📋",
	"ResponseSchemaViolation": "📋",
}

// ruleLabels maps rule names to their display labels.
var ruleLabels = map[string]string{
	"SchemaAdded":             "Schema Added",
	"SchemaRemoved":           "Schema Removed",
	"TypeChanged":             "Type Changed",
	"PropertyAdded":           "Property Added",
	"PropertyRemoved":         "Property Removed",
	"RequiredPropertyAdded":   "Required Property Added",
	"RequiredPropertyRemoved": "Required Property Removed",
	"DescriptionChanged":      "Description Changed",
	"EnumValuesAdded":         "Enum Values Added",
	"EnumValuesRemoved":       "Enum Values Removed",
	"FormatChanged":           "Format Changed",
	"NullableChanged":         "Nullable Changed",
	"ArrayItemsChanged":       "Array Items Changed",
	"RouteAdded":              "Route Added",
	"RouteRemoved":            "Route Removed",
	"RouteDescriptionChanged": "Route Description Changed",
	"RouteSummaryChanged":     "Route Summary Changed",
	"RequiredParameterAdded":  "Required Parameter Added",
	"ParameterRemoved":        "Parameter Removed",
	"ResponseStatusAdded":     "Response Status Added",
	"ResponseStatusRemoved":   "Response Status Removed",
	"RequestSchemaChanged":    "Request Schema Changed",
	"ResponseSchemaChanged":   "Response Schema Changed",
	"RequestSchemaViolation":  "Request Schema Violation",
	"ResponseSchemaViolation": "Response Schema Violation",
}

var titleCaser = cases.Title(language.English)

// RuleEmoji returns the display emoji for a rule name.
func RuleEmoji(ruleName string) string {
	if emoji, ok := ruleEmoji[ruleName]; ok {
		return emoji
	}
	return "❔"
}

// RuleLabel returns the display label for a rule name. Unknown rules get a
// label derived from the name itself so new rules render without a table
// update.
func RuleLabel(ruleName string) string {
	if label, ok := ruleLabels[ruleName]; ok {
		return label
	}
	return titleCaser.String(splitCamelCase(ruleName))
}

// splitCamelCase converts "SomeRuleName" to "some rule name".
func splitCamelCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// severityLabel maps a change level to its display label and CSS class.
func severityLabel(level differ.Severity) (label, class string) {
	switch level {
	case differ.SeverityBreaking:
		return "Breaking", "breaking"
	case differ.SeverityWarning:
		return "Warning", "warning"
	default:
		return "Change", "change"
	}
}
