package differ

import "fmt"

// crossLinkSchemaViolations synthesizes route-scoped wrapper violations for
// every violation already recorded against a schema the route depends on.
// The wrapper carries the original severity unchanged; it never re-judges
// the underlying finding.
func crossLinkSchemaViolations(usages []SchemaUsage, schemaIndex map[string]MatchResult) []Violation {
	var violations []Violation
	for _, usage := range usages {
		result, ok := schemaIndex[usage.SchemaName]
		if !ok {
			continue
		}
		for _, v := range result.Violations {
			violations = append(violations, wrapSchemaViolation(usage, v))
		}
	}
	return violations
}

func wrapSchemaViolation(usage SchemaUsage, v Violation) Violation {
	if usage.Location == UsageRequestBody {
		return Violation{
			RuleName: "RequestSchemaViolation",
			Description: fmt.Sprintf("Request schema '%s' (%s) - %s",
				usage.SchemaName, usage.ContentType, v.Description),
			Level:    v.Level,
			Anchor:   RouteAnchor(),
			Category: CategoryRequestBody,
		}
	}
	return Violation{
		RuleName: "ResponseSchemaViolation",
		Description: fmt.Sprintf("Response schema '%s' (%s, status %s) - %s",
			usage.SchemaName, usage.ContentType, usage.Status, v.Description),
		Level:    v.Level,
		Anchor:   ResponseStatusAnchor(usage.Status),
		Category: CategoryResponse,
	}
}
