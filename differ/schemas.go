package differ

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/apidrift/apidrift/parser"
)

// maxComparisonDepth bounds recursion into property schemas so cyclic or
// self-referential schema graphs terminate. Branches past the cap contribute
// no further violations.
const maxComparisonDepth = 30

// CompareSchemas diffs the named component schemas of two documents and
// returns one MatchResult per schema name that produced at least one
// violation, sorted by name.
func CompareSchemas(baseDoc, currentDoc *parser.Document) []MatchResult {
	return New().CompareSchemas(baseDoc, currentDoc)
}

type schemaComparison struct {
	baseDoc    *parser.Document
	currentDoc *parser.Document
	logger     parser.Logger
}

func (c *schemaComparison) compare() []MatchResult {
	names := mapset.NewThreadUnsafeSet(c.baseDoc.SchemaNames()...)
	names.Append(c.currentDoc.SchemaNames()...)

	var results []MatchResult
	for _, name := range mapset.Sorted(names) {
		if violations := c.compareSchema(name); len(violations) > 0 {
			results = append(results, newMatchResult(name, violations))
		}
	}
	return results
}

// compareSchema resolves both sides first, then judges presence on the
// resolved schemas: a dangling reference counts as absent on that side. The
// detail comparison runs only when both sides resolved.
func (c *schemaComparison) compareSchema(name string) []Violation {
	baseRef := c.baseDoc.Schema(name)
	currentRef := c.currentDoc.Schema(name)
	if baseRef == nil && currentRef == nil {
		return nil
	}

	base := resolveSchema(baseRef, c.baseDoc)
	current := resolveSchema(currentRef, c.currentDoc)
	if base == nil && current == nil {
		// Fail open: an unresolvable reference means nothing to compare.
		c.logger.Debug("skipping unresolvable schema", "schema", name)
		return nil
	}

	var violations []Violation
	for _, rule := range schemaPresenceRules {
		violations = append(violations, rule.Detect(name, "", base, current)...)
	}
	if base != nil && current != nil {
		c.compareDetails(name, "", base, current, 0, &violations)
	}
	return violations
}

// compareDetails runs the structure rules at the current path, recurses into
// every property present on both sides, then runs the metadata rules.
func (c *schemaComparison) compareDetails(name, path string, base, current *parser.Schema, depth int, out *[]Violation) {
	if depth >= maxComparisonDepth {
		c.logger.Debug("schema comparison depth cap reached", "schema", name, "path", path)
		return
	}

	for _, rule := range schemaStructureRules {
		*out = append(*out, rule.Detect(name, path, base, current)...)
	}

	baseKeys := mapset.NewThreadUnsafeSetFromMapKeys(base.Properties)
	currentKeys := mapset.NewThreadUnsafeSetFromMapKeys(current.Properties)
	for _, prop := range mapset.Sorted(baseKeys.Intersect(currentKeys)) {
		baseProp := resolveSchema(base.Properties[prop], c.baseDoc)
		currentProp := resolveSchema(current.Properties[prop], c.currentDoc)
		if baseProp == nil || currentProp == nil {
			c.logger.Debug("skipping unresolvable property", "schema", name, "property", joinPropertyPath(path, prop))
			continue
		}
		c.compareDetails(name, joinPropertyPath(path, prop), baseProp, currentProp, depth+1, out)
	}

	for _, rule := range schemaMetadataRules {
		*out = append(*out, rule.Detect(name, path, base, current)...)
	}
}
