package differ

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/apidrift/apidrift/parser"
)

// UsageLocation tells where a route references a schema.
type UsageLocation string

const (
	// UsageRequestBody marks a schema referenced by a request body
	UsageRequestBody UsageLocation = "request"
	// UsageResponse marks a schema referenced by a response body
	UsageResponse UsageLocation = "response"
)

// SchemaUsage records one named-schema reference made by a route.
type SchemaUsage struct {
	// SchemaName is the referenced component schema name
	SchemaName string
	// ContentType is the media type the schema is bound to
	ContentType string
	// Location tells whether the reference is in a request or response body
	Location UsageLocation
	// Status is the response status code; empty for request bodies
	Status string
}

// RouteInfo lists the named schemas one route depends on. Derived data,
// recomputed per comparison; used for cross-linking and display-time
// cross-referencing.
type RouteInfo struct {
	Path    string
	Method  string
	Schemas []SchemaUsage
}

// RouteKey builds the "METHOD path" subject name used for route results.
func RouteKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// CompareRoutes diffs every path/method operation of two documents, folding
// in cross-linked violations from schemaResults, and returns one MatchResult
// per affected route sorted by route key.
func CompareRoutes(baseDoc, currentDoc *parser.Document, schemaResults []MatchResult) []MatchResult {
	return New().CompareRoutes(baseDoc, currentDoc, schemaResults)
}

type routeComparison struct {
	baseDoc     *parser.Document
	currentDoc  *parser.Document
	schemaIndex map[string]MatchResult
	logger      parser.Logger
}

func indexSchemaResults(results []MatchResult) map[string]MatchResult {
	index := make(map[string]MatchResult, len(results))
	for _, r := range results {
		index[r.Name] = r
	}
	return index
}

func (c *routeComparison) compare() []MatchResult {
	paths := mapset.NewThreadUnsafeSetFromMapKeys(c.baseDoc.Paths)
	paths.Append(sortedKeys(c.currentDoc.Paths)...)

	var results []MatchResult
	for _, path := range mapset.Sorted(paths) {
		baseItem := c.baseDoc.Paths[path]
		currentItem := c.currentDoc.Paths[path]
		for _, method := range parser.HTTPMethods {
			if violations := c.compareOperation(path, method, baseItem.Operation(method), currentItem.Operation(method)); len(violations) > 0 {
				results = append(results, newMatchResult(RouteKey(method, path), violations))
			}
		}
	}
	return results
}

// compareOperation diffs one path+method pair. Presence rules run when the
// operation exists on one side only; detail rules run when it exists on both
// and is not structurally identical. Schema dependencies of the current
// operation are always cross-linked, so a textually unchanged route still
// reports instability in the schemas it uses.
func (c *routeComparison) compareOperation(path, method string, base, current *parser.Operation) []Violation {
	if base == nil && current == nil {
		return nil
	}

	var violations []Violation
	switch {
	case base == nil || current == nil:
		for _, rule := range routePresenceRules {
			violations = append(violations, rule.Detect(path, method, base, current)...)
		}
	case !base.Equals(current):
		c.logger.Debug("operation changed", "route", RouteKey(method, path))
		for _, rule := range routeDetailRules {
			violations = append(violations, rule.Detect(path, method, base, current)...)
		}
	}

	if current != nil {
		usages := extractSchemaUsage(current)
		violations = append(violations, crossLinkSchemaViolations(usages, c.schemaIndex)...)
	}
	return violations
}

// extractSchemaUsage collects the named schemas an operation binds to its
// request body and response bodies. Inline schemas carry no name and are not
// listed.
func extractSchemaUsage(op *parser.Operation) []SchemaUsage {
	var usages []SchemaUsage
	if op.RequestBody != nil {
		for _, contentType := range sortedKeys(op.RequestBody.Content) {
			mt := op.RequestBody.Content[contentType]
			if mt == nil {
				continue
			}
			if name, ok := refSchemaName(mt.Schema); ok {
				usages = append(usages, SchemaUsage{
					SchemaName:  name,
					ContentType: contentType,
					Location:    UsageRequestBody,
				})
			}
		}
	}
	for _, status := range sortedKeys(op.Responses) {
		resp := op.Responses[status]
		if resp == nil {
			continue
		}
		for _, contentType := range sortedKeys(resp.Content) {
			mt := resp.Content[contentType]
			if mt == nil {
				continue
			}
			if name, ok := refSchemaName(mt.Schema); ok {
				usages = append(usages, SchemaUsage{
					SchemaName:  name,
					ContentType: contentType,
					Location:    UsageResponse,
					Status:      status,
				})
			}
		}
	}
	return usages
}

// AllRoutes lists every operation in the document together with its named
// schema dependencies, sorted by path then method order. Used for
// display-time cross-referencing, not for compatibility judgement.
func AllRoutes(doc *parser.Document) []RouteInfo {
	if doc == nil {
		return nil
	}
	var routes []RouteInfo
	for _, path := range sortedKeys(doc.Paths) {
		item := doc.Paths[path]
		for _, method := range parser.HTTPMethods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			routes = append(routes, RouteInfo{
				Path:    path,
				Method:  strings.ToUpper(method),
				Schemas: extractSchemaUsage(op),
			})
		}
	}
	return routes
}
