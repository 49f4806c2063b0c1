package differ

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/apidrift/apidrift/parser"
)

// paramIdentity is how parameters are matched across versions. Moving a
// parameter between locations counts as a removal plus an addition.
type paramIdentity struct {
	name string
	in   string
}

func paramIdentities(params []*parser.Parameter) mapset.Set[paramIdentity] {
	set := mapset.NewThreadUnsafeSet[paramIdentity]()
	for _, p := range params {
		if p == nil {
			continue
		}
		set.Add(paramIdentity{name: p.Name, in: p.In})
	}
	return set
}

// RouteAddedRule fires when an operation exists only in the current
// document.
type RouteAddedRule struct{}

// Name implements RouteRule.
func (RouteAddedRule) Name() string { return "RouteAdded" }

// Detect implements RouteRule.
func (r RouteAddedRule) Detect(path, method string, base, current *parser.Operation) []Violation {
	if base != nil || current == nil {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: fmt.Sprintf("Route '%s' was added", RouteKey(method, path)),
		Level:       SeverityChange,
		Anchor:      RouteAnchor(),
		Category:    CategoryEndpoint,
	}}
}

// RouteRemovedRule fires when an operation exists only in the base
// document.
type RouteRemovedRule struct{}

// Name implements RouteRule.
func (RouteRemovedRule) Name() string { return "RouteRemoved" }

// Detect implements RouteRule.
func (r RouteRemovedRule) Detect(path, method string, base, current *parser.Operation) []Violation {
	if base == nil || current != nil {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: fmt.Sprintf("Route '%s' was removed", RouteKey(method, path)),
		Level:       SeverityBreaking,
		Anchor:      RouteAnchor(),
		Category:    CategoryEndpoint,
	}}
}

// RouteDescriptionChangedRule fires when the description text changed
// between two non-empty values. Introducing a description from nothing is
// not reported.
type RouteDescriptionChangedRule struct{}

// Name implements RouteRule.
func (RouteDescriptionChangedRule) Name() string { return "RouteDescriptionChanged" }

// Detect implements RouteRule.
func (r RouteDescriptionChangedRule) Detect(_, _ string, base, current *parser.Operation) []Violation {
	if base == nil || current == nil {
		return nil
	}
	if base.Description == "" || current.Description == "" || base.Description == current.Description {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: "Description changed",
		Level:       SeverityChange,
		Anchor:      RouteAnchor(),
		Category:    CategoryEndpoint,
	}}
}

// RouteSummaryChangedRule fires when the summary text changed between two
// non-empty values.
type RouteSummaryChangedRule struct{}

// Name implements RouteRule.
func (RouteSummaryChangedRule) Name() string { return "RouteSummaryChanged" }

// Detect implements RouteRule.
func (r RouteSummaryChangedRule) Detect(_, _ string, base, current *parser.Operation) []Violation {
	if base == nil || current == nil {
		return nil
	}
	if base.Summary == "" || current.Summary == "" || base.Summary == current.Summary {
		return nil
	}
	return []Violation{{
		RuleName:    r.Name(),
		Description: "Summary changed",
		Level:       SeverityChange,
		Anchor:      RouteAnchor(),
		Category:    CategoryEndpoint,
	}}
}

// RequiredParameterAddedRule fires for each required parameter in the
// current operation whose (name, in) identity is absent from the base.
// Existing callers do not send it, so their requests start failing.
type RequiredParameterAddedRule struct{}

// Name implements RouteRule.
func (RequiredParameterAddedRule) Name() string { return "RequiredParameterAdded" }

// Detect implements RouteRule.
func (r RequiredParameterAddedRule) Detect(_, _ string, base, current *parser.Operation) []Violation {
	if base == nil || current == nil {
		return nil
	}
	baseParams := paramIdentities(base.Parameters)
	var violations []Violation
	for _, p := range current.Parameters {
		if p == nil || !p.Required {
			continue
		}
		if baseParams.Contains(paramIdentity{name: p.Name, in: p.In}) {
			continue
		}
		violations = append(violations, Violation{
			RuleName:    r.Name(),
			Description: fmt.Sprintf("Required Parameter Added: %s (in: %s)", p.Name, p.In),
			Level:       SeverityBreaking,
			Anchor:      ParameterAnchor(p.Name),
			Category:    CategoryParameter,
		})
	}
	return violations
}

// ParameterRemovedRule fires for each base parameter whose (name, in)
// identity is absent from the current operation.
type ParameterRemovedRule struct{}

// Name implements RouteRule.
func (ParameterRemovedRule) Name() string { return "ParameterRemoved" }

// Detect implements RouteRule.
func (r ParameterRemovedRule) Detect(_, _ string, base, current *parser.Operation) []Violation {
	if base == nil || current == nil {
		return nil
	}
	currentParams := paramIdentities(current.Parameters)
	var violations []Violation
	for _, p := range base.Parameters {
		if p == nil {
			continue
		}
		if currentParams.Contains(paramIdentity{name: p.Name, in: p.In}) {
			continue
		}
		violations = append(violations, Violation{
			RuleName:    r.Name(),
			Description: fmt.Sprintf("Parameter Removed: %s (in: %s)", p.Name, p.In),
			Level:       SeverityBreaking,
			Anchor:      ParameterAnchor(p.Name),
			Category:    CategoryParameter,
		})
	}
	return violations
}

// ResponseStatusAddedRule fires for each status code present only in the
// current operation's responses.
type ResponseStatusAddedRule struct{}

// Name implements RouteRule.
func (ResponseStatusAddedRule) Name() string { return "ResponseStatusAdded" }

// Detect implements RouteRule.
func (r ResponseStatusAddedRule) Detect(_, _ string, base, current *parser.Operation) []Violation {
	if base == nil || current == nil {
		return nil
	}
	baseStatuses := mapset.NewThreadUnsafeSetFromMapKeys(base.Responses)
	currentStatuses := mapset.NewThreadUnsafeSetFromMapKeys(current.Responses)
	var violations []Violation
	for _, status := range mapset.Sorted(currentStatuses.Difference(baseStatuses)) {
		violations = append(violations, Violation{
			RuleName:    r.Name(),
			Description: fmt.Sprintf("Response Status Added: %s", status),
			Level:       SeverityChange,
			Anchor:      ResponseStatusAnchor(status),
			Category:    CategoryResponse,
		})
	}
	return violations
}

// ResponseStatusRemovedRule fires for each status code present only in the
// base operation's responses. Clients switching on the removed status may
// mishandle the replacement.
type ResponseStatusRemovedRule struct{}

// Name implements RouteRule.
func (ResponseStatusRemovedRule) Name() string { return "ResponseStatusRemoved" }

// Detect implements RouteRule.
func (r ResponseStatusRemovedRule) Detect(_, _ string, base, current *parser.Operation) []Violation {
	if base == nil || current == nil {
		return nil
	}
	baseStatuses := mapset.NewThreadUnsafeSetFromMapKeys(base.Responses)
	currentStatuses := mapset.NewThreadUnsafeSetFromMapKeys(current.Responses)
	var violations []Violation
	for _, status := range mapset.Sorted(baseStatuses.Difference(currentStatuses)) {
		violations = append(violations, Violation{
			RuleName:    r.Name(),
			Description: fmt.Sprintf("Response Status Removed: %s", status),
			Level:       SeverityWarning,
			Anchor:      ResponseStatusAnchor(status),
			Category:    CategoryResponse,
		})
	}
	return violations
}

// RequestSchemaChangedRule fires when the named schema bound to a request
// body content type differs between versions. Inline schemas are diffed
// structurally elsewhere and are skipped here.
type RequestSchemaChangedRule struct{}

// Name implements RouteRule.
func (RequestSchemaChangedRule) Name() string { return "RequestSchemaChanged" }

// Detect implements RouteRule.
func (r RequestSchemaChangedRule) Detect(_, _ string, base, current *parser.Operation) []Violation {
	if base == nil || current == nil || base.RequestBody == nil || current.RequestBody == nil {
		return nil
	}
	var violations []Violation
	for _, contentType := range sortedKeys(base.RequestBody.Content) {
		baseMT := base.RequestBody.Content[contentType]
		currentMT := current.RequestBody.Content[contentType]
		if baseMT == nil || currentMT == nil {
			continue
		}
		baseName, baseOK := refSchemaName(baseMT.Schema)
		currentName, currentOK := refSchemaName(currentMT.Schema)
		if !baseOK || !currentOK || baseName == currentName {
			continue
		}
		violations = append(violations, Violation{
			RuleName:    r.Name(),
			Description: fmt.Sprintf("Request schema changed from '%s' to '%s' (%s)", baseName, currentName, contentType),
			Level:       SeverityBreaking,
			Anchor:      RouteAnchor(),
			Category:    CategoryRequestBody,
		})
	}
	return violations
}

// ResponseSchemaChangedRule fires when the named schema bound to a response
// status and content type differs between versions.
type ResponseSchemaChangedRule struct{}

// Name implements RouteRule.
func (ResponseSchemaChangedRule) Name() string { return "ResponseSchemaChanged" }

// Detect implements RouteRule.
func (r ResponseSchemaChangedRule) Detect(_, _ string, base, current *parser.Operation) []Violation {
	if base == nil || current == nil {
		return nil
	}
	var violations []Violation
	for _, status := range sortedKeys(base.Responses) {
		baseResp := base.Responses[status]
		currentResp := current.Responses[status]
		if baseResp == nil || currentResp == nil {
			continue
		}
		for _, contentType := range sortedKeys(baseResp.Content) {
			baseMT := baseResp.Content[contentType]
			currentMT := currentResp.Content[contentType]
			if baseMT == nil || currentMT == nil {
				continue
			}
			baseName, baseOK := refSchemaName(baseMT.Schema)
			currentName, currentOK := refSchemaName(currentMT.Schema)
			if !baseOK || !currentOK || baseName == currentName {
				continue
			}
			violations = append(violations, Violation{
				RuleName: r.Name(),
				Description: fmt.Sprintf("Response schema changed from '%s' to '%s' (%s, status %s)",
					baseName, currentName, contentType, status),
				Level:    SeverityBreaking,
				Anchor:   ResponseStatusAnchor(status),
				Category: CategoryResponse,
			})
		}
	}
	return violations
}
