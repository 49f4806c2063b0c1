package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/apidrift/apidrift"
	"github.com/apidrift/apidrift/differ"
)

//go:embed templates/report.html.tmpl
var reportTemplate string

// Renderer turns a comparison result into output bytes in one format.
type Renderer interface {
	Render(result *differ.Result) ([]byte, error)
	FileExtension() string
}

// HTMLRenderer renders a self-contained HTML report page.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded report template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// FileExtension implements Renderer.
func (r *HTMLRenderer) FileExtension() string { return "html" }

// Render implements Renderer.
func (r *HTMLRenderer) Render(result *differ.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, buildTemplateData(result)); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

type templateData struct {
	Stats          statsData
	GroupedChanges []groupedChange
	Routes         []routeData
	Schemas        []subjectData
	Generator      string
}

type statsData struct {
	TotalChanges       int
	BreakingChanges    int
	Warnings           int
	NonBreakingChanges int
}

type subjectData struct {
	Name             string
	ChangeLevel      string
	ChangeLevelClass string
	Differences      []differenceData
}

type differenceData struct {
	Emoji            string
	Label            string
	Description      string
	ChangeLevel      string
	ChangeLevelClass string
}

type routeData struct {
	Name                     string
	Method                   string
	Path                     string
	ChangeLevel              string
	ChangeLevelClass         string
	Differences              []differenceData
	RequestSchemas           []schemaLink
	ResponseSchemas          []schemaLink
	HasRequestSchemaChanges  bool
	HasResponseSchemaChanges bool
}

type schemaLink struct {
	SchemaName  string
	ContentType string
	StatusCode  string
	HasChanges  bool
}

// groupedChange collects one repeated finding and the subjects it applies
// to, so a property rename across twenty schemas reads as one row.
type groupedChange struct {
	Emoji            string
	Label            string
	Description      string
	ChangeLevel      string
	ChangeLevelClass string
	Subjects         []string
}

func buildTemplateData(result *differ.Result) templateData {
	data := templateData{
		Stats: statsData{
			TotalChanges:       result.ViolationCount(),
			BreakingChanges:    result.BreakingCount,
			Warnings:           result.WarningCount,
			NonBreakingChanges: result.ChangeCount,
		},
		GroupedChanges: groupChanges(result),
		Schemas:        convertSubjects(result.Schemas),
		Routes:         convertRoutes(result),
		Generator:      apidrift.UserAgent(),
	}
	return data
}

func convertSubjects(results []differ.MatchResult) []subjectData {
	subjects := make([]subjectData, 0, len(results))
	for _, match := range results {
		label, class := severityLabel(match.ChangeLevel)
		subject := subjectData{
			Name:             match.Name,
			ChangeLevel:      label,
			ChangeLevelClass: class,
		}
		for _, v := range match.Violations {
			subject.Differences = append(subject.Differences, convertViolation(v))
		}
		subjects = append(subjects, subject)
	}
	return subjects
}

func convertViolation(v differ.Violation) differenceData {
	label, class := severityLabel(v.Level)
	return differenceData{
		Emoji:            RuleEmoji(v.RuleName),
		Label:            RuleLabel(v.RuleName),
		Description:      v.Description,
		ChangeLevel:      label,
		ChangeLevelClass: class,
	}
}

// convertRoutes builds the route sections. Cross-linked schema violations
// are folded into the request/response schema link panels instead of the
// difference list, so the route card points at the schema card rather than
// repeating it.
func convertRoutes(result *differ.Result) []routeData {
	changedSchemas := make(map[string]bool, len(result.Schemas))
	for _, match := range result.Schemas {
		changedSchemas[match.Name] = true
	}

	infoByRoute := make(map[string]differ.RouteInfo, len(result.RouteInfos))
	for _, info := range result.RouteInfos {
		infoByRoute[differ.RouteKey(info.Method, info.Path)] = info
	}

	routes := make([]routeData, 0, len(result.Routes))
	for _, match := range result.Routes {
		label, class := severityLabel(match.ChangeLevel)
		method, path, _ := strings.Cut(match.Name, " ")
		route := routeData{
			Name:             match.Name,
			Method:           method,
			Path:             path,
			ChangeLevel:      label,
			ChangeLevelClass: class,
		}

		for _, v := range match.Violations {
			switch v.RuleName {
			case "RequestSchemaViolation":
				route.HasRequestSchemaChanges = true
			case "ResponseSchemaViolation":
				route.HasResponseSchemaChanges = true
			default:
				route.Differences = append(route.Differences, convertViolation(v))
			}
		}

		if info, ok := infoByRoute[match.Name]; ok {
			for _, usage := range info.Schemas {
				link := schemaLink{
					SchemaName:  usage.SchemaName,
					ContentType: usage.ContentType,
					StatusCode:  usage.Status,
					HasChanges:  changedSchemas[usage.SchemaName],
				}
				if usage.Location == differ.UsageRequestBody {
					route.RequestSchemas = append(route.RequestSchemas, link)
				} else {
					route.ResponseSchemas = append(route.ResponseSchemas, link)
				}
			}
		}

		routes = append(routes, route)
	}
	return routes
}

// groupChanges collapses identical findings that repeat across subjects into
// one entry listing every affected subject. Cross-link wrappers are skipped;
// the underlying schema finding already appears once.
func groupChanges(result *differ.Result) []groupedChange {
	type groupKey struct {
		rule        string
		description string
	}
	groups := make(map[groupKey]*groupedChange)
	var order []groupKey

	collect := func(results []differ.MatchResult) {
		for _, match := range results {
			for _, v := range match.Violations {
				if v.RuleName == "RequestSchemaViolation" || v.RuleName == "ResponseSchemaViolation" {
					continue
				}
				key := groupKey{rule: v.RuleName, description: v.Description}
				group, ok := groups[key]
				if !ok {
					diff := convertViolation(v)
					group = &groupedChange{
						Emoji:            diff.Emoji,
						Label:            diff.Label,
						Description:      diff.Description,
						ChangeLevel:      diff.ChangeLevel,
						ChangeLevelClass: diff.ChangeLevelClass,
					}
					groups[key] = group
					order = append(order, key)
				}
				group.Subjects = append(group.Subjects, match.Name)
			}
		}
	}
	collect(result.Schemas)
	collect(result.Routes)

	grouped := make([]groupedChange, 0, len(order))
	for _, key := range order {
		group := groups[key]
		sort.Strings(group.Subjects)
		grouped = append(grouped, *group)
	}
	// Widest impact first, insertion order as tiebreak.
	sort.SliceStable(grouped, func(i, j int) bool {
		return len(grouped[i].Subjects) > len(grouped[j].Subjects)
	})
	return grouped
}
