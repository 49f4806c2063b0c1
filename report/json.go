package report

import (
	"encoding/json"
	"fmt"

	"github.com/apidrift/apidrift/differ"
)

// JSONRenderer emits comparison results as a stable machine-readable
// structure for CI pipelines and tooling.
type JSONRenderer struct {
	// Indent pretty-prints the output when true.
	Indent bool
}

// NewJSONRenderer creates a JSONRenderer with indented output.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{Indent: true}
}

// FileExtension implements Renderer.
func (r *JSONRenderer) FileExtension() string { return "json" }

type jsonReport struct {
	Stats   jsonStats     `json:"stats"`
	Schemas []jsonSubject `json:"schemas"`
	Routes  []jsonSubject `json:"routes"`
}

type jsonStats struct {
	TotalChanges       int  `json:"total_changes"`
	BreakingChanges    int  `json:"breaking_changes"`
	Warnings           int  `json:"warnings"`
	NonBreakingChanges int  `json:"non_breaking_changes"`
	HasBreakingChanges bool `json:"has_breaking_changes"`
}

type jsonSubject struct {
	Name        string          `json:"name"`
	ChangeLevel string          `json:"change_level"`
	Violations  []jsonViolation `json:"violations"`
}

type jsonViolation struct {
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Anchor      string `json:"anchor"`
	Category    string `json:"category"`
}

// Render implements Renderer.
func (r *JSONRenderer) Render(result *differ.Result) ([]byte, error) {
	out := jsonReport{
		Stats: jsonStats{
			TotalChanges:       result.ViolationCount(),
			BreakingChanges:    result.BreakingCount,
			Warnings:           result.WarningCount,
			NonBreakingChanges: result.ChangeCount,
			HasBreakingChanges: result.HasBreakingChanges,
		},
		Schemas: convertJSONSubjects(result.Schemas),
		Routes:  convertJSONSubjects(result.Routes),
	}

	var (
		data []byte
		err  error
	)
	if r.Indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}

func convertJSONSubjects(results []differ.MatchResult) []jsonSubject {
	subjects := make([]jsonSubject, 0, len(results))
	for _, match := range results {
		subject := jsonSubject{
			Name:        match.Name,
			ChangeLevel: match.ChangeLevel.String(),
			Violations:  make([]jsonViolation, 0, len(match.Violations)),
		}
		for _, v := range match.Violations {
			subject.Violations = append(subject.Violations, jsonViolation{
				Rule:        v.RuleName,
				Description: v.Description,
				Level:       v.Level.String(),
				Anchor:      v.Anchor.String(),
				Category:    string(v.Category),
			})
		}
		subjects = append(subjects, subject)
	}
	return subjects
}
