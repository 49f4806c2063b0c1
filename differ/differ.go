package differ

import (
	"fmt"

	"github.com/apidrift/apidrift/parser"
)

// Differ runs the comparison engine over a pair of documents.
type Differ struct {
	// Logger receives structured diagnostics during comparison.
	// Defaults to a no-op logger.
	Logger parser.Logger
}

// New creates a new Differ instance with default settings
func New() *Differ {
	return &Differ{Logger: parser.NopLogger()}
}

// Result contains the outcome of comparing two documents.
type Result struct {
	// Schemas holds one MatchResult per component schema with violations
	Schemas []MatchResult
	// Routes holds one MatchResult per affected "METHOD path" route
	Routes []MatchResult
	// RouteInfos lists every current route with its schema dependencies
	RouteInfos []RouteInfo
	// BreakingCount is the number of breaking violations
	BreakingCount int
	// WarningCount is the number of warning violations
	WarningCount int
	// ChangeCount is the number of compatible-change violations
	ChangeCount int
	// HasBreakingChanges is true if any breaking violations were detected
	HasBreakingChanges bool
}

// tally recomputes the per-level counts from the collected results.
func (r *Result) tally() {
	r.BreakingCount, r.WarningCount, r.ChangeCount = 0, 0, 0
	for _, results := range [][]MatchResult{r.Schemas, r.Routes} {
		for _, match := range results {
			for _, v := range match.Violations {
				switch v.Level {
				case SeverityBreaking:
					r.BreakingCount++
				case SeverityWarning:
					r.WarningCount++
				case SeverityChange:
					r.ChangeCount++
				}
			}
		}
	}
	r.HasBreakingChanges = r.BreakingCount > 0
}

// ViolationCount returns the total number of violations across schemas and
// routes.
func (r *Result) ViolationCount() int {
	return r.BreakingCount + r.WarningCount + r.ChangeCount
}

// CompareSchemas diffs the component schemas of the two documents.
func (d *Differ) CompareSchemas(baseDoc, currentDoc *parser.Document) []MatchResult {
	c := &schemaComparison{
		baseDoc:    baseDoc,
		currentDoc: currentDoc,
		logger:     d.logger(),
	}
	return c.compare()
}

// CompareRoutes diffs the routes of the two documents, cross-linking the
// already-computed schema results onto every route that depends on an
// affected schema.
func (d *Differ) CompareRoutes(baseDoc, currentDoc *parser.Document, schemaResults []MatchResult) []MatchResult {
	c := &routeComparison{
		baseDoc:     baseDoc,
		currentDoc:  currentDoc,
		schemaIndex: indexSchemaResults(schemaResults),
		logger:      d.logger(),
	}
	return c.compare()
}

// Compare runs the full comparison: schemas first, then routes with
// cross-linking, plus the current document's route/schema usage listing.
func (d *Differ) Compare(baseDoc, currentDoc *parser.Document) *Result {
	schemas := d.CompareSchemas(baseDoc, currentDoc)
	result := &Result{
		Schemas:    schemas,
		Routes:     d.CompareRoutes(baseDoc, currentDoc, schemas),
		RouteInfos: AllRoutes(currentDoc),
	}
	result.tally()
	return result
}

func (d *Differ) logger() parser.Logger {
	if d.Logger == nil {
		return parser.NopLogger()
	}
	return d.Logger
}

// Option is a function that configures a compare operation
type Option func(*compareConfig) error

// compareConfig holds configuration for a compare operation
type compareConfig struct {
	// Input sources (exactly one base and one current must be set)
	baseFilePath    *string
	baseDocument    *parser.Document
	currentFilePath *string
	currentDocument *parser.Document

	logger parser.Logger
}

// CompareWithOptions compares two API descriptions using functional options.
// Inputs may be file paths or already-parsed documents.
//
// Example:
//
//	result, err := differ.CompareWithOptions(
//	    differ.WithBaseFilePath("api-v1.yaml"),
//	    differ.WithCurrentFilePath("api-v2.yaml"),
//	)
func CompareWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("differ: invalid options: %w", err)
	}

	d := New()
	if cfg.logger != nil {
		d.Logger = cfg.logger
	}

	baseDoc := cfg.baseDocument
	if cfg.baseFilePath != nil {
		p := parser.New()
		p.Logger = d.Logger
		baseDoc, err = p.Parse(*cfg.baseFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse base specification: %w", err)
		}
	}

	currentDoc := cfg.currentDocument
	if cfg.currentFilePath != nil {
		p := parser.New()
		p.Logger = d.Logger
		currentDoc, err = p.Parse(*cfg.currentFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse current specification: %w", err)
		}
	}

	return d.Compare(baseDoc, currentDoc), nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*compareConfig, error) {
	cfg := &compareConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	baseCount := 0
	if cfg.baseFilePath != nil {
		baseCount++
	}
	if cfg.baseDocument != nil {
		baseCount++
	}
	if baseCount == 0 {
		return nil, fmt.Errorf("must specify a base (use WithBaseFilePath or WithBaseDocument)")
	}
	if baseCount > 1 {
		return nil, fmt.Errorf("must specify exactly one base")
	}

	currentCount := 0
	if cfg.currentFilePath != nil {
		currentCount++
	}
	if cfg.currentDocument != nil {
		currentCount++
	}
	if currentCount == 0 {
		return nil, fmt.Errorf("must specify a current (use WithCurrentFilePath or WithCurrentDocument)")
	}
	if currentCount > 1 {
		return nil, fmt.Errorf("must specify exactly one current")
	}

	return cfg, nil
}

// WithBaseFilePath specifies a file path as the base document
func WithBaseFilePath(path string) Option {
	return func(cfg *compareConfig) error {
		cfg.baseFilePath = &path
		return nil
	}
}

// WithBaseDocument specifies an already-parsed base document
func WithBaseDocument(doc *parser.Document) Option {
	return func(cfg *compareConfig) error {
		cfg.baseDocument = doc
		return nil
	}
}

// WithCurrentFilePath specifies a file path as the current document
func WithCurrentFilePath(path string) Option {
	return func(cfg *compareConfig) error {
		cfg.currentFilePath = &path
		return nil
	}
}

// WithCurrentDocument specifies an already-parsed current document
func WithCurrentDocument(doc *parser.Document) Option {
	return func(cfg *compareConfig) error {
		cfg.currentDocument = doc
		return nil
	}
}

// WithLogger sets the logger used during parsing and comparison
func WithLogger(logger parser.Logger) Option {
	return func(cfg *compareConfig) error {
		cfg.logger = logger
		return nil
	}
}
