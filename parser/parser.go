package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Format identifies the serialization format of a specification file.
type Format int

const (
	// FormatUnknown indicates the format could not be determined
	FormatUnknown Format = iota
	// FormatYAML indicates a YAML document (.yaml, .yml)
	FormatYAML
	// FormatJSON indicates a JSON document (.json)
	FormatJSON
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned when a file extension is not one of
// .json, .yaml, or .yml.
var ErrUnsupportedFormat = errors.New("unsupported specification format")

// DetectFormat determines the file format from the path's extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q (supported: json, yaml, yml)", ErrUnsupportedFormat, path)
	}
}

// Parser loads OpenAPI documents from files or raw bytes.
type Parser struct {
	// Logger receives structured diagnostics during parsing.
	// Defaults to a no-op logger.
	Logger Logger
}

// New creates a new Parser with default settings
func New() *Parser {
	return &Parser{Logger: NopLogger()}
}

// Parse reads and parses the specification file at path. The format is
// detected from the file extension.
func (p *Parser) Parse(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	p.logger().Debug("parsing specification", "path", path, "format", format.String(), "bytes", len(data))

	doc, err := p.ParseBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return doc, nil
}

// ParseBytes parses raw specification bytes in the given format.
func (p *Parser) ParseBytes(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML document: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON document: %w", err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	if doc.OpenAPI == "" {
		return nil, errors.New("missing required field: openapi")
	}

	p.logger().Debug("parsed specification",
		"version", doc.OpenAPI,
		"schemas", len(doc.SchemaNames()),
		"paths", len(doc.Paths))

	return &doc, nil
}

func (p *Parser) logger() Logger {
	if p.Logger == nil {
		return NopLogger()
	}
	return p.Logger
}
