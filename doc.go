// Package apidrift provides tools for comparing OpenAPI Specification (OAS)
// documents and classifying the differences by compatibility impact.
//
// apidrift answers one question: can an existing client of the base API
// version keep working against the current version? It compares the named
// component schemas and the path/method operations of two OAS 3.x documents
// and reports every semantic difference as a violation with one of three
// change levels: Breaking, Warning, or Change.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - parser: Load OpenAPI documents from YAML or JSON into a typed model
//   - differ: Compare two parsed documents and classify the differences
//   - report: Render comparison results as HTML or JSON reports
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/apidrift/apidrift
//
// # Quick Start
//
// Compare two specifications:
//
//	import "github.com/apidrift/apidrift/differ"
//
//	result, err := differ.CompareWithOptions(
//	    differ.WithBaseFilePath("api-v1.yaml"),
//	    differ.WithCurrentFilePath("api-v2.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, schema := range result.Schemas {
//	    fmt.Printf("%s: %s\n", schema.Name, schema.ChangeLevel)
//	}
//
// The apidrift CLI wraps the same engine:
//
//	apidrift diff api-v1.yaml api-v2.yaml -o report.html
package apidrift
