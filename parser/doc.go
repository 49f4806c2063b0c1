// Package parser loads OpenAPI Specification 3.x documents into a typed,
// read-only model suitable for comparison.
//
// The model is deliberately narrow: it captures the named component schemas
// and the path/method operations that the differ package reads, and ignores
// the rest of the specification surface (security, servers, callbacks,
// webhooks). Documents are parsed from YAML or JSON; the format is detected
// from the file extension.
//
//	p := parser.New()
//	doc, err := p.Parse("openapi.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Info.Title)
//
// Parsed documents are never mutated by this module; treat them as immutable
// once returned.
package parser
