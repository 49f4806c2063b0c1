package differ

import (
	"sort"
	"strings"

	"github.com/apidrift/apidrift/parser"
)

// schemaRefPrefix is the only reference shape the resolver understands.
const schemaRefPrefix = "#/components/schemas/"

// resolveSchema resolves a schema to its concrete definition within one
// document. Inline schemas resolve to themselves. A reference resolves by a
// single lookup in the document's component schemas; if the looked-up entry
// is itself a reference the result is nil (no multi-hop resolution). A nil
// result means "nothing to compare here" and is never an error.
func resolveSchema(s *parser.Schema, doc *parser.Document) *parser.Schema {
	if s == nil {
		return nil
	}
	if !s.IsRef() {
		return s
	}
	name, ok := strings.CutPrefix(s.Ref, schemaRefPrefix)
	if !ok {
		return nil
	}
	target := doc.Schema(name)
	if target == nil || target.IsRef() {
		return nil
	}
	return target
}

// refSchemaName extracts the component schema name from a reference, if the
// schema is one.
func refSchemaName(s *parser.Schema) (string, bool) {
	if !s.IsRef() {
		return "", false
	}
	return strings.CutPrefix(s.Ref, schemaRefPrefix)
}

// sortedKeys returns the keys of a string-keyed map in sorted order, for
// deterministic iteration.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
