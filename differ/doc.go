// Package differ implements the compatibility comparison engine.
//
// The engine takes two parsed OpenAPI documents (a base version and a current
// version) and produces severity-classified violations describing how the API
// surface changed. Two comparators drive the walk: the schema comparator
// diffs the named component schemas recursively, and the route comparator
// diffs every path/method operation. Schema findings are additionally
// cross-linked onto every route whose request or response bodies reference
// the affected schema, so a route reports instability even when the
// operation itself is textually unchanged.
//
// Every concrete check is a SchemaRule or RouteRule implementation registered
// in a fixed list; orchestration iterates the lists statically, so new checks
// are added by implementing the interface without touching the comparators.
//
// The engine is synchronous and side-effect-free. Presence is judged on
// resolved schemas: a dangling reference counts as absent on that side, and a
// name that resolves on no side is skipped rather than reported. Recursion
// into self-referential schema graphs stops at a fixed depth cap. Results are
// sorted by subject name for reproducible output.
package differ
