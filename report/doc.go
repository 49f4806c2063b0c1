// Package report renders comparison results for humans and machines.
//
// The HTML renderer produces a self-contained report page: summary counts,
// grouped repeated findings, and per-schema/per-route violation listings with
// severity styling. The JSON renderer emits the same data as a stable
// machine-readable structure for CI pipelines.
package report
