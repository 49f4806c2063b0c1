// Package severity provides the change-level classification shared by the
// differ and report packages.
//
// The three levels are ordered from least to most severe:
// Change < Warning < Breaking
package severity

// ChangeLevel classifies the compatibility impact of a detected difference.
type ChangeLevel int

const (
	// ChangeLevelChange indicates a compatible change (additions, relaxed
	// constraints). Existing clients keep working.
	ChangeLevelChange ChangeLevel = iota

	// ChangeLevelWarning indicates a change that may break some clients
	// depending on how they consume the API (format changes, removed
	// response statuses).
	ChangeLevelWarning

	// ChangeLevelBreaking indicates a change that breaks existing clients
	// (removed schemas or routes, new required inputs, stricter types).
	ChangeLevelBreaking
)

// String returns the string representation of the change level.
func (l ChangeLevel) String() string {
	switch l {
	case ChangeLevelChange:
		return "change"
	case ChangeLevelWarning:
		return "warning"
	case ChangeLevelBreaking:
		return "breaking"
	default:
		return "unknown"
	}
}

// Aggregate combines many change levels into one overall verdict: Breaking
// if any level is Breaking, else Warning if any is Warning, else Change.
// An empty input aggregates to Change.
func Aggregate(levels []ChangeLevel) ChangeLevel {
	overall := ChangeLevelChange
	for _, l := range levels {
		if l > overall {
			overall = l
		}
	}
	return overall
}
