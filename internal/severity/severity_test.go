package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeLevelString(t *testing.T) {
	tests := []struct {
		name     string
		level    ChangeLevel
		expected string
	}{
		{"change level", ChangeLevelChange, "change"},
		{"warning level", ChangeLevelWarning, "warning"},
		{"breaking level", ChangeLevelBreaking, "breaking"},

		// Edge cases: invalid values
		{"unknown negative", ChangeLevel(-1), "unknown"},
		{"unknown large value", ChangeLevel(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestChangeLevelOrdering(t *testing.T) {
	assert.Less(t, ChangeLevelChange, ChangeLevelWarning)
	assert.Less(t, ChangeLevelWarning, ChangeLevelBreaking)
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		levels   []ChangeLevel
		expected ChangeLevel
	}{
		{"empty aggregates to change", nil, ChangeLevelChange},
		{"single change", []ChangeLevel{ChangeLevelChange}, ChangeLevelChange},
		{"single warning", []ChangeLevel{ChangeLevelWarning}, ChangeLevelWarning},
		{"single breaking", []ChangeLevel{ChangeLevelBreaking}, ChangeLevelBreaking},
		{"breaking dominates warning", []ChangeLevel{ChangeLevelWarning, ChangeLevelBreaking}, ChangeLevelBreaking},
		{"breaking dominates regardless of order", []ChangeLevel{ChangeLevelBreaking, ChangeLevelChange, ChangeLevelWarning}, ChangeLevelBreaking},
		{"warning dominates change", []ChangeLevel{ChangeLevelChange, ChangeLevelWarning, ChangeLevelChange}, ChangeLevelWarning},
		{"all changes stay change", []ChangeLevel{ChangeLevelChange, ChangeLevelChange}, ChangeLevelChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Aggregate(tt.levels))
		})
	}
}
