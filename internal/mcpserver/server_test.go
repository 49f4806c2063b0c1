package mcpserver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"no path", errors.New("missing required field: openapi"), "missing required field: openapi"},
		{
			"tmp path",
			fmt.Errorf("failed to read file /tmp/specs/base.yaml: no such file"),
			"failed to read file <path>: no such file",
		},
		{
			"home path",
			errors.New("open /home/alice/api.yaml: permission denied"),
			"open <path>: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	require.True(t, result.IsError)
	require.Len(t, result.Content, 1)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[int](3)
	assert.NotNil(t, s)
	assert.Len(t, s, 0)
	assert.Equal(t, 3, cap(s))
}

func TestBuildDiffSummary(t *testing.T) {
	tests := []struct {
		name     string
		output   diffOutput
		expected string
	}{
		{"no violations", diffOutput{}, "No changes detected."},
		{
			"single compatible change",
			diffOutput{TotalViolations: 1, ChangeCount: 1},
			"1 violation found.",
		},
		{
			"multiple without breaking",
			diffOutput{TotalViolations: 3, WarningCount: 1, ChangeCount: 2},
			"3 violations found.",
		},
		{
			"one breaking",
			diffOutput{TotalViolations: 2, BreakingCount: 1, ChangeCount: 1},
			"Breaking changes detected. 2 violations found (1 breaking change).",
		},
		{
			"several breaking",
			diffOutput{TotalViolations: 5, BreakingCount: 3, WarningCount: 2},
			"Breaking changes detected. 5 violations found (3 breaking changes).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildDiffSummary(tt.output))
		})
	}
}
