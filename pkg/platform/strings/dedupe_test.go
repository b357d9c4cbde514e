package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil input yields an empty list",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "trims and drops blanks",
			input:    []string{"  writing ", "", "   ", "sql"},
			expected: []string{"writing", "sql"},
		},
		{
			name:     "collapses inner whitespace",
			input:    []string{"code   review", "code\treview"},
			expected: []string{"code review"},
		},
		{
			name:     "keeps the first occurrence",
			input:    []string{"go", "sql", "go", "rust", "sql"},
			expected: []string{"go", "sql", "rust"},
		},
		{
			name:     "is case sensitive",
			input:    []string{"Go", "go"},
			expected: []string{"Go", "go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
