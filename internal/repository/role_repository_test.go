package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnyOfNames_Dedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    AnyOfNames
		expected AnyOfNames
	}{
		{
			name:     "no duplicates",
			input:    AnyOfNames{"user", "admin"},
			expected: AnyOfNames{"user", "admin"},
		},
		{
			name:     "duplicates collapse, order preserved",
			input:    AnyOfNames{"admin", "user", "admin", "user"},
			expected: AnyOfNames{"admin", "user"},
		},
		{
			name:     "empty",
			input:    AnyOfNames{},
			expected: AnyOfNames{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Dedupe())
		})
	}
}
