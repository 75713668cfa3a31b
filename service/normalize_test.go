package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses whitespace",
			input:    "The  plaintiff \t entered\n\ninto a contract",
			expected: "The plaintiff entered into a contract",
		},
		{
			name:     "normalizes smart quotes",
			input:    "The “agreement” was signed",
			expected: `The "agreement" was signed`,
		},
		{
			name:     "normalizes apostrophes",
			input:    "the defendant’s conduct",
			expected: "the defendant's conduct",
		},
		{
			name:     "trims surrounding space",
			input:    "   some text   ",
			expected: "some text",
		},
		{
			name:     "empty input",
			input:    "   \n\t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	input := "  The “first”  party’s\n\nclaim  "
	once := NormalizeText(input)
	assert.Equal(t, once, NormalizeText(once))
}
