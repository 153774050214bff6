package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "comma joined with spaces",
			input:    "a, b, c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "no spaces",
			input:    "design,branding",
			expected: []string{"design", "branding"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "dangling commas",
			input:    ",seo,, 2025 ,",
			expected: []string{"seo", "2025"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, splitTags(tc.input))
		})
	}
}

func TestJoinTags(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected string
	}{
		{
			name:     "plain tags",
			input:    []string{"a", "b", "c"},
			expected: "a,b,c",
		},
		{
			name:     "tags with whitespace",
			input:    []string{" seo ", "2025"},
			expected: "seo,2025",
		},
		{
			name:     "nil slice",
			input:    nil,
			expected: "",
		},
		{
			name:     "empty entries dropped",
			input:    []string{"", "design", " "},
			expected: "design",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, joinTags(tc.input))
		})
	}
}

func TestTagsRoundTrip(t *testing.T) {
	tags := []string{"design", "branding", "seo"}
	assert.Equal(t, tags, splitTags(joinTags(tags)))
}
