package textnorm

import (
	"strings"
	"testing"
)

var testStopwords = map[string]struct{}{
	"the": {},
	"of":  {},
	"a":   {},
	"its": {},
	"and": {},
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Hello, World!",
			expected: "hello world",
		},
		{
			name:     "replaces line breaks with spaces",
			input:    "first line\nsecond line\r\nthird",
			expected: "first line second line third",
		},
		{
			name:     "removes apostrophes before tokenizing",
			input:    "It's a Student's Guide",
			expected: "students guide",
		},
		{
			name:     "drops stopwords case-insensitively",
			input:    "The Theory OF Computation",
			expected: "theory computation",
		},
		{
			name:     "collapses repeated whitespace",
			input:    "too   many    spaces",
			expected: "too many spaces",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only stopwords",
			input:    "the of a",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Cleanup(tt.input, testStopwords)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestCleanupIdempotent(t *testing.T) {
	inputs := []string{
		"The Design and Implementation of a Log-Structured File System",
		"what's in a name?\r\nthat which we call a rose",
		"already normalized text",
	}

	for _, input := range inputs {
		once := Cleanup(input, testStopwords)
		twice := Cleanup(once, testStopwords)
		if once != twice {
			t.Errorf("Cleanup not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCleanupOutputClean(t *testing.T) {
	out := Cleanup("The Quick; Brown Fox! Jumps (Over) the Lazy Dog's back.", testStopwords)

	if strings.ContainsAny(out, punctuation) {
		t.Errorf("Output contains punctuation: %q", out)
	}
	for _, word := range strings.Fields(out) {
		if _, ok := testStopwords[word]; ok {
			t.Errorf("Output contains stopword %q: %q", word, out)
		}
	}
	if out != strings.ToLower(out) {
		t.Errorf("Output is not lowercase: %q", out)
	}
}
