//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import (
	"strings"
	"testing"
)

func TestFindSuggestions_Best(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
	}{
		{
			name:       "exact match excluded",
			input:      "help",
			candidates: []string{"help", "version", "verbose"},
			expected:   "",
		},
		{
			name:       "simple typo",
			input:      "hep",
			candidates: []string{"help", "version", "verbose"},
			expected:   "help",
		},
		{
			name:       "single character difference",
			input:      "port",
			candidates: []string{"host", "post", "part"},
			expected:   "post",
		},
		{
			name:       "no good match",
			input:      "xyz",
			candidates: []string{"help", "version", "verbose"},
			expected:   "",
		},
		{
			name:       "too short",
			input:      "x",
			candidates: []string{"help", "version"},
			expected:   "",
		},
		{
			name:       "case insensitive",
			input:      "HEP",
			candidates: []string{"help", "version"},
			expected:   "help",
		},
		{
			name:       "non ascii names",
			input:      "grösse",
			candidates: []string{"größe", "farbe"},
			expected:   "größe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := strings.Join(FindSuggestions(tt.input, tt.candidates, 2, 1), "")
			if result != tt.expected {
				t.Errorf("FindSuggestions(%q, %v) = %q, want %q", tt.input, tt.candidates, result, tt.expected)
			}
		})
	}
}

func TestMatcher_FindMatchesOrdered(t *testing.T) {
	matcher := NewMatcher(2)
	matches := matcher.FindMatches("hep", []string{"help", "heap", "deep", "version"})
	if len(matches) < 2 {
		t.Fatalf("expected help and heap, got %v", matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Errorf("matches not sorted by score: %v", matches)
		}
	}
	for _, m := range matches {
		if m.Distance > matcher.maxDistance {
			t.Errorf("match %q distance %d exceeds max", m.Value, m.Distance)
		}
	}
}

func TestMatcher_Distance(t *testing.T) {
	matcher := NewMatcher(10)

	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "ab", 1},
		{"abc", "axc", 1},
		{"help", "hep", 1},
		{"kitten", "sitting", 3},
		{"ñandu", "nandu", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := matcher.distance([]rune(tt.a), []rune(tt.b))
			if result != tt.expected {
				t.Errorf("distance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestMatcher_EarlyTermination(t *testing.T) {
	matcher := NewMatcher(2)
	if d := matcher.distance([]rune("short"), []rune("verylongstring")); d != 3 {
		t.Errorf("expected maxDistance+1 for distant strings, got %d", d)
	}
	if d := matcher.distance([]rune("abcd"), []rune("wxyz")); d != 3 {
		t.Errorf("expected row cutoff at maxDistance+1, got %d", d)
	}
}

func TestScore(t *testing.T) {
	if s := score([]rune("hep"), []rune("help"), 1); s < 0.7 || s > 1.0 {
		t.Errorf("score(hep, help) = %f", s)
	}
	if s := score([]rune("xyz"), []rune("abc"), 3); s > 0.3 {
		t.Errorf("score(xyz, abc) = %f, want <= 0.3", s)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	names := []string{"help", "version", "verbose", "config"}

	suggestions := FindSuggestions("verbos", []string{"verbose", "verbs", "colour"}, 2, 1)
	if len(suggestions) != 1 || suggestions[0] != "verbose" {
		t.Errorf("FindSuggestions(verbos) = %v", suggestions)
	}
	if got := FindSuggestions("zz", names, 1, 3); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}

	got := FindSuggestions("colr", []string{"width", "colour", "color", "columns"}, 2, 2)
	if strings.Join(got, ",") != "color,colour" {
		t.Errorf("FindSuggestions(colr) = %v, want [color colour]", got)
	}
}
