//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	fuzzy "github.com/dzonerzy/go-easyopt/internal/fuzzy"
)

// Category: fuzzy (exported paths only)

var optionNames = []string{
	"all", "almost-all", "block-size", "color", "directory", "format",
	"human-readable", "inode", "reverse", "recursive", "tabsize", "width",
}

func BenchmarkMatcher_FindMatches(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindMatches("revrese", optionNames)
	}
}

func BenchmarkConvenienceFunctions(b *testing.B) {
	b.Run("FindSuggestions", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.FindSuggestions("widht", optionNames, 2, 3)
		}
	})
	b.Run("FindSuggestionsSingle", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.FindSuggestions("tabsise", optionNames, 2, 1)
		}
	})
}
