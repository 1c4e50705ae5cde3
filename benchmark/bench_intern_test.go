package benchmark

import (
	"testing"

	intern "github.com/dzonerzy/go-easyopt/internal/intern"
)

// Category: intern

func BenchmarkStringInterner_Intern(b *testing.B) {
	interner := intern.NewStringInterner(0)
	testStrings := []string{"all", "tabsize", "help", "version", "color"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		interner.Intern(testStrings[i%len(testStrings)])
	}
}

func BenchmarkStringInterner_InternRune(b *testing.B) {
	interner := intern.NewStringInterner(0)
	testRunes := []rune{'a', 'h', 'v', 'T', 'ß', '日'}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		interner.InternRune(testRunes[i%len(testRunes)])
	}
}

func BenchmarkGlobalIntern(b *testing.B) {
	testStrings := []string{"all", "tabsize", "help", "version", "color"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intern.Intern(testStrings[i%len(testStrings)])
	}
}
