// Package intern deduplicates the short option names produced while
// tokenizing clusters such as "-lah", so repeated parses share one string
// per rune instead of allocating a new one each time.
package intern

import (
	"sync"
	"unicode/utf8"
)

// StringInterner provides thread-safe string interning
type StringInterner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewStringInterner creates a new string interner with optional pre-allocated capacity
func NewStringInterner(capacity int) *StringInterner {
	if capacity <= 0 {
		capacity = 64
	}
	return &StringInterner{
		strings: make(map[string]string, capacity),
	}
}

// Intern returns the canonical copy of s.
func (si *StringInterner) Intern(s string) string {
	si.mutex.RLock()
	if interned, ok := si.strings[s]; ok {
		si.mutex.RUnlock()
		return interned
	}
	si.mutex.RUnlock()

	si.mutex.Lock()
	defer si.mutex.Unlock()
	if interned, ok := si.strings[s]; ok {
		return interned
	}
	si.strings[s] = s
	return s
}

// InternRune returns the one-rune string for r. ASCII letters and digits
// come from a static table and never touch the map.
func (si *StringInterner) InternRune(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return singleCharStrings[r-'a']
	case r >= 'A' && r <= 'Z':
		return singleCharStrings[26+r-'A']
	case r >= '0' && r <= '9':
		return singleCharStrings[52+r-'0']
	}
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	return si.Intern(string(r))
}

// PreIntern adds names that are known to be needed ahead of time.
func (si *StringInterner) PreIntern(names []string) {
	si.mutex.Lock()
	defer si.mutex.Unlock()
	for _, s := range names {
		si.strings[s] = s
	}
}

// Len returns the number of interned strings.
func (si *StringInterner) Len() int {
	si.mutex.RLock()
	defer si.mutex.RUnlock()
	return len(si.strings)
}

// Reset removes all interned strings
func (si *StringInterner) Reset() {
	si.mutex.Lock()
	defer si.mutex.Unlock()
	clear(si.strings)
}

// a-z (0-25), A-Z (26-51), 0-9 (52-61)
var singleCharStrings = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// CommonOptionNames are long names most GNU style programs register.
var CommonOptionNames = []string{
	"help", "version", "verbose", "quiet", "output", "format", "all", "color",
}

// GlobalInterner is the process-wide interner used by the tokenizer.
var GlobalInterner = func() *StringInterner {
	si := NewStringInterner(128)
	si.PreIntern(CommonOptionNames)
	return si
}()

// Intern interns a string using the global interner
func Intern(s string) string {
	return GlobalInterner.Intern(s)
}

// InternRune interns a single rune using the global interner
func InternRune(r rune) string {
	return GlobalInterner.InternRune(r)
}
