package easyopt

import (
	"cmp"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Constraint is a check applied to a converted parameter value. String
// describes what a valid value looks like, e.g. "at least 0".
type Constraint[T any] interface {
	IsValid(v T) bool
	String() string
}

type predicate[T any] struct {
	desc string
	fn   func(T) bool
}

func (p predicate[T]) IsValid(v T) bool { return p.fn(v) }
func (p predicate[T]) String() string   { return p.desc }

// Predicate builds a constraint from fn. desc completes the sentence
// "value must be ...".
func Predicate[T any](desc string, fn func(T) bool) Constraint[T] {
	return predicate[T]{desc: desc, fn: fn}
}

// LowerBound accepts values >= lo.
func LowerBound[T cmp.Ordered](lo T) Constraint[T] {
	return Predicate(fmt.Sprintf("at least %v", lo), func(v T) bool { return v >= lo })
}

// UpperBound accepts values <= hi.
func UpperBound[T cmp.Ordered](hi T) Constraint[T] {
	return Predicate(fmt.Sprintf("at most %v", hi), func(v T) bool { return v <= hi })
}

// Between accepts values in the closed range [lo, hi].
func Between[T cmp.Ordered](lo, hi T) Constraint[T] {
	return Predicate(fmt.Sprintf("between %v and %v", lo, hi), func(v T) bool { return v >= lo && v <= hi })
}

// OneOf accepts the listed strings, optionally ignoring case.
func OneOf(values []string, ignoreCase bool) Constraint[string] {
	desc := "one of " + strings.Join(values, ", ")
	if !ignoreCase {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		return Predicate(desc, func(s string) bool {
			_, ok := set[s]
			return ok
		})
	}
	fold := cases.Fold()
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[fold.String(v)] = struct{}{}
	}
	return Predicate(desc, func(s string) bool {
		_, ok := set[cases.Fold().String(s)]
		return ok
	})
}

// ExistingFile accepts paths naming an existing file that is not a directory.
func ExistingFile() Constraint[string] {
	return Predicate("an existing file", func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && !info.IsDir()
	})
}

// ExistingDir accepts paths naming an existing directory.
func ExistingDir() Constraint[string] {
	return Predicate("an existing directory", func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	})
}

// MatchRegexp accepts strings matched by re.
func MatchRegexp(re *regexp.Regexp) Constraint[string] {
	return Predicate("matching "+re.String(), re.MatchString)
}
