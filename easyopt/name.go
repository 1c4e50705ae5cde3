package easyopt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	shortPrefix = "-"
	longPrefix  = "--"
	division    = "--"
)

// ValidateName reports whether name can be registered as an option name.
// A single rune is a short name, anything longer is a long name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return newError(ErrorTypeInvalidName, "option name must not be empty")
	case !utf8.ValidString(name):
		return newError(ErrorTypeInvalidName, "option name %q is not valid UTF-8", name).withOption(name)
	case strings.HasPrefix(name, "-"):
		return newError(ErrorTypeInvalidName, "option name %q must not start with '-'", name).withOption(name)
	case strings.ContainsRune(name, '='):
		return newError(ErrorTypeInvalidName, "option name %q must not contain '='", name).withOption(name)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return newError(ErrorTypeInvalidName, "option name %q must not contain whitespace", name).withOption(name)
	}
	return nil
}

// IsShortName reports whether name is spelled with a single dash.
func IsShortName(name string) bool {
	return utf8.RuneCountInString(name) == 1
}

// Spell returns name the way it is typed on a command line: "-x" for short
// names, "--name" for long ones. Already prefixed names are returned as is.
func Spell(name string) string {
	switch {
	case strings.HasPrefix(name, shortPrefix):
		return name
	case IsShortName(name):
		return shortPrefix + name
	default:
		return longPrefix + name
	}
}

// isOptionStart reports whether r may follow the dash(es) of an option.
func isOptionStart(r rune) bool {
	return r != '-' && r != '=' && !unicode.IsSpace(r) && r != utf8.RuneError
}

// isIllegalOption reports whether arg is "--" followed by a single name
// rune, or starts with three dashes. Neither can be an option.
func isIllegalOption(arg string) bool {
	if strings.HasPrefix(arg, "---") {
		return true
	}
	rest, ok := strings.CutPrefix(arg, longPrefix)
	if !ok {
		return false
	}
	r, size := utf8.DecodeRuneInString(rest)
	return size == len(rest) && isOptionStart(r)
}

// isLongOption reports whether arg starts like "--na": a valid first name
// rune followed by a rune that is neither '=' nor whitespace. Anything
// after that, spaces included, belongs to the name up to the first '='.
func isLongOption(arg string) bool {
	rest, ok := strings.CutPrefix(arg, longPrefix)
	if !ok {
		return false
	}
	first, size := utf8.DecodeRuneInString(rest)
	if !isOptionStart(first) {
		return false
	}
	second, n := utf8.DecodeRuneInString(rest[size:])
	return n > 0 && second != '=' && !unicode.IsSpace(second) && second != utf8.RuneError
}
