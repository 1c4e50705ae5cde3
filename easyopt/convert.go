package easyopt

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

var (
	errNotInteger = errors.New("not an integer")
	errNotNumber  = errors.New("not a number")
	errOutOfRange = errors.New("value out of range")
)

// ConvertString returns raw unchanged.
func ConvertString(raw string) (string, error) {
	return raw, nil
}

// ConvertInt parses a decimal integer, or a hexadecimal one when prefixed
// with 0x. A leading sign is allowed in both forms.
func ConvertInt(raw string) (int, error) {
	s, neg := raw, false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, s = 16, s[2:]
	}
	if s == "" || s[0] == '-' || s[0] == '+' {
		return 0, errNotInteger
	}
	u, err := strconv.ParseUint(s, base, strconv.IntSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errOutOfRange
		}
		return 0, errNotInteger
	}
	// allow exactly math.MinInt
	limit := uint64(1) << (strconv.IntSize - 1)
	if neg {
		if u > limit {
			return 0, errOutOfRange
		}
		return int(-u), nil //nolint:gosec // bounded above
	}
	if u >= limit {
		return 0, errOutOfRange
	}
	return int(u), nil
}

// ConvertFloat parses a 64-bit floating point number.
func ConvertFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errOutOfRange
		}
		return 0, errNotNumber
	}
	return f, nil
}

// ConvertDuration parses values such as "1h30m" or "250ms".
func ConvertDuration(raw string) (time.Duration, error) {
	return time.ParseDuration(raw)
}

// ConvertEnum returns a converter accepting the keys of values. With
// ignoreCase the keys are compared after Unicode case folding.
func ConvertEnum[T any](values map[string]T, ignoreCase bool) ConvertFunc[T] {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)
	want := errors.New("must be one of " + strings.Join(names, ", "))

	lookup := values
	if ignoreCase {
		fold := cases.Fold()
		lookup = make(map[string]T, len(values))
		for name, v := range values {
			lookup[fold.String(name)] = v
		}
	}

	return func(raw string) (T, error) {
		key := raw
		if ignoreCase {
			key = cases.Fold().String(raw)
		}
		if v, ok := lookup[key]; ok {
			return v, nil
		}
		var zero T
		return zero, want
	}
}
