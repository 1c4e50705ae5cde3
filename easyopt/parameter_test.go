//nolint:testpackage // using package name 'easyopt' to access unexported fields for testing
package easyopt

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"
)

func TestConvertInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		err  error
	}{
		{in: "0", want: 0},
		{in: "42", want: 42},
		{in: "+42", want: 42},
		{in: "-42", want: -42},
		{in: "0xFF", want: 255},
		{in: "0Xff", want: 255},
		{in: "-0x10", want: -16},
		{in: "010", want: 10},
		{in: strconv.Itoa(math.MaxInt), want: math.MaxInt},
		{in: strconv.Itoa(math.MinInt), want: math.MinInt},
		{in: "", err: errNotInteger},
		{in: "-", err: errNotInteger},
		{in: "0x", err: errNotInteger},
		{in: "--1", err: errNotInteger},
		{in: "1.5", err: errNotInteger},
		{in: "12abc", err: errNotInteger},
		{in: "0xZZ", err: errNotInteger},
		{in: "99999999999999999999999", err: errOutOfRange},
	}

	for _, tt := range tests {
		got, err := ConvertInt(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("ConvertInt(%q) error = %v, want %v", tt.in, err, tt.err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ConvertInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestConvertFloatAndDuration(t *testing.T) {
	if f, err := ConvertFloat("2.5"); err != nil || f != 2.5 {
		t.Errorf("ConvertFloat(2.5) = %v, %v", f, err)
	}
	if _, err := ConvertFloat("two"); !errors.Is(err, errNotNumber) {
		t.Errorf("ConvertFloat(two) error = %v", err)
	}
	if _, err := ConvertFloat("1e999"); !errors.Is(err, errOutOfRange) {
		t.Errorf("ConvertFloat(1e999) error = %v", err)
	}
	if d, err := ConvertDuration("1h30m"); err != nil || d != 90*time.Minute {
		t.Errorf("ConvertDuration(1h30m) = %v, %v", d, err)
	}
	if _, err := ConvertDuration("soon"); err == nil {
		t.Errorf("ConvertDuration(soon) should fail")
	}
}

type when int

const (
	whenNever when = iota
	whenAlways
	whenAuto
)

func TestConvertEnum(t *testing.T) {
	values := map[string]when{"never": whenNever, "always": whenAlways, "auto": whenAuto}

	fold := ConvertEnum(values, true)
	for in, want := range map[string]when{"never": whenNever, "ALWAYS": whenAlways, "Auto": whenAuto} {
		if got, err := fold(in); err != nil || got != want {
			t.Errorf("ignore case: convert(%q) = %v, %v", in, got, err)
		}
	}

	exact := ConvertEnum(values, false)
	if _, err := exact("ALWAYS"); err == nil {
		t.Errorf("case sensitive enum accepted ALWAYS")
	}
	_, err := exact("sometimes")
	if err == nil || err.Error() != "must be one of always, auto, never" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestParameter_SetIsAtomic(t *testing.T) {
	p := IntParameter("N").Default(5).AddConstraint(LowerBound(0), UpperBound(10))

	if p.Value() != 5 || p.IsSet() {
		t.Fatalf("fresh parameter should report its default")
	}
	if err := p.set("7"); err != nil {
		t.Fatalf("set(7) failed: %v", err)
	}
	if p.Value() != 7 || !p.IsSet() || p.DefaultValue() != 5 {
		t.Fatalf("after set(7): value=%d set=%v", p.Value(), p.IsSet())
	}

	var conv *ConversionError
	if err := p.set("x"); !errors.As(err, &conv) || conv.Value != "x" || conv.UsageName != "N" {
		t.Fatalf("set(x) = %v, want conversion error", err)
	}
	var cons *ConstraintError
	if err := p.set("11"); !errors.As(err, &cons) || cons.Constraint != "at most 10" || cons.Value != "11" {
		t.Fatalf("set(11) = %v, want constraint error", err)
	}
	if p.Value() != 7 {
		t.Errorf("failed sets changed the value to %d", p.Value())
	}
}

func TestParameter_ConstraintOrder(t *testing.T) {
	var calls []string
	record := func(name string, ok bool) Constraint[int] {
		return Predicate(name, func(int) bool {
			calls = append(calls, name)
			return ok
		})
	}
	p := IntParameter("N").AddConstraint(record("first", true), record("second", false), record("third", true))

	err := p.CheckConstraints(3)
	var cons *ConstraintError
	if !errors.As(err, &cons) || cons.Constraint != "second" || cons.Value != "3" {
		t.Fatalf("CheckConstraints = %v", err)
	}
	if len(calls) != 2 {
		t.Errorf("constraints after the first failure must not run, calls=%v", calls)
	}
}

func TestParameter_SetDefault(t *testing.T) {
	p := StringParameter("WHEN").AddConstraint(OneOf([]string{"never", "auto"}, false))
	if err := p.setDefault("auto"); err != nil || p.Value() != "auto" || p.IsSet() {
		t.Fatalf("setDefault(auto): %v value=%q", err, p.Value())
	}
	if err := p.setDefault("always"); err == nil || p.DefaultValue() != "auto" {
		t.Fatalf("invalid default must be rejected without changes")
	}
}

func TestConstraints(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ref.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	stamp := regexp.MustCompile(`^((\d\d)?\d\d)?(\d){8}(\.\d\d)?$`)

	tests := []struct {
		name string
		ok   bool
		got  bool
	}{
		{"lower bound equal", true, LowerBound(0).IsValid(0)},
		{"lower bound below", false, LowerBound(0).IsValid(-1)},
		{"upper bound float", true, UpperBound(1.5).IsValid(1.5)},
		{"between inside", true, Between(1, 3).IsValid(2)},
		{"between outside", false, Between(1, 3).IsValid(4)},
		{"one of exact", true, OneOf([]string{"locale", "shell"}, false).IsValid("shell")},
		{"one of wrong case", false, OneOf([]string{"locale", "shell"}, false).IsValid("Shell")},
		{"one of folded", true, OneOf([]string{"locale", "shell"}, true).IsValid("SHELL")},
		{"one of folded sharp s", true, OneOf([]string{"straße"}, true).IsValid("STRASSE")},
		{"existing file", true, ExistingFile().IsValid(file)},
		{"existing file is dir", false, ExistingFile().IsValid(dir)},
		{"missing file", false, ExistingFile().IsValid(filepath.Join(dir, "nope"))},
		{"existing dir", true, ExistingDir().IsValid(dir)},
		{"regexp match", true, MatchRegexp(stamp).IsValid("202401011200.30")},
		{"regexp no match", false, MatchRegexp(stamp).IsValid("2024")},
	}
	for _, tt := range tests {
		if tt.got != tt.ok {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.ok)
		}
	}

	if s := Between(1, 3).String(); s != "between 1 and 3" {
		t.Errorf("Between description = %q", s)
	}
	if s := OneOf([]string{"a", "b"}, true).String(); s != "one of a, b" {
		t.Errorf("OneOf description = %q", s)
	}
}

func TestNewOption_NilParameterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewOption(nil) should panic")
		}
	}()
	NewOption[int]("x", nil)
}
