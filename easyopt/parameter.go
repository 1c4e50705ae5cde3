package easyopt

import (
	"fmt"
	"time"
)

// ConvertFunc turns the raw command line text into a typed value.
type ConvertFunc[T any] func(raw string) (T, error)

// Parameter converts, validates and stores the value of a ValueOption.
type Parameter[T any] struct {
	convert      ConvertFunc[T]
	usageName    string
	required     bool
	defaultValue T
	constraints  []Constraint[T]

	value      T
	hasBeenSet bool
}

// NewParameter creates an optional parameter shown as usageName in help
// output and converted with convert.
func NewParameter[T any](usageName string, convert ConvertFunc[T]) *Parameter[T] {
	if convert == nil {
		panic("easyopt: NewParameter called with a nil converter")
	}
	return &Parameter[T]{convert: convert, usageName: usageName}
}

// Required makes a value mandatory whenever the option is given.
func (p *Parameter[T]) Required() *Parameter[T] {
	p.required = true
	return p
}

// Default sets the value reported when the option is never given a value.
func (p *Parameter[T]) Default(v T) *Parameter[T] {
	p.defaultValue = v
	return p
}

// AddConstraint appends constraints. They run in the order added.
func (p *Parameter[T]) AddConstraint(cs ...Constraint[T]) *Parameter[T] {
	p.constraints = append(p.constraints, cs...)
	return p
}

// Value returns the last value set, or the default.
func (p *Parameter[T]) Value() T {
	if p.hasBeenSet {
		return p.value
	}
	return p.defaultValue
}

func (p *Parameter[T]) DefaultValue() T   { return p.defaultValue }
func (p *Parameter[T]) IsSet() bool       { return p.hasBeenSet }
func (p *Parameter[T]) IsRequired() bool  { return p.required }
func (p *Parameter[T]) UsageName() string { return p.usageName }

// CheckConstraints runs every constraint against v and returns a
// *ConstraintError for the first one that fails.
func (p *Parameter[T]) CheckConstraints(v T) error {
	if ce := p.failedConstraint(v); ce != nil {
		ce.Value = fmt.Sprint(v)
		return ce
	}
	return nil
}

func (p *Parameter[T]) failedConstraint(v T) *ConstraintError {
	for _, c := range p.constraints {
		if !c.IsValid(v) {
			return &ConstraintError{Constraint: c.String()}
		}
	}
	return nil
}

// Parse converts raw and checks it without storing anything.
func (p *Parameter[T]) Parse(raw string) (T, error) {
	var zero T
	v, err := p.convert(raw)
	if err != nil {
		return zero, &ConversionError{Value: raw, UsageName: p.usageName, Err: err}
	}
	if ce := p.failedConstraint(v); ce != nil {
		ce.Value = raw
		return zero, ce
	}
	return v, nil
}

// set stores raw only if it converts and passes every constraint.
func (p *Parameter[T]) set(raw string) error {
	v, err := p.Parse(raw)
	if err != nil {
		return err
	}
	p.value = v
	p.hasBeenSet = true
	return nil
}

func (p *Parameter[T]) setDefault(raw string) error {
	v, err := p.Parse(raw)
	if err != nil {
		return err
	}
	p.defaultValue = v
	return nil
}

// StringParameter accepts any text.
func StringParameter(usageName string) *Parameter[string] {
	return NewParameter(usageName, ConvertString)
}

// IntParameter accepts decimal integers and 0x-prefixed hexadecimal.
func IntParameter(usageName string) *Parameter[int] {
	return NewParameter(usageName, ConvertInt)
}

// FloatParameter accepts floating point numbers.
func FloatParameter(usageName string) *Parameter[float64] {
	return NewParameter(usageName, ConvertFloat)
}

// DurationParameter accepts time.ParseDuration syntax.
func DurationParameter(usageName string) *Parameter[time.Duration] {
	return NewParameter(usageName, ConvertDuration)
}

// EnumParameter accepts the keys of values and yields the mapped value.
func EnumParameter[T any](usageName string, values map[string]T, ignoreCase bool) *Parameter[T] {
	return NewParameter(usageName, ConvertEnum(values, ignoreCase))
}
