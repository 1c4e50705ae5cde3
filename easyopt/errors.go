package easyopt

import (
	"errors"
	"fmt"
)

// Kind groups errors by the stage that produced them.
type Kind int

const (
	// KindConfiguration errors come from registering options or loading defaults.
	KindConfiguration Kind = iota + 1
	// KindParse errors come from malformed or unknown option tokens.
	KindParse
	// KindParameter errors come from converting or validating a value.
	KindParameter
	// KindMissing errors report required input that never arrived.
	KindMissing
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindParse:
		return "parse"
	case KindParameter:
		return "parameter"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// ErrorType identifies the exact failure. Every ErrorType belongs to one Kind.
type ErrorType string

const (
	ErrorTypeInvalidName        ErrorType = "invalid_name"
	ErrorTypeDuplicateName      ErrorType = "duplicate_name"
	ErrorTypeRegistrationClosed ErrorType = "registration_closed"
	ErrorTypeInvalidDefaults    ErrorType = "invalid_defaults"
	ErrorTypeUnknownOption      ErrorType = "unknown_option"
	ErrorTypeIllegalOption      ErrorType = "illegal_option"
	ErrorTypeForbiddenParameter ErrorType = "forbidden_parameter"
	ErrorTypeInvalidParameter   ErrorType = "invalid_parameter"
	ErrorTypeMissingParameter   ErrorType = "missing_parameter"
	ErrorTypeMissingOption      ErrorType = "missing_option"
)

// Kind returns the category the error type belongs to.
func (t ErrorType) Kind() Kind {
	switch t {
	case ErrorTypeInvalidName, ErrorTypeDuplicateName, ErrorTypeRegistrationClosed, ErrorTypeInvalidDefaults:
		return KindConfiguration
	case ErrorTypeUnknownOption, ErrorTypeIllegalOption, ErrorTypeForbiddenParameter:
		return KindParse
	case ErrorTypeInvalidParameter:
		return KindParameter
	case ErrorTypeMissingParameter, ErrorTypeMissingOption:
		return KindMissing
	default:
		return 0
	}
}

// Error is returned by every failing operation in this package.
type Error struct {
	Kind    Kind
	Type    ErrorType
	Message string
	// Option is the option as spelled on the command line ("-o", "--output"),
	// or the bare name for configuration errors.
	Option string
	// Value is the raw offending parameter, if any.
	Value      string
	Suggestion string
	Cause      error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the conversion or constraint failure behind a parameter error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same Type, so the exported sentinels work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Type == e.Type
}

// Sentinels for errors.Is.
var (
	ErrInvalidName        = &Error{Kind: KindConfiguration, Type: ErrorTypeInvalidName, Message: "invalid option name"}
	ErrDuplicateName      = &Error{Kind: KindConfiguration, Type: ErrorTypeDuplicateName, Message: "duplicate option name"}
	ErrRegistrationClosed = &Error{Kind: KindConfiguration, Type: ErrorTypeRegistrationClosed, Message: "registration closed"}
	ErrInvalidDefaults    = &Error{Kind: KindConfiguration, Type: ErrorTypeInvalidDefaults, Message: "invalid defaults"}
	ErrUnknownOption      = &Error{Kind: KindParse, Type: ErrorTypeUnknownOption, Message: "unknown option"}
	ErrIllegalOption      = &Error{Kind: KindParse, Type: ErrorTypeIllegalOption, Message: "illegal option"}
	ErrForbiddenParameter = &Error{Kind: KindParse, Type: ErrorTypeForbiddenParameter, Message: "option cannot take a parameter"}
	ErrInvalidParameter   = &Error{Kind: KindParameter, Type: ErrorTypeInvalidParameter, Message: "invalid parameter"}
	ErrMissingParameter   = &Error{Kind: KindMissing, Type: ErrorTypeMissingParameter, Message: "missing parameter"}
	ErrMissingOption      = &Error{Kind: KindMissing, Type: ErrorTypeMissingOption, Message: "missing option"}
)

// KindOf returns the Kind of err, or 0 if err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(typ ErrorType, format string, args ...any) *Error {
	return &Error{
		Kind:    typ.Kind(),
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) withOption(option string) *Error {
	e.Option = option
	return e
}

func (e *Error) withValue(value string) *Error {
	e.Value = value
	return e
}

func (e *Error) withSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

func (e *Error) withCause(cause error) *Error {
	e.Cause = cause
	return e
}

// ConversionError reports a raw string that a ConvertFunc rejected.
type ConversionError struct {
	Value     string
	UsageName string
	Err       error
}

func (e *ConversionError) Error() string {
	if e.UsageName == "" {
		return fmt.Sprintf("cannot convert %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Value, e.UsageName, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// ConstraintError reports a converted value that failed a Constraint.
type ConstraintError struct {
	Value      string
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%q must be %s", e.Value, e.Constraint)
}

// errNoParameter is what a parameterless option returns from setValue.
var errNoParameter = errors.New("option takes no parameter")
