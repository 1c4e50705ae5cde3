package easyopt

import (
	"errors"
	"reflect"
)

// ExitError requests a specific exit code from Report.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

// DefaultExitCodes returns the stock codes.
func DefaultExitCodes() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps errors to process exit codes.
type ExitCodeManager struct {
	codesByKind map[Kind]int
	codesByType map[ErrorType]int
	codesByErr  map[reflect.Type]int
	defaults    ExitCodeDefaults
}

// NewExitCodeManager returns a manager wired with the default codes:
// configuration errors are general errors, parse and missing errors are
// misusage and parameter errors are validation failures.
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByKind: make(map[Kind]int),
		codesByType: make(map[ErrorType]int),
		codesByErr:  make(map[reflect.Type]int),
	}
	return m.Default(DefaultExitCodes())
}

// Default replaces the default codes and rewires the per-kind mapping.
func (m *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	m.defaults = d
	m.codesByKind[KindConfiguration] = d.GeneralError
	m.codesByKind[KindParse] = d.MisusageError
	m.codesByKind[KindMissing] = d.MisusageError
	m.codesByKind[KindParameter] = d.ValidationError
	return m
}

// DefineKind overrides the code for every error of kind k.
func (m *ExitCodeManager) DefineKind(k Kind, code int) *ExitCodeManager {
	m.codesByKind[k] = code
	return m
}

// DefineType overrides the code for one error type. It wins over DefineKind.
func (m *ExitCodeManager) DefineType(t ErrorType, code int) *ExitCodeManager {
	m.codesByType[t] = code
	return m
}

// DefineError maps errors of the same dynamic type as err, found anywhere
// in the chain, to code. Used for application errors that are not *Error.
func (m *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return m
	}
	m.codesByErr[reflect.TypeOf(err)] = code
	return m
}

// Resolve converts an error to an exit code.
// Precedence:
//  1. *ExitError
//  2. *Error by type, then by kind
//  3. DefineError mappings
//  4. GeneralError
func (m *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return m.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var e *Error
	if errors.As(err, &e) {
		if code, ok := m.codesByType[e.Type]; ok {
			return code
		}
		if code, ok := m.codesByKind[e.Kind]; ok {
			return code
		}
	}

	for t, code := range m.codesByErr {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}
	return m.defaults.GeneralError
}
