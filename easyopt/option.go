package easyopt

// Option is the type-erased view of an option that the registry and the
// parser work with. It is implemented by *Flag and *ValueOption[T].
type Option interface {
	IsPresent() bool
	IsRequired() bool
	HasParameter() bool
	IsParameterRequired() bool
	UsageText() string
	ParameterUsageName() string

	markPresent()
	setValue(raw string) error
	setDefault(raw string) error
}

// Flag is an option without a parameter. Its value is its presence.
type Flag struct {
	usage    string
	required bool
	present  bool
}

// NewFlag creates an optional flag described by usage.
func NewFlag(usage string) *Flag {
	return &Flag{usage: usage}
}

// Required makes the flag mandatory and returns it for chaining.
func (f *Flag) Required() *Flag {
	f.required = true
	return f
}

// Value reports whether the flag was given.
func (f *Flag) Value() bool { return f.present }

func (f *Flag) IsPresent() bool            { return f.present }
func (f *Flag) IsRequired() bool           { return f.required }
func (f *Flag) HasParameter() bool         { return false }
func (f *Flag) IsParameterRequired() bool  { return false }
func (f *Flag) UsageText() string          { return f.usage }
func (f *Flag) ParameterUsageName() string { return "" }

func (f *Flag) markPresent()            { f.present = true }
func (f *Flag) setValue(string) error   { return errNoParameter }
func (f *Flag) setDefault(string) error { return errNoParameter }

// ValueOption is an option carrying a typed Parameter.
type ValueOption[T any] struct {
	usage    string
	required bool
	present  bool
	param    *Parameter[T]
}

// NewOption creates an optional option whose value is parsed by param.
// It panics if param is nil.
func NewOption[T any](usage string, param *Parameter[T]) *ValueOption[T] {
	if param == nil {
		panic("easyopt: NewOption called with a nil parameter")
	}
	return &ValueOption[T]{usage: usage, param: param}
}

// Required makes the option mandatory and returns it for chaining.
func (o *ValueOption[T]) Required() *ValueOption[T] {
	o.required = true
	return o
}

// Value returns the last value set from the command line, or the
// parameter's default.
func (o *ValueOption[T]) Value() T { return o.param.Value() }

// Parameter returns the underlying parameter.
func (o *ValueOption[T]) Parameter() *Parameter[T] { return o.param }

func (o *ValueOption[T]) IsPresent() bool            { return o.present }
func (o *ValueOption[T]) IsRequired() bool           { return o.required }
func (o *ValueOption[T]) HasParameter() bool         { return true }
func (o *ValueOption[T]) IsParameterRequired() bool  { return o.param.IsRequired() }
func (o *ValueOption[T]) UsageText() string          { return o.usage }
func (o *ValueOption[T]) ParameterUsageName() string { return o.param.UsageName() }

func (o *ValueOption[T]) markPresent()                { o.present = true }
func (o *ValueOption[T]) setValue(raw string) error   { return o.param.set(raw) }
func (o *ValueOption[T]) setDefault(raw string) error { return o.param.setDefault(raw) }
