package easyopt

import "slices"

// Registry maps every registered name to its Option and remembers, per
// option, the full list of synonyms keyed by the first (canonical) name.
type Registry struct {
	options  map[string]Option
	synonyms map[string][]string
	order    []string
	names    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		options:  make(map[string]Option),
		synonyms: make(map[string][]string),
	}
}

// Add registers opt under every name in names. The first name becomes the
// canonical one. Either every name is registered or, on error, none is.
func (r *Registry) Add(opt Option, names ...string) error {
	if opt == nil {
		return newError(ErrorTypeInvalidName, "cannot register a nil option")
	}
	if len(names) == 0 {
		return newError(ErrorTypeInvalidName, "an option must have at least one name")
	}

	for i, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
		if _, taken := r.options[name]; taken || slices.Contains(names[:i], name) {
			return newError(ErrorTypeDuplicateName, "option name %q is already assigned", name).withOption(name)
		}
	}

	for _, name := range names {
		r.options[name] = opt
	}
	r.names = append(r.names, names...)
	r.synonyms[names[0]] = slices.Clone(names)
	r.order = append(r.order, names[0])
	return nil
}

// FindByName returns the option registered under name, or nil.
func (r *Registry) FindByName(name string) Option {
	return r.options[name]
}

// ContainsName reports whether name is registered.
func (r *Registry) ContainsName(name string) bool {
	_, ok := r.options[name]
	return ok
}

// ListCanonicalNames returns one name per option, in registration order.
func (r *Registry) ListCanonicalNames() []string {
	return slices.Clone(r.order)
}

// FindSynonymsByName returns every name of the option whose canonical name
// is canonical, in registration order, or nil if there is no such option.
func (r *Registry) FindSynonymsByName(canonical string) []string {
	return slices.Clone(r.synonyms[canonical])
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.order)
}

// longNames lists every registered long name; used for suggestions.
func (r *Registry) longNames() []string {
	out := make([]string, 0, len(r.names))
	for _, n := range r.names {
		if !IsShortName(n) {
			out = append(out, n)
		}
	}
	return out
}
