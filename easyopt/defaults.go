package easyopt

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"
)

// LoadDefaults reads a flat TOML table whose keys are option names and
// stores each value as that option's default. Values go through the
// option's converter and constraints, so the text form must be valid on a
// command line too. Values given on the command line still win.
//
//	tabsize = 4
//	color = "never"
func (c *CommandLine) LoadDefaults(r io.Reader) error {
	var table map[string]any
	if _, err := toml.NewDecoder(r).Decode(&table); err != nil {
		return newError(ErrorTypeInvalidDefaults, "cannot decode defaults: %v", err).withCause(err)
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		spelled := Spell(key)
		opt := c.registry.FindByName(key)
		if opt == nil {
			return newError(ErrorTypeInvalidDefaults, "unknown option %s in defaults", spelled).withOption(spelled)
		}
		if !opt.HasParameter() {
			return newError(ErrorTypeInvalidDefaults, "option %s can't have a default", spelled).withOption(spelled)
		}
		raw, err := defaultText(table[key])
		if err != nil {
			return newError(ErrorTypeInvalidDefaults, "default for %s: %v", spelled, err).withOption(spelled)
		}
		if err := opt.setDefault(raw); err != nil {
			return newError(ErrorTypeInvalidDefaults, "invalid default for %s: %v", spelled, err).
				withOption(spelled).withValue(raw).withCause(err)
		}
	}
	return nil
}

// LoadDefaultsFile is LoadDefaults on the file at path. A missing file is
// not an error.
func (c *CommandLine) LoadDefaultsFile(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return newError(ErrorTypeInvalidDefaults, "cannot open defaults: %v", err).withCause(err)
	}
	defer f.Close()
	return c.LoadDefaults(f)
}

func defaultText(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}
