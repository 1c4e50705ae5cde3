package easyopt

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dzonerzy/go-easyopt/internal/pool"
)

// DefaultUsageWidth is the wrap width used when none is configured.
const DefaultUsageWidth = 80

const usageIndent = "    "

// UsageFormatter renders the options of a registry as help text:
//
//	<description>
//
//	    -o, --output=FILE
//	        usage text, wrapped
//
// Short optional parameters render as "-T[COLS]" and long ones as
// "--color[=WHEN]", since an optional parameter is only ever read inline.
type UsageFormatter struct {
	Description string
	// Width is the terminal width in columns. Lines are kept one column
	// short of it. Zero means DefaultUsageWidth.
	Width int
	// Indent prefixes each names line; usage text gets it twice.
	// Empty means four spaces.
	Indent string
}

// Format renders every option of reg in registration order.
func (f UsageFormatter) Format(reg *Registry) string {
	width := f.Width
	if width <= 0 {
		width = DefaultUsageWidth
	}

	indent := f.Indent
	if indent == "" {
		indent = usageIndent
	}

	b := pool.Buffers.Get()
	defer pool.Buffers.Put(b)

	if f.Description != "" {
		b.WriteString(f.Description)
		b.WriteString("\n\n")
	}
	for _, canonical := range reg.order {
		opt := reg.options[canonical]
		writeNames(b, indent, reg.synonyms[canonical], opt)
		if text := opt.UsageText(); strings.TrimSpace(text) != "" {
			wrapText(b, text, indent+indent, width-1)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeNames(b *bytes.Buffer, indent string, names []string, opt Option) {
	b.WriteString(indent)
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Spell(name))
	}
	if opt.HasParameter() {
		last := names[len(names)-1]
		b.WriteString(parameterSuffix(IsShortName(last), opt.IsParameterRequired(), opt.ParameterUsageName()))
	}
	b.WriteByte('\n')
}

func parameterSuffix(short, required bool, usageName string) string {
	switch {
	case short && required:
		return " " + usageName
	case short:
		return "[" + usageName + "]"
	case required:
		return "=" + usageName
	default:
		return "[=" + usageName + "]"
	}
}

// wrapText writes text word by word, each line starting with indent and
// no wider than limit display columns unless a single word is longer.
func wrapText(b *bytes.Buffer, text, indent string, limit int) {
	indentWidth := runewidth.StringWidth(indent)
	b.WriteString(indent)
	pos := indentWidth
	for i, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		switch {
		case i == 0:
		case pos+1+w > limit:
			b.WriteByte('\n')
			b.WriteString(indent)
			pos = indentWidth
		default:
			b.WriteByte(' ')
			pos++
		}
		b.WriteString(word)
		pos += w
	}
	b.WriteByte('\n')
}
