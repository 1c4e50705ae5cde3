// Package easyio holds the terminal plumbing shared by easyopt programs:
// output redirection, color detection, styled text and a levelled logger.
package easyio

import (
	stdio "io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used when no terminal size can be detected.
const DefaultWidth = 80

// IOManager centralizes IO and terminal capabilities
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	forceColor         bool
	noColor            bool
	forceColorLevel    int
	hasForceColorLevel bool
	width              int
}

// New returns a manager bound to process stdio
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// WithWidth pins the width reported by Width. Zero restores detection.
func (m *IOManager) WithWidth(w int) *IOManager { m.width = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// ForceColorLevel forces a specific color level (0=none, 1=16, 2=256, 3=truecolor).
func (m *IOManager) ForceColorLevel(level int) *IOManager {
	m.forceColorLevel = level
	m.hasForceColorLevel = true
	return m
}

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal.
func (m *IOManager) IsTTY() bool { return isTerminal(m.out) }

// Width returns the column count available for wrapped output.
func (m *IOManager) Width() int {
	if m.width > 0 {
		return m.width
	}
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if c := os.Getenv("COLUMNS"); c != "" {
		if w, err := strconv.Atoi(c); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// SupportsColor reports whether ANSI sequences should be emitted.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// ColorLevel returns 0 for none, 1 for basic, 2 for 256 colors, and 3 for truecolor.
func (m *IOManager) ColorLevel() int {
	if m.hasForceColorLevel {
		return m.forceColorLevel
	}
	if !m.SupportsColor() {
		return 0
	}
	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return 3
	}
	t := os.Getenv("TERM")
	if strings.Contains(t, "truecolor") || strings.Contains(t, "24bit") {
		return 3
	}
	if tp := os.Getenv("TERM_PROGRAM"); tp == "vscode" || tp == "zed" {
		return 3
	}
	if strings.Contains(t, "256color") {
		return 2
	}
	return 1
}

// Colorize wraps s with the given ANSI SGR code (e.g., "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, "2") }

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
