// Package easyopt parses GNU style command lines into typed options.
//
// Options are declared up front and registered under one or more names:
//
//	cl := easyopt.New("List directory contents.")
//	all := easyopt.NewFlag("do not ignore entries starting with .")
//	width := easyopt.NewOption("set tab stops", easyopt.IntParameter("COLS").Required().Default(8))
//	cl.MustAdd(all, "a", "all")
//	cl.MustAdd(width, "T", "tabsize")
//	cl.ParseOrExit(os.Args[1:])
//
// Short options cluster ("-aT4"), long options take "--name=value", and
// "--" ends option processing. Plain arguments may appear between options.
package easyopt

import (
	"errors"
	"fmt"
	"os"

	easyio "github.com/dzonerzy/go-easyopt/io"
)

// osExit is swapped out by tests.
var osExit = os.Exit

// CommandLine ties a registry, a parser and the usage formatter together.
type CommandLine struct {
	description string
	registry    *Registry
	parser      *Parser
	exitCodes   *ExitCodeManager
	io          *easyio.IOManager
	logger      *easyio.Logger
	usageWidth  int
	parsed      bool
}

// New creates an empty command line. description heads the usage text.
func New(description string) *CommandLine {
	io := easyio.New()
	logger := easyio.NewLogger(io)
	reg := NewRegistry()
	return &CommandLine{
		description: description,
		registry:    reg,
		parser:      NewParser(reg).WithLogger(logger),
		exitCodes:   NewExitCodeManager(),
		io:          io,
		logger:      logger,
	}
}

// Add registers opt under names; the first name is canonical. Options can
// only be added before the first Parse.
func (c *CommandLine) Add(opt Option, names ...string) error {
	if c.parsed {
		return newError(ErrorTypeRegistrationClosed, "options cannot be added after parsing")
	}
	return c.registry.Add(opt, names...)
}

// MustAdd is Add for program setup code; it panics on error.
func (c *CommandLine) MustAdd(opt Option, names ...string) *CommandLine {
	if err := c.Add(opt, names...); err != nil {
		panic(fmt.Sprintf("easyopt: %v", err))
	}
	return c
}

// Parse processes args (without the program name).
func (c *CommandLine) Parse(args []string) error {
	c.parsed = true
	return c.parser.Parse(args)
}

// Arguments returns the plain arguments of the last Parse, in order.
func (c *CommandLine) Arguments() []string {
	return c.parser.Arguments()
}

// Registry exposes the registered options.
func (c *CommandLine) Registry() *Registry {
	return c.registry
}

// Usage renders the help text.
func (c *CommandLine) Usage() string {
	return UsageFormatter{Description: c.description, Width: c.usageWidth}.Format(c.registry)
}

// SetUsageWidth sets the column count Usage wraps to. Zero restores the default.
func (c *CommandLine) SetUsageWidth(width int) *CommandLine {
	c.usageWidth = width
	return c
}

// WithIO replaces the IO manager and rebinds the default logger to it.
func (c *CommandLine) WithIO(io *easyio.IOManager) *CommandLine {
	c.io = io
	return c.WithLogger(easyio.NewLogger(io))
}

// WithLogger replaces the logger used for parse traces and error reports.
func (c *CommandLine) WithLogger(l *easyio.Logger) *CommandLine {
	c.logger = l
	c.parser.WithLogger(l)
	return c
}

// IO returns the IO manager.
func (c *CommandLine) IO() *easyio.IOManager { return c.io }

// Logger returns the logger.
func (c *CommandLine) Logger() *easyio.Logger { return c.logger }

// ExitCodes returns the exit code mapping used by Report.
func (c *CommandLine) ExitCodes() *ExitCodeManager { return c.exitCodes }

// Report logs err, prints usage for errors caused by the command line
// itself and returns the exit code for err. A nil err reports nothing.
func (c *CommandLine) Report(err error) int {
	if err == nil {
		return c.exitCodes.Resolve(nil)
	}
	c.logger.Error("%v", err)

	var e *Error
	if errors.As(err, &e) {
		if e.Suggestion != "" {
			fmt.Fprintln(c.io.Err(), usageIndent+c.io.Faint(e.Suggestion))
		}
		if e.Kind != KindConfiguration {
			fmt.Fprintln(c.io.Err())
			fmt.Fprint(c.io.Err(), c.Usage())
		}
	}
	return c.exitCodes.Resolve(err)
}

// ParseOrExit parses args and, on failure, reports the error and exits.
func (c *CommandLine) ParseOrExit(args []string) {
	if err := c.Parse(args); err != nil {
		osExit(c.Report(err))
	}
}
