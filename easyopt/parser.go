package easyopt

import (
	"errors"
	"slices"

	easyio "github.com/dzonerzy/go-easyopt/io"
)

// Phase represents the current state of the parser state machine
type Phase int

const (
	// PhaseOption expects options or plain arguments.
	PhaseOption Phase = iota
	// PhaseWaitingForArgument follows an option whose parameter was not
	// given inline.
	PhaseWaitingForArgument
	// PhaseProgramArgument follows "--"; everything is a plain argument.
	PhaseProgramArgument
)

func (p Phase) String() string {
	switch p {
	case PhaseOption:
		return "option"
	case PhaseWaitingForArgument:
		return "waiting-for-argument"
	case PhaseProgramArgument:
		return "program-argument"
	default:
		return "unknown"
	}
}

// Parser drives the option state machine over an argument vector and binds
// values to the options in its registry. A Parser is not safe for
// concurrent use.
type Parser struct {
	registry *Registry
	logger   *easyio.Logger

	phase     Phase
	arguments []string
	tokens    []Token

	// option waiting for a separate parameter and how it was spelled
	pending         Option
	pendingSpelling string
}

// NewParser creates a parser over reg.
func NewParser(reg *Registry) *Parser {
	return &Parser{
		registry: reg,
		tokens:   make([]Token, 0, 8),
	}
}

// WithLogger traces phase transitions at debug level.
func (p *Parser) WithLogger(l *easyio.Logger) *Parser {
	p.logger = l
	return p
}

// Parse processes args left to right and stops at the first error.
// Option state from an earlier Parse is kept; phase and collected
// arguments start over.
func (p *Parser) Parse(args []string) error {
	p.reset()
	for _, arg := range args {
		if err := p.parseArgument(arg); err != nil {
			return err
		}
	}
	return p.finish()
}

// Arguments returns the plain arguments collected by the last Parse.
func (p *Parser) Arguments() []string {
	return slices.Clone(p.arguments)
}

// Phase returns the phase the last Parse ended in.
func (p *Parser) Phase() Phase {
	return p.phase
}

func (p *Parser) reset() {
	p.phase = PhaseOption
	p.arguments = nil
	p.tokens = p.tokens[:0]
	p.pending = nil
	p.pendingSpelling = ""
}

func (p *Parser) setPhase(next Phase, arg string) {
	if p.phase != next {
		p.logger.Debug("parser: %s -> %s at %q", p.phase, next, arg)
	}
	p.phase = next
}

func (p *Parser) parseArgument(arg string) error {
	switch p.phase {
	case PhaseProgramArgument:
		p.arguments = append(p.arguments, arg)
		return nil
	case PhaseWaitingForArgument:
		if consumed, err := p.parseWaitingForArgument(arg); consumed || err != nil {
			return err
		}
	}
	return p.parseOption(arg)
}

// parseWaitingForArgument hands arg to the pending option when its
// parameter is required. An optional parameter only ever comes inline, so
// arg is left for normal tokenizing.
func (p *Parser) parseWaitingForArgument(arg string) (bool, error) {
	opt, spelling := p.pending, p.pendingSpelling
	p.pending, p.pendingSpelling = nil, ""
	p.setPhase(PhaseOption, arg)

	if !opt.IsParameterRequired() {
		return false, nil
	}
	return true, setOptionValue(opt, spelling, arg)
}

func (p *Parser) parseOption(arg string) error {
	tokens, err := appendTokens(p.tokens[:0], arg, p.registry)
	p.tokens = tokens
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenDivision:
			p.setPhase(PhaseProgramArgument, arg)
			return nil
		case TokenPlainArgument:
			p.arguments = append(p.arguments, tok.Raw)
		case TokenShortOption, TokenLongOption:
			opt := p.registry.FindByName(tok.Name)
			opt.markPresent()
			if tok.HasParameter {
				if err := setOptionValue(opt, tok.Spelling(), tok.Parameter); err != nil {
					return err
				}
				continue
			}
			if opt.HasParameter() {
				p.pending, p.pendingSpelling = opt, tok.Spelling()
				p.setPhase(PhaseWaitingForArgument, arg)
				return nil
			}
		}
	}
	return nil
}

// finish runs the end of input checks: a dangling required parameter
// first, then the first absent required option in registration order.
func (p *Parser) finish() error {
	if p.phase == PhaseWaitingForArgument && p.pending.IsParameterRequired() {
		return newError(ErrorTypeMissingParameter, "required parameter of %s is missing", p.pendingSpelling).
			withOption(p.pendingSpelling)
	}
	for _, name := range p.registry.order {
		opt := p.registry.options[name]
		if opt.IsRequired() && !opt.IsPresent() {
			spelled := Spell(name)
			return newError(ErrorTypeMissingOption, "required option %s is missing", spelled).withOption(spelled)
		}
	}
	return nil
}

// setOptionValue binds raw to opt and turns failures into *Error values
// naming the option as it was spelled.
func setOptionValue(opt Option, spelling, raw string) error {
	err := opt.setValue(raw)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errNoParameter):
		return newError(ErrorTypeForbiddenParameter, "option %s can't have a parameter", spelling).
			withOption(spelling).withValue(raw)
	default:
		return newError(ErrorTypeInvalidParameter, "invalid %s parameter: %v", spelling, err).
			withOption(spelling).withValue(raw).withCause(err)
	}
}
