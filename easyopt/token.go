package easyopt

import (
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-easyopt/internal/fuzzy"
	"github.com/dzonerzy/go-easyopt/internal/intern"
)

// Limits for the "did you mean" hint on unknown long options.
const (
	suggestionDistance = 2
	maxSuggestions     = 3
)

// TokenKind classifies a Token.
type TokenKind int

const (
	TokenDivision TokenKind = iota
	TokenShortOption
	TokenLongOption
	TokenPlainArgument
)

func (k TokenKind) String() string {
	switch k {
	case TokenDivision:
		return "division"
	case TokenShortOption:
		return "short"
	case TokenLongOption:
		return "long"
	case TokenPlainArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// IsOption reports whether k is a short or long option.
func (k TokenKind) IsOption() bool {
	return k == TokenShortOption || k == TokenLongOption
}

// Token is one piece of a raw argument. A clustered argument like "-abc"
// yields several tokens sharing the same Raw text.
type Token struct {
	Kind TokenKind
	// Raw is the whole argument the token came from. For a plain argument
	// it is also the argument text.
	Raw  string
	Name string
	// Parameter is the inline value ("-ovalue", "--opt=value"). HasParameter
	// distinguishes "--opt=" from "--opt".
	Parameter    string
	HasParameter bool
}

// Spelling returns the option name with its dashes as typed.
func (t Token) Spelling() string {
	if t.Kind == TokenShortOption {
		return shortPrefix + t.Name
	}
	return longPrefix + t.Name
}

// Tokenize splits one raw argument into tokens, checking option names
// against reg.
func Tokenize(arg string, reg *Registry) ([]Token, error) {
	return appendTokens(nil, arg, reg)
}

// appendTokens is Tokenize writing into dst so the parser can reuse one
// buffer across arguments.
func appendTokens(dst []Token, arg string, reg *Registry) ([]Token, error) {
	switch {
	case arg == division:
		return append(dst, Token{Kind: TokenDivision, Raw: arg}), nil
	case isIllegalOption(arg):
		return dst, newError(ErrorTypeIllegalOption, "illegal option %s", arg).withOption(arg)
	case isShortCluster(arg):
		return appendShortOptions(dst, arg, reg)
	case isLongOption(arg):
		return appendLongOption(dst, arg, reg)
	default:
		return append(dst, Token{Kind: TokenPlainArgument, Raw: arg}), nil
	}
}

// isShortCluster reports whether arg looks like "-x..." with x a valid
// option rune. A lone "-" is a plain argument.
func isShortCluster(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(arg[1:])
	return isOptionStart(r)
}

// appendShortOptions walks the cluster left to right. The first option that
// takes a parameter swallows whatever follows it.
func appendShortOptions(dst []Token, arg string, reg *Registry) ([]Token, error) {
	rest := arg[len(shortPrefix):]
	for i := 0; i < len(rest); {
		r, size := utf8.DecodeRuneInString(rest[i:])
		i += size

		name := intern.InternRune(r)
		opt := reg.FindByName(name)
		if opt == nil {
			return dst, newError(ErrorTypeUnknownOption, "option -%s is not defined", name).
				withOption(shortPrefix + name)
		}

		tok := Token{Kind: TokenShortOption, Raw: arg, Name: name}
		if opt.HasParameter() {
			if i < len(rest) {
				tok.Parameter = rest[i:]
				tok.HasParameter = true
			}
			return append(dst, tok), nil
		}
		dst = append(dst, tok)
	}
	return dst, nil
}

func appendLongOption(dst []Token, arg string, reg *Registry) ([]Token, error) {
	name, param, hasParam := strings.Cut(arg[len(longPrefix):], "=")
	if !reg.ContainsName(name) {
		err := newError(ErrorTypeUnknownOption, "option --%s is not defined", name).withOption(longPrefix + name)
		if names := fuzzy.FindSuggestions(name, reg.longNames(), suggestionDistance, maxSuggestions); len(names) > 0 {
			err.withSuggestion("did you mean " + joinSpellings(names) + "?")
		}
		return dst, err
	}
	return append(dst, Token{
		Kind:         TokenLongOption,
		Raw:          arg,
		Name:         intern.Intern(name),
		Parameter:    param,
		HasParameter: hasParam,
	}), nil
}

// joinSpellings renders long names as "--a", "--a or --b", "--a, --b or --c".
func joinSpellings(names []string) string {
	spelled := make([]string, len(names))
	for i, n := range names {
		spelled[i] = longPrefix + n
	}
	if len(spelled) == 1 {
		return spelled[0]
	}
	last := len(spelled) - 1
	return strings.Join(spelled[:last], ", ") + " or " + spelled[last]
}
