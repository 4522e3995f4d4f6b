package starlang

import "slices"

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenPunctuator
	TokenKeyword
	TokenIdentifier
	TokenString
	TokenEOF
)

// String renders the canonical spelling. It is not a formatter: whitespace
// and comments of the original source are gone.
func (t *Token) String() string {
	switch t.Kind {
	case TokenString:
		return `"` + t.Text + `"`
	case TokenEOF:
		return "<eof>"
	}
	return t.Text
}

func (k TokenKind) String() string {
	switch k {
	case TokenPunctuator:
		return "punctuator"
	case TokenKeyword:
		return "keyword"
	case TokenIdentifier:
		return "identifier"
	case TokenString:
		return "string"
	case TokenEOF:
		return "eof"
	}
	return "invalid"
}

var keywords = map[string]bool{
	"and":      true,
	"break":    true,
	"continue": true,
	"def":      true,
	"elif":     true,
	"else":     true,
	"for":      true,
	"if":       true,
	"in":       true,
	"lambda":   true,
	"load":     true,
	"not":      true,
	"or":       true,
	"pass":     true,
	"return":   true,
}

func IsKeyword(text string) bool {
	return keywords[text]
}

var punctuators = []string{
	"+", "-", "*", "/", "//", "%", "**",
	"~", "&", "|", "^", "<<", ">>",
	".", ",", "=", ";", ":",
	"(", ")", "[", "]", "{", "}",
	"<", ">", ">=", "<=", "==", "!=",
	"+=", "-=", "*=", "/=", "//=", "%=",
	"&=", "|=", "^=", "<<=", ">>=",
}

func init() {
	// Longest spelling first, so "//=" wins over "//" and "/", "**" over "*".
	slices.SortStableFunc(punctuators, func(a, b string) int {
		return len(b) - len(a)
	})
}
