package starlang

import (
	"fmt"
	"strings"
)

// Tokenizer scans a Source with a single forward-moving byte cursor. The
// cursor never regresses, so a malformed input fails after at most one pass
// over the buffer.
type Tokenizer struct {
	src     *Source
	pos     int
	line    int
	column  int
	current *Token
}

func NewTokenizer(src *Source) *Tokenizer {
	return &Tokenizer{
		src:    src,
		line:   1,
		column: 1,
	}
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.next()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	if t.current != nil && t.current.Kind == TokenEOF {
		return
	}
	t.current = nil
}

// Remaining is the not-yet-scanned tail of the input.
func (t *Tokenizer) Remaining() string {
	return t.src.Content[t.pos:]
}

func (t *Tokenizer) advance() {
	if t.src.Content[t.pos] == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	t.pos++
}

func (t *Tokenizer) here() Pos {
	return Pos{
		Source: t.src,
		Line:   t.line,
		Column: t.column,
	}
}

func (t *Tokenizer) next() (*Token, error) {
	t.skipTrivia()
	startPos := t.here()
	input := t.src.Content

	if t.pos >= len(input) {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}

	if strings.HasPrefix(input[t.pos:], `"""`) {
		return t.scanMultilineString(startPos)
	}

	if input[t.pos] == '"' {
		return t.scanString(startPos)
	}

	if isAlpha(input[t.pos]) {
		return t.scanIdentifier(startPos), nil
	}

	return t.scanPunctuator(startPos)
}

// Whitespace and #-comments alternate until neither makes progress, so a
// comment followed by blank lines and another comment is all skipped.
func (t *Tokenizer) skipTrivia() {
	input := t.src.Content
	for {
		mark := t.pos
		for t.pos < len(input) && isWhitespace(input[t.pos]) {
			t.advance()
		}
		if t.pos < len(input) && input[t.pos] == '#' {
			for t.pos < len(input) && input[t.pos] != '\n' {
				t.advance()
			}
		}
		if t.pos == mark {
			return
		}
	}
}

func (t *Tokenizer) scanString(startPos Pos) (*Token, error) {
	input := t.src.Content
	t.advance()
	start := t.pos
	for t.pos < len(input) && input[t.pos] != '"' {
		t.advance()
	}
	if t.pos >= len(input) {
		return nil, WithPos(fmt.Errorf("unterminated string literal"), startPos)
	}
	value := input[start:t.pos]
	t.advance()
	return &Token{
		Kind: TokenString,
		Text: value,
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) scanMultilineString(startPos Pos) (*Token, error) {
	input := t.src.Content
	for range 3 {
		t.advance()
	}
	start := t.pos
	for t.pos+3 <= len(input) && !strings.HasPrefix(input[t.pos:], `"""`) {
		t.advance()
	}
	if t.pos+3 > len(input) {
		return nil, WithPos(fmt.Errorf("unterminated string literal"), startPos)
	}
	value := input[start:t.pos]
	for range 3 {
		t.advance()
	}
	return &Token{
		Kind: TokenString,
		Text: value,
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) scanIdentifier(startPos Pos) *Token {
	input := t.src.Content
	start := t.pos
	for t.pos < len(input) && (isAlpha(input[t.pos]) || isDigit(input[t.pos])) {
		t.advance()
	}
	text := input[start:t.pos]
	if IsKeyword(text) {
		return &Token{
			Kind: TokenKeyword,
			Text: text,
			Pos:  startPos,
		}
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: text,
		Pos:  startPos,
	}
}

func (t *Tokenizer) scanPunctuator(startPos Pos) (*Token, error) {
	input := t.src.Content
	// punctuators is ordered longest spelling first.
	for _, spelling := range punctuators {
		if strings.HasPrefix(input[t.pos:], spelling) {
			for range len(spelling) {
				t.advance()
			}
			return &Token{
				Kind: TokenPunctuator,
				Text: spelling,
				Pos:  startPos,
			}, nil
		}
	}
	return nil, WithPos(fmt.Errorf("unexpected character %q", input[t.pos]), startPos)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
