package starlang

import "fmt"

// Parser recognizes top-level statements with one token of lookahead.
// Consumed tokens are never pushed back. The only statement form currently
// in the grammar is the load statement; anything else at the top level is a
// hard failure.
type Parser struct {
	tokens TokenStream
}

func NewParser(src *Source) *Parser {
	return &Parser{
		tokens: NewTokenizer(src),
	}
}

func NewStreamParser(tokens TokenStream) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse consumes the whole input. It returns either a complete Program or
// an error, never a partial Program.
func (p *Parser) Parse() (*Program, error) {
	var program Program
	for {
		token, err := p.next()
		if err != nil {
			return nil, err
		}

		switch token.Kind {

		case TokenEOF:
			return &program, nil

		case TokenKeyword:
			if token.Text != "load" {
				return nil, WithPos(fmt.Errorf("unexpected keyword: %s", token.Text), token.Pos)
			}
			stmt, err := p.parseLoadStmt()
			if err != nil {
				return nil, err
			}
			program.Statements = append(program.Statements, stmt)

		default:
			return nil, WithPos(fmt.Errorf("unexpected token: %s", token), token.Pos)
		}
	}
}

// LoadStmt = 'load' '(' string {',' [identifier '='] string} [','] ')' .
// The load keyword was consumed by Parse.
func (p *Parser) parseLoadStmt() (*LoadStmt, error) {
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}

	module, err := p.expectKind(TokenString)
	if err != nil {
		return nil, err
	}

	var symbols []LoadSymbol
	for {
		token, err := p.next()
		if err != nil {
			return nil, err
		}
		if token.Kind != TokenPunctuator || (token.Text != "," && token.Text != ")") {
			return nil, WithPos(fmt.Errorf("expected ',' or ')' in load statement, got %s", token), token.Pos)
		}
		if token.Text == ")" {
			break
		}

		token, err = p.next()
		if err != nil {
			return nil, err
		}
		switch {

		case token.Kind == TokenPunctuator && token.Text == ")":
			// trailing comma

		case token.Kind == TokenString:
			symbols = append(symbols, LoadSymbol{
				Local:    token.Text,
				Exported: token.Text,
			})
			continue

		case token.Kind == TokenIdentifier:
			local := token.Text
			if err := p.expectPunct("="); err != nil {
				return nil, err
			}
			exported, err := p.expectKind(TokenString)
			if err != nil {
				return nil, err
			}
			symbols = append(symbols, LoadSymbol{
				Local:    local,
				Exported: exported.Text,
			})
			continue

		default:
			return nil, WithPos(fmt.Errorf("expected symbol in load statement, got %s", token), token.Pos)
		}
		break
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("expected at least one symbol in load statement")
	}

	return &LoadStmt{
		Module:  module.Text,
		Symbols: symbols,
	}, nil
}

func (p *Parser) next() (*Token, error) {
	token, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	p.tokens.Consume()
	return token, nil
}

func (p *Parser) expectPunct(spelling string) error {
	token, err := p.next()
	if err != nil {
		return err
	}
	if token.Kind != TokenPunctuator || token.Text != spelling {
		return WithPos(fmt.Errorf("expected '%s', got %s", spelling, token), token.Pos)
	}
	return nil
}

func (p *Parser) expectKind(kind TokenKind) (*Token, error) {
	token, err := p.next()
	if err != nil {
		return nil, err
	}
	if token.Kind != kind {
		return nil, WithPos(fmt.Errorf("expected %s, got %s", kind, token), token.Pos)
	}
	return token, nil
}

// Parse is the full-source convenience entry.
func Parse(src *Source) (*Program, error) {
	return NewParser(src).Parse()
}

func ParseString(content string) (*Program, error) {
	return Parse(NewSource("<input>", content))
}
