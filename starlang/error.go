package starlang

import (
	"fmt"
	"strings"
)

// PosError decorates a lexical or syntactic failure with its position and a
// caret under the offending column. The text is advisory; callers branch on
// the error itself, not its wording.
type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n",
		p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column)

	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")
		for i, r := range line {
			if i >= p.Pos.Column-1 {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
