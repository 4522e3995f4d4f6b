package starlang

import "strings"

// Statement is a closed union; a new statement kind is a new type with an
// isStatement method.
type Statement interface {
	isStatement()
	String() string
}

// LoadStmt imports symbols from another module:
//
//	load("@rules_cc//cc:defs.bzl", "cc_library", tst = "cc_test")
type LoadStmt struct {
	Module  string
	Symbols []LoadSymbol
}

// LoadSymbol binds one exported name, possibly under a local alias. A bare
// string binding has Local == Exported.
type LoadSymbol struct {
	Local    string
	Exported string
}

func (*LoadStmt) isStatement() {}

func (s *LoadStmt) String() string {
	var sb strings.Builder
	sb.WriteString(`load("`)
	sb.WriteString(s.Module)
	sb.WriteString(`"`)
	for _, symbol := range s.Symbols {
		sb.WriteString(", ")
		if symbol.Local != symbol.Exported {
			sb.WriteString(symbol.Local)
			sb.WriteString(" = ")
		}
		sb.WriteString(`"`)
		sb.WriteString(symbol.Exported)
		sb.WriteString(`"`)
	}
	sb.WriteString(")")
	return sb.String()
}

type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, stmt := range p.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
