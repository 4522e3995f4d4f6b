package starlang

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseLoadStmt(t *testing.T) {
	tests := []struct {
		input   string
		module  string
		symbols string
	}{
		{
			input:   `load("@rules_cc//cc:defs.bzl", "cc_library", "cc_test")`,
			module:  "@rules_cc//cc:defs.bzl",
			symbols: "[{cc_library cc_library} {cc_test cc_test}]",
		},
		{
			input:   `load("@rules_cc//cc:defs.bzl", foo = "cc_library")`,
			module:  "@rules_cc//cc:defs.bzl",
			symbols: "[{foo cc_library}]",
		},
		{
			input:   `load("x", "a",)`,
			module:  "x",
			symbols: "[{a a}]",
		},
		{
			input:   `load("x", "a", b = "c", "d")`,
			module:  "x",
			symbols: "[{a a} {b c} {d d}]",
		},
		{
			input: `
# imports
load("x",
    "a",  # first
    "a",  # duplicates pass the grammar, a checker's problem
)`,
			module:  "x",
			symbols: "[{a a} {a a}]",
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			program, err := ParseString(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if len(program.Statements) != 1 {
				t.Fatalf("expected one statement, got %d", len(program.Statements))
			}
			stmt, ok := program.Statements[0].(*LoadStmt)
			if !ok {
				t.Fatalf("expected load statement, got %T", program.Statements[0])
			}
			if stmt.Module != test.module {
				t.Errorf("module: got %q", stmt.Module)
			}
			if str := fmt.Sprintf("%v", stmt.Symbols); str != test.symbols {
				t.Errorf("symbols: got %s", str)
			}
		})
	}
}

func TestParseMultipleStatements(t *testing.T) {
	program, err := ParseString(`
load("x", "a")
load("y", b = "c")
`)
	if err != nil {
		t.Fatal(err)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected two statements, got %d", len(program.Statements))
	}
	if str := program.String(); str != "load(\"x\", \"a\")\nload(\"y\", b = \"c\")\n" {
		t.Fatalf("got %q", str)
	}
}

func TestParseEmptyInput(t *testing.T) {
	program, err := ParseString("# nothing but comments\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(program.Statements) != 0 {
		t.Fatalf("got %v", program.Statements)
	}
}

func TestParseFailures(t *testing.T) {
	for _, input := range []string{
		`load("x")`,       // zero symbols
		`load("x",)`,      // still zero symbols
		`foo()`,           // unknown top-level statement
		`if`,              // keyword that is not load
		`return "x"`,      //
		`"str"`,           // bare string at top level
		`load "x"`,        // missing '('
		`load(x, "a")`,    // module must be a string
		`load("x" "a")`,   // missing ','
		`load("x", foo)`,  // binding without '= string'
		`load("x", foo =)`,
		`load("x", foo = bar)`,
		`load("x", "a"`,  // unclosed
		`load(`,          //
		`load("x", = "a")`,
		`load("unterminated`, // lexical failure surfaces through parse
	} {
		t.Run(input, func(t *testing.T) {
			program, err := ParseString(input)
			if err == nil {
				t.Fatalf("expected error, got %v", program)
			}
		})
	}
}

func TestStreamParser(t *testing.T) {
	parser := NewStreamParser(NewSliceTokenStream([]*Token{
		{Kind: TokenKeyword, Text: "load"},
		{Kind: TokenPunctuator, Text: "("},
		{Kind: TokenString, Text: "m"},
		{Kind: TokenPunctuator, Text: ","},
		{Kind: TokenString, Text: "s"},
		{Kind: TokenPunctuator, Text: ")"},
	}))
	program, err := parser.Parse()
	if err != nil {
		t.Fatal(err)
	}
	stmt := program.Statements[0].(*LoadStmt)
	if stmt.Module != "m" {
		t.Fatalf("got %q", stmt.Module)
	}
	if str := fmt.Sprintf("%v", stmt.Symbols); str != "[{s s}]" {
		t.Fatalf("got %s", str)
	}
}

func TestLoadStmtString(t *testing.T) {
	stmt := &LoadStmt{
		Module: "@rules_cc//cc:defs.bzl",
		Symbols: []LoadSymbol{
			{Local: "cc_library", Exported: "cc_library"},
			{Local: "tst", Exported: "cc_test"},
		},
	}
	want := `load("@rules_cc//cc:defs.bzl", "cc_library", tst = "cc_test")`
	if got := stmt.String(); got != want {
		t.Fatalf("got %q", got)
	}

	// a rendered statement parses back to itself
	program, err := ParseString(want)
	if err != nil {
		t.Fatal(err)
	}
	if got := program.Statements[0].String(); got != want {
		t.Fatalf("reparse: got %q", got)
	}
}

func TestParseErrorHasPosition(t *testing.T) {
	_, err := Parse(NewSource("BUILD.bazel", "load(\"x\",\n  oops)"))
	if err == nil {
		t.Fatal("expected error")
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("expected PosError, got %T: %v", err, err)
	}
	if posErr.Pos.Line != 2 {
		t.Fatalf("got line %d", posErr.Pos.Line)
	}
}
