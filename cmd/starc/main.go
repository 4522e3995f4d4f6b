package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/starc/cmds"
	"github.com/reusee/starc/debugs"
	"github.com/reusee/starc/logs"
	"github.com/reusee/starc/modes"
	"github.com/reusee/starc/starcconfigs"
	"github.com/reusee/starc/starlang"
	"golang.org/x/term"
)

var tapFlag = cmds.Switch("-tap")

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		format starcconfigs.OutputFormat,
		tapByDefault starcconfigs.TapByDefault,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(ctx, "")

		src, err := readSource()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Usage: %s [flags] -path <file>\n", os.Args[0])
			os.Exit(1)
		}
		logger.InfoContext(ctx, "input",
			"name", src.Name,
			"len", len(src.Content),
		)

		tokens, err := starlang.Tokenize(src)
		if err != nil {
			abort(ctx, err)
		}
		program, err := starlang.Parse(src)
		if err != nil {
			abort(ctx, err)
		}
		logger.InfoContext(ctx, "parsed",
			"tokens", len(tokens),
			"statements", len(program.Statements),
		)

		switch format {
		case starcconfigs.FormatTokens:
			var spellings []string
			for _, token := range tokens {
				spellings = append(spellings, token.String())
			}
			fmt.Println(strings.Join(spellings, " "))
		default:
			fmt.Print(program.String())
		}

		if *tapFlag || bool(tapByDefault) {
			tap(ctx, src.Name, map[string]any{
				"tokens":  tokens,
				"program": program,
			})
		}
	})
}

var pathFlag = cmds.Var[string]("-path")

// Source comes from -path, or from stdin when it is a pipe.
func readSource() (*starlang.Source, error) {
	if path := *pathFlag; path != "" {
		content, err := os.ReadFile(path)
		ce(err)
		return starlang.NewSource(path, string(content)), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no input")
	}
	content, err := io.ReadAll(os.Stdin)
	ce(err)
	return starlang.NewSource("<stdin>", string(content)), nil
}

func abort(ctx context.Context, err error) {
	fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err).Error())
	os.Exit(1)
}
