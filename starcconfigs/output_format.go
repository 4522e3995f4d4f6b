package starcconfigs

import (
	"fmt"

	"github.com/reusee/starc/cmds"
	"github.com/reusee/starc/configs"
	"github.com/reusee/starc/vars"
)

type OutputFormat string

const (
	FormatText   OutputFormat = "text"
	FormatTokens OutputFormat = "tokens"
)

var formatFlag = cmds.Var[string]("-format")

// Flag beats config file beats the default.
func (Module) OutputFormat(
	loader configs.Loader,
) OutputFormat {
	format := OutputFormat(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, "output.format"),
		string(FormatText),
	))
	switch format {
	case FormatText, FormatTokens:
	default:
		panic(fmt.Errorf("bad output format: %s", format))
	}
	return format
}
