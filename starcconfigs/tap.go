package starcconfigs

import "github.com/reusee/starc/configs"

// TapByDefault drops into the debug REPL after every parse when set in the
// config file. The -tap / !-tap flags override it per invocation.
type TapByDefault bool

func (Module) TapByDefault(
	loader configs.Loader,
) TapByDefault {
	return TapByDefault(configs.First[bool](loader, "tap"))
}
