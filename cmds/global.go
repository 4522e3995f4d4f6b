package cmds

import "fmt"

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs the global executor over args and aborts the process on
// unknown commands or bad arguments. Binaries call it once, before any
// other work.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		panic(fmt.Errorf("execute commands: %w", err))
	}
}
