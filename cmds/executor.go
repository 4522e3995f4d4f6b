package cmds

import (
	"fmt"
	"maps"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/starc/vars"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	executor := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		executor.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	executor.Define("-h", usage)

	return executor
}

func (e *Executor) Define(name string, command *Command) {
	names := append([]string{name}, command.Aliases...)
	for _, name := range names {
		if _, ok := e.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		e.commands[name] = command
	}
}

func (e *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := e.commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		fnType := command.Func.Type()
		var callArgs []reflect.Value
		for i := range fnType.NumIn() {
			value, err := parseArg(fnType.In(i), args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if len(args) > 0 {
				args = args[1:]
			}
			callArgs = append(callArgs, value)
		}

		rets := command.Func.Call(callArgs)
		if len(rets) > 0 {
			if err, ok := rets[0].Interface().(error); ok && err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

func (e *Executor) PrintUsage() {
	names := slices.Sorted(maps.Keys(e.commands))
	for _, name := range names {
		command := e.commands[name]
		if command.Description != "" {
			fmt.Printf("%s\n\t%s\n", name, command.Description)
		} else {
			fmt.Printf("%s\n", name)
		}
	}
}

// Pointer-typed parameters are optional: missing arguments become the zero
// value instead of an error.
func parseArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		return elem.Addr(), nil
	}

	if len(args) == 0 {
		return ret, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]

	ret = reflect.New(t).Elem()
	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
