package cmds

// Var defines a command taking one argument that sets a value, and a
// "name." command resetting it to zero.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines a pair of commands: "name" sets true, "!name" sets false.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}
