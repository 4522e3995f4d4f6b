package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "foo" {
		t.Fatal()
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatal()
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatal()
	}

}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("bad", Func(func(i int) {}))
	err := executor.Execute([]string{"bad", "nope"})
	if err == nil || !strings.Contains(err.Error(), "convert nope to int") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedDefine(t *testing.T) {
	executor := NewExecutor()
	executor.Define("x", Func(func() {}))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	executor.Define("x", Func(func() {}))
}
