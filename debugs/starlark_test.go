package debugs

import (
	"testing"

	"github.com/reusee/starc/starlang"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"int", 42, starlark.MakeInt(42)},
		{"uint8", uint8(3), starlark.MakeUint(3)},
		{"float", 3.5, starlark.Float(3.5)},
		{"slice", []string{"a", "b"}, starlark.NewList([]starlark.Value{
			starlark.String("a"), starlark.String("b"),
		})},
		{"nil pointer", (*starlang.Token)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}
}

func TestTokenToStarlarkValue(t *testing.T) {
	tokens, err := starlang.TokenizeString(`load("x", "a")`)
	if err != nil {
		t.Fatal(err)
	}
	value := toStarlarkValue(tokens)
	list, ok := value.(*starlark.List)
	if !ok {
		t.Fatalf("got %T", value)
	}
	if list.Len() != len(tokens) {
		t.Fatalf("got %d", list.Len())
	}
	first, ok := list.Index(0).(*starlark.Dict)
	if !ok {
		t.Fatalf("got %T", list.Index(0))
	}
	text, found, err := first.Get(starlark.String("Text"))
	if err != nil || !found {
		t.Fatalf("found %v, err %v", found, err)
	}
	if text != starlark.String("load") {
		t.Fatalf("got %v", text)
	}
}

func TestUnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	toStarlarkValue(make(chan bool))
}
