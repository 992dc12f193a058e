// printer_test.go
package yalispy

import (
	"reflect"
	"testing"
)

func Test_Format_Atoms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Int(5), "5"},
		{Int(-42), "-42"},
		{Num(2.5), "2.5"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Sym("foo"), "foo"},
	}
	for _, c := range cases {
		if got := FormatValue(c.v); got != c.want {
			t.Fatalf("FormatValue(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func Test_Format_Lists(t *testing.T) {
	v := evalSrc(t, "(list 1 2 3)")
	if got := FormatValue(v); got != "(1 2 3)" {
		t.Fatalf("got %q", got)
	}
	v = evalSrc(t, "(list 1 (list 2 3) 4)")
	if got := FormatValue(v); got != "(1 (2 3) 4)" {
		t.Fatalf("got %q", got)
	}
	if got := FormatValue(ListVal(nil)); got != "()" {
		t.Fatalf("got %q", got)
	}
}

func Test_Format_Procedures(t *testing.T) {
	v := evalSrc(t, "(fn (a b) (+ a b))")
	if got := FormatValue(v); got != "<closure/2>" {
		t.Fatalf("got %q", got)
	}
	v = evalSrc(t, "+")
	if got := FormatValue(v); got != "<primitive +>" {
		t.Fatalf("got %q", got)
	}
}

// Printing an integer/symbol/list value and re-parsing it yields an
// equivalent tree.
func Test_Format_RoundTrip(t *testing.T) {
	for _, src := range []string{"(list 1 2 3)", "(list 1 (list 2 3))", "(list)"} {
		v := evalSrc(t, src)
		printed := FormatValue(v)
		reparsed := mustParse(t, printed)
		want := valueToNode(v)
		if !reflect.DeepEqual(reparsed, want) {
			t.Fatalf("round trip of %q: printed %q, reparsed %#v, want %#v", src, printed, reparsed, want)
		}
	}
	if got := mustParse(t, FormatValue(Int(7))); !reflect.DeepEqual(got, IntNode(7)) {
		t.Fatalf("int round trip failed: %#v", got)
	}
	if got := mustParse(t, FormatValue(Sym("abc"))); !reflect.DeepEqual(got, SymNode("abc")) {
		t.Fatalf("symbol round trip failed: %#v", got)
	}
}

// valueToNode mirrors a printable value back into its expression-tree shape
// (ints, symbols, lists).
func valueToNode(v Value) Node {
	switch v.Tag {
	case VTInt:
		return IntNode(v.Data.(int64))
	case VTSym:
		return SymNode(v.Data.(string))
	case VTList:
		xs := v.Data.([]Value)
		items := []Node{}
		for _, x := range xs {
			items = append(items, valueToNode(x))
		}
		return ListNode(items)
	default:
		return Node{}
	}
}
