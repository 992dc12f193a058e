// builtins.go — the primitive library and global environment.
//
// A primitive is a native variadic operation over Values, bound in the root
// environment before any user code runs. The arithmetic operators left-fold
// their argument list starting from the first argument (no zero/one
// identity), so calling them with no arguments is an arity error. Division
// is float throughout; `+ - *` stay integral while every operand is an
// integer and promote to float as soon as one operand is.
//
// The comparison operators are strictly binary. `true` and `false` are
// constant bindings, not procedures.
package yalispy

// NewGlobalEnv constructs the primitive-populated root environment (no
// parent). Each call yields an independent environment, so concurrent
// sessions can root their own chains.
func NewGlobalEnv() *Env {
	env := NewEnv(nil)
	registerCoreBuiltins(env)
	return env
}

func registerCoreBuiltins(env *Env) {
	prim := func(name string, fn PrimFn) { env.Define(name, PrimVal(name, fn)) }

	prim("+", foldPrim("+", stepAdd))
	prim("-", foldPrim("-", stepSub))
	prim("*", foldPrim("*", stepMul))
	prim("/", foldPrim("/", stepDiv))

	prim("first", primFirst)
	prim("rest", primRest)
	prim("list", primList)

	prim("<", comparePrim("<", func(a, b float64) bool { return a < b }))
	prim(">", comparePrim(">", func(a, b float64) bool { return a > b }))
	prim("=", primEquals)

	env.Define("true", Bool(true))
	env.Define("false", Bool(false))
}

// ---- numerics ----------------------------------------------------------

// number is the uniform operand for the arithmetic folds. isInt tracks
// whether the value is still exactly representable as an integer result.
type number struct {
	i     int64
	f     float64
	isInt bool
}

func asNumber(op string, v Value) (number, error) {
	switch v.Tag {
	case VTInt:
		n := v.Data.(int64)
		return number{i: n, f: float64(n), isInt: true}, nil
	case VTNum:
		return number{f: v.Data.(float64)}, nil
	default:
		return number{}, typeErrf("%s expects numbers, got %s", op, v.String())
	}
}

func (n number) toValue() Value {
	if n.isInt {
		return Int(n.i)
	}
	return Num(n.f)
}

// foldPrim builds a variadic primitive that left-folds step over the
// arguments, starting from the first. Zero arguments is an arity error:
// the fold has no identity element.
func foldPrim(name string, step func(a, b number) (number, error)) PrimFn {
	return func(args []Value) (Value, error) {
		if len(args) == 0 {
			return Value{}, arityErrf("%s expects at least one argument", name)
		}
		acc, err := asNumber(name, args[0])
		if err != nil {
			return Value{}, err
		}
		for _, v := range args[1:] {
			b, err := asNumber(name, v)
			if err != nil {
				return Value{}, err
			}
			acc, err = step(acc, b)
			if err != nil {
				return Value{}, err
			}
		}
		return acc.toValue(), nil
	}
}

func stepAdd(a, b number) (number, error) {
	if a.isInt && b.isInt {
		return number{i: a.i + b.i, f: float64(a.i + b.i), isInt: true}, nil
	}
	return number{f: a.f + b.f}, nil
}

func stepSub(a, b number) (number, error) {
	if a.isInt && b.isInt {
		return number{i: a.i - b.i, f: float64(a.i - b.i), isInt: true}, nil
	}
	return number{f: a.f - b.f}, nil
}

func stepMul(a, b number) (number, error) {
	if a.isInt && b.isInt {
		return number{i: a.i * b.i, f: float64(a.i * b.i), isInt: true}, nil
	}
	return number{f: a.f * b.f}, nil
}

// stepDiv is float division regardless of operand kinds, so integer inputs
// never silently truncate. A zero divisor of either kind is rejected.
func stepDiv(a, b number) (number, error) {
	if b.f == 0 {
		return number{}, divZeroErr()
	}
	return number{f: a.f / b.f}, nil
}

// ---- lists -------------------------------------------------------------

func asList(op string, v Value) ([]Value, error) {
	if v.Tag != VTList {
		return nil, typeErrf("%s expects a list, got %s", op, v.String())
	}
	return v.Data.([]Value), nil
}

func primFirst(args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityErrf("first expects exactly one argument, got %d", len(args))
	}
	xs, err := asList("first", args[0])
	if err != nil {
		return Value{}, err
	}
	if len(xs) == 0 {
		return Value{}, emptyListErr("first")
	}
	return xs[0], nil
}

// primRest returns all but the first element; the tail of a one-element or
// empty list is the empty list.
func primRest(args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityErrf("rest expects exactly one argument, got %d", len(args))
	}
	xs, err := asList("rest", args[0])
	if err != nil {
		return Value{}, err
	}
	if len(xs) == 0 {
		return ListVal([]Value{}), nil
	}
	return ListVal(xs[1:]), nil
}

func primList(args []Value) (Value, error) {
	return ListVal(append([]Value(nil), args...)), nil
}

// ---- comparisons -------------------------------------------------------

// comparePrim builds a strictly binary numeric comparison.
func comparePrim(name string, cmp func(a, b float64) bool) PrimFn {
	return func(args []Value) (Value, error) {
		if len(args) != 2 {
			return Value{}, arityErrf("%s expects exactly two arguments, got %d", name, len(args))
		}
		a, err := asNumber(name, args[0])
		if err != nil {
			return Value{}, err
		}
		b, err := asNumber(name, args[1])
		if err != nil {
			return Value{}, err
		}
		return Bool(cmp(a.f, b.f)), nil
	}
}

func primEquals(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityErrf("= expects exactly two arguments, got %d", len(args))
	}
	return Bool(valueEquals(args[0], args[1])), nil
}

func isNumeric(v Value) bool { return v.Tag == VTInt || v.Tag == VTNum }

// valueEquals is structural equality. Numbers compare by numeric value
// across the int/float boundary; lists compare elementwise; closures and
// primitives compare by identity.
func valueEquals(a, b Value) bool {
	if isNumeric(a) && isNumeric(b) {
		if a.Tag == VTInt && b.Tag == VTInt {
			return a.Data.(int64) == b.Data.(int64)
		}
		na, _ := asNumber("=", a)
		nb, _ := asNumber("=", b)
		return na.f == nb.f
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTSym:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		xs, ys := a.Data.([]Value), b.Data.([]Value)
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !valueEquals(xs[i], ys[i]) {
				return false
			}
		}
		return true
	default:
		return a.Data == b.Data
	}
}
