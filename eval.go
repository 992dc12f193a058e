// eval.go — the evaluator core.
//
// Eval walks an expression tree against an environment, dispatching on node
// shape: self-evaluating atom, special form, or procedure application.
// Special forms are recognized by a closed enumeration over the leading
// symbol rather than repeated string comparisons at every use site; surface
// syntax is unchanged (`def`/`define`, `if`, `fn`/`lambda`).
//
// Eval and closure invocation are mutually recursive: applying a closure
// builds a fresh frame chained to the closure's captured environment (not
// the caller's) and evaluates the stored body there.
package yalispy

type specialForm int

const (
	sfNone   specialForm = iota
	sfDefine             // (def name expr) / (define name expr)
	sfIf                 // (if pred then else)
	sfFn                 // (fn (params...) body) / (lambda (params...) body)
)

func specialFormOf(head Node) specialForm {
	if head.Tag != NSym {
		return sfNone
	}
	switch head.Data.(string) {
	case "def", "define":
		return sfDefine
	case "if":
		return sfIf
	case "fn", "lambda":
		return sfFn
	default:
		return sfNone
	}
}

// Eval evaluates an expression tree against an environment. It is a pure
// function of its inputs except for the environment mutation performed by
// `def`. Every failure surfaces as a *Error; nothing is swallowed.
func Eval(n Node, env *Env) (Value, error) {
	switch n.Tag {
	case NSym:
		return env.Get(n.Data.(string))
	case NInt:
		return Int(n.Data.(int64)), nil
	case NNum:
		return Num(n.Data.(float64)), nil
	case NList:
		items := n.Data.([]Node)
		if len(items) == 0 {
			return Value{}, unsupportedErrf("empty list in call position")
		}
		switch specialFormOf(items[0]) {
		case sfDefine:
			return evalDefine(items, env)
		case sfIf:
			return evalIf(items, env)
		case sfFn:
			return evalFn(items, env)
		default:
			return evalApply(items, env)
		}
	default:
		return Value{}, unsupportedErrf("unrecognized node tag %d", n.Tag)
	}
}

// evalDefine handles (def name expr): the value expression is evaluated in
// env and bound to name in env's local frame. The binding is the side
// effect; the bound value is returned so the REPL has something to echo.
func evalDefine(items []Node, env *Env) (Value, error) {
	if len(items) != 3 {
		return Value{}, unsupportedErrf("def expects a name and a value, got %d form(s)", len(items)-1)
	}
	if items[1].Tag != NSym {
		return Value{}, unsupportedErrf("def target must be a symbol")
	}
	v, err := Eval(items[2], env)
	if err != nil {
		return Value{}, err
	}
	env.Define(items[1].Data.(string), v)
	return v, nil
}

// evalIf handles (if pred then else). Exactly one branch is evaluated.
func evalIf(items []Node, env *Env) (Value, error) {
	if len(items) != 4 {
		return Value{}, unsupportedErrf("if expects a predicate and two branches, got %d form(s)", len(items)-1)
	}
	pred, err := Eval(items[1], env)
	if err != nil {
		return Value{}, err
	}
	if isTruthy(pred) {
		return Eval(items[2], env)
	}
	return Eval(items[3], env)
}

// isTruthy: boolean false, integer 0, and float 0.0 are falsy; every other
// value is truthy.
func isTruthy(v Value) bool {
	switch v.Tag {
	case VTBool:
		return v.Data.(bool)
	case VTInt:
		return v.Data.(int64) != 0
	case VTNum:
		return v.Data.(float64) != 0
	default:
		return true
	}
}

// evalFn handles (fn (params...) body): it constructs a closure capturing
// the parameter names, the unevaluated body node, and env itself by shared
// reference (not a copy).
func evalFn(items []Node, env *Env) (Value, error) {
	if len(items) != 3 {
		return Value{}, unsupportedErrf("fn expects a parameter list and a body, got %d form(s)", len(items)-1)
	}
	if items[1].Tag != NList {
		return Value{}, unsupportedErrf("fn parameter list must be a list")
	}
	paramNodes := items[1].Data.([]Node)
	params := make([]string, 0, len(paramNodes))
	for _, pn := range paramNodes {
		if pn.Tag != NSym {
			return Value{}, unsupportedErrf("fn parameter must be a symbol")
		}
		params = append(params, pn.Data.(string))
	}
	return ClosureVal(&Closure{Params: params, Body: items[2], Env: env}), nil
}

// evalApply handles every other list: evaluate the head to an operator,
// evaluate the arguments left to right, then invoke.
func evalApply(items []Node, env *Env) (Value, error) {
	op, err := Eval(items[0], env)
	if err != nil {
		return Value{}, err
	}
	args := make([]Value, 0, len(items)-1)
	for _, a := range items[1:] {
		v, err := Eval(a, env)
		if err != nil {
			return Value{}, err
		}
		args = append(args, v)
	}
	return Apply(op, args)
}

// Apply invokes a closure or primitive with already-evaluated arguments.
// For a closure, the call frame's parent is the closure's captured
// environment, and the argument count must equal the parameter count.
func Apply(op Value, args []Value) (Value, error) {
	switch op.Tag {
	case VTClosure:
		c := op.Data.(*Closure)
		frame, err := NewCallEnv(c.Params, args, c.Env)
		if err != nil {
			return Value{}, err
		}
		return Eval(c.Body, frame)
	case VTPrim:
		return op.Data.(*Primitive).Fn(args)
	default:
		return Value{}, typeErrf("%s is not callable", op.String())
	}
}
