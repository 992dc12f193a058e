// interpreter.go — public surface of the yalispy runtime.
//
// This file holds the public types and the Interpreter facade:
//
//   - Value and its constructors — the universal runtime carrier (tagged
//     variant: integer, float, boolean, symbol, list, closure, primitive).
//   - Closure and Primitive — the two callable kinds.
//   - Env — chained lexical environments with parent-ward lookup and
//     local-frame definition.
//   - Interpreter — parse-and-evaluate entry points over a persistent
//     global environment.
//
// The evaluator itself lives in eval.go; the primitive library in
// builtins.go. Everything is single-threaded and synchronous: Eval and Get
// are ordinary recursive calls. Callers running concurrent sessions must
// give each session its own Interpreter (each NewGlobalEnv chain is
// independent).
package yalispy

import (
	"fmt"
	"strconv"
)

// Version is the release identifier reported by the CLI.
const Version = "0.3.0"

////////////////////////////////////////////////////////////////////////////////
//                              VALUES
////////////////////////////////////////////////////////////////////////////////

// ValueTag enumerates all runtime kinds a Value may hold.
// The tag determines which Go type Value.Data holds.
type ValueTag int

const (
	VTInt     ValueTag = iota // int64
	VTNum                     // float64
	VTBool                    // bool
	VTSym                     // string (a bound-but-unevaluated name; rarely surfaces)
	VTList                    // []Value
	VTClosure                 // *Closure
	VTPrim                    // *Primitive
)

// Value is the result of evaluation.
type Value struct {
	Tag  ValueTag
	Data any
}

// String renders a short debug representation. Use FormatValue (printer.go)
// for the canonical textual form.
func (v Value) String() string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTSym:
		return v.Data.(string)
	case VTList:
		return fmt.Sprintf("<list len=%d>", len(v.Data.([]Value)))
	case VTClosure:
		return "<closure>"
	case VTPrim:
		return "<primitive " + v.Data.(*Primitive).Name + ">"
	default:
		return "<unknown>"
	}
}

// Primitive constructors for convenience.
func Int(n int64) Value        { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value      { return Value{Tag: VTNum, Data: f} }
func Bool(b bool) Value        { return Value{Tag: VTBool, Data: b} }
func Sym(s string) Value       { return Value{Tag: VTSym, Data: s} }
func ListVal(xs []Value) Value { return Value{Tag: VTList, Data: xs} }
func ClosureVal(c *Closure) Value {
	return Value{Tag: VTClosure, Data: c}
}

// Closure is a user-defined procedure: parameter names, an unevaluated body
// expression, and the environment active at its definition point. The env is
// held by shared pointer, which is what gives lexical rather than dynamic
// scoping — invocation chains the call frame to Env, not to the caller's
// environment.
type Closure struct {
	Params []string
	Body   Node
	Env    *Env
}

// PrimFn is the implementation signature for built-in procedures. Arguments
// arrive already evaluated, left to right.
type PrimFn func(args []Value) (Value, error)

// Primitive is a native built-in procedure.
type Primitive struct {
	Name string
	Fn   PrimFn
}

// PrimVal wraps a native implementation into a Value (Tag=VTPrim).
func PrimVal(name string, fn PrimFn) Value {
	return Value{Tag: VTPrim, Data: &Primitive{Name: name, Fn: fn}}
}

////////////////////////////////////////////////////////////////////////////////
//                              ENVIRONMENTS
////////////////////////////////////////////////////////////////////////////////

// Env is a lexical environment frame with a parent link. Lookups walk
// parent-ward; definitions always land in the local frame (shadowing
// semantics, never alias semantics).
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates an empty frame with the given parent (which may be nil).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// NewCallEnv creates a frame binding params to args pairwise by position,
// chained to parent. Mismatched lengths fail with an arity error.
func NewCallEnv(params []string, args []Value, parent *Env) (*Env, error) {
	if len(params) != len(args) {
		return nil, arityErrf("expected %d argument(s), got %d", len(params), len(args))
	}
	env := NewEnv(parent)
	for i, name := range params {
		env.table[name] = args[i]
	}
	return env, nil
}

// Define binds name to v in the local frame, inserting or overwriting. It
// never mutates an ancestor frame, even if name is bound there.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get retrieves the nearest visible binding for name, walking outward to
// enclosing scopes. A miss at the root frame is an undefined-variable error;
// there is no default value.
func (e *Env) Get(name string) (Value, error) {
	if v, ok := e.table[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, undefinedErr(name)
}

////////////////////////////////////////////////////////////////////////////////
//                              INTERPRETER
////////////////////////////////////////////////////////////////////////////////

// Interpreter is the entry point for evaluating yalispy programs.
//
//   - EvalSource runs one expression in a fresh child of Global (ephemeral).
//   - EvalPersistentSource runs one expression in Global (REPL state).
//   - EvalProgramSource runs a whole source file in Global, top to bottom.
//
// Global is created once per Interpreter and pre-populated by the primitive
// library; it lives as long as the Interpreter does.
type Interpreter struct {
	Global *Env
}

// NewInterpreter returns a ready-to-use instance with a fully-populated
// global environment. Each call yields an independent environment chain.
func NewInterpreter() *Interpreter {
	return &Interpreter{Global: NewGlobalEnv()}
}

// EvalSource parses and evaluates a single expression in a fresh child of
// Global, so definitions do not persist across calls.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	node, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return Eval(node, NewEnv(ip.Global))
}

// EvalPersistentSource parses and evaluates a single expression directly in
// Global; definitions persist across calls.
func (ip *Interpreter) EvalPersistentSource(src string) (Value, error) {
	node, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return Eval(node, ip.Global)
}

// EvalProgramSource parses src as a sequence of top-level expressions and
// evaluates them in order in Global, returning the value of the last one.
// An empty program is a parse error.
func (ip *Interpreter) EvalProgramSource(src string) (Value, error) {
	nodes, err := ParseProgram(src)
	if err != nil {
		return Value{}, err
	}
	if len(nodes) == 0 {
		return Value{}, parseErrf("empty input")
	}
	var out Value
	for _, n := range nodes {
		out, err = Eval(n, ip.Global)
		if err != nil {
			return Value{}, err
		}
	}
	return out, nil
}
