// printer.go — canonical textual rendering of values.
//
// FormatValue is what the REPL prints. Atoms and lists render in the same
// surface syntax the parser accepts, so for integers, symbols, booleans, and
// lists of those, parsing the printed form reproduces an equivalent tree.
// (Floats render with a decimal point or exponent, which the tokenizer's
// word/operator split cannot always re-read; that asymmetry is inherited
// from the surface syntax, which has no float literal with a dot.)
package yalispy

import (
	"strconv"
	"strings"
)

// FormatValue renders v in its canonical textual form.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTSym:
		return v.Data.(string)
	case VTList:
		xs := v.Data.([]Value)
		parts := make([]string, 0, len(xs))
		for _, x := range xs {
			parts = append(parts, FormatValue(x))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case VTClosure:
		return "<closure/" + strconv.Itoa(len(v.Data.(*Closure).Params)) + ">"
	case VTPrim:
		return "<primitive " + v.Data.(*Primitive).Name + ">"
	default:
		return "<unknown>"
	}
}
