package interp

import (
	"math"
	"strconv"
	"strings"

	"sharpscript/internal/ast"
)

// Kind represents the runtime type of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBool
	KindFunction
	KindArray
	KindMap
	KindNamespace
	KindClass
	KindEnum
	KindError
)

// FuncProto is the shared definition behind a function Value: the parameter
// list and body inside their arenas, plus the environment captured at the
// definition site. The closure keeps the frame alive for as long as any
// Value references the proto.
type FuncProto struct {
	Name    string // "" для лямбд
	Params  []ast.FnParam
	Body    ast.StmtID
	Arenas  *ast.Builder
	Closure *Env
}

// ErrorData is the payload of a structured error raised by system.throw.
type ErrorData struct {
	Name    string
	Message string
	Code    float64
}

// Value is the runtime value of every evaluation. Mutable payloads (slices)
// are shared on struct copy; Clone produces a deep, independent copy.
type Value struct {
	Kind    Kind
	Num     float64
	Str     string
	Boolean bool
	Fn      *FuncProto
	Arr     []Value
	MapKeys []string
	MapVals []Value
	Scope   *Env // namespace/class/enum
	Err     *ErrorData
}

func Null() Value                  { return Value{Kind: KindNull} }
func Number(n float64) Value       { return Value{Kind: KindNumber, Num: n} }
func Str(s string) Value           { return Value{Kind: KindString, Str: s} }
func Bool(b bool) Value            { return Value{Kind: KindBool, Boolean: b} }
func Function(fn *FuncProto) Value { return Value{Kind: KindFunction, Fn: fn} }
func Array(elems []Value) Value    { return Value{Kind: KindArray, Arr: elems} }

func MapValue(keys []string, vals []Value) Value {
	return Value{Kind: KindMap, MapKeys: keys, MapVals: vals}
}

func ErrorValue(name, message string, code float64) Value {
	return Value{Kind: KindError, Err: &ErrorData{Name: name, Message: message, Code: code}}
}

// TypeName returns the inferred type name used by annotations and
// system.type.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindFunction:
		return "function"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Truthy implements the language truthiness rule: null is false, a boolean
// is itself, a number is true iff non-zero, a string is true iff non-empty,
// everything else is true.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNull:
		return false
	case KindBool:
		return v.Boolean
	case KindNumber:
		return v.Num != 0
	case KindString:
		return v.Str != ""
	default:
		return true
	}
}

// Equals implements the language equality rule: numbers to numbers, strings
// to strings by content, booleans to booleans. Mismatched or unlisted kinds
// are never equal.
func (v Value) Equals(other Value) bool {
	switch {
	case v.Kind == KindNumber && other.Kind == KindNumber:
		return v.Num == other.Num
	case v.Kind == KindString && other.Kind == KindString:
		return v.Str == other.Str
	case v.Kind == KindBool && other.Kind == KindBool:
		return v.Boolean == other.Boolean
	default:
		return false
	}
}

// AsNumber coerces for the numeric builtins: non-numbers count as 0.
func (v Value) AsNumber() float64 {
	if v.Kind == KindNumber {
		return v.Num
	}
	return 0
}

// Clone returns a deep, fully independent copy.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindArray:
		elems := make([]Value, len(v.Arr))
		for i, e := range v.Arr {
			elems[i] = e.Clone()
		}
		cp := v
		cp.Arr = elems
		return cp
	case KindMap:
		keys := make([]string, len(v.MapKeys))
		copy(keys, v.MapKeys)
		vals := make([]Value, len(v.MapVals))
		for i, e := range v.MapVals {
			vals[i] = e.Clone()
		}
		cp := v
		cp.MapKeys = keys
		cp.MapVals = vals
		return cp
	case KindError:
		cp := v
		errCopy := *v.Err
		cp.Err = &errCopy
		return cp
	default:
		// numbers, strings, bools, null: значение; function/scope: общий proto
		return v
	}
}

// FormatNumber renders a number the way the print builtins do: integral
// values without a decimal point, the rest in general format.
func FormatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
	return generalFormat(n)
}

// generalFormat соответствует printf %g: шесть значащих цифр, хвостовые
// нули убраны.
func generalFormat(n float64) string {
	return strconv.FormatFloat(n, 'g', 6, 64)
}

// Display renders a Value for the print builtins and string concatenation.
func (v Value) Display() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindNumber:
		return FormatNumber(v.Num)
	case KindString:
		return v.Str
	case KindBool:
		if v.Boolean {
			return "true"
		}
		return "false"
	case KindArray:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.Arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.Display())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindFunction:
		return "<function>"
	case KindError:
		return "<" + v.Err.Name + ": " + v.Err.Message + ">"
	default:
		return "null"
	}
}

// ConcatDisplay renders a Value for '+' string concatenation. Numbers use
// general format regardless of integrality.
func (v Value) ConcatDisplay() string {
	if v.Kind == KindNumber {
		return generalFormat(v.Num)
	}
	return v.Display()
}
