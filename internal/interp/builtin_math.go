package interp

import (
	"math"

	"sharpscript/internal/source"
)

// mathBuiltin1 wraps a one-argument math function. Non-number arguments are
// treated as 0.
func mathBuiltin1(fn func(float64) float64) builtinFunc {
	return func(_ *Interp, _ source.Span, args []Value) (Value, Flow) {
		x := 0.0
		if len(args) >= 1 {
			x = args[0].AsNumber()
		}
		return Number(fn(x)), FlowNormal
	}
}

func mathSin(x float64) float64   { return math.Sin(x) }
func mathCos(x float64) float64   { return math.Cos(x) }
func mathTan(x float64) float64   { return math.Tan(x) }
func mathAsin(x float64) float64  { return math.Asin(x) }
func mathAcos(x float64) float64  { return math.Acos(x) }
func mathAtan(x float64) float64  { return math.Atan(x) }
func mathLog10(x float64) float64 { return math.Log10(x) }
func mathLn(x float64) float64    { return math.Log(x) }
func mathExp(x float64) float64   { return math.Exp(x) }
func mathSqrt(x float64) float64  { return math.Sqrt(x) }

func builtinPow(_ *Interp, _ source.Span, args []Value) (Value, Flow) {
	base, exp := 0.0, 0.0
	if len(args) >= 1 {
		base = args[0].AsNumber()
	}
	if len(args) >= 2 {
		exp = args[1].AsNumber()
	}
	return Number(math.Pow(base, exp)), FlowNormal
}

// builtinConvert implements the fixed unit table. An unknown pair returns
// null.
func builtinConvert(_ *Interp, _ source.Span, args []Value) (Value, Flow) {
	if len(args) < 3 {
		return Null(), FlowNormal
	}
	num := args[0].AsNumber()
	from, to := "", ""
	if args[1].Kind == KindString {
		from = args[1].Str
	}
	if args[2].Kind == KindString {
		to = args[2].Str
	}

	switch {
	case from == "m" && to == "km":
		return Number(num / 1000.0), FlowNormal
	case from == "km" && to == "m":
		return Number(num * 1000.0), FlowNormal
	case from == "m" && to == "mi":
		return Number(num / 1609.344), FlowNormal
	case from == "mi" && to == "m":
		return Number(num * 1609.344), FlowNormal
	case from == "kg" && to == "lb":
		return Number(num * 2.20462), FlowNormal
	case from == "lb" && to == "kg":
		return Number(num / 2.20462), FlowNormal
	case from == "C" && to == "F":
		return Number(num*9.0/5.0 + 32.0), FlowNormal
	case from == "F" && to == "C":
		return Number((num - 32.0) * 5.0 / 9.0), FlowNormal
	case from == "C" && to == "K":
		return Number(num + 273.15), FlowNormal
	case from == "K" && to == "C":
		return Number(num - 273.15), FlowNormal
	default:
		return Null(), FlowNormal
	}
}
