package interp

import (
	"math"

	"sharpscript/internal/ast"
)

// evalBinary implements the operator table. '+' concatenates when either
// operand is a string; деление на ноль не спецслучай — IEEE даёт свой
// результат; '%' — fmod со знаком делимого. Логические операторы вычисляют
// оба операнда (левый уже вычислен раньше правого) и комбинируют истинность.
func (i *Interp) evalBinary(op ast.BinaryOp, left, right Value) Value {
	switch op {
	case ast.BinAdd:
		if left.Kind == KindString || right.Kind == KindString {
			return Str(left.ConcatDisplay() + right.ConcatDisplay())
		}
		return Number(left.AsNumber() + right.AsNumber())
	case ast.BinSub:
		return Number(left.AsNumber() - right.AsNumber())
	case ast.BinMul:
		return Number(left.AsNumber() * right.AsNumber())
	case ast.BinDiv:
		return Number(left.AsNumber() / right.AsNumber())
	case ast.BinMod:
		return Number(math.Mod(left.AsNumber(), right.AsNumber()))
	case ast.BinEq:
		return Bool(left.Equals(right))
	case ast.BinNeq:
		return Bool(!left.Equals(right))
	case ast.BinLt:
		return Bool(left.AsNumber() < right.AsNumber())
	case ast.BinLte:
		return Bool(left.AsNumber() <= right.AsNumber())
	case ast.BinGt:
		return Bool(left.AsNumber() > right.AsNumber())
	case ast.BinGte:
		return Bool(left.AsNumber() >= right.AsNumber())
	case ast.BinAnd:
		return Bool(left.Truthy() && right.Truthy())
	case ast.BinOr:
		return Bool(left.Truthy() || right.Truthy())
	default:
		return Null()
	}
}

// combineCompound реализует += -= *= /= %=: числа комбинируются, для
// остальных типов присваивается правая часть как есть.
func combineCompound(op ast.AssignOp, old, value Value) Value {
	if old.Kind != KindNumber || value.Kind != KindNumber {
		return value
	}
	switch op {
	case ast.AssignAdd:
		return Number(old.Num + value.Num)
	case ast.AssignSub:
		return Number(old.Num - value.Num)
	case ast.AssignMul:
		return Number(old.Num * value.Num)
	case ast.AssignDiv:
		return Number(old.Num / value.Num)
	case ast.AssignMod:
		return Number(math.Mod(old.Num, value.Num))
	default:
		return value
	}
}
