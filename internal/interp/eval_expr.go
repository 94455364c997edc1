package interp

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
)

// evalExpr walks one expression. Expressions can carry a Thrown flow out of
// a call to system.throw; everything else is FlowNormal.
func (i *Interp) evalExpr(id ast.ExprID) (Value, Flow) {
	expr := i.arenas.Exprs.Get(id)
	if expr == nil {
		return Null(), FlowNormal
	}

	switch expr.Kind {
	case ast.ExprNumber:
		data, _ := i.arenas.Exprs.Number(id)
		return Number(data.Value), FlowNormal

	case ast.ExprString:
		data, _ := i.arenas.Exprs.String(id)
		return Str(i.lookupStr(data.Value)), FlowNormal

	case ast.ExprBool:
		data, _ := i.arenas.Exprs.Bool(id)
		return Bool(data.Value), FlowNormal

	case ast.ExprNull:
		return Null(), FlowNormal

	case ast.ExprIdent:
		data, _ := i.arenas.Exprs.Ident(id)
		name := i.lookupStr(data.Name)
		v, ok := i.current.Lookup(name)
		if !ok {
			i.diag(diag.RunUndeclared, expr.Span, "undeclared variable: "+name)
			return Null(), FlowNormal
		}
		// поверхностная копия; строки в Go и так неизменяемы
		return v, FlowNormal

	case ast.ExprBinary:
		data, _ := i.arenas.Exprs.Binary(id)
		left, flow := i.evalExpr(data.Left)
		if flow != FlowNormal {
			return left, flow
		}
		right, flow := i.evalExpr(data.Right)
		if flow != FlowNormal {
			return right, flow
		}
		return i.evalBinary(data.Op, left, right), FlowNormal

	case ast.ExprUnary:
		data, _ := i.arenas.Exprs.Unary(id)
		operand, flow := i.evalExpr(data.Operand)
		if flow != FlowNormal {
			return operand, flow
		}
		if data.Op == ast.UnNot {
			return Bool(!operand.Truthy()), FlowNormal
		}
		return Number(-operand.AsNumber()), FlowNormal

	case ast.ExprCall:
		return i.evalCall(id)

	case ast.ExprIndex:
		return i.evalIndex(id)

	case ast.ExprArray:
		data, _ := i.arenas.Exprs.Array(id)
		elems := make([]Value, 0, len(data.Elems))
		for _, elemID := range data.Elems {
			v, flow := i.evalExpr(elemID)
			if flow != FlowNormal {
				return v, flow
			}
			elems = append(elems, v)
		}
		return Array(elems), FlowNormal

	case ast.ExprMap:
		data, _ := i.arenas.Exprs.Map(id)
		keys := make([]string, 0, len(data.Keys))
		vals := make([]Value, 0, len(data.Values))
		for idx, keyID := range data.Keys {
			k, flow := i.evalExpr(keyID)
			if flow != FlowNormal {
				return k, flow
			}
			v, flow := i.evalExpr(data.Values[idx])
			if flow != FlowNormal {
				return v, flow
			}
			keys = append(keys, k.Display())
			vals = append(vals, v)
		}
		return MapValue(keys, vals), FlowNormal

	case ast.ExprLambda:
		data, _ := i.arenas.Exprs.Lambda(id)
		params := make([]ast.FnParam, len(data.Params))
		for idx, name := range data.Params {
			params[idx] = ast.FnParam{Name: name, Default: ast.NoExprID}
		}
		proto := &FuncProto{
			Params:  params,
			Body:    data.Body,
			Arenas:  i.arenas,
			Closure: i.current,
		}
		return Function(proto), FlowNormal

	default:
		return Null(), FlowNormal
	}
}

// evalIndex: arrays by numeric index, maps by display-form key. Out-of-range
// and wrong-type indexing degrade to null with a diagnostic.
func (i *Interp) evalIndex(id ast.ExprID) (Value, Flow) {
	expr := i.arenas.Exprs.Get(id)
	data, _ := i.arenas.Exprs.Index(id)

	target, flow := i.evalExpr(data.Target)
	if flow != FlowNormal {
		return target, flow
	}
	index, flow := i.evalExpr(data.Index)
	if flow != FlowNormal {
		return index, flow
	}

	switch target.Kind {
	case KindArray:
		if index.Kind != KindNumber {
			i.diag(diag.RunBadIndex, expr.Span, "array index must be a number")
			return Null(), FlowNormal
		}
		idx := int(index.Num)
		if idx < 0 || idx >= len(target.Arr) {
			i.diag(diag.RunBadIndex, expr.Span, "array index out of range")
			return Null(), FlowNormal
		}
		return target.Arr[idx].Clone(), FlowNormal

	case KindMap:
		key := index.Display()
		for idx, k := range target.MapKeys {
			if k == key {
				return target.MapVals[idx].Clone(), FlowNormal
			}
		}
		return Null(), FlowNormal

	default:
		i.diag(diag.RunBadIndex, expr.Span, "cannot index "+target.TypeName())
		return Null(), FlowNormal
	}
}
