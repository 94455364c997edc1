package interp

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/source"
)

// evalCall dispatches builtins by exact name first; everything else is looked
// up in the environment and called with a fresh frame parented on the
// function's captured closure (static scoping).
func (i *Interp) evalCall(id ast.ExprID) (Value, Flow) {
	expr := i.arenas.Exprs.Get(id)
	data, _ := i.arenas.Exprs.Call(id)
	name := i.lookupStr(data.Name)

	// аргументы вычисляются в кадре вызывающего, слева направо
	args := make([]Value, 0, len(data.Args))
	for _, argID := range data.Args {
		v, flow := i.evalExpr(argID)
		if flow != FlowNormal {
			return v, flow
		}
		args = append(args, v)
	}

	if fn, ok := builtinTable[name]; ok {
		return fn(i, expr.Span, args)
	}

	callee, found := i.current.Lookup(name)
	if !found {
		i.diag(diag.RunUnknownFunction, expr.Span, "unknown function: "+name)
		return Null(), FlowNormal
	}
	if callee.Kind != KindFunction {
		i.diag(diag.RunNotAFunction, expr.Span, "\""+name+"\" is not a function")
		return Null(), FlowNormal
	}

	return i.callFunction(callee.Fn, args)
}

// callFunction binds arguments positionally in a fresh frame whose parent is
// the captured closure environment (NOT the caller's frame). Missing trailing
// arguments fall back to declared defaults, evaluated in the callee's frame
// at call time; further missing arguments bind to null. Extra arguments are
// ignored. A Return flow is unwrapped here; absence of Return yields null.
func (i *Interp) callFunction(proto *FuncProto, args []Value) (Value, Flow) {
	prevArenas := i.arenas
	i.arenas = proto.Arenas

	frame := NewEnv(proto.Closure)
	prev := i.current
	i.current = frame

	for idx, param := range proto.Params {
		name := i.lookupStr(param.Name)
		var bound Value
		switch {
		case idx < len(args):
			bound = args[idx]
		case param.Default.IsValid():
			v, flow := i.evalExpr(param.Default)
			if flow != FlowNormal {
				i.current = prev
				i.arenas = prevArenas
				return v, flow
			}
			bound = v
		default:
			bound = Null()
		}
		frame.Define(name, bound, false, bound.TypeName())
	}

	v, flow := i.evalStmt(proto.Body)
	i.current = prev
	i.arenas = prevArenas

	switch flow {
	case FlowReturn:
		return v, FlowNormal
	case FlowThrown:
		return v, FlowThrown
	default:
		// break/continue не покидают вызов; нормальное завершение — null
		return Null(), FlowNormal
	}
}

// builtinFunc is one entry of the fixed builtin table. Builtins never use a
// call frame; they receive already-evaluated arguments.
type builtinFunc func(i *Interp, sp source.Span, args []Value) (Value, Flow)
