package interp

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
)

// evalStmt walks one statement. The returned Flow tells the caller whether a
// sentinel (break/continue/return/thrown) is propagating; the Value carries
// the statement result (or the return/error payload for those flows).
func (i *Interp) evalStmt(id ast.StmtID) (Value, Flow) {
	stmt := i.arenas.Stmts.Get(id)
	if stmt == nil {
		return Null(), FlowNormal
	}

	switch stmt.Kind {
	case ast.StmtEmpty:
		return Null(), FlowNormal

	case ast.StmtExpr:
		data, _ := i.arenas.Stmts.Expr(id)
		return i.evalExpr(data.Expr)

	case ast.StmtDeclare:
		return i.evalDeclare(id)

	case ast.StmtAssign:
		return i.evalAssign(id)

	case ast.StmtBlock:
		return i.evalBlock(id)

	case ast.StmtIf:
		data, _ := i.arenas.Stmts.If(id)
		cond, flow := i.evalExpr(data.Cond)
		if flow != FlowNormal {
			return cond, flow
		}
		if cond.Truthy() {
			return i.evalStmt(data.Then)
		}
		if data.Else.IsValid() {
			return i.evalStmt(data.Else)
		}
		return Null(), FlowNormal

	case ast.StmtWhile:
		return i.evalWhile(id)

	case ast.StmtFor:
		return i.evalFor(id)

	case ast.StmtForIn:
		return i.evalForIn(id)

	case ast.StmtFunction:
		data, _ := i.arenas.Stmts.Function(id)
		name := i.lookupStr(data.Name)
		proto := &FuncProto{
			Name:    name,
			Params:  data.Params,
			Body:    data.Body,
			Arenas:  i.arenas,
			Closure: i.current,
		}
		i.current.Define(name, Function(proto), false, "function")
		return Null(), FlowNormal

	case ast.StmtReturn:
		data, _ := i.arenas.Stmts.Return(id)
		if data.Value.IsValid() {
			v, flow := i.evalExpr(data.Value)
			if flow != FlowNormal {
				return v, flow
			}
			return v, FlowReturn
		}
		return Null(), FlowReturn

	case ast.StmtBreak:
		return Null(), FlowBreak

	case ast.StmtContinue:
		return Null(), FlowContinue

	case ast.StmtNamespace:
		return i.evalNamespace(id)

	case ast.StmtEnum:
		return i.evalEnum(id)

	case ast.StmtClass:
		// классы не инстанцируются: имя записывается, тело — обычный блок
		data, _ := i.arenas.Stmts.Class(id)
		scope := NewEnv(i.current)
		classValue := Value{Kind: KindClass, Scope: scope}
		i.current.Define(i.lookupStr(data.Name), classValue, false, "unknown")
		return i.evalStmt(data.Body)

	case ast.StmtMatch:
		return i.evalMatch(id)

	case ast.StmtTry:
		return i.evalTry(id)

	default:
		return Null(), FlowNormal
	}
}

// evalBlock runs statements in order in the current frame; the block's value
// is the value of the last statement that ran.
func (i *Interp) evalBlock(id ast.StmtID) (Value, Flow) {
	data, ok := i.arenas.Stmts.Block(id)
	if !ok {
		return i.evalStmt(id)
	}
	result := Null()
	for _, stmtID := range data.Stmts {
		v, flow := i.evalStmt(stmtID)
		if flow != FlowNormal {
			return v, flow
		}
		result = v
	}
	return result, FlowNormal
}

func (i *Interp) evalDeclare(id ast.StmtID) (Value, Flow) {
	stmt := i.arenas.Stmts.Get(id)
	data, _ := i.arenas.Stmts.Declare(id)
	name := i.lookupStr(data.Name)

	value, flow := i.evalExpr(data.Value)
	if flow != FlowNormal {
		return value, flow
	}

	inferred := value.TypeName()
	declared := inferred
	if data.TypeName.IsValid() {
		declared = i.lookupStr(data.TypeName)
		if declared != inferred {
			i.diag(diag.RunTypeMismatch, stmt.Span,
				"cannot bind "+inferred+" value to \""+name+"\" declared as "+declared)
			return Null(), FlowNormal
		}
	}

	if !i.current.Declare(name, value, data.Const, declared) {
		i.diag(diag.RunRedeclared, stmt.Span, "variable already declared: "+name)
	}
	return Null(), FlowNormal
}

func (i *Interp) evalAssign(id ast.StmtID) (Value, Flow) {
	stmt := i.arenas.Stmts.Get(id)
	data, _ := i.arenas.Stmts.Assign(id)
	name := i.lookupStr(data.Name)

	value := Null()
	if data.Value.IsValid() {
		var flow Flow
		value, flow = i.evalExpr(data.Value)
		if flow != FlowNormal {
			return value, flow
		}
	}

	frame, slot, found := i.current.Resolve(name)
	if !found {
		i.diag(diag.RunAssignUndeclared, stmt.Span, "assignment to undeclared variable: "+name)
		return Null(), FlowNormal
	}
	if frame.IsConst(slot) {
		i.diag(diag.RunConstViolation, stmt.Span, "cannot assign to const variable: "+name)
		return Null(), FlowNormal
	}

	old := frame.At(slot)
	switch data.Op {
	case ast.AssignSet:
		// value как есть
	case ast.AssignAdd, ast.AssignSub, ast.AssignMul, ast.AssignDiv, ast.AssignMod:
		value = combineCompound(data.Op, old, value)
	case ast.AssignInc:
		value = Number(old.AsNumber() + 1)
	case ast.AssignDec:
		value = Number(old.AsNumber() - 1)
	}

	frame.Set(slot, value)
	return Null(), FlowNormal
}

func (i *Interp) evalWhile(id ast.StmtID) (Value, Flow) {
	data, _ := i.arenas.Stmts.While(id)
	for {
		cond, flow := i.evalExpr(data.Cond)
		if flow != FlowNormal {
			return cond, flow
		}
		if !cond.Truthy() {
			return Null(), FlowNormal
		}
		v, flow := i.evalStmt(data.Body)
		switch flow {
		case FlowBreak:
			return Null(), FlowNormal
		case FlowContinue, FlowNormal:
			// следующая итерация
		default:
			return v, flow
		}
	}
}

func (i *Interp) evalFor(id ast.StmtID) (Value, Flow) {
	data, _ := i.arenas.Stmts.For(id)

	if data.Init.IsValid() {
		if v, flow := i.evalStmt(data.Init); flow != FlowNormal {
			return v, flow
		}
	}

	for {
		if data.Cond.IsValid() {
			cond, flow := i.evalExpr(data.Cond)
			if flow != FlowNormal {
				return cond, flow
			}
			if !cond.Truthy() {
				return Null(), FlowNormal
			}
		}

		v, flow := i.evalStmt(data.Body)
		switch flow {
		case FlowBreak:
			return Null(), FlowNormal
		case FlowContinue, FlowNormal:
		default:
			return v, flow
		}

		if data.Post.IsValid() {
			if v, flow := i.evalStmt(data.Post); flow != FlowNormal {
				return v, flow
			}
		}
	}
}

// evalForIn iterates arrays (deep clone of each element) and maps (a
// two-entry map with "key" and "value" per pair, in declaration order).
// Anything else is a diagnostic and completes with null.
func (i *Interp) evalForIn(id ast.StmtID) (Value, Flow) {
	stmt := i.arenas.Stmts.Get(id)
	data, _ := i.arenas.Stmts.ForIn(id)
	varName := i.lookupStr(data.Var)

	iterable, flow := i.evalExpr(data.Iterable)
	if flow != FlowNormal {
		return iterable, flow
	}

	runBody := func(element Value) (Value, Flow, bool) {
		i.current.Define(varName, element, false, element.TypeName())
		v, flow := i.evalStmt(data.Body)
		switch flow {
		case FlowBreak:
			return Null(), FlowNormal, false
		case FlowContinue, FlowNormal:
			return Null(), FlowNormal, true
		default:
			return v, flow, false
		}
	}

	switch iterable.Kind {
	case KindArray:
		for _, elem := range iterable.Arr {
			if v, flow, cont := runBody(elem.Clone()); !cont {
				return v, flow
			}
		}
	case KindMap:
		for idx, key := range iterable.MapKeys {
			pair := MapValue(
				[]string{"key", "value"},
				[]Value{Str(key), iterable.MapVals[idx].Clone()},
			)
			if v, flow, cont := runBody(pair); !cont {
				return v, flow
			}
		}
	default:
		i.diag(diag.RunBadIterable, stmt.Span,
			"for-in expects an array or map, got "+iterable.TypeName())
	}
	return Null(), FlowNormal
}

// evalNamespace runs the body in a fresh frame and re-publishes every binding
// into the parent under the qualified Namespace.member name, preserving const
// flags. The namespace name is then bound to a namespace value that holds the
// body frame as its Scope; Display renders that value as "null".
func (i *Interp) evalNamespace(id ast.StmtID) (Value, Flow) {
	data, _ := i.arenas.Stmts.Namespace(id)
	nsName := i.lookupStr(data.Name)

	frame := NewEnv(i.current)
	prev := i.current
	i.current = frame
	v, flow := i.evalStmt(data.Body)
	i.current = prev

	if flow == FlowThrown {
		return v, flow
	}

	for slot := 0; slot < frame.Len(); slot++ {
		qualified := nsName + "." + frame.NameAt(slot)
		i.current.Define(qualified, frame.At(slot), frame.ConstAt(slot), frame.TypeNameAt(slot))
	}
	i.current.Define(nsName, Value{Kind: KindNamespace, Scope: frame}, false, "unknown")
	return Null(), FlowNormal
}

// evalEnum binds each member as a const under Enum.Member. Member values use
// last-explicit-plus-one, starting at 0.
func (i *Interp) evalEnum(id ast.StmtID) (Value, Flow) {
	data, _ := i.arenas.Stmts.Enum(id)
	enumName := i.lookupStr(data.Name)

	next := 0.0
	scope := NewEnv(nil)
	for _, member := range data.Members {
		value := next
		if member.Value.IsValid() {
			v, flow := i.evalExpr(member.Value)
			if flow != FlowNormal {
				return v, flow
			}
			value = v.AsNumber()
		}
		next = value + 1

		qualified := enumName + "." + i.lookupStr(member.Name)
		i.current.Define(qualified, Number(value), true, "number")
		scope.Define(i.lookupStr(member.Name), Number(value), true, "number")
	}
	i.current.Define(enumName, Value{Kind: KindEnum, Scope: scope}, false, "unknown")
	return Null(), FlowNormal
}

func (i *Interp) evalMatch(id ast.StmtID) (Value, Flow) {
	data, _ := i.arenas.Stmts.Match(id)

	scrutinee, flow := i.evalExpr(data.Scrutinee)
	if flow != FlowNormal {
		return scrutinee, flow
	}

	for _, c := range data.Cases {
		pattern, flow := i.evalExpr(c.Pattern)
		if flow != FlowNormal {
			return pattern, flow
		}
		if scrutinee.Equals(pattern) {
			return i.evalStmt(c.Body)
		}
	}
	if data.Default.IsValid() {
		return i.evalStmt(data.Default)
	}
	return Null(), FlowNormal
}

// evalTry runs the try body; a Thrown flow from it is consumed by the catch
// clause (binding the error to the optional name). The finally body runs on
// every exit path and its value is discarded; a sentinel escaping the finally
// body itself takes precedence.
func (i *Interp) evalTry(id ast.StmtID) (Value, Flow) {
	data, _ := i.arenas.Stmts.Try(id)

	result, flow := i.evalStmt(data.Try)

	if flow == FlowThrown && data.HasCatch {
		if data.CatchName.IsValid() {
			name := i.lookupStr(data.CatchName)
			i.current.Define(name, result, false, result.TypeName())
		}
		if data.Catch.IsValid() {
			result, flow = i.evalStmt(data.Catch)
		} else {
			result, flow = Null(), FlowNormal
		}
	}

	if data.Finally.IsValid() {
		fv, fflow := i.evalStmt(data.Finally)
		if fflow != FlowNormal {
			return fv, fflow
		}
	}

	return result, flow
}
