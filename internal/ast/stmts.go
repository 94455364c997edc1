package ast

import (
	"sharpscript/internal/source"
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena      *Arena[Stmt]
	Exprs      *Arena[StmtExprData]
	Declares   *Arena[StmtDeclareData]
	Assigns    *Arena[StmtAssignData]
	Blocks     *Arena[StmtBlockData]
	Ifs        *Arena[StmtIfData]
	Whiles     *Arena[StmtWhileData]
	Fors       *Arena[StmtForData]
	ForIns     *Arena[StmtForInData]
	Functions  *Arena[StmtFunctionData]
	Returns    *Arena[StmtReturnData]
	Namespaces *Arena[StmtNamespaceData]
	Enums      *Arena[StmtEnumData]
	Classes    *Arena[StmtClassData]
	Matches    *Arena[StmtMatchData]
	Tries      *Arena[StmtTryData]
}

// NewStmts creates a new Stmts with per-kind arenas preallocated using capHint
// as the initial capacity (default 1<<8).
func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:      NewArena[Stmt](capHint),
		Exprs:      NewArena[StmtExprData](capHint),
		Declares:   NewArena[StmtDeclareData](capHint),
		Assigns:    NewArena[StmtAssignData](capHint),
		Blocks:     NewArena[StmtBlockData](capHint),
		Ifs:        NewArena[StmtIfData](capHint),
		Whiles:     NewArena[StmtWhileData](capHint),
		Fors:       NewArena[StmtForData](capHint),
		ForIns:     NewArena[StmtForInData](capHint),
		Functions:  NewArena[StmtFunctionData](capHint),
		Returns:    NewArena[StmtReturnData](capHint),
		Namespaces: NewArena[StmtNamespaceData](capHint),
		Enums:      NewArena[StmtEnumData](capHint),
		Classes:    NewArena[StmtClassData](capHint),
		Matches:    NewArena[StmtMatchData](capHint),
		Tries:      NewArena[StmtTryData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewEmpty creates a null statement.
func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return s.new(StmtEmpty, span, NoPayloadID)
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression statement data.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewDeclare creates a declaration statement.
func (s *Stmts) NewDeclare(span source.Span, name, typeName source.StringID, value ExprID, isConst bool) StmtID {
	payload := s.Declares.Allocate(StmtDeclareData{Name: name, TypeName: typeName, Value: value, Const: isConst})
	return s.new(StmtDeclare, span, PayloadID(payload))
}

// Declare returns the declaration data.
func (s *Stmts) Declare(id StmtID) (*StmtDeclareData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDeclare {
		return nil, false
	}
	return s.Declares.Get(uint32(stmt.Payload)), true
}

// NewAssign creates an assignment statement.
func (s *Stmts) NewAssign(span source.Span, name source.StringID, op AssignOp, value ExprID) StmtID {
	payload := s.Assigns.Allocate(StmtAssignData{Name: name, Op: op, Value: value})
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment data.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

// NewBlock creates a block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block data.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewIf creates an if statement.
func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

// If returns the if data.
func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a while statement.
func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

// While returns the while data.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewFor creates a C-style for statement.
func (s *Stmts) NewFor(span source.Span, init StmtID, cond ExprID, post, body StmtID) StmtID {
	payload := s.Fors.Allocate(StmtForData{Init: init, Cond: cond, Post: post, Body: body})
	return s.new(StmtFor, span, PayloadID(payload))
}

// For returns the for data.
func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(stmt.Payload)), true
}

// NewForIn creates a for-in statement.
func (s *Stmts) NewForIn(span source.Span, v source.StringID, iterable ExprID, body StmtID) StmtID {
	payload := s.ForIns.Allocate(StmtForInData{Var: v, Iterable: iterable, Body: body})
	return s.new(StmtForIn, span, PayloadID(payload))
}

// ForIn returns the for-in data.
func (s *Stmts) ForIn(id StmtID) (*StmtForInData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtForIn {
		return nil, false
	}
	return s.ForIns.Get(uint32(stmt.Payload)), true
}

// NewFunction creates a function declaration statement.
func (s *Stmts) NewFunction(span source.Span, name source.StringID, params []FnParam, body StmtID) StmtID {
	payload := s.Functions.Allocate(StmtFunctionData{Name: name, Params: params, Body: body})
	return s.new(StmtFunction, span, PayloadID(payload))
}

// Function returns the function data.
func (s *Stmts) Function(id StmtID) (*StmtFunctionData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFunction {
		return nil, false
	}
	return s.Functions.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a return statement.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return data.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewBreak creates a break statement.
func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

// NewContinue creates a continue statement.
func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

// NewNamespace creates a namespace statement.
func (s *Stmts) NewNamespace(span source.Span, name source.StringID, body StmtID) StmtID {
	payload := s.Namespaces.Allocate(StmtNamespaceData{Name: name, Body: body})
	return s.new(StmtNamespace, span, PayloadID(payload))
}

// Namespace returns the namespace data.
func (s *Stmts) Namespace(id StmtID) (*StmtNamespaceData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtNamespace {
		return nil, false
	}
	return s.Namespaces.Get(uint32(stmt.Payload)), true
}

// NewEnum creates an enum statement.
func (s *Stmts) NewEnum(span source.Span, name source.StringID, members []EnumMember) StmtID {
	payload := s.Enums.Allocate(StmtEnumData{Name: name, Members: members})
	return s.new(StmtEnum, span, PayloadID(payload))
}

// Enum returns the enum data.
func (s *Stmts) Enum(id StmtID) (*StmtEnumData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtEnum {
		return nil, false
	}
	return s.Enums.Get(uint32(stmt.Payload)), true
}

// NewClass creates a class or struct statement.
func (s *Stmts) NewClass(span source.Span, name, base source.StringID, body StmtID, isStruct bool) StmtID {
	payload := s.Classes.Allocate(StmtClassData{Name: name, Base: base, Body: body, IsStruct: isStruct})
	return s.new(StmtClass, span, PayloadID(payload))
}

// Class returns the class data.
func (s *Stmts) Class(id StmtID) (*StmtClassData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtClass {
		return nil, false
	}
	return s.Classes.Get(uint32(stmt.Payload)), true
}

// NewMatch creates a match statement.
func (s *Stmts) NewMatch(span source.Span, scrutinee ExprID, cases []MatchCase, def StmtID) StmtID {
	payload := s.Matches.Allocate(StmtMatchData{Scrutinee: scrutinee, Cases: cases, Default: def})
	return s.new(StmtMatch, span, PayloadID(payload))
}

// Match returns the match data.
func (s *Stmts) Match(id StmtID) (*StmtMatchData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtMatch {
		return nil, false
	}
	return s.Matches.Get(uint32(stmt.Payload)), true
}

// NewTry creates a try/catch/finally statement.
func (s *Stmts) NewTry(span source.Span, try StmtID, hasCatch bool, catchName source.StringID, catch, finally StmtID) StmtID {
	payload := s.Tries.Allocate(StmtTryData{
		Try: try, HasCatch: hasCatch, CatchName: catchName, Catch: catch, Finally: finally,
	})
	return s.new(StmtTry, span, PayloadID(payload))
}

// Try returns the try data.
func (s *Stmts) Try(id StmtID) (*StmtTryData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtTry {
		return nil, false
	}
	return s.Tries.Get(uint32(stmt.Payload)), true
}
