package ast

import (
	"sharpscript/internal/source"
)

type ExprKind uint8

const (
	ExprNumber ExprKind = iota
	ExprString
	ExprBool
	ExprNull
	ExprIdent
	ExprBinary
	ExprUnary
	ExprCall
	ExprIndex
	ExprArray
	ExprMap
	ExprLambda
)

var exprKindNames = [...]string{
	ExprNumber: "Number",
	ExprString: "String",
	ExprBool:   "Bool",
	ExprNull:   "Null",
	ExprIdent:  "Ident",
	ExprBinary: "Binary",
	ExprUnary:  "Unary",
	ExprCall:   "Call",
	ExprIndex:  "Index",
	ExprArray:  "Array",
	ExprMap:    "Map",
	ExprLambda: "Lambda",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "ExprKind(?)"
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprNumberData holds the parsed numeric value.
type ExprNumberData struct {
	Value float64
}

// ExprStringData holds the interned literal contents (without quotes).
type ExprStringData struct {
	Value source.StringID
}

// ExprBoolData holds the boolean literal value.
type ExprBoolData struct {
	Value bool
}

// ExprIdentData holds the interned identifier name.
type ExprIdentData struct {
	Name source.StringID
}

// ExprBinaryData holds a binary operation.
type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// ExprUnaryData holds a unary operation.
type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

// ExprCallData holds a call by name. Builtins keep their canonical qualified
// name here and are dispatched before environment lookup.
type ExprCallData struct {
	Name source.StringID
	Args []ExprID
}

// ExprIndexData holds target[index].
type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprArrayData holds array literal elements.
type ExprArrayData struct {
	Elems []ExprID
}

// ExprMapData holds parallel key and value expressions of a map literal.
type ExprMapData struct {
	Keys   []ExprID
	Values []ExprID
}

// ExprLambdaData holds lambda parameters and the body block.
type ExprLambdaData struct {
	Params []source.StringID
	Body   StmtID
}
