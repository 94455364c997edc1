package ast

// BinaryOp enumerates binary expression operators.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota // +
	BinSub                 // -
	BinMul                 // *
	BinDiv                 // /
	BinMod                 // %
	BinEq                  // ==
	BinNeq                 // !=
	BinLt                  // <
	BinLte                 // <=
	BinGt                  // >
	BinGte                 // >=
	BinAnd                 // &&
	BinOr                  // ||
)

var binaryNames = [...]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinMod: "%",
	BinEq: "==", BinNeq: "!=", BinLt: "<", BinLte: "<=", BinGt: ">", BinGte: ">=",
	BinAnd: "&&", BinOr: "||",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "?"
}

// UnaryOp enumerates unary expression operators.
type UnaryOp uint8

const (
	UnNeg UnaryOp = iota // -
	UnNot                // !
)

func (op UnaryOp) String() string {
	if op == UnNeg {
		return "-"
	}
	return "!"
}

// AssignOp enumerates assignment statement operators. The word operators
// add/sub/mul/div/mod arrive here already folded into their symbolic forms.
type AssignOp uint8

const (
	AssignSet AssignOp = iota // =
	AssignAdd                 // +=
	AssignSub                 // -=
	AssignMul                 // *=
	AssignDiv                 // /=
	AssignMod                 // %=
	AssignInc                 // ++
	AssignDec                 // --
)

var assignNames = [...]string{
	AssignSet: "=", AssignAdd: "+=", AssignSub: "-=", AssignMul: "*=",
	AssignDiv: "/=", AssignMod: "%=", AssignInc: "++", AssignDec: "--",
}

func (op AssignOp) String() string {
	if int(op) < len(assignNames) {
		return assignNames[op]
	}
	return "?"
}
