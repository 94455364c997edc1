package interp

// Flow is the evaluator's result discriminator. Break and Continue are
// consumed by the innermost loop, Return by the innermost function call,
// Thrown by the innermost try. None of them escapes Interp.Eval.
type Flow uint8

const (
	FlowNormal Flow = iota
	FlowBreak
	FlowContinue
	FlowReturn
	FlowThrown
)

func (f Flow) String() string {
	switch f {
	case FlowNormal:
		return "Normal"
	case FlowBreak:
		return "Break"
	case FlowContinue:
		return "Continue"
	case FlowReturn:
		return "Return"
	case FlowThrown:
		return "Thrown"
	}
	return "Flow(?)"
}
