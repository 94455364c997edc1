package session

import (
	"sharpscript/internal/interp"
)

// StoredValue is the serializable subset of the runtime value model.
// Functions and scopes do not survive a session; they degrade to null.
type StoredValue struct {
	Kind    uint8
	Num     float64
	Str     string
	Bool    bool
	Arr     []StoredValue
	MapKeys []string
	MapVals []StoredValue
	ErrName string
	ErrMsg  string
	ErrCode float64
}

const (
	storedNull uint8 = iota
	storedNumber
	storedString
	storedBool
	storedArray
	storedMap
	storedError
)

// FromValue converts a runtime value into its stored form.
func FromValue(v interp.Value) StoredValue {
	switch v.Kind {
	case interp.KindNumber:
		return StoredValue{Kind: storedNumber, Num: v.Num}
	case interp.KindString:
		return StoredValue{Kind: storedString, Str: v.Str}
	case interp.KindBool:
		return StoredValue{Kind: storedBool, Bool: v.Boolean}
	case interp.KindArray:
		elems := make([]StoredValue, len(v.Arr))
		for i, e := range v.Arr {
			elems[i] = FromValue(e)
		}
		return StoredValue{Kind: storedArray, Arr: elems}
	case interp.KindMap:
		keys := make([]string, len(v.MapKeys))
		copy(keys, v.MapKeys)
		vals := make([]StoredValue, len(v.MapVals))
		for i, e := range v.MapVals {
			vals[i] = FromValue(e)
		}
		return StoredValue{Kind: storedMap, MapKeys: keys, MapVals: vals}
	case interp.KindError:
		return StoredValue{Kind: storedError, ErrName: v.Err.Name, ErrMsg: v.Err.Message, ErrCode: v.Err.Code}
	default:
		return StoredValue{Kind: storedNull}
	}
}

// ToValue converts a stored value back into the runtime model.
func (sv StoredValue) ToValue() interp.Value {
	switch sv.Kind {
	case storedNumber:
		return interp.Number(sv.Num)
	case storedString:
		return interp.Str(sv.Str)
	case storedBool:
		return interp.Bool(sv.Bool)
	case storedArray:
		elems := make([]interp.Value, len(sv.Arr))
		for i, e := range sv.Arr {
			elems[i] = e.ToValue()
		}
		return interp.Array(elems)
	case storedMap:
		keys := make([]string, len(sv.MapKeys))
		copy(keys, sv.MapKeys)
		vals := make([]interp.Value, len(sv.MapVals))
		for i, e := range sv.MapVals {
			vals[i] = e.ToValue()
		}
		return interp.MapValue(keys, vals)
	case storedError:
		return interp.ErrorValue(sv.ErrName, sv.ErrMsg, sv.ErrCode)
	default:
		return interp.Null()
	}
}

// Snapshot captures the interpreter's persistent side tables.
func Snapshot(i *interp.Interp) *Payload {
	memory := make(map[string]StoredValue)
	mem := i.Memory()
	for slot := 0; slot < mem.Len(); slot++ {
		memory[mem.NameAt(slot)] = FromValue(mem.At(slot))
	}

	history := i.History()
	stored := make([]StoredValue, len(history))
	for idx, v := range history {
		stored[idx] = FromValue(v)
	}

	return &Payload{Memory: memory, History: stored}
}

// Restore reinstates a payload into the interpreter's side tables.
func Restore(i *interp.Interp, payload *Payload) {
	if payload == nil {
		return
	}
	memory := make(map[string]interp.Value, len(payload.Memory))
	for name, sv := range payload.Memory {
		memory[name] = sv.ToValue()
	}
	history := make([]interp.Value, len(payload.History))
	for idx, sv := range payload.History {
		history[idx] = sv.ToValue()
	}
	i.RestoreSession(memory, history)
}
