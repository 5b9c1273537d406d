package value

import (
	"fmt"
	"strings"
)

// init wires each built-in Type's ctor, the half of "types are themselves
// callable" (spec's value-model rule) that used to live as separate
// BuiltinFunctions bound to names parallel to, rather than identical
// with, their Type objects — meaning type(5) and the global name int were
// two different values instead of one. object is left uncallable: it is
// the abstract root of the type hierarchy, with no instance form of its
// own to construct.
func init() {
	typeType.ctor = typeCtor
	boolType.ctor = boolCtor
	intType.ctor = intCtor
	floatType.ctor = floatCtor
	stringType.ctor = stringCtor
	listType.ctor = listCtor
	tupleType.ctor = tupleCtor
	dictType.ctor = dictCtor
}

func typeCtor(args []Value, kwargs map[string]Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("type() takes exactly one argument (%d given)", len(args))
	}
	return args[0].Type(), nil
}

func boolCtor(args []Value, kwargs map[string]Value) (Value, error) {
	if len(args) == 0 {
		return False, nil
	}
	return NewBool(args[0].Truthy()), nil
}

func intCtor(args []Value, kwargs map[string]Value) (Value, error) {
	if len(args) == 0 {
		return NewInt(0), nil
	}
	switch v := args[0].(type) {
	case *Int:
		return v, nil
	case *Bool:
		return NewInt(v.AsInt()), nil
	case *Float:
		return NewInt(int64(v.Value)), nil
	case *String:
		var n int64
		if _, err := fmt.Sscanf(strings.TrimSpace(v.Value), "%d", &n); err != nil {
			return nil, fmt.Errorf("invalid literal for int() with base 10: %q", v.Value)
		}
		return NewInt(n), nil
	default:
		return nil, fmt.Errorf("int() argument must be a string or a number, not '%s'", v.Type().Name)
	}
}

func floatCtor(args []Value, kwargs map[string]Value) (Value, error) {
	if len(args) == 0 {
		return NewFloat(0), nil
	}
	switch v := args[0].(type) {
	case *Float:
		return v, nil
	case *Int:
		return NewFloat(float64(v.Value)), nil
	case *Bool:
		return NewFloat(float64(v.AsInt())), nil
	case *String:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v.Value), "%g", &f); err != nil {
			return nil, fmt.Errorf("could not convert string to float: %q", v.Value)
		}
		return NewFloat(f), nil
	default:
		return nil, fmt.Errorf("float() argument must be a string or a number, not '%s'", v.Type().Name)
	}
}

func stringCtor(args []Value, kwargs map[string]Value) (Value, error) {
	if len(args) == 0 {
		return NewString(""), nil
	}
	if s, ok := args[0].(*String); ok {
		return NewString(s.Value), nil
	}
	return NewString(args[0].Repr()), nil
}

func listCtor(args []Value, kwargs map[string]Value) (Value, error) {
	if len(args) == 0 {
		return NewList(nil), nil
	}
	items, err := iterableItems(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(items))
	copy(out, items)
	return NewList(out), nil
}

func tupleCtor(args []Value, kwargs map[string]Value) (Value, error) {
	if len(args) == 0 {
		return NewTuple(nil), nil
	}
	items, err := iterableItems(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(items))
	copy(out, items)
	return NewTuple(out), nil
}

func dictCtor(args []Value, kwargs map[string]Value) (Value, error) {
	if len(args) == 0 {
		return NewDict(), nil
	}
	src, ok := args[0].(*Dict)
	if !ok {
		return nil, fmt.Errorf("dict() argument must be a dict, not '%s'", args[0].Type().Name)
	}
	out := NewDict()
	for _, it := range src.Items() {
		out.Set(it.Key, it.Val)
	}
	return out, nil
}

// iterableItems extracts the element sequence list()/tuple() build their
// result from: a List/Tuple's own items, or a String's runes.
func iterableItems(v Value) ([]Value, error) {
	switch x := v.(type) {
	case *List:
		return x.Items, nil
	case *Tuple:
		return x.Items, nil
	case *String:
		runes := []rune(x.Value)
		out := make([]Value, len(runes))
		for i, r := range runes {
			out[i] = NewString(string(r))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("'%s' object is not iterable", v.Type().Name)
	}
}
