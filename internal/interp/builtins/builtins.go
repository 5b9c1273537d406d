// Package builtins populates the global symbol table with the core's
// built-in names, grounded on the teacher's builtins_core.go /
// builtins_math.go / builtins_strings.go split into one file per
// concern, but collapsed into this single package since spec.md's
// built-in surface is a short, closed list rather than DWScript's
// sprawling standard library.
package builtins

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/lumen-lang/lumen/internal/errors"
	"github.com/lumen-lang/lumen/internal/value"
)

// entry is one built-in binding; Names holds every ASCII/CJK spelling
// that binds to the same callable or constant, per spec.md §6's "each
// CJK synonym binds to the same callable" rule.
type entry struct {
	Names []string
	Value value.Value
}

// Populate writes every built-in name into set (typically
// SymbolTable.Set). out is where print/打印 writes; pass io.Discard in
// tests that don't care about printed output.
func Populate(set func(name string, v value.Value), out io.Writer) {
	for _, e := range coreEntries(out) {
		for _, name := range e.Names {
			set(name, e.Value)
		}
	}
}

func coreEntries(out io.Writer) []entry {
	return []entry{
		{[]string{"null"}, value.Nil},
		{[]string{"Inf"}, value.NewFloat(math.Inf(1))},
		{[]string{"NaN"}, value.NewFloat(math.NaN())},
		// Each of these names binds directly to its Type singleton, not a
		// separate BuiltinFunction, so that type(5) == int holds and type
		// is its own type: a Type is already Callable, via Type.Call
		// dispatching to the ctor value/constructors.go wires up.
		{[]string{"type"}, value.TypeType()},
		{[]string{"object"}, value.ObjectType()},
		{[]string{"bool"}, value.BoolType()},
		{[]string{"int"}, value.IntType()},
		{[]string{"float"}, value.FloatType()},
		{[]string{"str"}, value.StringType()},
		{[]string{"list"}, value.ListType()},
		{[]string{"tuple"}, value.TupleType()},
		{[]string{"dict"}, value.DictType()},
		{[]string{"print", "打印"}, printBuiltin(out)},
		{[]string{"getattr", "取属性"}, getattrBuiltin()},
		{[]string{"abs", "绝对值"}, absBuiltin()},
		{[]string{"len", "长度"}, lenBuiltin()},
	}
}

func printBuiltin(out io.Writer) value.Value {
	return value.NewBuiltinFunction("print", func(args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			if s, ok := a.(*value.String); ok {
				parts[i] = s.Value
			} else {
				parts[i] = a.Repr()
			}
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return value.Nil, nil
	})
}

func getattrBuiltin() value.Value {
	return value.NewBuiltinFunction("getattr", func(args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("getattr expected at least 2 arguments, got %d", len(args))
		}
		name, ok := args[1].(*value.String)
		if !ok {
			return nil, fmt.Errorf("getattr(): attribute name must be string")
		}
		if len(args) >= 3 {
			return args[2], nil
		}
		return nil, &errors.Error{Kind: errors.AttributeError, Message: fmt.Sprintf("'%s' object has no attribute '%s'", args[0].Type().Name, name.Value)}
	})
}

func absBuiltin() value.Value {
	return value.NewBuiltinFunction("abs", func(args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("abs() takes exactly one argument (%d given)", len(args))
		}
		switch v := args[0].(type) {
		case *value.Int:
			n := v.Value
			if n < 0 {
				n = -n
			}
			return value.NewInt(n), nil
		case *value.Bool:
			return value.NewInt(v.AsInt()), nil
		case *value.Float:
			return value.NewFloat(math.Abs(v.Value)), nil
		default:
			return nil, fmt.Errorf("bad operand type for abs(): '%s'", v.Type().Name)
		}
	})
}

func lenBuiltin() value.Value {
	return value.NewBuiltinFunction("len", func(args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("len() takes exactly one argument (%d given)", len(args))
		}
		switch v := args[0].(type) {
		case *value.String:
			return value.NewInt(int64(len([]rune(v.Value)))), nil
		case *value.List:
			return value.NewInt(int64(len(v.Items))), nil
		case *value.Tuple:
			return value.NewInt(int64(len(v.Items))), nil
		case *value.Dict:
			return value.NewInt(int64(v.Len())), nil
		default:
			return nil, fmt.Errorf("object of type '%s' has no len()", v.Type().Name)
		}
	})
}
