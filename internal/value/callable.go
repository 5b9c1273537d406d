package value

import "fmt"

// Callable is implemented by every Value that can appear as the callee
// of a Call node: BuiltinFunction and Type (whose Call constructs an
// instance).
type Callable interface {
	Value
	Call(args []Value, kwargs map[string]Value) (Value, error)
}

// BuiltinFunction wraps a Go function as a callable Lumen value, the
// mechanism the global context uses to expose print/len/abs/getattr and
// friends without giving the language user-defined functions.
type BuiltinFunction struct {
	Name string
	Fn   func(args []Value, kwargs map[string]Value) (Value, error)
}

var builtinFunctionType = &Type{Name: "builtin_function", Parent: objectType}

// NewBuiltinFunction wraps fn under name.
func NewBuiltinFunction(name string, fn func(args []Value, kwargs map[string]Value) (Value, error)) *BuiltinFunction {
	return &BuiltinFunction{Name: name, Fn: fn}
}

func (b *BuiltinFunction) Type() *Type  { return builtinFunctionType }
func (b *BuiltinFunction) Truthy() bool { return true }
func (b *BuiltinFunction) Repr() string { return fmt.Sprintf("<built-in function %s>", b.Name) }

func (b *BuiltinFunction) Call(args []Value, kwargs map[string]Value) (Value, error) {
	return b.Fn(args, kwargs)
}

// BuiltinFunctionType exposes the built-in Type singleton.
func BuiltinFunctionType() *Type { return builtinFunctionType }
