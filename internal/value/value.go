// Package value defines the runtime value lattice the interpreter
// operates over: a closed set of tagged variants plus a side table of
// Type objects, replacing the host-language attribute probing and
// multiple-inheritance value hierarchy of a dynamically typed original
// with an explicit capability interface dispatched on the variant's tag.
package value

import "fmt"

// Value is the interface every runtime value satisfies. Capabilities
// (arithmetic, comparison, subscript, attribute, call) are expressed as
// optional interfaces a Value may additionally implement; Type() and
// Truthy() are universal.
type Value interface {
	// Type returns the Type object describing this value's kind.
	Type() *Type
	// Truthy implements the language's boolean projection.
	Truthy() bool
	// Repr renders the value the way print() or a traceback would.
	Repr() string
}

// Hashable is implemented by every Value kind permitted as a Dict key:
// Null, Bool, Int, Float, String, and Tuple (when every element is
// itself hashable).
type Hashable interface {
	Value
	HashKey() HashKey
}

// HashKey is a comparable Go value usable as a map key, letting Dict use
// a plain Go map internally while still rejecting unhashable Values at
// the boundary.
type HashKey struct {
	Kind string
	Int  int64
	Str  string
}

// Type is the first-class value describing a kind of value. The
// self-referential root is modelled with a package-level singleton
// (typeType) rather than a runtime cycle: typeType.Type() returns
// typeType itself, constructed once at init time.
type Type struct {
	Name     string
	Parent   *Type
	ctor     func(args []Value, kwargs map[string]Value) (Value, error)
}

func (t *Type) Type() *Type  { return typeType }
func (t *Type) Truthy() bool { return true }
func (t *Type) Repr() string { return fmt.Sprintf("<type '%s'>", t.Name) }

// Call invokes the type as a constructor, per spec's "types are
// themselves callable" rule.
func (t *Type) Call(args []Value, kwargs map[string]Value) (Value, error) {
	if t.ctor == nil {
		return nil, fmt.Errorf("'%s' object is not callable", t.Name)
	}
	return t.ctor(args, kwargs)
}

var (
	typeType   = &Type{Name: "type"}
	objectType = &Type{Name: "object"}
)

func init() {
	typeType.Parent = objectType
	objectType.Parent = nil
}

// ObjectType is the root type every other Type descends from.
func ObjectType() *Type { return objectType }

// TypeType is the singleton type-of-types: type.Type() == TypeType().
func TypeType() *Type { return typeType }
