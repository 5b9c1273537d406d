package interp

import "github.com/lumen-lang/lumen/internal/value"

// SymbolTable is a mapping from name to value.Value, with an optional
// parent. Lookup climbs the parent chain; Set always writes the current
// scope. There is no "Undefined" value object: a miss is reported as
// (nil, false), the sum-type `{Found, NotFound}` shape spec.md's design
// notes call for, kept as a plain (Value, bool) pair rather than an
// extra wrapper type.
type SymbolTable struct {
	vars   map[string]value.Value
	parent *SymbolTable
}

// NewSymbolTable creates a table, optionally enclosed by parent.
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{vars: make(map[string]value.Value), parent: parent}
}

// Get searches this table then its parent chain.
func (t *SymbolTable) Get(name string) (value.Value, bool) {
	if v, ok := t.vars[name]; ok {
		return v, true
	}
	if t.parent != nil {
		return t.parent.Get(name)
	}
	return nil, false
}

// Set writes name into this table's own scope, shadowing any parent
// binding of the same name.
func (t *SymbolTable) Set(name string, v value.Value) {
	t.vars[name] = v
}

// Remove deletes name from this table only (not the parent chain),
// reporting whether it was present.
func (t *SymbolTable) Remove(name string) bool {
	if _, ok := t.vars[name]; !ok {
		return false
	}
	delete(t.vars, name)
	return true
}
