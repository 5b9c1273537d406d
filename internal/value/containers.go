package value

import (
	"strconv"
	"strings"
)

// Tuple is a fixed-length, immutable sequence. It is hashable exactly
// when every element it holds is hashable, mirroring the language's
// "frozen sequences key dictionaries" rule.
type Tuple struct {
	Items []Value
}

var tupleType = &Type{Name: "tuple", Parent: objectType}

func NewTuple(items []Value) *Tuple { return &Tuple{Items: items} }

func (t *Tuple) Type() *Type  { return tupleType }
func (t *Tuple) Truthy() bool { return len(t.Items) > 0 }
func (t *Tuple) Repr() string {
	parts := make([]string, len(t.Items))
	for i, it := range t.Items {
		parts[i] = it.Repr()
	}
	suffix := ""
	if len(t.Items) == 1 {
		suffix = ","
	}
	return "(" + strings.Join(parts, ", ") + suffix + ")"
}

// HashKey panics-free hashing requires every element to be Hashable; Dict
// checks this with TupleHashKey (via hashKeyOf) before using a Tuple as a
// key, rather than having HashKey itself return an error.
func (t *Tuple) HashKey() HashKey {
	k, _ := TupleHashKey(t)
	return k
}

// TupleHashKey computes t's HashKey, failing if any element is not
// Hashable.
func TupleHashKey(t *Tuple) (HashKey, bool) {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, it := range t.Items {
		h, ok := it.(Hashable)
		if !ok {
			return HashKey{}, false
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		hk := h.HashKey()
		sb.WriteString(hk.Kind)
		sb.WriteByte(':')
		sb.WriteString(hk.Str)
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatInt(hk.Int, 10))
	}
	sb.WriteByte(')')
	return HashKey{Kind: "tuple", Str: sb.String()}, true
}

// List is a mutable, ordered sequence.
type List struct {
	Items []Value
}

var listType = &Type{Name: "list", Parent: objectType}

func NewList(items []Value) *List { return &List{Items: items} }

func (l *List) Type() *Type  { return listType }
func (l *List) Truthy() bool { return len(l.Items) > 0 }
func (l *List) Repr() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.Repr()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// dictEntry is one insertion-ordered slot; Deleted marks a tombstone so
// Dict.Keys()/Repr() can skip it without shifting index into the index
// map, the same tombstone trick the teacher's SetValue uses map storage
// for large enums rather than re-packing on every removal.
type dictEntry struct {
	Key     Value
	Val     Value
	Deleted bool
}

// Dict is an insertion-ordered mapping from Hashable keys to values.
type Dict struct {
	entries []dictEntry
	index   map[HashKey]int
}

var dictType = &Type{Name: "dict", Parent: objectType}

// NewDict builds an empty Dict.
func NewDict() *Dict {
	return &Dict{index: make(map[HashKey]int)}
}

func (d *Dict) Type() *Type  { return dictType }
func (d *Dict) Truthy() bool { return d.Len() > 0 }

func (d *Dict) Repr() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for _, e := range d.entries {
		if e.Deleted {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(e.Key.Repr())
		sb.WriteString(": ")
		sb.WriteString(e.Val.Repr())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Len returns the number of live entries.
func (d *Dict) Len() int {
	n := 0
	for _, e := range d.entries {
		if !e.Deleted {
			n++
		}
	}
	return n
}

// hashKeyOf returns key's HashKey, failing if key is not Hashable or
// (for a Tuple key) contains a non-Hashable element.
func hashKeyOf(key Value) (HashKey, bool) {
	if tup, ok := key.(*Tuple); ok {
		return TupleHashKey(tup)
	}
	h, ok := key.(Hashable)
	if !ok {
		return HashKey{}, false
	}
	return h.HashKey(), true
}

// Set inserts or overwrites key -> val, preserving key's original
// insertion position on overwrite. ok is false if key is unhashable.
func (d *Dict) Set(key, val Value) bool {
	hk, ok := hashKeyOf(key)
	if !ok {
		return false
	}
	if i, exists := d.index[hk]; exists && !d.entries[i].Deleted {
		d.entries[i].Val = val
		return true
	}
	d.index[hk] = len(d.entries)
	d.entries = append(d.entries, dictEntry{Key: key, Val: val})
	return true
}

// Get looks up key, returning (value, true) if present and live.
func (d *Dict) Get(key Value) (Value, bool) {
	hk, ok := hashKeyOf(key)
	if !ok {
		return nil, false
	}
	i, exists := d.index[hk]
	if !exists || d.entries[i].Deleted {
		return nil, false
	}
	return d.entries[i].Val, true
}

// Delete removes key, reporting whether it was present.
func (d *Dict) Delete(key Value) bool {
	hk, ok := hashKeyOf(key)
	if !ok {
		return false
	}
	i, exists := d.index[hk]
	if !exists || d.entries[i].Deleted {
		return false
	}
	d.entries[i].Deleted = true
	delete(d.index, hk)
	return true
}

// Keys returns live keys in insertion order.
func (d *Dict) Keys() []Value {
	keys := make([]Value, 0, len(d.entries))
	for _, e := range d.entries {
		if !e.Deleted {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Items returns live (key, value) pairs in insertion order.
func (d *Dict) Items() []struct{ Key, Val Value } {
	out := make([]struct{ Key, Val Value }, 0, len(d.entries))
	for _, e := range d.entries {
		if !e.Deleted {
			out = append(out, struct{ Key, Val Value }{e.Key, e.Val})
		}
	}
	return out
}

// ListType and DictType and TupleType expose the built-in Type
// singletons.
func ListType() *Type  { return listType }
func DictType() *Type  { return dictType }
func TupleType() *Type { return tupleType }
