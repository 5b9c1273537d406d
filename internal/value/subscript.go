package value

import (
	stderrors "errors"
)

// Sentinel errors identifying why a subscript operation failed, so the
// interpreter can classify them into the right error kind without this
// package depending on internal/errors (the same layering the operator
// dispatch in ops.go uses for division by zero).
var (
	ErrIndexOutOfRange = stderrors.New("index out of range")
	ErrKeyNotFound     = stderrors.New("key not found")
	ErrBadIndexType    = stderrors.New("bad index type")
	ErrNotMutable      = stderrors.New("does not support item assignment")
)

// Indexable is implemented by every Value kind that can appear on the left
// of a GetItem subscript: String, List, Tuple, Dict.
type Indexable interface {
	Value
	GetItem(key Value) (Value, error)
}

// MutableIndexable additionally allows SetItem. Tuple and String are
// Indexable but not MutableIndexable, matching the spec's rule that
// subscript assignment on either raises TypeError.
type MutableIndexable interface {
	Indexable
	SetItem(key, val Value) error
}

// GetItem implements String[Int] (one-rune substring) and String[Slice].
func (s *String) GetItem(key Value) (Value, error) {
	runes := []rune(s.Value)
	switch k := key.(type) {
	case *Int:
		idx := k.Value
		if idx < 0 {
			idx += int64(len(runes))
		}
		if idx < 0 || idx >= int64(len(runes)) {
			return nil, ErrIndexOutOfRange
		}
		return NewString(string(runes[idx])), nil
	case *Bool:
		idx := k.AsInt()
		if idx < 0 || idx >= int64(len(runes)) {
			return nil, ErrIndexOutOfRange
		}
		return NewString(string(runes[idx])), nil
	case *Slice:
		start, stop, step, err := k.Resolve(len(runes))
		if err != nil {
			return nil, err
		}
		return NewString(string(sliceRunes(runes, start, stop, step))), nil
	default:
		return nil, ErrBadIndexType
	}
}

func sliceRunes(runes []rune, start, stop, step int) []rune {
	var out []rune
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, runes[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, runes[i])
		}
	}
	return out
}

// GetItem implements List[Int] and List[Slice].
func (l *List) GetItem(key Value) (Value, error) {
	idx, items, err := resolveSequenceIndex(key, l.Items)
	if err != nil {
		return nil, err
	}
	if items != nil {
		out := make([]Value, len(items))
		copy(out, items)
		return NewList(out), nil
	}
	return l.Items[idx], nil
}

// SetItem implements List[Int] = value. List has no slice-assignment
// support; a Slice key is a bad index type for writes.
func (l *List) SetItem(key, val Value) error {
	idx, ok := resolveIntIndex(key, len(l.Items))
	if !ok {
		return ErrBadIndexType
	}
	if idx < 0 || idx >= len(l.Items) {
		return ErrIndexOutOfRange
	}
	l.Items[idx] = val
	return nil
}

// GetItem implements Tuple[Int] and Tuple[Slice]. Tuple has no SetItem:
// it is Indexable but not MutableIndexable.
func (t *Tuple) GetItem(key Value) (Value, error) {
	idx, items, err := resolveSequenceIndex(key, t.Items)
	if err != nil {
		return nil, err
	}
	if items != nil {
		out := make([]Value, len(items))
		copy(out, items)
		return NewTuple(out), nil
	}
	return t.Items[idx], nil
}

// resolveSequenceIndex handles the Int-or-Slice subscript shared by List
// and Tuple. When key is a Slice, the returned items slice is non-nil (and
// idx meaningless); when key is an Int/Bool, idx is the resolved index and
// items is nil.
func resolveSequenceIndex(key Value, items []Value) (idx int, sliced []Value, err error) {
	switch k := key.(type) {
	case *Int, *Bool:
		i, _ := resolveIntIndex(key, len(items))
		if i < 0 || i >= len(items) {
			return 0, nil, ErrIndexOutOfRange
		}
		return i, nil, nil
	case *Slice:
		start, stop, step, serr := k.Resolve(len(items))
		if serr != nil {
			return 0, nil, serr
		}
		return 0, sliceItems(items, start, stop, step), nil
	default:
		return 0, nil, ErrBadIndexType
	}
}

func sliceItems(items []Value, start, stop, step int) []Value {
	var out []Value
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, items[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, items[i])
		}
	}
	return out
}

func resolveIntIndex(key Value, length int) (int, bool) {
	n, ok := asInt(key)
	if !ok {
		return 0, false
	}
	if n < 0 {
		n += int64(length)
	}
	return int(n), true
}

// GetItem implements Dict[key] for any hashable key.
func (d *Dict) GetItem(key Value) (Value, error) {
	if _, ok := hashKeyOf(key); !ok {
		return nil, ErrBadIndexType
	}
	v, found := d.Get(key)
	if !found {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

// SetItem implements Dict[key] = value.
func (d *Dict) SetItem(key, val Value) error {
	if !d.Set(key, val) {
		return ErrBadIndexType
	}
	return nil
}
