package value

import "fmt"

// Slice is the runtime form of a `start:stop:step` subscript. Any field
// left nil means "use the default for this direction", resolved against
// a concrete sequence length by Resolve.
type Slice struct {
	Start, Stop, Step Value
}

var sliceType = &Type{Name: "slice", Parent: objectType}

func NewSlice(start, stop, step Value) *Slice { return &Slice{Start: start, Stop: stop, Step: step} }

func (s *Slice) Type() *Type  { return sliceType }
func (s *Slice) Truthy() bool { return true }
func (s *Slice) Repr() string {
	render := func(v Value) string {
		if v == nil {
			return ""
		}
		return v.Repr()
	}
	return fmt.Sprintf("slice(%s, %s, %s)", render(s.Start), render(s.Stop), render(s.Step))
}

// Resolve computes the concrete (start, stop, step) indices for a
// sequence of the given length, applying Python's slicing rules:
// negative indices count from the end, step defaults to 1, and a
// negative step flips the start/stop defaults to the end/beginning.
func (s *Slice) Resolve(length int) (start, stop, step int, err error) {
	step = 1
	if s.Step != nil {
		i, ok := s.Step.(*Int)
		if !ok {
			return 0, 0, 0, fmt.Errorf("slice step must be an int")
		}
		if i.Value == 0 {
			return 0, 0, 0, fmt.Errorf("slice step cannot be zero")
		}
		step = int(i.Value)
	}

	clamp := func(i, lo, hi int) int {
		if i < lo {
			return lo
		}
		if i > hi {
			return hi
		}
		return i
	}
	normalize := func(v Value, def int) (int, error) {
		if v == nil {
			return def, nil
		}
		iv, ok := v.(*Int)
		if !ok {
			return 0, fmt.Errorf("slice indices must be int")
		}
		n := int(iv.Value)
		if n < 0 {
			n += length
		}
		return n, nil
	}

	if step > 0 {
		start, err = normalize(s.Start, 0)
		if err != nil {
			return
		}
		stop, err = normalize(s.Stop, length)
		if err != nil {
			return
		}
		start = clamp(start, 0, length)
		stop = clamp(stop, 0, length)
	} else {
		start, err = normalize(s.Start, length-1)
		if err != nil {
			return
		}
		stop, err = normalize(s.Stop, -1)
		if err != nil {
			return
		}
		start = clamp(start, -1, length-1)
		stop = clamp(stop, -1, length-1)
	}
	return start, stop, step, nil
}

// SliceType exposes the built-in Type singleton.
func SliceType() *Type { return sliceType }
