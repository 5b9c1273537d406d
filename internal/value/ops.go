package value

import (
	"fmt"
	"math"
	"strings"

	"github.com/lumen-lang/lumen/internal/lexer"
)

// BinaryOperand is implemented by every Value kind that participates in
// binary operator dispatch. ok is false when this operand cannot handle
// op against other, signalling the interpreter to retry on the other
// operand's reflected behaviour.
type BinaryOperand interface {
	Value
	BinaryOp(op lexer.Kind, other Value) (result Value, ok bool, err error)
}

// UnaryOperand is implemented by every Value kind that participates in
// unary operator dispatch (+x, -x, ~x).
type UnaryOperand interface {
	Value
	UnaryOp(op lexer.Kind) (result Value, ok bool, err error)
}

// asNumber reduces Bool/Int/Float to a (float64, isFloat) pair for mixed
// arithmetic, the same numeric-tower promotion the teacher's
// NumericValue.AsFloat performs.
func asNumber(v Value) (f float64, isFloat, ok bool) {
	switch x := v.(type) {
	case *Bool:
		return float64(x.AsInt()), false, true
	case *Int:
		return float64(x.Value), false, true
	case *Float:
		return x.Value, true, true
	default:
		return 0, false, false
	}
}

func asInt(v Value) (int64, bool) {
	switch x := v.(type) {
	case *Bool:
		return x.AsInt(), true
	case *Int:
		return x.Value, true
	}
	return 0, false
}

func typeErr(op lexer.Kind, a, b Value) error {
	return fmt.Errorf("unsupported operand type(s) for %s: '%s' and '%s'", op, a.Type().Name, b.Type().Name)
}

// Equal implements the language's cross-type-safe `==`: values of
// incomparable kinds are simply unequal rather than raising TypeError,
// per the spec's equality rule.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Bool, *Int, *Float:
		af, aFloat, aok := asNumber(a)
		bf, bFloat, bok := asNumber(b)
		if !aok || !bok {
			return false
		}
		_ = aFloat
		_ = bFloat
		return af == bf
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Tuple:
		y, ok := b.(*Tuple)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *Dict:
		y, ok := b.(*Dict)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, it := range x.Items() {
			yv, found := y.Get(it.Key)
			if !found || !Equal(it.Val, yv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// numericCompare orders two numeric operands, returning -1/0/1.
func numericCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// BinaryOp implements arithmetic, bitwise, shift and ordering dispatch
// for Bool/Int, treating Bool exactly as Int(0 or 1) per the spec's
// "Bool is a subtype of Int" rule.
func (i *Int) BinaryOp(op lexer.Kind, other Value) (Value, bool, error) {
	return intLikeBinaryOp(op, i.Value, other)
}

func (b *Bool) BinaryOp(op lexer.Kind, other Value) (Value, bool, error) {
	return intLikeBinaryOp(op, b.AsInt(), other)
}

func intLikeBinaryOp(op lexer.Kind, left int64, other Value) (Value, bool, error) {
	if rf, isFloat, ok := asNumber(other); ok && isFloat {
		return floatBinaryOp(op, float64(left), rf)
	}
	right, ok := asInt(other)
	if !ok {
		return nil, false, nil
	}
	switch op {
	case lexer.PLUS:
		return NewInt(left + right), true, nil
	case lexer.MINUS:
		return NewInt(left - right), true, nil
	case lexer.STAR:
		return NewInt(left * right), true, nil
	case lexer.SLASH:
		if right == 0 {
			return nil, true, fmt.Errorf("division by zero")
		}
		return NewFloat(float64(left) / float64(right)), true, nil
	case lexer.DSLASH:
		if right == 0 {
			return nil, true, fmt.Errorf("division by zero")
		}
		return NewInt(floorDivInt(left, right)), true, nil
	case lexer.PERCENT:
		if right == 0 {
			return nil, true, fmt.Errorf("division by zero")
		}
		return NewInt(floorModInt(left, right)), true, nil
	case lexer.DSTAR:
		// Always Float, via math.Pow, unlike the rest of this numeric
		// tower which stays Int when both operands are Int. Negative
		// exponents have no Int result, and the spec is silent on
		// int**int, so one consistent result type beats a sign-dependent
		// variant return type.
		return NewFloat(math.Pow(float64(left), float64(right))), true, nil
	case lexer.AMP:
		return NewInt(left & right), true, nil
	case lexer.PIPE:
		return NewInt(left | right), true, nil
	case lexer.CARET:
		return NewInt(left ^ right), true, nil
	case lexer.LSHIFT:
		return NewInt(left << uint(right)), true, nil
	case lexer.RSHIFT:
		return NewInt(left >> uint(right)), true, nil
	case lexer.EQEQ:
		return NewBool(left == right), true, nil
	case lexer.NOTEQ:
		return NewBool(left != right), true, nil
	case lexer.LESS:
		return NewBool(left < right), true, nil
	case lexer.LESSEQ:
		return NewBool(left <= right), true, nil
	case lexer.GREATER:
		return NewBool(left > right), true, nil
	case lexer.GREATEREQ:
		return NewBool(left >= right), true, nil
	}
	return nil, false, nil
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorModInt(a, b int64) int64 {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}

// BinaryOp implements Float arithmetic and ordering.
func (f *Float) BinaryOp(op lexer.Kind, other Value) (Value, bool, error) {
	rf, _, ok := asNumber(other)
	if !ok {
		return nil, false, nil
	}
	return floatBinaryOp(op, f.Value, rf)
}

func floatBinaryOp(op lexer.Kind, left, right float64) (Value, bool, error) {
	switch op {
	case lexer.PLUS:
		return NewFloat(left + right), true, nil
	case lexer.MINUS:
		return NewFloat(left - right), true, nil
	case lexer.STAR:
		return NewFloat(left * right), true, nil
	case lexer.SLASH:
		if right == 0 {
			return nil, true, fmt.Errorf("division by zero")
		}
		return NewFloat(left / right), true, nil
	case lexer.DSLASH:
		if right == 0 {
			return nil, true, fmt.Errorf("division by zero")
		}
		return NewFloat(math.Floor(left / right)), true, nil
	case lexer.PERCENT:
		if right == 0 {
			return nil, true, fmt.Errorf("division by zero")
		}
		return NewFloat(math.Mod(math.Mod(left, right)+right, right)), true, nil
	case lexer.DSTAR:
		return NewFloat(math.Pow(left, right)), true, nil
	case lexer.EQEQ:
		return NewBool(left == right), true, nil
	case lexer.NOTEQ:
		return NewBool(left != right), true, nil
	case lexer.LESS:
		return NewBool(numericCompare(left, right) < 0), true, nil
	case lexer.LESSEQ:
		return NewBool(numericCompare(left, right) <= 0), true, nil
	case lexer.GREATER:
		return NewBool(numericCompare(left, right) > 0), true, nil
	case lexer.GREATEREQ:
		return NewBool(numericCompare(left, right) >= 0), true, nil
	}
	return nil, false, nil
}

// BinaryOp implements String concatenation (+), repetition (*), and
// ordering (lexicographic).
func (s *String) BinaryOp(op lexer.Kind, other Value) (Value, bool, error) {
	switch op {
	case lexer.PLUS:
		y, ok := other.(*String)
		if !ok {
			return nil, false, nil
		}
		return NewString(s.Value + y.Value), true, nil
	case lexer.STAR:
		n, ok := asInt(other)
		if !ok {
			return nil, false, nil
		}
		if n <= 0 {
			return NewString(""), true, nil
		}
		return NewString(strings.Repeat(s.Value, int(n))), true, nil
	case lexer.EQEQ:
		y, ok := other.(*String)
		return NewBool(ok && s.Value == y.Value), true, nil
	case lexer.NOTEQ:
		y, ok := other.(*String)
		return NewBool(!ok || s.Value != y.Value), true, nil
	case lexer.LESS, lexer.LESSEQ, lexer.GREATER, lexer.GREATEREQ:
		y, ok := other.(*String)
		if !ok {
			return nil, false, nil
		}
		c := strings.Compare(s.Value, y.Value)
		switch op {
		case lexer.LESS:
			return NewBool(c < 0), true, nil
		case lexer.LESSEQ:
			return NewBool(c <= 0), true, nil
		case lexer.GREATER:
			return NewBool(c > 0), true, nil
		default:
			return NewBool(c >= 0), true, nil
		}
	}
	return nil, false, nil
}

// BinaryOp implements List concatenation (+) and repetition (*).
func (l *List) BinaryOp(op lexer.Kind, other Value) (Value, bool, error) {
	switch op {
	case lexer.PLUS:
		y, ok := other.(*List)
		if !ok {
			return nil, false, nil
		}
		combined := make([]Value, 0, len(l.Items)+len(y.Items))
		combined = append(combined, l.Items...)
		combined = append(combined, y.Items...)
		return NewList(combined), true, nil
	case lexer.STAR:
		n, ok := asInt(other)
		if !ok {
			return nil, false, nil
		}
		if n <= 0 {
			return NewList(nil), true, nil
		}
		combined := make([]Value, 0, len(l.Items)*int(n))
		for i := int64(0); i < n; i++ {
			combined = append(combined, l.Items...)
		}
		return NewList(combined), true, nil
	case lexer.EQEQ:
		return NewBool(Equal(l, other)), true, nil
	case lexer.NOTEQ:
		return NewBool(!Equal(l, other)), true, nil
	}
	return nil, false, nil
}

// BinaryOp implements Tuple concatenation (+) and equality.
func (t *Tuple) BinaryOp(op lexer.Kind, other Value) (Value, bool, error) {
	switch op {
	case lexer.PLUS:
		y, ok := other.(*Tuple)
		if !ok {
			return nil, false, nil
		}
		combined := make([]Value, 0, len(t.Items)+len(y.Items))
		combined = append(combined, t.Items...)
		combined = append(combined, y.Items...)
		return NewTuple(combined), true, nil
	case lexer.EQEQ:
		return NewBool(Equal(t, other)), true, nil
	case lexer.NOTEQ:
		return NewBool(!Equal(t, other)), true, nil
	}
	return nil, false, nil
}

// BinaryOp implements Dict equality; Dicts have no defined ordering or
// arithmetic.
func (d *Dict) BinaryOp(op lexer.Kind, other Value) (Value, bool, error) {
	switch op {
	case lexer.EQEQ:
		return NewBool(Equal(d, other)), true, nil
	case lexer.NOTEQ:
		return NewBool(!Equal(d, other)), true, nil
	}
	return nil, false, nil
}

// BinaryOp implements Null's equality-only behaviour: Null == Null,
// Null != anything else, nothing else.
func (n *Null) BinaryOp(op lexer.Kind, other Value) (Value, bool, error) {
	switch op {
	case lexer.EQEQ:
		return NewBool(Equal(n, other)), true, nil
	case lexer.NOTEQ:
		return NewBool(!Equal(n, other)), true, nil
	}
	return nil, false, nil
}

// UnaryOp implements +x, -x, ~x for Bool/Int.
func (i *Int) UnaryOp(op lexer.Kind) (Value, bool, error) {
	return intUnaryOp(op, i.Value)
}

func (b *Bool) UnaryOp(op lexer.Kind) (Value, bool, error) {
	return intUnaryOp(op, b.AsInt())
}

func intUnaryOp(op lexer.Kind, v int64) (Value, bool, error) {
	switch op {
	case lexer.PLUS:
		return NewInt(v), true, nil
	case lexer.MINUS:
		return NewInt(-v), true, nil
	case lexer.TILDE:
		return NewInt(^v), true, nil
	}
	return nil, false, nil
}

// UnaryOp implements +x, -x for Float.
func (f *Float) UnaryOp(op lexer.Kind) (Value, bool, error) {
	switch op {
	case lexer.PLUS:
		return NewFloat(f.Value), true, nil
	case lexer.MINUS:
		return NewFloat(-f.Value), true, nil
	}
	return nil, false, nil
}
