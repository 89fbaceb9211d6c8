package bigint

import (
	"fmt"

	"bigint/internal/limb"
)

// maxSafeExp bounds Pow and shift amounts at 2^53, the largest span
// the positional formats round-trip exactly.
const maxSafeExp = int64(1) << 53

// magDivMod divides magnitudes after the caller has ruled out a zero
// divisor.
func magDivMod(a, b limb.Mag) (limb.Mag, limb.Mag) {
	q, r, err := limb.DivMod(a, b)
	if err != nil {
		panic("bigint: zero divisor slipped past caller check")
	}
	return q, r
}

// Add returns x + y.
func (x Integer) Add(y Integer) Integer {
	if x.neg == y.neg {
		return makeInt(x.neg, limb.Add(x.mag, y.mag))
	}
	switch limb.Cmp(x.mag, y.mag) {
	case 0:
		return Integer{}
	case 1:
		return makeInt(x.neg, limb.Sub(x.mag, y.mag))
	default:
		return makeInt(y.neg, limb.Sub(y.mag, x.mag))
	}
}

// Sub returns x - y.
func (x Integer) Sub(y Integer) Integer { return x.Add(y.Neg()) }

// Neg returns -x.
func (x Integer) Neg() Integer {
	t := x.mag.Trim()
	if len(t) == 0 {
		return Integer{}
	}
	return Integer{neg: !x.neg, mag: t}
}

// Abs returns |x|.
func (x Integer) Abs() Integer {
	t := x.mag.Trim()
	if len(t) == 0 {
		return Integer{}
	}
	return Integer{mag: t}
}

// Next returns x + 1.
func (x Integer) Next() Integer { return x.Add(One()) }

// Prev returns x - 1.
func (x Integer) Prev() Integer { return x.Sub(One()) }

// Mul returns x * y.
func (x Integer) Mul(y Integer) Integer {
	return makeInt(x.neg != y.neg, limb.Mul(x.mag, y.mag))
}

// Square returns x * x.
func (x Integer) Square() Integer {
	return makeInt(false, limb.Mul(x.mag, x.mag))
}

// DivMod returns the truncated quotient and remainder of x / y in one
// division. The quotient rounds toward zero and the remainder takes the
// sign of x, so x = q*y + r with |r| < |y| always holds.
func (x Integer) DivMod(y Integer) (q, r Integer, err error) {
	if y.IsZero() {
		return Integer{}, Integer{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, x)
	}
	qm, rm := magDivMod(x.mag, y.mag)
	return makeInt(x.neg != y.neg, qm), makeInt(x.neg, rm), nil
}

// Div returns the quotient of x / y, truncated toward zero.
func (x Integer) Div(y Integer) (Integer, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y. The result has the sign of x.
func (x Integer) Mod(y Integer) (Integer, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// half returns x with its magnitude shifted right one bit. Callers use
// it only on non-negative values, where it matches division by 2.
func (x Integer) half() Integer {
	return makeInt(x.neg, limb.Shr(x.mag, 1))
}

// Pow returns x raised to n. A negative n yields 0 for any |x| > 1,
// 0^0 is 1, and an n beyond 2^53 with |x| > 1 is rejected with
// ErrUnsupportedExponent.
func (x Integer) Pow(n Integer) (Integer, error) {
	if n.IsZero() {
		return One(), nil
	}
	if x.IsZero() {
		return Integer{}, nil
	}
	if x.IsUnit() {
		if !x.neg || n.IsEven() {
			return One(), nil
		}
		return MinusOne(), nil
	}
	if n.IsNegative() {
		return Integer{}, nil
	}
	e, ok := n.Int64()
	if !ok || e > maxSafeExp {
		return Integer{}, fmt.Errorf("%w: exponent %s exceeds 2^53", ErrUnsupportedExponent, n)
	}
	result := One()
	base := x
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e == 0 {
			break
		}
		base = base.Square()
	}
	return result, nil
}
