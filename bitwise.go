package bigint

import (
	"fmt"

	"fortio.org/safecast"

	"bigint/internal/limb"
)

// bitOp applies op to the two's-complement forms of x and y. Both
// operands are widened to one bit past the longer magnitude; the spare
// bit holds the sign, so the result maps back without ambiguity.
func bitOp(x, y Integer, op func(a, b limb.Mag) limb.Mag) Integer {
	xm, ym := x.mag.Trim(), y.mag.Trim()
	if len(xm) == 0 && len(ym) == 0 {
		return Integer{}
	}
	width := max(xm.BitLen(), ym.BitLen()) + 1
	pow2 := limb.Shl(limb.FromWord(1), width)
	rx := xm
	if x.neg {
		rx = limb.Sub(pow2, xm)
	}
	ry := ym
	if y.neg {
		ry = limb.Sub(pow2, ym)
	}
	res := op(rx, ry)
	if !res.Bit(width - 1) {
		return makeInt(false, res)
	}
	return makeInt(true, limb.Sub(pow2, res))
}

// And returns the bitwise AND of x and y as if both were encoded in
// two's complement.
func (x Integer) And(y Integer) Integer { return bitOp(x, y, limb.And) }

// Or returns the bitwise OR of x and y as if both were encoded in
// two's complement.
func (x Integer) Or(y Integer) Integer { return bitOp(x, y, limb.Or) }

// Xor returns the bitwise XOR of x and y as if both were encoded in
// two's complement.
func (x Integer) Xor(y Integer) Integer { return bitOp(x, y, limb.Xor) }

// Not returns the bitwise complement of x, which in two's complement
// is -(x + 1).
func (x Integer) Not() Integer { return x.Next().Neg() }

// ShiftLeft returns x shifted left by n bits. A negative n shifts
// right instead. Amounts beyond 2^53 in either direction are rejected
// with ErrShiftOutOfRange.
func (x Integer) ShiftLeft(n int64) (Integer, error) {
	if n > maxSafeExp || n < -maxSafeExp {
		return Integer{}, fmt.Errorf("%w: %d", ErrShiftOutOfRange, n)
	}
	if n < 0 {
		return x.ShiftRight(-n)
	}
	count, err := safecast.Conv[int](n)
	if err != nil {
		return Integer{}, fmt.Errorf("%w: %d", ErrShiftOutOfRange, n)
	}
	if x.IsZero() || count == 0 {
		return x, nil
	}
	return makeInt(x.neg, limb.Shl(x.mag, count)), nil
}

// ShiftRight returns x shifted right by n bits, rounding toward
// negative infinity as an arithmetic shift does. A negative n shifts
// left instead. Amounts beyond 2^53 in either direction are rejected
// with ErrShiftOutOfRange.
func (x Integer) ShiftRight(n int64) (Integer, error) {
	if n > maxSafeExp || n < -maxSafeExp {
		return Integer{}, fmt.Errorf("%w: %d", ErrShiftOutOfRange, n)
	}
	if n < 0 {
		return x.ShiftLeft(-n)
	}
	count, err := safecast.Conv[int](n)
	if err != nil {
		return Integer{}, fmt.Errorf("%w: %d", ErrShiftOutOfRange, n)
	}
	if x.IsZero() || count == 0 {
		return x, nil
	}
	if count >= x.mag.BitLen() {
		// Every magnitude bit is gone; negatives keep their sign bit.
		if x.neg {
			return MinusOne(), nil
		}
		return Integer{}, nil
	}
	if !x.neg {
		return makeInt(false, limb.Shr(x.mag, count)), nil
	}
	// Floor division for negatives: -((m + 2^n - 1) >> n).
	pow2 := limb.Shl(limb.FromWord(1), count)
	sum := limb.Add(x.mag, limb.SubWord(pow2, 1))
	return makeInt(true, limb.Shr(sum, count)), nil
}
