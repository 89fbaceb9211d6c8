package bigint

import (
	"fmt"
	"math"

	"bigint/internal/limb"
)

// Integer is an immutable arbitrary-precision signed integer. The zero
// value is ready to use and equals 0.
//
// Values are held in sign-and-magnitude form. Operations never mutate
// their receiver; they return fresh values, so an Integer can be copied
// and shared freely. Compare with Equal or Cmp, not with ==.
type Integer struct {
	neg bool
	mag limb.Mag
}

// smallSpan bounds the table of preconstructed values. Constructors
// return the cached Integer for anything in [-smallSpan, smallSpan].
const smallSpan = 999

var smallCache = buildSmallCache()

func buildSmallCache() []Integer {
	tab := make([]Integer, 2*smallSpan+1)
	for i := range tab {
		tab[i] = rawInt64(int64(i - smallSpan))
	}
	return tab
}

// makeInt produces a canonical Integer: the magnitude is trimmed and
// zero is never negative.
func makeInt(neg bool, mag limb.Mag) Integer {
	mag = mag.Trim()
	if len(mag) == 0 {
		return Integer{}
	}
	return Integer{neg: neg, mag: mag}
}

// rawInt64 builds an Integer without consulting the small-value cache.
func rawInt64(v int64) Integer {
	if v == 0 {
		return Integer{}
	}
	if v > 0 {
		return Integer{mag: limb.FromUint64(uint64(v))}
	}
	u := uint64(-(v + 1)) + 1 //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
	return Integer{neg: true, mag: limb.FromUint64(u)}
}

// Zero returns the Integer 0.
func Zero() Integer { return Integer{} }

// One returns the Integer 1.
func One() Integer { return smallCache[smallSpan+1] }

// MinusOne returns the Integer -1.
func MinusOne() Integer { return smallCache[smallSpan-1] }

// FromInt64 returns the Integer equal to v.
func FromInt64(v int64) Integer {
	if v >= -smallSpan && v <= smallSpan {
		return smallCache[v+smallSpan]
	}
	return rawInt64(v)
}

// FromUint64 returns the Integer equal to v.
func FromUint64(v uint64) Integer {
	if v <= smallSpan {
		return smallCache[int64(v)+smallSpan]
	}
	return Integer{mag: limb.FromUint64(v)}
}

// Small is shorthand for FromInt64.
func Small(v int64) Integer { return FromInt64(v) }

// FromFloat64 returns the Integer equal to f. Non-finite values and
// values with a fractional part are rejected with ErrInvalidInteger.
func FromFloat64(f float64) (Integer, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Integer{}, fmt.Errorf("%w: %v is not finite", ErrInvalidInteger, f)
	}
	if f != math.Trunc(f) {
		return Integer{}, fmt.Errorf("%w: %v has a fractional part", ErrInvalidInteger, f)
	}
	if f == 0 {
		return Integer{}, nil
	}
	neg := math.Signbit(f)
	frac, exp := math.Frexp(math.Abs(f))
	// frac is in [0.5, 1); scaling by 2^53 yields the full mantissa as
	// an exact integer.
	mant := uint64(math.Ldexp(frac, 53))
	mag := limb.FromUint64(mant)
	switch shift := exp - 53; {
	case shift > 0:
		mag = limb.Shl(mag, shift)
	case shift < 0:
		// f is integral, so the dropped bits are all zero.
		mag = limb.Shr(mag, -shift)
	}
	return makeInt(neg, mag), nil
}

// IsInstance reports whether v is an Integer or a pointer to one.
func IsInstance(v any) bool {
	switch v.(type) {
	case Integer, *Integer:
		return true
	default:
		return false
	}
}

// Sign returns -1 when x is negative, 0 when x is zero and 1 otherwise.
func (x Integer) Sign() int {
	if len(x.mag.Trim()) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x equals 0.
func (x Integer) IsZero() bool { return len(x.mag.Trim()) == 0 }

// IsNegative reports whether x is strictly below 0.
func (x Integer) IsNegative() bool { return x.Sign() < 0 }

// IsPositive reports whether x is strictly above 0.
func (x Integer) IsPositive() bool { return x.Sign() > 0 }

// IsEven reports whether x is divisible by 2.
func (x Integer) IsEven() bool { return !x.mag.IsOdd() }

// IsOdd reports whether x is not divisible by 2.
func (x Integer) IsOdd() bool { return x.mag.IsOdd() }

// IsUnit reports whether |x| equals 1.
func (x Integer) IsUnit() bool {
	t := x.mag.Trim()
	return len(t) == 1 && t[0] == 1
}

// BitLength returns the number of bits in the two's-complement form of
// x, excluding the sign. BitLength of 0 and -1 is 0.
func (x Integer) BitLength() int {
	t := x.mag.Trim()
	if len(t) == 0 {
		return 0
	}
	if x.neg {
		return limb.SubWord(t, 1).BitLen()
	}
	return t.BitLen()
}
