// Package limb implements the magnitude layer of the integer engine:
// unsigned multi-precision arithmetic over base-2^32 limbs. Sign handling
// lives one level up, in the root package.
package limb

import (
	"errors"
	"math/bits"
)

// ErrDivByZero indicates an attempt to divide by a zero magnitude.
var ErrDivByZero = errors.New("division by zero")

// Mag is a non-negative magnitude stored as base-2^32 little-endian limbs
// (Mag[0] is least significant).
//
// Canonical zero is the nil/empty slice. Operations never mutate their
// operands; results are freshly allocated or read-only views of an operand.
type Mag []uint32

// FromUint64 creates a magnitude from a uint64.
func FromUint64(v uint64) Mag {
	if v == 0 {
		return nil
	}
	lo := uint32(v)       //nolint:gosec // G115: truncation is intentional (low limb).
	hi := uint32(v >> 32) //nolint:gosec // G115: truncation is intentional (high limb).
	if hi == 0 {
		return Mag{lo}
	}
	return Mag{lo, hi}
}

// FromWord creates a magnitude from a single uint32 limb.
func FromWord(v uint32) Mag {
	if v == 0 {
		return nil
	}
	return Mag{v}
}

// Trim drops high zero limbs, returning the canonical view. The result
// shares storage with m.
func (m Mag) Trim() Mag {
	for len(m) > 0 && m[len(m)-1] == 0 {
		m = m[:len(m)-1]
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// IsZero reports whether the magnitude is zero.
func (m Mag) IsZero() bool {
	return len(m.Trim()) == 0
}

// IsOdd reports whether the magnitude is odd.
func (m Mag) IsOdd() bool {
	t := m.Trim()
	return len(t) > 0 && (t[0]&1) == 1
}

// BitLen returns the length of the magnitude in bits; zero has length 0.
func (m Mag) BitLen() int {
	t := m.Trim()
	if len(t) == 0 {
		return 0
	}
	ms := t[len(t)-1]
	return (len(t)-1)*32 + (32 - bits.LeadingZeros32(ms))
}

// TrailingZeros returns the number of trailing zero bits.
func (m Mag) TrailingZeros() int {
	t := m.Trim()
	if len(t) == 0 {
		return 0
	}
	n := 0
	for _, l := range t {
		if l == 0 {
			n += 32
			continue
		}
		n += bits.TrailingZeros32(l)
		break
	}
	return n
}

// Bit reports whether bit i (0 = least significant) is set.
func (m Mag) Bit(i int) bool {
	if i < 0 {
		return false
	}
	t := m.Trim()
	word := i / 32
	if word >= len(t) {
		return false
	}
	return (t[word] & (uint32(1) << (i % 32))) != 0
}

// LowBits returns the low n bits of m.
func (m Mag) LowBits(n int) Mag {
	if n <= 0 || m.IsZero() {
		return nil
	}
	t := m.Trim()
	words := n / 32
	rem := n % 32

	if words >= len(t) {
		return t
	}
	outLen := words
	if rem != 0 {
		outLen++
	}
	out := make(Mag, outLen)
	copy(out, t[:outLen])
	if rem != 0 {
		out[outLen-1] &= uint32(1<<rem) - 1
	}
	return out.Trim()
}

// Uint64 converts the magnitude to a uint64 if it fits.
func (m Mag) Uint64() (uint64, bool) {
	t := m.Trim()
	switch len(t) {
	case 0:
		return 0, true
	case 1:
		return uint64(t[0]), true
	case 2:
		return uint64(t[0]) | (uint64(t[1]) << 32), true
	default:
		return 0, false
	}
}

// Clone returns a copy of m that shares no storage with it.
func (m Mag) Clone() Mag {
	t := m.Trim()
	if len(t) == 0 {
		return nil
	}
	out := make(Mag, len(t))
	copy(out, t)
	return out
}

// Cmp compares two magnitudes and returns -1, 0, or 1. Limb counts are
// compared first, then limbs from most significant.
func Cmp(a, b Mag) int {
	a = a.Trim()
	b = b.Trim()
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
