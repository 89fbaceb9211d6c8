package bigint

import "bigint/internal/limb"

// Cmp compares x and y, returning -1 when x < y, 0 when x == y and 1
// when x > y.
func (x Integer) Cmp(y Integer) int {
	xm, ym := x.mag.Trim(), y.mag.Trim()
	if len(xm) == 0 && len(ym) == 0 {
		return 0
	}
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := limb.Cmp(xm, ym)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x Integer) CmpAbs(y Integer) int {
	return limb.Cmp(x.mag, y.mag)
}

// Equal reports whether x == y.
func (x Integer) Equal(y Integer) bool { return x.Cmp(y) == 0 }

// NotEqual reports whether x != y.
func (x Integer) NotEqual(y Integer) bool { return x.Cmp(y) != 0 }

// Less reports whether x < y.
func (x Integer) Less(y Integer) bool { return x.Cmp(y) < 0 }

// LessEqual reports whether x <= y.
func (x Integer) LessEqual(y Integer) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Integer) Greater(y Integer) bool { return x.Cmp(y) > 0 }

// GreaterEqual reports whether x >= y.
func (x Integer) GreaterEqual(y Integer) bool { return x.Cmp(y) >= 0 }

// Max returns the larger of a and b.
func Max(a, b Integer) Integer {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b Integer) Integer {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
