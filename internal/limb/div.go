package limb

// DivMod divides a by b with remainder, 0 <= r < b. Returns ErrDivByZero
// when b is zero.
//
// The algorithm is binary long division: align b's highest bit with a's,
// then walk the quotient bits down, subtracting wherever the shifted divisor
// still fits.
func DivMod(a, b Mag) (q, r Mag, err error) {
	a = a.Trim()
	b = b.Trim()
	if len(b) == 0 {
		return nil, nil, ErrDivByZero
	}
	if len(a) == 0 {
		return nil, nil, nil
	}
	if Cmp(a, b) < 0 {
		return nil, a, nil
	}

	shift := a.BitLen() - b.BitLen()
	denom := make(Mag, 0, len(a)+1)
	denom = append(denom, Shl(b, shift)...)

	rem := make(Mag, len(a))
	copy(rem, a)

	quot := make(Mag, shift/32+1)
	for i := shift; i >= 0; i-- {
		if Cmp(rem, denom) >= 0 {
			subInPlace(rem, denom)
			quot[i/32] |= uint32(1) << (i % 32)
		}
		shr1InPlace(denom)
	}
	return quot.Trim(), rem.Trim(), nil
}

// DivModWord divides m by a single limb, returning the quotient and the
// word-sized remainder. It panics when d is zero; callers pass known
// divisors.
func DivModWord(m Mag, d uint32) (q Mag, r uint32) {
	if d == 0 {
		panic("limb: division by zero word")
	}
	t := m.Trim()
	if len(t) == 0 {
		return nil, 0
	}

	out := make(Mag, len(t))
	var rem uint64
	for i := len(t) - 1; i >= 0; i-- {
		cur := (rem << 32) | uint64(t[i])
		out[i] = uint32(cur / uint64(d)) //nolint:gosec // G115: quotient fits in uint32.
		rem = cur % uint64(d)
	}
	return out.Trim(), uint32(rem) //nolint:gosec // G115: remainder fits in uint32.
}
