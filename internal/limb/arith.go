package limb

// Add returns a+b.
func Add(a, b Mag) Mag {
	a = a.Trim()
	b = b.Trim()
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}

	out := make(Mag, n+1)
	var carry uint64
	for i := range n {
		var av, bv uint64
		if i < len(a) {
			av = uint64(a[i])
		}
		if i < len(b) {
			bv = uint64(b[i])
		}
		sum := av + bv + carry
		out[i] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		carry = sum >> 32
	}
	out[n] = uint32(carry) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
	return out.Trim()
}

// AddWord returns m+v.
func AddWord(m Mag, v uint32) Mag {
	t := m.Trim()
	if v == 0 {
		return t
	}
	if len(t) == 0 {
		return Mag{v}
	}
	out := make(Mag, len(t)+1)
	copy(out, t)

	sum := uint64(out[0]) + uint64(v)
	out[0] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
	carry := sum >> 32
	for i := 1; carry != 0 && i < len(out); i++ {
		sum = uint64(out[i]) + carry
		out[i] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		carry = sum >> 32
	}
	return out.Trim()
}

// Sub returns a-b. The caller must ensure a >= b; a smaller a is a
// programming error and panics.
func Sub(a, b Mag) Mag {
	a = a.Trim()
	b = b.Trim()
	if Cmp(a, b) < 0 {
		panic("limb: subtraction underflow")
	}
	if len(b) == 0 {
		return a
	}
	out := make(Mag, len(a))
	copy(out, a)
	subInPlace(out, b)
	return out.Trim()
}

// SubWord returns m-v. Requires m >= v.
func SubWord(m Mag, v uint32) Mag {
	if v == 0 {
		return m.Trim()
	}
	return Sub(m, Mag{v})
}

// subInPlace subtracts sub from dst limb-wise. Limbs of sub beyond len(dst)
// must be zero; the caller guarantees sub <= dst numerically.
func subInPlace(dst, sub Mag) {
	var borrow uint64
	for i := 0; i < len(dst); i++ {
		av := uint64(dst[i])
		bv := uint64(0)
		if i < len(sub) {
			bv = uint64(sub[i])
		}
		tmp := av - bv - borrow
		dst[i] = uint32(tmp) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		if av < bv+borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
}
