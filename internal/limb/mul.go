package limb

// karatsubaThreshold is the limb count below which the schoolbook product is
// used. Above it, the divide-and-conquer product wins; either path produces
// identical limbs (covered by differential tests).
const karatsubaThreshold = 40

// Mul returns a*b.
func Mul(a, b Mag) Mag {
	a = a.Trim()
	b = b.Trim()
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) < karatsubaThreshold {
		return basicMul(a, b)
	}
	return karatsuba(a, b)
}

// MulWord returns m*v.
func MulWord(m Mag, v uint32) Mag {
	t := m.Trim()
	if v == 0 || len(t) == 0 {
		return nil
	}
	if v == 1 {
		return t
	}
	out := make(Mag, len(t)+1)
	var carry uint64
	for i := range t {
		prod := uint64(t[i])*uint64(v) + carry
		out[i] = uint32(prod) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		carry = prod >> 32
	}
	out[len(t)] = uint32(carry) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
	return out.Trim()
}

// basicMul is the schoolbook O(n*m) product. Both operands are trimmed and
// non-empty.
func basicMul(a, b Mag) Mag {
	out := make(Mag, len(a)+len(b))
	for i := range a {
		ai := uint64(a[i])
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := range b {
			k := i + j
			sum := uint64(out[k]) + ai*uint64(b[j]) + carry
			out[k] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
			carry = sum >> 32
		}
		for k := i + len(b); carry != 0; k++ {
			sum := uint64(out[k]) + carry
			out[k] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
			carry = sum >> 32
		}
	}
	return out.Trim()
}

// karatsuba splits the operands at half the longer length W = 2^(32*half):
//
//	a = a1*W + a0, b = b1*W + b0
//	a*b = z2*W^2 + z1*W + z0
//	z2 = a1*b1, z0 = a0*b0, z1 = (a1+a0)*(b1+b0) - z2 - z0
//
// a is the longer operand and both are trimmed and non-empty.
func karatsuba(a, b Mag) Mag {
	half := len(a) / 2
	a0, a1 := a[:half].Trim(), a[half:].Trim()
	var b0, b1 Mag
	if len(b) > half {
		b0, b1 = b[:half].Trim(), b[half:].Trim()
	} else {
		b0 = b
	}

	z0 := Mul(a0, b0)
	z2 := Mul(a1, b1)
	z1 := Sub(Mul(Add(a0, a1), Add(b0, b1)), Add(z0, z2))

	out := Add(shlLimbs(z2, 2*half), shlLimbs(z1, half))
	return Add(out, z0)
}

// shlLimbs shifts m left by n whole limbs.
func shlLimbs(m Mag, n int) Mag {
	m = m.Trim()
	if len(m) == 0 || n == 0 {
		return m
	}
	out := make(Mag, len(m)+n)
	copy(out[n:], m)
	return out
}
