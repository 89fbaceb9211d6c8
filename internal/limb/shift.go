package limb

// Shl returns m shifted left by n bits. n must be non-negative.
func Shl(m Mag, n int) Mag {
	if n < 0 {
		panic("limb: negative shift")
	}
	t := m.Trim()
	if len(t) == 0 || n == 0 {
		return t
	}
	wordShift := n / 32
	bitShift := n % 32

	out := make(Mag, len(t)+wordShift+1)
	if bitShift == 0 {
		copy(out[wordShift:], t)
		return out.Trim()
	}

	var carry uint32
	for i := range t {
		v := t[i]
		out[i+wordShift] = (v << bitShift) | carry
		carry = v >> (32 - bitShift)
	}
	out[len(t)+wordShift] = carry
	return out.Trim()
}

// Shr returns m shifted right by n bits. n must be non-negative.
func Shr(m Mag, n int) Mag {
	if n < 0 {
		panic("limb: negative shift")
	}
	t := m.Trim()
	if len(t) == 0 || n == 0 {
		return t
	}
	wordShift := n / 32
	bitShift := n % 32
	if wordShift >= len(t) {
		return nil
	}
	out := make(Mag, len(t)-wordShift)
	if bitShift == 0 {
		copy(out, t[wordShift:])
		return out.Trim()
	}

	var carry uint32
	for i := len(t) - 1; i >= wordShift; i-- {
		v := t[i]
		out[i-wordShift] = (v >> bitShift) | (carry << (32 - bitShift))
		carry = v & (uint32(1<<bitShift) - 1)
	}
	return out.Trim()
}

// ShrRounded shifts m right by n bits, rounding the dropped fraction half to
// even. It backs the float conversion in the root package.
func ShrRounded(m Mag, n int) Mag {
	t := m.Trim()
	if n <= 0 || len(t) == 0 {
		return t
	}
	if n > t.BitLen() {
		return nil
	}

	halfSet := t.Bit(n - 1)
	lowSet := anyLowBitSet(t, n-1)

	shifted := Shr(t, n)
	if !halfSet {
		return shifted
	}
	if lowSet || shifted.IsOdd() {
		return AddWord(shifted, 1)
	}
	return shifted
}

// shr1InPlace shifts limbs right by one bit, in place.
func shr1InPlace(m Mag) {
	var carry uint32
	for i := len(m) - 1; i >= 0; i-- {
		v := m[i]
		m[i] = (v >> 1) | (carry << 31)
		carry = v & 1
	}
}

// anyLowBitSet reports whether any of the low n bits is set.
func anyLowBitSet(m Mag, n int) bool {
	if n <= 0 {
		return false
	}
	t := m.Trim()
	fullWords := n / 32
	rem := n % 32
	for i := 0; i < fullWords && i < len(t); i++ {
		if t[i] != 0 {
			return true
		}
	}
	if rem == 0 || fullWords >= len(t) {
		return false
	}
	return (t[fullWords] & (uint32(1<<rem) - 1)) != 0
}
