package limb

// And returns the bitwise AND of a and b.
func And(a, b Mag) Mag {
	a = a.Trim()
	b = b.Trim()
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make(Mag, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] & b[i]
	}
	return out.Trim()
}

// Or returns the bitwise OR of a and b.
func Or(a, b Mag) Mag {
	a = a.Trim()
	b = b.Trim()
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}
	out := make(Mag, n)
	for i := 0; i < n; i++ {
		var av, bv uint32
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = av | bv
	}
	return out.Trim()
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b Mag) Mag {
	a = a.Trim()
	b = b.Trim()
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}
	out := make(Mag, n)
	for i := 0; i < n; i++ {
		var av, bv uint32
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = av ^ bv
	}
	return out.Trim()
}
