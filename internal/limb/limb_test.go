package limb

import (
	"math/big"
	"math/rand/v2"
	"testing"
)

// toBig converts a magnitude to a big.Int for oracle comparisons.
func toBig(m Mag) *big.Int {
	out := new(big.Int)
	for i := len(m) - 1; i >= 0; i-- {
		out.Lsh(out, 32)
		out.Or(out, big.NewInt(int64(m[i])))
	}
	return out
}

// randMag produces a trimmed magnitude of up to limbs random limbs.
func randMag(rng *rand.Rand, limbs int) Mag {
	out := make(Mag, limbs)
	for i := range out {
		out[i] = rng.Uint32()
	}
	return out.Trim()
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xfeed))
}

func TestFromUint64(t *testing.T) {
	tests := []struct {
		v    uint64
		want Mag
	}{
		{0, nil},
		{1, Mag{1}},
		{0xFFFFFFFF, Mag{0xFFFFFFFF}},
		{1 << 32, Mag{0, 1}},
		{0xDEADBEEFCAFEBABE, Mag{0xCAFEBABE, 0xDEADBEEF}},
	}
	for _, tt := range tests {
		if got := FromUint64(tt.v); Cmp(got, tt.want) != 0 {
			t.Errorf("FromUint64(%#x) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		in   Mag
		want int
	}{
		{nil, 0},
		{Mag{0}, 0},
		{Mag{0, 0, 0}, 0},
		{Mag{1, 0}, 1},
		{Mag{0, 1}, 2},
		{Mag{1, 2, 0, 0}, 2},
	}
	for _, tt := range tests {
		if got := tt.in.Trim(); len(got) != tt.want {
			t.Errorf("Trim(%v) has %d limbs, want %d", tt.in, len(got), tt.want)
		}
	}
}

func TestBitLen(t *testing.T) {
	tests := []struct {
		in   Mag
		want int
	}{
		{nil, 0},
		{Mag{1}, 1},
		{Mag{2}, 2},
		{Mag{0xFFFFFFFF}, 32},
		{Mag{0, 1}, 33},
		{Mag{0, 0, 0x80000000}, 96},
	}
	for _, tt := range tests {
		if got := tt.in.BitLen(); got != tt.want {
			t.Errorf("BitLen(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTrailingZeros(t *testing.T) {
	tests := []struct {
		in   Mag
		want int
	}{
		{nil, 0},
		{Mag{1}, 0},
		{Mag{8}, 3},
		{Mag{0, 1}, 32},
		{Mag{0, 0, 4}, 66},
	}
	for _, tt := range tests {
		if got := tt.in.TrailingZeros(); got != tt.want {
			t.Errorf("TrailingZeros(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBit(t *testing.T) {
	m := Mag{0b1010, 1}
	tests := []struct {
		i    int
		want bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{3, true},
		{4, false},
		{32, true},
		{33, false},
		{1000, false},
	}
	for _, tt := range tests {
		if got := m.Bit(tt.i); got != tt.want {
			t.Errorf("Bit(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestLowBits(t *testing.T) {
	m := Mag{0xFFFFFFFF, 0xFFFFFFFF}
	tests := []struct {
		n    int
		want Mag
	}{
		{0, nil},
		{1, Mag{1}},
		{8, Mag{0xFF}},
		{32, Mag{0xFFFFFFFF}},
		{33, Mag{0xFFFFFFFF, 1}},
		{64, m},
		{100, m},
	}
	for _, tt := range tests {
		if got := m.LowBits(tt.n); Cmp(got, tt.want) != 0 {
			t.Errorf("LowBits(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestUint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0xFFFFFFFF, 1 << 32, 1<<64 - 1} {
		got, ok := FromUint64(v).Uint64()
		if !ok || got != v {
			t.Errorf("FromUint64(%#x).Uint64() = (%#x, %v), want (%#x, true)", v, got, ok, v)
		}
	}
	if _, ok := (Mag{1, 2, 3}).Uint64(); ok {
		t.Error("Uint64 on a three-limb magnitude reported ok")
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b Mag
		want int
	}{
		{nil, nil, 0},
		{nil, Mag{1}, -1},
		{Mag{1}, nil, 1},
		{Mag{5}, Mag{5}, 0},
		{Mag{5}, Mag{6}, -1},
		{Mag{0, 1}, Mag{0xFFFFFFFF}, 1},
		{Mag{1, 0}, Mag{1}, 0},
		{Mag{2, 1}, Mag{1, 1}, 1},
	}
	for _, tt := range tests {
		if got := Cmp(tt.a, tt.b); got != tt.want {
			t.Errorf("Cmp(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Mag{1, 2, 3}
	c := orig.Clone()
	c[0] = 99
	if orig[0] != 1 {
		t.Errorf("mutating the clone changed the original: %v", orig)
	}
}
