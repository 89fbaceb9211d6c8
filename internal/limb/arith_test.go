package limb

import (
	"math/big"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Mag
		want Mag
	}{
		{"zero+zero", nil, nil, nil},
		{"zero+x", nil, Mag{7}, Mag{7}},
		{"small", Mag{2}, Mag{3}, Mag{5}},
		{"carry", Mag{0xFFFFFFFF}, Mag{1}, Mag{0, 1}},
		{"carry chain", Mag{0xFFFFFFFF, 0xFFFFFFFF}, Mag{1}, Mag{0, 0, 1}},
		{"uneven lengths", Mag{1, 1}, Mag{0xFFFFFFFF}, Mag{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Add(tt.a, tt.b); Cmp(got, tt.want) != 0 {
				t.Errorf("Add(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name string
		a, b Mag
		want Mag
	}{
		{"x-zero", Mag{7}, nil, Mag{7}},
		{"equal", Mag{7}, Mag{7}, nil},
		{"small", Mag{5}, Mag{3}, Mag{2}},
		{"borrow", Mag{0, 1}, Mag{1}, Mag{0xFFFFFFFF}},
		{"borrow chain", Mag{0, 0, 1}, Mag{1}, Mag{0xFFFFFFFF, 0xFFFFFFFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sub(tt.a, tt.b); Cmp(got, tt.want) != 0 {
				t.Errorf("Sub(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sub(1, 2) did not panic")
		}
	}()
	Sub(Mag{1}, Mag{2})
}

func TestAddWord(t *testing.T) {
	tests := []struct {
		m    Mag
		v    uint32
		want Mag
	}{
		{nil, 0, nil},
		{nil, 5, Mag{5}},
		{Mag{1}, 0, Mag{1}},
		{Mag{0xFFFFFFFF}, 1, Mag{0, 1}},
		{Mag{0xFFFFFFFF, 0xFFFFFFFF}, 2, Mag{1, 0, 1}},
	}
	for _, tt := range tests {
		if got := AddWord(tt.m, tt.v); Cmp(got, tt.want) != 0 {
			t.Errorf("AddWord(%v, %d) = %v, want %v", tt.m, tt.v, got, tt.want)
		}
	}
}

func TestSubWord(t *testing.T) {
	tests := []struct {
		m    Mag
		v    uint32
		want Mag
	}{
		{Mag{5}, 0, Mag{5}},
		{Mag{5}, 5, nil},
		{Mag{0, 1}, 1, Mag{0xFFFFFFFF}},
	}
	for _, tt := range tests {
		if got := SubWord(tt.m, tt.v); Cmp(got, tt.want) != 0 {
			t.Errorf("SubWord(%v, %d) = %v, want %v", tt.m, tt.v, got, tt.want)
		}
	}
}

func TestAddSubAgainstBig(t *testing.T) {
	rng := testRand()
	for i := 0; i < 200; i++ {
		a := randMag(rng, 1+int(rng.Uint32()%8))
		b := randMag(rng, 1+int(rng.Uint32()%8))
		sum := Add(a, b)
		wantSum := new(big.Int).Add(toBig(a), toBig(b))
		if toBig(sum).Cmp(wantSum) != 0 {
			t.Fatalf("Add(%v, %v) = %v, want %v", a, b, toBig(sum), wantSum)
		}
		back := Sub(sum, b)
		if Cmp(back, a) != 0 {
			t.Fatalf("Sub(Add(a, b), b) = %v, want %v", back, a)
		}
	}
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	a := Mag{0xFFFFFFFF, 1}
	b := Mag{1}
	Add(a, b)
	if a[0] != 0xFFFFFFFF || a[1] != 1 || b[0] != 1 {
		t.Errorf("Add mutated its operands: a=%v b=%v", a, b)
	}
}
