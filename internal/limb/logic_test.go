package limb

import (
	"math/big"
	"testing"
)

func TestLogicOps(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Mag
		wantAnd Mag
		wantOr  Mag
		wantXor Mag
	}{
		{"both zero", nil, nil, nil, nil, nil},
		{"one zero", Mag{0b1010}, nil, nil, Mag{0b1010}, Mag{0b1010}},
		{"same limb", Mag{0b1100}, Mag{0b1010}, Mag{0b1000}, Mag{0b1110}, Mag{0b0110}},
		{"uneven", Mag{0xF, 0xF}, Mag{0xA}, Mag{0xA}, Mag{0xF, 0xF}, Mag{0x5, 0xF}},
		{"equal", Mag{7, 7}, Mag{7, 7}, Mag{7, 7}, Mag{7, 7}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := And(tt.a, tt.b); Cmp(got, tt.wantAnd) != 0 {
				t.Errorf("And(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.wantAnd)
			}
			if got := Or(tt.a, tt.b); Cmp(got, tt.wantOr) != 0 {
				t.Errorf("Or(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.wantOr)
			}
			if got := Xor(tt.a, tt.b); Cmp(got, tt.wantXor) != 0 {
				t.Errorf("Xor(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.wantXor)
			}
		})
	}
}

func TestLogicAgainstBig(t *testing.T) {
	rng := testRand()
	for i := 0; i < 100; i++ {
		a := randMag(rng, 1+int(rng.Uint32()%6))
		b := randMag(rng, 1+int(rng.Uint32()%6))
		ba, bb := toBig(a), toBig(b)
		if got := toBig(And(a, b)); got.Cmp(new(big.Int).And(ba, bb)) != 0 {
			t.Fatalf("And(%v, %v) = %v", a, b, got)
		}
		if got := toBig(Or(a, b)); got.Cmp(new(big.Int).Or(ba, bb)) != 0 {
			t.Fatalf("Or(%v, %v) = %v", a, b, got)
		}
		if got := toBig(Xor(a, b)); got.Cmp(new(big.Int).Xor(ba, bb)) != 0 {
			t.Fatalf("Xor(%v, %v) = %v", a, b, got)
		}
	}
}
