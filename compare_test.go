package bigint

import "testing"

func TestCmp(t *testing.T) {
	ordered := []Integer{
		MustParse("-1e20"),
		FromInt64(-2),
		MinusOne(),
		Zero(),
		One(),
		FromInt64(2),
		MustParse("1e20"),
	}
	for i, a := range ordered {
		for j, b := range ordered {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got := a.Cmp(b); got != want {
				t.Errorf("Cmp(%s, %s) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestCmpAbs(t *testing.T) {
	tests := []struct {
		a, b int64
		want int
	}{
		{-5, 3, 1},
		{-3, 3, 0},
		{2, -3, -1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := FromInt64(tt.a).CmpAbs(FromInt64(tt.b)); got != tt.want {
			t.Errorf("CmpAbs(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRelations(t *testing.T) {
	a, b := FromInt64(-4), FromInt64(9)
	if !a.Less(b) || !a.LessEqual(b) || a.Greater(b) || a.GreaterEqual(b) {
		t.Error("relational helpers disagree for -4 vs 9")
	}
	if !a.NotEqual(b) || a.Equal(b) {
		t.Error("equality helpers disagree for -4 vs 9")
	}
	if !b.Equal(FromInt64(9)) || !b.LessEqual(FromInt64(9)) || !b.GreaterEqual(FromInt64(9)) {
		t.Error("equality helpers disagree for 9 vs 9")
	}
}

func TestMaxMin(t *testing.T) {
	a, b := FromInt64(-7), FromInt64(3)
	if got := Max(a, b); !got.Equal(b) {
		t.Errorf("Max(-7, 3) = %s", got)
	}
	if got := Min(a, b); !got.Equal(a) {
		t.Errorf("Min(-7, 3) = %s", got)
	}
	if got := Max(a, a); !got.Equal(a) {
		t.Errorf("Max(-7, -7) = %s", got)
	}
}
