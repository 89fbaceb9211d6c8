package main

import (
	"testing"

	"bigint"
)

func TestFormatInBase(t *testing.T) {
	cases := []struct {
		value string
		base  int64
		want  string
	}{
		{"255", 0, "255"},
		{"255", 10, "255"},
		{"255", 16, "ff"},
		{"-255", 16, "-ff"},
		{"255", 2, "11111111"},
		{"255", -10, "355"},
		{"71", 36, "1z"},
		{"0", 16, "0"},
	}
	for _, tc := range cases {
		v := bigint.MustParse(tc.value)
		got, err := formatInBase(v, tc.base)
		if err != nil {
			t.Fatalf("formatInBase(%s, %d) error: %v", tc.value, tc.base, err)
		}
		if got != tc.want {
			t.Fatalf("formatInBase(%s, %d) = %q, want %q", tc.value, tc.base, got, tc.want)
		}
	}
}
