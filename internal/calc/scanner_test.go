package calc

import (
	"errors"
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	toks, err := Scan("x1 = 0xFF + 2_0; _")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []Token{
		{Kind: Ident, Off: 0, Text: "x1"},
		{Kind: Assign, Off: 3, Text: "="},
		{Kind: Number, Off: 5, Text: "0xFF"},
		{Kind: Plus, Off: 10, Text: "+"},
		{Kind: Number, Off: 12, Text: "2_0"},
		{Kind: Semi, Off: 15, Text: ";"},
		{Kind: Ident, Off: 17, Text: "_"},
		{Kind: EOF, Off: 18},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range toks {
		if tok != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, tok, want[i])
		}
	}
}

func TestScanNumberForms(t *testing.T) {
	cases := []struct {
		name string
		in   string
		text string
	}{
		{"decimal", "123", "123"},
		{"underscored", "1_000_000", "1_000_000"},
		{"exponent", "2e9", "2e9"},
		{"signed exponent", "2E+5", "2E+5"},
		{"hex", "0x1f", "0x1f"},
		{"octal", "0o777", "0o777"},
		{"binary", "0B10_01", "0B10_01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Scan(tc.in)
			if err != nil {
				t.Fatalf("Scan(%q): %v", tc.in, err)
			}
			if len(toks) != 2 || toks[0].Kind != Number {
				t.Fatalf("Scan(%q) = %v, want one number", tc.in, toks)
			}
			if toks[0].Text != tc.text {
				t.Errorf("number text = %q, want %q", toks[0].Text, tc.text)
			}
		})
	}
}

func TestScanRejects(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantOff int
		wantSub string
	}{
		{"stray question mark", "1 ? 2", 2, "unexpected character"},
		{"bare exponent", "2e", 2, "expected digit after exponent"},
		{"signed bare exponent", "2e+", 3, "expected digit after exponent"},
		{"empty hex", "0x_", 0, `missing digits after "0x"`},
		{"empty binary", "0b", 0, `missing digits after "0b"`},
		{"number then letters", "12three", 0, "malformed number"},
		{"hex junk", "0x1fg", 0, "malformed number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Scan(tc.in)
			if err == nil {
				t.Fatalf("Scan(%q) succeeded", tc.in)
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("Scan(%q) error type %T", tc.in, err)
			}
			if cerr.Off != tc.wantOff {
				t.Errorf("offset = %d, want %d (%v)", cerr.Off, tc.wantOff, err)
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

// Decomposed input is NFC-normalized before scanning, so e plus a
// combining acute arrives as the single rune é.
func TestScanNormalizesInput(t *testing.T) {
	_, err := Scan("é")
	if err == nil {
		t.Fatal("Scan accepted a combining mark")
	}
	if !strings.Contains(err.Error(), "'é'") {
		t.Errorf("error %q does not mention the composed rune", err)
	}
}
