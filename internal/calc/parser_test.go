package calc

import (
	"errors"
	"strings"
	"testing"
)

func mustScan(t *testing.T, input string) []Token {
	t.Helper()
	toks, err := Scan(input)
	if err != nil {
		t.Fatalf("Scan(%q): %v", input, err)
	}
	return toks
}

func TestParseProgramShape(t *testing.T) {
	stmts, err := Parse(mustScan(t, "a = 1; ; a + 2"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	assign, ok := stmts[0].(*AssignStmt)
	if !ok {
		t.Fatalf("statement 0 is %T, want *AssignStmt", stmts[0])
	}
	if assign.Name != "a" {
		t.Errorf("assignment name = %q, want %q", assign.Name, "a")
	}
	if _, ok := stmts[1].(*ExprStmt); !ok {
		t.Fatalf("statement 1 is %T, want *ExprStmt", stmts[1])
	}
}

func TestParsePrecedence(t *testing.T) {
	stmts, err := Parse(mustScan(t, "1 + 2 * 3"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bin, ok := stmts[0].(*ExprStmt).X.(*BinaryExpr)
	if !ok || bin.Op != Plus {
		t.Fatalf("root = %#v, want + at the root", stmts[0])
	}
	right, ok := bin.Y.(*BinaryExpr)
	if !ok || right.Op != Star {
		t.Fatalf("right operand = %#v, want *", bin.Y)
	}
}

func TestParsePowerRightAssociative(t *testing.T) {
	stmts, err := Parse(mustScan(t, "2 ^ 3 ^ 2"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := stmts[0].(*ExprStmt).X.(*BinaryExpr)
	if root.Op != Caret {
		t.Fatalf("root op = %v, want ^", root.Op)
	}
	if _, ok := root.X.(*NumberExpr); !ok {
		t.Errorf("left of root ^ = %T, want number", root.X)
	}
	if inner, ok := root.Y.(*BinaryExpr); !ok || inner.Op != Caret {
		t.Errorf("right of root ^ = %#v, want nested ^", root.Y)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantOff int
		wantSub string
	}{
		{"empty", "", 0, "empty input"},
		{"only semicolons", ";;", 0, "empty input"},
		{"dangling operator", "1 +", 3, "expected expression"},
		{"missing rparen", "(1", 2, "expected ')'"},
		{"missing call rparen", "gcd(1, 2", 8, "expected ')'"},
		{"missing argument", "gcd(1,)", 6, "expected expression"},
		{"adjacent values", "1 2", 2, "unexpected number"},
		{"bad literal", "1e1000001", 0, "malformed number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(mustScan(t, tc.in))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", tc.in)
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("Parse(%q) error type %T", tc.in, err)
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
