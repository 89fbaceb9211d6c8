package calc

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Scan tokenizes calculator input. The input is NFC-normalized first,
// so token offsets refer to the normalized string.
//
// Numbers are unsigned integer literals: decimal with an optional
// exponent (2e9), or 0x/0o/0b prefixed. Underscores may separate
// digits, as in 1_000_000.
func Scan(input string) ([]Token, error) {
	s := scanner{src: norm.NFC.String(input)}
	var toks []Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// scanner представляет собой позицию в нормализованной строке
type scanner struct {
	src string
	off int
}

func (s *scanner) eof() bool {
	return s.off >= len(s.src)
}

// peek читает текущий байт, если есть, иначе возвращает 0
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.off]
}

func (s *scanner) bump() byte {
	b := s.peek()
	if !s.eof() {
		s.off++
	}
	return b
}

func (s *scanner) next() (Token, error) {
	s.skipSpace()
	start := s.off
	if s.eof() {
		return Token{Kind: EOF, Off: start}, nil
	}
	c := s.peek()
	switch {
	case isDec(c):
		return s.scanNumber()
	case isIdentStart(c):
		return s.scanIdent(), nil
	}
	if kind, ok := operatorKind(c); ok {
		s.bump()
		return Token{Kind: kind, Off: start, Text: s.src[start:s.off]}, nil
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.off:])
	return Token{}, errAt(start, "unexpected character %q", r)
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		r, size := utf8.DecodeRuneInString(s.src[s.off:])
		if !unicode.IsSpace(r) {
			return
		}
		s.off += size
	}
}

// Поддержка: 0, 123, 0b..., 0o..., 0x..., 1e9, 2E+5.
// Подчёркивания между цифрами пропускаются; дробных литералов нет.
func (s *scanner) scanNumber() (Token, error) {
	start := s.off

	// ведущий 0 и база?
	if s.peek() == '0' && s.off+1 < len(s.src) {
		switch s.src[s.off+1] {
		case 'x', 'X':
			return s.scanPrefixed(start, isHex)
		case 'o', 'O':
			return s.scanPrefixed(start, isOct)
		case 'b', 'B':
			return s.scanPrefixed(start, isBin)
		}
	}

	// десятичная часть
	for isDec(s.peek()) || s.peek() == '_' {
		s.bump()
	}

	// экспонента
	if s.peek() == 'e' || s.peek() == 'E' {
		s.bump()
		if s.peek() == '+' || s.peek() == '-' {
			s.bump()
		}
		if !isDec(s.peek()) {
			return Token{}, errAt(s.off, "expected digit after exponent")
		}
		for isDec(s.peek()) || s.peek() == '_' {
			s.bump()
		}
	}

	if !s.eof() && isIdentPart(s.peek()) {
		return Token{}, errAt(start, "malformed number %q", s.src[start:s.off+1])
	}
	return Token{Kind: Number, Off: start, Text: s.src[start:s.off]}, nil
}

// scanPrefixed consumes a 0x/0o/0b literal, requiring at least one
// digit of the base after the prefix.
func (s *scanner) scanPrefixed(start int, isDigit func(byte) bool) (Token, error) {
	s.bump() // '0'
	s.bump() // base marker
	digits := 0
	for isDigit(s.peek()) || s.peek() == '_' {
		if s.peek() != '_' {
			digits++
		}
		s.bump()
	}
	if digits == 0 {
		return Token{}, errAt(start, "missing digits after %q", s.src[start:start+2])
	}
	if !s.eof() && isIdentPart(s.peek()) {
		return Token{}, errAt(start, "malformed number %q", s.src[start:s.off+1])
	}
	return Token{Kind: Number, Off: start, Text: s.src[start:s.off]}, nil
}

func (s *scanner) scanIdent() Token {
	start := s.off
	for !s.eof() && isIdentPart(s.peek()) {
		s.bump()
	}
	return Token{Kind: Ident, Off: start, Text: s.src[start:s.off]}
}

func operatorKind(c byte) (Kind, bool) {
	switch c {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case '*':
		return Star, true
	case '/':
		return Slash, true
	case '%':
		return Percent, true
	case '^':
		return Caret, true
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	case ',':
		return Comma, true
	case '=':
		return Assign, true
	case ';':
		return Semi, true
	default:
		return EOF, false
	}
}

func isDec(c byte) bool { return c >= '0' && c <= '9' }

func isBin(c byte) bool { return c == '0' || c == '1' }

func isOct(c byte) bool { return c >= '0' && c <= '7' }

func isHex(c byte) bool {
	return isDec(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDec(c) }
