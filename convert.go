package bigint

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"bigint/internal/limb"
)

// digitAlphabet maps digit values below 36 to their characters. Digits
// past the alphabet render as a bracketed decimal value, such as <56>.
const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// maxParseExp caps how many zeros an exponent may append during Parse.
const maxParseExp = 1_000_000

// Parse interprets s as a decimal integer and returns its value.
// Surrounding whitespace and a leading sign are allowed, as is
// scientific notation whose value is a whole number, so "1.24e3" parses
// to 1240. Anything else is rejected with ErrInvalidInteger.
func Parse(s string) (Integer, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Integer{}, fmt.Errorf("%w: empty string", ErrInvalidInteger)
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return Integer{}, fmt.Errorf("%w: missing digits", ErrInvalidInteger)
	}
	if strings.ContainsAny(s, "eE.") {
		expanded, err := expandScientific(s)
		if err != nil {
			return Integer{}, err
		}
		s = expanded
	}
	mag, err := parseDecimal(s)
	if err != nil {
		return Integer{}, err
	}
	return makeInt(neg, mag), nil
}

// MustParse is Parse for trusted input; it panics on error.
func MustParse(s string) Integer {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("bigint: MustParse(%q): %v", s, err))
	}
	return v
}

// expandScientific rewrites an unsigned mantissa-exponent form into a
// plain digit string. The decimal point may only cut off zeros once the
// exponent is applied; anything fractional stays an error.
func expandScientific(s string) (string, error) {
	mant := s
	var expPart string
	hasExp := false
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, expPart = s[:i], s[i+1:]
		hasExp = true
	}
	if strings.ContainsAny(expPart, "eE") {
		return "", fmt.Errorf("%w: %q has more than one exponent", ErrInvalidInteger, s)
	}
	var exp int64
	if hasExp {
		v, err := strconv.ParseInt(expPart, 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a valid exponent", ErrInvalidInteger, expPart)
		}
		exp = v
	}
	intPart := mant
	var fracPart string
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		intPart, fracPart = mant[:i], mant[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return "", fmt.Errorf("%w: %q has more than one decimal point", ErrInvalidInteger, s)
		}
	}
	if intPart == "" && fracPart == "" {
		return "", fmt.Errorf("%w: %q has no digits", ErrInvalidInteger, s)
	}
	net := exp - int64(len(fracPart))
	for net < 0 && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
		net++
	}
	if net < 0 {
		return "", fmt.Errorf("%w: %q keeps a fractional part", ErrInvalidInteger, s)
	}
	if net > maxParseExp {
		return "", fmt.Errorf("%w: exponent in %q is too large", ErrInvalidInteger, s)
	}
	return intPart + fracPart + strings.Repeat("0", int(net)), nil
}

// parseDecimal folds a digit string into a magnitude nine digits at a
// time, so the expensive big-number multiply runs once per chunk rather
// than once per character.
func parseDecimal(s string) (limb.Mag, error) {
	const chunkLen = 9
	const chunkBase = uint32(1_000_000_000)
	var mag limb.Mag
	start := len(s) % chunkLen
	if start > 0 {
		v, err := decChunk(s[:start])
		if err != nil {
			return nil, err
		}
		mag = limb.FromWord(v)
	}
	for ; start < len(s); start += chunkLen {
		v, err := decChunk(s[start : start+chunkLen])
		if err != nil {
			return nil, err
		}
		mag = limb.MulWord(mag, chunkBase)
		mag = limb.AddWord(mag, v)
	}
	return mag, nil
}

func decChunk(s string) (uint32, error) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: unexpected character %q", ErrInvalidInteger, rune(c))
		}
		v = v*10 + uint32(c-'0')
	}
	return v, nil
}

// ParseBase interprets s as an integer written in the given base. The
// base may be negative, zero or arbitrarily large. Letters a-z stand
// for digits 10 through 35 in either case, and a bracketed decimal
// value such as <56> supplies a single digit of any size. Base zero
// accepts only renditions of zero; for bases of magnitude one, strings
// of 0s and 1s are read as the matching unary encoding.
func ParseBase(s string, base Integer) (Integer, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Integer{}, fmt.Errorf("%w: empty string", ErrInvalidInteger)
	}
	neg := s[0] == '-'
	body := s
	if neg {
		body = s[1:]
	}
	if body == "" {
		return Integer{}, fmt.Errorf("%w: missing digits", ErrInvalidInteger)
	}
	if !base.IsZero() {
		if err := checkDigitRange(body, base); err != nil {
			return Integer{}, err
		}
	}
	digits, small, err := collectDigits(body)
	if err != nil {
		return Integer{}, err
	}
	if base.IsZero() {
		for _, d := range digits {
			if !d.IsZero() {
				return Integer{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidBaseZero, s)
			}
		}
		return Integer{}, nil
	}
	var val Integer
	if wb, ok := wordBase(base); ok && small != nil {
		val = makeInt(false, evalWordDigits(small, wb))
	} else {
		val = evalDigits(digits, base)
	}
	if neg {
		val = val.Neg()
	}
	return val, nil
}

// checkDigitRange rejects alphabet characters that do not fit below
// |base|. Unit bases exempt 0 and 1 so unary encodings stay readable.
// Bracketed digits are checked character by character like everything
// else, matching the positional reader's lenience about their value.
func checkDigitRange(body string, base Integer) error {
	unit := base.IsUnit()
	for i := 0; i < len(body); i++ {
		c := body[i]
		v, ok := digitVal(c)
		if !ok {
			continue
		}
		if unit {
			if c == '0' || c == '1' {
				continue
			}
		} else if FromUint64(uint64(v)).CmpAbs(base) < 0 {
			continue
		}
		return fmt.Errorf("%w: %q is not a valid digit in base %s", ErrInvalidInteger, rune(c), base)
	}
	return nil
}

// collectDigits walks the body once, turning alphabet characters and
// bracketed values into digit Integers. The small slice mirrors the
// digits as words and comes back nil when any bracket forced an
// arbitrary-size digit.
func collectDigits(body string) (digits []Integer, small []uint32, err error) {
	digits = make([]Integer, 0, len(body))
	small = make([]uint32, 0, len(body))
	bracketed := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		if v, ok := digitVal(c); ok {
			digits = append(digits, FromInt64(int64(v)))
			small = append(small, v)
			continue
		}
		if c != '<' {
			return nil, nil, fmt.Errorf("%w: %q is not a valid character", ErrInvalidInteger, rune(c))
		}
		end := strings.IndexByte(body[i:], '>')
		if end < 0 {
			return nil, nil, fmt.Errorf("%w: unterminated digit bracket", ErrInvalidInteger)
		}
		d, err := Parse(body[i+1 : i+end])
		if err != nil {
			return nil, nil, err
		}
		digits = append(digits, d)
		bracketed = true
		i += end
	}
	if bracketed {
		small = nil
	}
	return digits, small, nil
}

func digitVal(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint32(c-'a') + 10, true
	default:
		return 0, false
	}
}

// wordBase reports whether base is a positive radix small enough for
// the word-at-a-time accumulator.
func wordBase(base Integer) (uint32, bool) {
	v, ok := base.Int64()
	if !ok || v < 2 || v > int64(len(digitAlphabet)) {
		return 0, false
	}
	return uint32(v), true
}

func evalWordDigits(digits []uint32, base uint32) limb.Mag {
	var mag limb.Mag
	for _, d := range digits {
		mag = limb.MulWord(mag, base)
		mag = limb.AddWord(mag, d)
	}
	return mag
}

// evalDigits evaluates a positional digit sequence against an
// arbitrary Integer base, most significant digit first.
func evalDigits(digits []Integer, base Integer) Integer {
	val := Zero()
	pow := One()
	for i := len(digits) - 1; i >= 0; i-- {
		val = val.Add(digits[i].Mul(pow))
		if i > 0 {
			pow = pow.Mul(base)
		}
	}
	return val
}

// String renders x in decimal.
func (x Integer) String() string {
	t := x.mag.Trim()
	if len(t) == 0 {
		return "0"
	}
	if x.neg {
		return "-" + formatMagDecimal(t)
	}
	return formatMagDecimal(t)
}

// formatMagDecimal peels nine decimal digits per division, then prints
// the chunks most significant first.
func formatMagDecimal(m limb.Mag) string {
	const chunkBase = uint32(1_000_000_000)
	var parts []uint32
	for cur := m; !cur.IsZero(); {
		q, r := limb.DivModWord(cur, chunkBase)
		parts = append(parts, r)
		cur = q
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", parts[len(parts)-1])
	for i := len(parts) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%09d", parts[i])
	}
	return sb.String()
}

// Text renders x in the given base, using the bracket form for digits
// the alphabet cannot spell. Base 10 is exactly String.
func (x Integer) Text(base Integer) (string, error) {
	if b, ok := base.Int64(); ok && b == 10 {
		return x.String(), nil
	}
	digits, neg, err := x.Digits(base)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for _, d := range digits {
		sb.WriteString(stringifyDigit(d))
	}
	return sb.String(), nil
}

func stringifyDigit(d Integer) string {
	if v, ok := d.Int64(); ok && v >= 0 && v < int64(len(digitAlphabet)) {
		return string(digitAlphabet[v])
	}
	return "<" + d.String() + ">"
}

// Digits expands x into positional digits for the given base, most
// significant first, along with a flag for a leading minus sign. Every
// digit is non-negative and below |base|, except in the unary bases
// where the encodings are runs of ones and zeros. Digits of 2^32 and
// beyond are kept exact rather than clamped.
func (x Integer) Digits(base Integer) ([]Integer, bool, error) {
	if base.IsZero() {
		if x.IsZero() {
			return []Integer{{}}, false, nil
		}
		return nil, false, fmt.Errorf("%w: cannot expand %s", ErrInvalidBaseZero, x)
	}
	if base.Equal(MinusOne()) {
		return x.negaunaryDigits()
	}
	neg := false
	n := x
	if x.IsNegative() && base.IsPositive() {
		neg = true
		n = x.Abs()
	}
	if base.IsUnit() {
		// Base 1; base -1 was handled above.
		if n.IsZero() {
			return []Integer{{}}, false, nil
		}
		count, err := unaryCount(n)
		if err != nil {
			return nil, false, err
		}
		out := make([]Integer, count)
		for i := range out {
			out[i] = One()
		}
		return out, neg, nil
	}
	var out []Integer
	left := n
	for left.IsNegative() || left.CmpAbs(base) >= 0 {
		q, r, err := left.DivMod(base)
		if err != nil {
			return nil, false, err // unreachable: base is non-zero
		}
		if r.IsNegative() {
			// Negative base: pull the remainder into [0, |base|) and
			// compensate in the quotient.
			r = base.Sub(r).Abs()
			q = q.Next()
		}
		out = append(out, r)
		left = q
	}
	out = append(out, left)
	slices.Reverse(out)
	return out, neg, nil
}

// negaunaryDigits encodes x in base -1: n ones among padding zeros,
// placed on even positions for positive values and odd for negative,
// so the alternating powers sum back to x. The sign lives in the
// digits, never in a minus flag.
func (x Integer) negaunaryDigits() ([]Integer, bool, error) {
	if x.IsZero() {
		return []Integer{{}}, false, nil
	}
	if x.IsNegative() {
		count, err := unaryCount(x.Neg())
		if err != nil {
			return nil, false, err
		}
		out := make([]Integer, 0, 2*count)
		for i := 0; i < count; i++ {
			out = append(out, One(), Zero())
		}
		return out, false, nil
	}
	count, err := unaryCount(x)
	if err != nil {
		return nil, false, err
	}
	out := make([]Integer, 0, 2*count-1)
	out = append(out, One())
	for i := 1; i < count; i++ {
		out = append(out, Zero(), One())
	}
	return out, false, nil
}

// unaryCount bounds unary expansions by what a slice can hold. The
// value itself is kept out of the message; anything that trips this is
// far too long to print.
func unaryCount(n Integer) (int, error) {
	v, ok := n.Int64()
	if !ok {
		return 0, errTooLongUnary
	}
	count, err := safecast.Conv[int](v)
	if err != nil {
		return 0, errTooLongUnary
	}
	return count, nil
}

var errTooLongUnary = errors.New("bigint: value is too large for a unary expansion")

// FromDigits rebuilds an Integer from positional digits in the given
// base, most significant first, inverting Digits. Digit values are
// taken as given and may exceed |base|.
func FromDigits(digits []Integer, base Integer, negative bool) (Integer, error) {
	if len(digits) == 0 {
		return Integer{}, fmt.Errorf("%w: no digits", ErrInvalidInteger)
	}
	if base.IsZero() {
		for _, d := range digits {
			if !d.IsZero() {
				return Integer{}, fmt.Errorf("%w: digit %s", ErrInvalidBaseZero, d)
			}
		}
		return Integer{}, nil
	}
	val := evalDigits(digits, base)
	if negative {
		val = val.Neg()
	}
	return val, nil
}

// Int64 returns the value of x and true when it fits in an int64.
func (x Integer) Int64() (int64, bool) {
	u, ok := x.mag.Uint64()
	if !ok {
		return 0, false
	}
	if !x.neg {
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	if u > uint64(math.MaxInt64)+1 {
		return 0, false
	}
	if u == uint64(math.MaxInt64)+1 {
		return math.MinInt64, true
	}
	return -int64(u), true
}

// Uint64 returns the value of x and true when it fits in a uint64.
func (x Integer) Uint64() (uint64, bool) {
	if x.IsNegative() {
		return 0, false
	}
	return x.mag.Uint64()
}

// Float64 returns the nearest float64 to x, rounding half to even past
// 53 bits and overflowing to the infinities.
func (x Integer) Float64() float64 {
	t := x.mag.Trim()
	if len(t) == 0 {
		return 0
	}
	var f float64
	if bl := t.BitLen(); bl <= 53 {
		u, _ := t.Uint64()
		f = float64(u)
	} else {
		shift := bl - 53
		mant := limb.ShrRounded(t, shift)
		u, _ := mant.Uint64()
		f = math.Ldexp(float64(u), shift)
	}
	if x.neg {
		return -f
	}
	return f
}
