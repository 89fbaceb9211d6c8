package bigint

import (
	"fmt"
	"math"
	"math/rand/v2"

	"bigint/internal/limb"
)

// Gcd returns the greatest common divisor of a and b by Euclidean
// remainders on the magnitudes. The result is never negative and
// Gcd(0, 0) is 0.
func Gcd(a, b Integer) Integer {
	x, y := a.mag.Trim(), b.mag.Trim()
	for len(y) != 0 {
		_, r := magDivMod(x, y)
		x, y = y, r
	}
	return makeInt(false, x)
}

// Lcm returns the least common multiple of a and b, never negative.
// Lcm with a zero argument is 0.
func Lcm(a, b Integer) Integer {
	am, bm := a.mag.Trim(), b.mag.Trim()
	if len(am) == 0 || len(bm) == 0 {
		return Integer{}
	}
	g := Gcd(a, b)
	q, _ := magDivMod(am, g.mag)
	return makeInt(false, limb.Mul(q, bm))
}

// IsDivisibleBy reports whether x is a multiple of y. Nothing is
// divisible by zero.
func (x Integer) IsDivisibleBy(y Integer) bool {
	if y.IsZero() {
		return false
	}
	if y.IsUnit() {
		return true
	}
	ym := y.mag.Trim()
	if len(ym) == 1 && ym[0] == 2 {
		return x.IsEven()
	}
	_, r := magDivMod(x.mag, ym)
	return len(r) == 0
}

// ModPow returns x^exp modulo mod by repeated squaring. The result has
// magnitude below |mod| and carries the sign the truncating Mod gives
// it. A negative exp works through the modular inverse of x and fails
// with ErrUnsupportedExponent when x and mod are not co-prime; a zero
// mod fails with ErrDivisionByZero.
func (x Integer) ModPow(exp, mod Integer) (Integer, error) {
	if mod.IsZero() {
		return Integer{}, fmt.Errorf("%w: zero modulus", ErrDivisionByZero)
	}
	if mod.IsUnit() {
		return Integer{}, nil
	}
	base, err := x.Mod(mod)
	if err != nil {
		return Integer{}, err
	}
	e := exp
	if exp.IsNegative() {
		inv, err := base.ModInv(mod)
		if err != nil {
			return Integer{}, err
		}
		base = inv
		e = exp.Neg()
	}
	result := One()
	for e.IsPositive() {
		if base.IsZero() {
			return Integer{}, nil
		}
		if e.IsOdd() {
			result, err = result.Mul(base).Mod(mod)
			if err != nil {
				return Integer{}, err
			}
		}
		e = e.half()
		base, err = base.Square().Mod(mod)
		if err != nil {
			return Integer{}, err
		}
	}
	return result, nil
}

// ModInv returns t with x*t ≡ 1 (mod n) via the extended Euclidean
// algorithm. When x and n share a factor no inverse exists and the
// error wraps ErrUnsupportedExponent.
func (x Integer) ModInv(n Integer) (Integer, error) {
	t, newT := Zero(), One()
	r, newR := n, x.Abs()
	for !newR.IsZero() {
		q, _, err := r.DivMod(newR)
		if err != nil {
			return Integer{}, err // unreachable: newR is non-zero
		}
		t, newT = newT, t.Sub(q.Mul(newT))
		r, newR = newR, r.Sub(q.Mul(newR))
	}
	if !r.IsUnit() {
		return Integer{}, fmt.Errorf("%w: %s and %s are not co-prime", ErrUnsupportedExponent, x, n)
	}
	if t.IsNegative() {
		t = t.Add(n)
	}
	if x.IsNegative() {
		return t.Neg(), nil
	}
	return t, nil
}

// smallPrimes feeds trial division; 97 is the largest entry, so any
// survivor below 101^2 must itself be prime.
var smallPrimes = [...]uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// fixedWitnesses decide Miller-Rabin exactly for everything below
// 3,317,044,064,679,887,385,961,981, which covers all 81-bit values.
var fixedWitnesses = [...]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// basicPrime settles small inputs by trial division. decided comes
// back false when n clears the table and is too large to conclude
// anything cheaply.
func basicPrime(n Integer) (prime, decided bool) {
	if n.IsZero() || n.IsUnit() {
		return false, true
	}
	for _, p := range smallPrimes {
		pi := FromInt64(int64(p))
		switch {
		case n.Equal(pi):
			return true, true
		case n.IsDivisibleBy(pi):
			return false, true
		}
	}
	if n.Less(FromInt64(101 * 101)) {
		return true, true
	}
	return false, false
}

// mrParams splits n-1 into d * 2^s with d odd.
func mrParams(n Integer) (nPrev, d Integer, s int) {
	nPrev = n.Prev()
	s = nPrev.mag.TrailingZeros()
	d = makeInt(false, limb.Shr(nPrev.mag, s))
	return nPrev, d, s
}

// mrWitness reports whether n passes one Miller-Rabin round for
// witness a. Witnesses at or above n pass vacuously.
func mrWitness(n, nPrev, d Integer, s int, a Integer) bool {
	if n.Less(a) {
		return true
	}
	x, err := a.ModPow(d, n)
	if err != nil {
		return false // unreachable: n is positive
	}
	if x.IsUnit() || x.Equal(nPrev) {
		return true
	}
	for i := s - 1; i > 0; i-- {
		x, err = x.Square().Mod(n)
		if err != nil {
			return false
		}
		if x.IsUnit() {
			return false
		}
		if x.Equal(nPrev) {
			return true
		}
	}
	return false
}

// IsPrime reports whether |x| is prime. Values of up to 81 bits get a
// deterministic answer from the fixed witness set; larger ones run
// Miller-Rabin with ascending witnesses 2..⌈ln n⌉+1, which has no
// known counterexamples.
func (x Integer) IsPrime() bool { return x.checkPrime(false) }

// IsPrimeStrict is IsPrime with the witness count raised to ⌈2·ln²n⌉,
// the bound that is provably sufficient under the generalized Riemann
// hypothesis.
func (x Integer) IsPrimeStrict() bool { return x.checkPrime(true) }

func (x Integer) checkPrime(strict bool) bool {
	n := x.Abs()
	if prime, decided := basicPrime(n); decided {
		return prime
	}
	nPrev, d, s := mrParams(n)
	if n.BitLength() <= 81 {
		for _, a := range fixedWitnesses {
			if !mrWitness(n, nPrev, d, s, FromInt64(int64(a))) {
				return false
			}
		}
		return true
	}
	logN := math.Ln2 * float64(n.BitLength())
	count := int64(math.Ceil(logN))
	if strict {
		count = int64(math.Ceil(2 * logN * logN))
	}
	for i := int64(0); i < count; i++ {
		if !mrWitness(n, nPrev, d, s, FromInt64(i+2)) {
			return false
		}
	}
	return true
}

// IsProbablePrime reports whether |x| passes the given number of
// Miller-Rabin rounds with uniformly random witnesses in [2, n-2].
// Rounds at or below zero default to 5; each round a composite
// survives has probability at most 1/4.
func (x Integer) IsProbablePrime(rounds int) bool {
	n := x.Abs()
	if prime, decided := basicPrime(n); decided {
		return prime
	}
	if rounds <= 0 {
		rounds = 5
	}
	nPrev, d, s := mrParams(n)
	two := FromInt64(2)
	hi := n.Sub(two)
	for i := 0; i < rounds; i++ {
		a := RandBetween(two, hi)
		if !mrWitness(n, nPrev, d, s, a) {
			return false
		}
	}
	return true
}

// randSource is the part of math/rand/v2 the samplers need. Both
// *rand.Rand and the process-wide functions satisfy it.
type randSource interface {
	Uint32() uint32
	Uint64N(n uint64) uint64
}

type globalRand struct{}

func (globalRand) Uint32() uint32          { return rand.Uint32() }
func (globalRand) Uint64N(n uint64) uint64 { return rand.Uint64N(n) }

// RandBetween returns a uniform random Integer in [min, max], bounds
// included and given in either order, using the process-wide source.
func RandBetween(min, max Integer) Integer {
	return randBetween(globalRand{}, min, max)
}

// RandBetweenFrom is RandBetween drawing from rng, for callers that
// need reproducible sequences.
func RandBetweenFrom(rng *rand.Rand, min, max Integer) Integer {
	return randBetween(rng, min, max)
}

func randBetween(src randSource, min, max Integer) Integer {
	if min.Greater(max) {
		min, max = max, min
	}
	span := max.Sub(min).Next()
	return min.Add(randBelow(src, span.mag))
}

// randBelow draws a uniform magnitude in [0, limit) by rejection: fill
// exactly the limbs limit occupies, mask the top one down to limit's
// bit width, and resample the rare draw that still lands at or past
// limit.
func randBelow(src randSource, limit limb.Mag) Integer {
	limit = limit.Trim()
	if u, ok := limit.Uint64(); ok {
		return FromUint64(src.Uint64N(u))
	}
	topBits := limit.BitLen() % 32
	if topBits == 0 {
		topBits = 32
	}
	mask := uint32(uint64(1)<<topBits - 1)
	out := make(limb.Mag, len(limit))
	for {
		for i := range out {
			out[i] = src.Uint32()
		}
		out[len(out)-1] &= mask
		if limb.Cmp(out, limit) < 0 {
			return makeInt(false, out)
		}
	}
}
