// Package bigint implements immutable arbitrary-precision signed
// integers with the quotient-remainder convention of machine division:
// quotients truncate toward zero and remainders take the dividend's
// sign.
//
// Beyond the usual arithmetic and comparisons the package offers
// two's-complement bitwise operations on signed values, conversion to
// and from positional notation in any integer base including negative
// and unit bases, and a number-theory kit with gcd, lcm, modular
// exponentiation and inversion, deterministic and probabilistic
// primality tests, and uniform random sampling from a range.
//
// Values are plain structs; copy them freely and compare them with
// Equal or Cmp. The zero value is 0 and every operation leaves its
// operands untouched.
package bigint
