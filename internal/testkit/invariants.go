package testkit

import (
	"fmt"

	"bigint"
)

// CheckValueInvariants runs a minimal set of canonical-form invariants on a value:
// 1) sign predicates agree with Sign() trichotomy
// 2) decimal formatting round-trips through Parse
// 3) Neg is an involution and Abs never reports negative
func CheckValueInvariants(v bigint.Integer) error {
	// 1) sign sanity
	switch v.Sign() {
	case 0:
		if !v.IsZero() || v.IsNegative() || v.IsPositive() {
			return fmt.Errorf("sign 0 but predicates disagree: zero=%v neg=%v pos=%v", v.IsZero(), v.IsNegative(), v.IsPositive())
		}
		if v.BitLength() != 0 {
			return fmt.Errorf("zero value has bit length %d", v.BitLength())
		}
	case -1:
		if v.IsZero() || !v.IsNegative() || v.IsPositive() {
			return fmt.Errorf("sign -1 but predicates disagree: zero=%v neg=%v pos=%v", v.IsZero(), v.IsNegative(), v.IsPositive())
		}
	case 1:
		if v.IsZero() || v.IsNegative() || !v.IsPositive() {
			return fmt.Errorf("sign 1 but predicates disagree: zero=%v neg=%v pos=%v", v.IsZero(), v.IsNegative(), v.IsPositive())
		}
	default:
		return fmt.Errorf("sign out of range: %d", v.Sign())
	}

	// 2) decimal round-trip
	back, err := bigint.Parse(v.String())
	if err != nil {
		return fmt.Errorf("String() produced unparseable %q: %w", v.String(), err)
	}
	if !back.Equal(v) {
		return fmt.Errorf("decimal round-trip drifted: %s -> %s", v, back)
	}

	// 3) negation sanity
	if !v.Neg().Neg().Equal(v) {
		return fmt.Errorf("double negation drifted for %s", v)
	}
	if v.Abs().IsNegative() {
		return fmt.Errorf("abs of %s reports negative", v)
	}
	if v.IsZero() && v.Neg().IsNegative() {
		return fmt.Errorf("negated zero reports negative")
	}
	return nil
}
