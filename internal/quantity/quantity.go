// Package quantity computes the pre-flight upper bound on distinct
// variants a job could produce. It never enumerates anything; it is pure
// arithmetic used for reporting and for sizing the shuffle-and-truncate
// fallback in internal/variant.
package quantity

import "math"

// Ceiling is the saturation point for Solve, Factorial and Power. Genuine
// factorial growth (21! alone overflows int64) would otherwise wrap silently; instead
// any overflow clamps here.
const Ceiling = math.MaxInt64

// Solve returns the maximum number of distinct plans the given clip count
// and allowed-speed count could produce under orderMixing/speedMixing:
// (n! if orderMixing else 1) * (s^n if speedMixing else 1), saturating at
// Ceiling rather than overflowing.
func Solve(n, s int, orderMixing, speedMixing bool) int64 {
	if n < 0 {
		n = 0
	}
	if s < 1 {
		s = 1
	}

	orderTerm := int64(1)
	if orderMixing {
		orderTerm = factorial(n)
	}

	speedTerm := int64(1)
	if speedMixing {
		speedTerm = power(int64(s), n)
	}

	return saturatingMul(orderTerm, speedTerm)
}

// Factorial returns n! saturating at Ceiling on overflow. Exported so
// internal/variant can bound order-enumeration oversupply independently
// of the combined QuantitySolver formula.
func Factorial(n int) int64 {
	return factorial(n)
}

// Power returns base^exp saturating at Ceiling on overflow. Exported for
// the same reason as Factorial.
func Power(base int64, exp int) int64 {
	return power(base, exp)
}

// factorial returns n! saturating at Ceiling on overflow.
func factorial(n int) int64 {
	result := int64(1)
	for i := 2; i <= n; i++ {
		result = saturatingMul(result, int64(i))
		if result == Ceiling {
			return Ceiling
		}
	}
	return result
}

// power returns base^exp saturating at Ceiling on overflow.
func power(base int64, exp int) int64 {
	result := int64(1)
	for i := 0; i < exp; i++ {
		result = saturatingMul(result, base)
		if result == Ceiling {
			return Ceiling
		}
	}
	return result
}

// saturatingMul returns a*b, clamped to Ceiling when the product would
// overflow int64 or exceed Ceiling.
func saturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > Ceiling/b {
		return Ceiling
	}
	product := a * b
	if product > Ceiling {
		return Ceiling
	}
	return product
}
