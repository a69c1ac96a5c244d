// Package prime implements trial-division primality testing and a bounded
// Sieve of Eratosthenes over int64 values.
//
// Both operations are pure: they hold no state between calls and every
// integer input has a defined result.
package prime

import "math"

// maxIsqrt is Isqrt(math.MaxInt64). Squaring anything larger overflows int64.
const maxIsqrt = 3037000499

// Isqrt returns the largest r such that r*r <= n.
// It panics if n is negative.
func Isqrt(n int64) int64 {
	if n < 0 {
		panic("prime: square root of negative number")
	}

	// float64 loses precision above 2^53, so the estimate may be off by one
	// in either direction near perfect squares.
	r := int64(math.Sqrt(float64(n)))
	if r > maxIsqrt {
		r = maxIsqrt
	}
	for r*r > n {
		r--
	}
	for r < maxIsqrt && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// IsPrime reports whether n is prime using trial division by odd candidates
// up to Isqrt(n). Values below 2 are never prime.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	limit := Isqrt(n)
	for d := int64(3); d <= limit; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
