package prime

// PrimesBelow returns all primes strictly less than n in ascending order,
// using the Sieve of Eratosthenes. The result is empty (never nil) for n <= 2.
//
// Memory use is O(n); callers accepting untrusted input must bound n first.
func PrimesBelow(n int64) []int64 {
	if n <= 2 {
		return []int64{}
	}

	// composite[i] is false while i is still a prime candidate.
	composite := make([]bool, n)
	composite[0], composite[1] = true, true

	limit := Isqrt(n - 1)
	for p := int64(2); p <= limit; p++ {
		if composite[p] {
			continue
		}
		// Smaller multiples of p were already marked by smaller primes.
		for m := p * p; m < n; m += p {
			composite[m] = true
		}
	}

	count := 0
	for _, c := range composite {
		if !c {
			count++
		}
	}

	primes := make([]int64, 0, count)
	for i := int64(2); i < n; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}
