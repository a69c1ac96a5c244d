package prime

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{15, 3},
		{16, 4},
		{17, 4},
		{99, 9},
		{100, 10},
		{1 << 62, 1 << 31},
		{(1 << 62) - 1, (1 << 31) - 1},
		{maxIsqrt * maxIsqrt, maxIsqrt},
		{maxIsqrt*maxIsqrt - 1, maxIsqrt - 1},
		{math.MaxInt64, maxIsqrt},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.n), func(t *testing.T) {
			if got := Isqrt(tt.n); got != tt.want {
				t.Errorf("Isqrt(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestIsqrtBracketsNearSquares(t *testing.T) {
	// Squares of large values are where a float64 estimate drifts.
	for _, r := range []int64{94906265, 94906266, 3037000000, maxIsqrt} {
		sq := r * r
		for _, n := range []int64{sq - 1, sq, sq + 1} {
			got := Isqrt(n)
			assert.LessOrEqual(t, got*got, n, "Isqrt(%d) = %d too large", n, got)
			if got < maxIsqrt {
				assert.Greater(t, (got+1)*(got+1), n, "Isqrt(%d) = %d too small", n, got)
			}
		}
	}
}

func TestIsqrtNegativePanics(t *testing.T) {
	assert.Panics(t, func() { Isqrt(-1) })
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{math.MinInt64, false},
		{-7, false},
		{-2, false},
		{-1, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{9, false},
		{25, false},
		{37, true},
		{49, false},
		{97, true},
		{1009, true},
		{1024, false},
		{7919, true},
		{1000003, true},
		{1000003 * 1000003, false},
		{2147483647, true},
		{4294967291, true},
		{4294967295, false},
		{math.MaxInt64, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.n), func(t *testing.T) {
			if got := IsPrime(tt.n); got != tt.want {
				t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestIsPrimeMatchesDivisorCount(t *testing.T) {
	for n := int64(0); n <= 10000; n++ {
		divisors := 0
		for d := int64(1); d <= n; d++ {
			if n%d == 0 {
				divisors++
			}
		}
		if got, want := IsPrime(n), divisors == 2; got != want {
			t.Fatalf("IsPrime(%d) = %v, but %d has %d divisors", n, got, n, divisors)
		}
	}
}

func TestIsPrimeIsDeterministic(t *testing.T) {
	for _, n := range []int64{-5, 0, 1, 2, 91, 97, 1000003} {
		assert.Equal(t, IsPrime(n), IsPrime(n), "IsPrime(%d)", n)
	}
}
