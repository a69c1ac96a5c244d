package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput reports text that is not an integer.
	ErrInvalidInput = errors.New("invalid integer")
	// ErrInputTooLarge reports an integer outside the int64 range.
	ErrInputTooLarge = errors.New("integer out of range")
	// ErrBoundTooLarge reports a sieve bound above the configured maximum.
	ErrBoundTooLarge = errors.New("bound exceeds maximum")
)

// ParseInteger parses a base-10 integer, ignoring surrounding whitespace.
// An optional leading sign is accepted. Failures wrap ErrInvalidInput or
// ErrInputTooLarge.
func ParseInteger(s string) (int64, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w (supported range %d to %d)", s, ErrInputTooLarge, int64(math.MinInt64), int64(math.MaxInt64))
		}
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidInput)
	}
	return n, nil
}

// CheckBound returns an error wrapping ErrBoundTooLarge when n exceeds limit.
func CheckBound(n, limit int64) error {
	if n > limit {
		return fmt.Errorf("%d: %w of %d", n, ErrBoundTooLarge, limit)
	}
	return nil
}

// IsNegativeNumber reports whether arg looks like a negative integer rather
// than a flag.
func IsNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	for _, r := range arg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
