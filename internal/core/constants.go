// Package core provides shared constants, configuration and input parsing
// for the primes CLI.
package core

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables
const (
	MaxBoundEnvVar = "PRIMES_MAX_BOUND"
	LogFileEnvVar  = "PRIMES_LOG_FILE"
)

// Sieve limits
const (
	// DefaultMaxBound caps the sieve at roughly 100 MB of working memory.
	DefaultMaxBound int64 = 100_000_000
)

// MaxBound is the largest bound accepted for listing primes.
var MaxBound = DefaultMaxBound

// LogFile is the default path for the JSON log file ("" disables it).
var LogFile = ""

func init() {
	// Override defaults from environment variables
	MaxBound = MaxBoundFromEnv(os.Getenv(MaxBoundEnvVar), DefaultMaxBound)
	if path := os.Getenv(LogFileEnvVar); path != "" {
		LogFile = path
	}
}

// MaxBoundFromEnv parses an environment override for MaxBound, returning
// fallback when val is empty, malformed or not positive.
func MaxBoundFromEnv(val string, fallback int64) int64 {
	if val == "" {
		return fallback
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q; using %d.\n", MaxBoundEnvVar, val, fallback)
		return fallback
	}
	return n
}

// Version is the current CLI version.
const Version = "1.0.0"
