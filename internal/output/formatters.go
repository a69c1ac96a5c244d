// Package output provides output formatting utilities for the primes CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Report is the result of analysing a single input.
type Report struct {
	N       int64   `json:"n"`
	IsPrime bool    `json:"is_prime"`
	Count   int     `json:"count"`
	Primes  []int64 `json:"primes"`
}

// NewReport builds a Report, deriving Count from primes.
func NewReport(n int64, isPrime bool, primes []int64) Report {
	if primes == nil {
		primes = []int64{}
	}
	return Report{N: n, IsPrime: isPrime, Count: len(primes), Primes: primes}
}

// PrimalityLine renders the "<n> is (not) a prime number." sentence.
func PrimalityLine(n int64, isPrime bool) string {
	if isPrime {
		return fmt.Sprintf("%d is a prime number.", n)
	}
	return fmt.Sprintf("%d is not a prime number.", n)
}

// JoinPrimes renders primes separated by ", ".
func JoinPrimes(primes []int64) string {
	var sb strings.Builder
	for i, p := range primes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(p, 10))
	}
	return sb.String()
}

// PrintText writes the human-readable report.
func PrintText(w io.Writer, r Report) {
	fmt.Fprintln(w, PrimalityLine(r.N, r.IsPrime))
	if len(r.Primes) == 0 {
		fmt.Fprintf(w, "No primes exist below %d.\n", r.N)
		return
	}
	fmt.Fprintf(w, "Primes less than %d (%d total):\n", r.N, len(r.Primes))
	fmt.Fprintln(w, JoinPrimes(r.Primes))
}

// PrintJSON writes v as a single line of compact JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
