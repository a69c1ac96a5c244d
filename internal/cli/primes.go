package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/colthorp/primes-cli-go/internal/core"
	"github.com/colthorp/primes-cli-go/internal/output"
	"github.com/colthorp/primes-cli-go/internal/prime"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	promptText     = "Enter an integer: "
	badArgMessage  = "Please provide an integer, e.g. `primes 37`."
	badLineMessage = "Please enter a valid integer."
)

func handlePrimes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var text string
	invalidMessage := badArgMessage
	if len(args) == 1 {
		text = args[0]
	} else {
		// Only a single argument is taken as N; anything else prompts.
		if len(args) > 1 {
			logger.Debug("ignoring arguments", zap.Strings("args", args))
		}
		// Keep stdout pure JSON under --raw.
		promptOut := out
		if raw {
			promptOut = cmd.ErrOrStderr()
		}
		line, err := promptInteger(cmd.InOrStdin(), promptOut)
		if err != nil {
			return err
		}
		text = line
		invalidMessage = badLineMessage
	}

	n, err := core.ParseInteger(text)
	if err != nil {
		logger.Debug("rejected input", zap.String("input", text), zap.Error(err))
		input := strings.TrimSpace(text)
		message := invalidMessage
		if errors.Is(err, core.ErrInputTooLarge) {
			message = fmt.Sprintf("%s is too large; supported integers range from %d to %d.",
				input, int64(math.MinInt64), int64(math.MaxInt64))
		}
		if raw {
			return output.PrintJSON(out, map[string]interface{}{
				"input": input,
				"error": message,
			})
		}
		fmt.Fprintln(out, message)
		return nil
	}

	return analyze(out, n)
}

// promptInteger writes the prompt and reads a single line. A missing line
// yields "" so the caller reports it as invalid input.
func promptInteger(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptText)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

func analyze(out io.Writer, n int64) error {
	isPrime := prime.IsPrime(n)
	logger.Debug("primality checked", zap.Int64("n", n), zap.Bool("prime", isPrime))

	if err := core.CheckBound(n, maxBound); err != nil {
		logger.Warn("sieve bound rejected", zap.Int64("n", n), zap.Int64("max_bound", maxBound))
		if raw {
			return output.PrintJSON(out, map[string]interface{}{
				"n":        n,
				"is_prime": isPrime,
				"error":    err.Error(),
			})
		}
		fmt.Fprintln(out, output.PrimalityLine(n, isPrime))
		fmt.Fprintf(out, "Cannot list primes below %d: bound exceeds the maximum of %d.\n", n, maxBound)
		return nil
	}

	primes := prime.PrimesBelow(n)
	logger.Debug("sieve complete", zap.Int64("bound", n), zap.Int("count", len(primes)))

	report := output.NewReport(n, isPrime, primes)
	if raw {
		return output.PrintJSON(out, report)
	}
	output.PrintText(out, report)
	return nil
}
