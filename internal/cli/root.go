// Package cli implements the command-line interface for the primes CLI.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colthorp/primes-cli-go/internal/core"
	"github.com/colthorp/primes-cli-go/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Global flags
var (
	verbose  bool
	raw      bool
	maxBound int64
	logFile  string
)

var (
	logger      = zap.NewNop()
	closeLog    = func() {}
	openLogSink = logging.OpenSink
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "primes [N]",
	Short: "Check whether N is prime and list the primes below it",
	Long: `Reports whether an integer is prime (trial division) and lists every
prime strictly less than it (Sieve of Eratosthenes).

When N is omitted, the number is read from standard input.`,
	Version:           core.Version,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogger,
	RunE:              handlePrimes,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(normalizeArgs(rootCmd, args))
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Runs on error paths too, unlike PersistentPostRun.
	defer func() {
		_ = logger.Sync()
		closeLog()
		closeLog = func() {}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&raw, "raw", false, "Emit the report as JSON instead of text")
	rootCmd.PersistentFlags().Int64Var(&maxBound, "max-bound", core.MaxBound, fmt.Sprintf("Largest N for which primes are listed (env %s)", core.MaxBoundEnvVar))
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", core.LogFile, fmt.Sprintf("Append JSON logs to this file (env %s)", core.LogFileEnvVar))
}

func initLogger(cmd *cobra.Command, args []string) error {
	base, err := logging.New(verbose)
	if err != nil {
		return err
	}
	sink, closeSink, err := openLogSink(logFile)
	if err != nil {
		return err
	}
	closeLog = closeSink
	logger = logging.WithFileSink(base, sink, verbose)
	return nil
}

// normalizeArgs moves the first negative number behind a trailing "--" so
// that "primes -5" is read as N rather than as a shorthand flag, while flags
// on either side of it are still parsed.
func normalizeArgs(cmd *cobra.Command, args []string) []string {
	for _, arg := range args {
		if arg == "--" {
			return args
		}
	}

	for i, arg := range args {
		if !core.IsNegativeNumber(arg) {
			continue
		}
		if i > 0 && takesValue(cmd, args[i-1]) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, args[i+1:]...)
		return append(out, "--", arg)
	}
	return args
}

// takesValue reports whether arg is a long flag whose value is the next arg.
func takesValue(cmd *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "--") || strings.Contains(arg, "=") {
		return false
	}
	flag := cmd.Flags().Lookup(arg[2:])
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(arg[2:])
	}
	return flag != nil && flag.NoOptDefVal == ""
}
