// Package cmd wires the pairing pipeline to a cobra CLI: flag parsing,
// logging, and process-exit handling live here; the algorithms live in
// internal/pairing.
package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	logging "github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"
)

// VERSION is the released version of rcmatch.
const VERSION = "0.3.0"

var log *logging.Logger

func init() {
	log = logging.MustGetLogger("rcmatch")

	var format string
	if isatty.IsTerminal(os.Stderr.Fd()) {
		format = `%{color}[%{level:.4s}]%{color:reset} %{message}`
	} else {
		format = `[%{level:.4s}] %{message}`
	}
	logging.SetFormatter(logging.MustStringFormatter(format))
	backend := logging.NewLogBackend(colorable.NewColorableStderr(), "", 0)
	logging.SetBackend(backend)
}

// RootCmd is both the entry point for `rcmatch <flags> <reads path>`
// (spec.md §6's direct invocation shape) and the parent of the
// supplementary `stats` subcommand.
var RootCmd = &cobra.Command{
	Use:   "rcmatch [flags] <reads path>",
	Short: "find read pairs that are reverse complements of one another",
	Long: `rcmatch

Scans a set of nucleotide reads and reports pairs that mutually cover
each other as reverse complements, using minimizer sketches, a
hash-indexed lookup, and chaining by longest increasing subsequence.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE:          runFind,
}

// Execute runs the command tree; it is the sole entry point called from
// main.go.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		checkError(err)
	}
}

// checkError logs a fatal error and terminates the process. Internal
// algorithmic packages never call this; only CLI-boundary code does
// (spec.md §7: "all observable failures are fatal").
func checkError(err error) {
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().IntP("threads", "t", 1,
		formatFlagUsage("Number of worker threads."))
	RootCmd.PersistentFlags().BoolP("quiet", "q", false,
		formatFlagUsage("Suppress progress and summary logging."))
	RootCmd.PersistentFlags().String("log", "",
		formatFlagUsage("Also write logs to this file."))
	RootCmd.PersistentFlags().String("config", "",
		formatFlagUsage(`TOML file of flag defaults (default "$HOME/.rcmatch.toml" if present).`))

	RootCmd.PersistentFlags().Float64P("alpha", "a", 0.10,
		formatFlagUsage("Length-ratio tolerance; pairs with a shorter/longer ratio below 1-alpha are dropped."))
	RootCmd.PersistentFlags().Float64P("beta", "b", 0.90,
		formatFlagUsage("Minimum fractional span coverage required for an overlap to be strong."))
	RootCmd.PersistentFlags().IntP("kmer-len", "k", 15,
		formatFlagUsage("K-mer length, 1 <= k <= 32."))
	RootCmd.PersistentFlags().IntP("window-len", "w", 5,
		formatFlagUsage("Minimizer window length, w >= 1."))
	RootCmd.PersistentFlags().Float64P("filter-freq", "f", 0.0002,
		formatFlagUsage("Fraction of most-frequent distinct k-mer values excluded from matching."))
	RootCmd.Flags().BoolP("version", "v", false,
		formatFlagUsage("Print the version and exit."))

	RootCmd.SetUsageTemplate(usageTemplate("[flags] <reads path>"))

	RootCmd.AddCommand(statsCmd)
}

func formatFlagUsage(msg string) string {
	return msg
}

func usageTemplate(s string) string {
	return fmt.Sprintf(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  %s {{if .HasAvailableSubCommands}}<command>{{end}}{{end}}

%s

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{if .HasAvailableSubCommands}}
Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}
{{end}}
`, s, s)
}
