package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pasc-check",
	Short: "Type-check a Pascal-family AST",
	Long: `pasc-check drives the semantic analyser over a typed AST: symbol
resolution, type compatibility, and insertion of explicit
TypeCast/RangeCheck/RangeReduce/Trampoline nodes. Constant expressions
are not folded.

It does not parse source text: the lexer and parser that produce the AST
this tool consumes are a separate, external component. This binary exists
to exercise the analyser end to end and to print its diagnostics in the
single-pass compiler format.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "accepted but ignored; output is the same without it")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
