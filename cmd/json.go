package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// jsonCmd holds the flags for the 'json' subcommand.
type jsonCmd struct {
	compact bool
}

func (*jsonCmd) Name() string     { return "json" }
func (*jsonCmd) Synopsis() string { return "print the full analysis result as JSON" }
func (*jsonCmd) Usage() string {
	return `rdc json [-c] <movimenti.csv>

  Prints the analysis result (summary, open and closed positions, pnl and
  equity histories) as JSON on stdout, for external renderers.
`
}

func (c *jsonCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.compact, "c", false, "compact output instead of indented")
}

func (c *jsonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to the movimenti export.")
		return subcommands.ExitUsageError
	}

	analysis, err := loadAnalysis(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	if !c.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(analysis); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding analysis: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
