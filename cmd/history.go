package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/rendilab/rendiconto/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	raw bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "print the equity/invested/pool history" }
func (*historyCmd) Usage() string {
	return `rdc history [-raw] <movimenti.csv>

  Prints the per-event time series: equity (open positions at cost),
  externally invested capital, and the pool of realized profit.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to the movimenti export.")
		return subcommands.ExitUsageError
	}

	analysis, err := loadAnalysis(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	doc := renderer.EquityHistoryMarkdown(analysis.EquityHistory)
	if c.raw {
		fmt.Println(doc)
		return subcommands.ExitSuccess
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating terminal renderer: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering history: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}
