package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/rendilab/rendiconto/renderer"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	outDir string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write the analysis charts as PNG files" }
func (*chartCmd) Usage() string {
	return `rdc chart [-o <dir>] <movimenti.csv>

  Writes equity.png (equity/invested/pool time series), pnl.png (realized
  P&L per event) and allocation.png (open positions at cost).
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outDir, "o", ".", "directory to write the PNG files into")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to the movimenti export.")
		return subcommands.ExitUsageError
	}

	analysis, err := loadAnalysis(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	charts := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"equity.png", func() ([]byte, error) { return renderer.EquityChart(analysis.EquityHistory) }},
		{"pnl.png", func() ([]byte, error) { return renderer.PnLChart(analysis.PnLHistory) }},
		{"allocation.png", func() ([]byte, error) { return renderer.AllocationChart(analysis.OpenPositions) }},
	}

	status := subcommands.ExitSuccess
	for _, ch := range charts {
		png, err := ch.render()
		if err != nil {
			// A statement with no sells or no open positions cannot fill
			// every chart; report and keep going.
			log.Printf("skipping %s: %v", ch.name, err)
			continue
		}
		path := filepath.Join(c.outDir, ch.name)
		if err := os.WriteFile(path, png, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Println("wrote", path)
	}
	return status
}
