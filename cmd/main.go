// Package cmd holds the rdc subcommands.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/rendilab/rendiconto"
	"github.com/rendilab/rendiconto/fineco"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&jsonCmd{}, "reports")
	c.Register(&chartCmd{}, "charts")
	c.Register(&assistCmd{}, "assistant")
}

// loadAnalysis reads and analyzes the movimenti export at path.
func loadAnalysis(path string) (*rendiconto.Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open statement %q: %w", path, err)
	}
	defer f.Close()

	events, skipped, err := fineco.ReadEvents(f)
	if err != nil {
		return nil, fmt.Errorf("could not read statement %q: %w", path, err)
	}
	if skipped > 0 {
		log.Printf("skipped %d malformed row(s) in %s", skipped, path)
	}
	return rendiconto.Analyze(events), nil
}
