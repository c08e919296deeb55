package agent

import (
	"context"

	"google.golang.org/genai"

	"github.com/rendilab/rendiconto"
	"github.com/rendilab/rendiconto/renderer"
)

const model = "gemini-2.5-pro"

// NewAnalyst builds the expert that knows one analyzed statement. Its tools
// return the markdown renderings of the analysis, so the model reads
// exactly what the user would see in a report.
func NewAnalyst(a *rendiconto.Analysis) *Expert {
	lib := []Function{
		markdownTool("Summary",
			"Summary returns the portfolio totals: realized P&L, dividends, commissions, taxes, net P&L and win rate.",
			func() string { return renderer.SummaryMarkdown(a.Summary) }),
		markdownTool("OpenPositions",
			"OpenPositions returns the currently open positions with quantity, average cost, and invested value at cost.",
			func() string { return renderer.OpenPositionsMarkdown(a.OpenPositions) }),
		markdownTool("ClosedPositions",
			"ClosedPositions returns every closed trade with cost basis, proceeds, realized P&L and holding period in days. One row per sell event, partial sells are separate rows.",
			func() string { return renderer.ClosedPositionsMarkdown(a.ClosedPositions) }),
		markdownTool("EquityHistory",
			"EquityHistory returns the per-event time series of equity (open positions at cost), externally invested capital, and the pool of realized profit.",
			func() string { return renderer.EquityHistoryMarkdown(a.EquityHistory) }),
	}

	return &Expert{
		Name: "Analyst",
		Description: `The Analyst has already reconstructed the user's brokerage statement
		into positions, realized P&L and capital history. Ask the Analyst for any figure
		about the user's portfolio.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the analyst of the user's brokerage statement. The statement has
			already been processed; use the tools to read the summary, the open and
			closed positions and the capital history, and answer from those figures only.
			Open positions are valued at cost, never at market price: say so when the
			user asks about current value. Amounts are in euro.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// markdownTool wraps a parameterless markdown rendering as a callable tool.
func markdownTool(name, description string, render func() string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table.",
			},
		},
		Run: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: name,
				Response: map[string]any{
					"output": render(),
				},
			}
		},
	}
}
