// Package renderer turns an analysis result into markdown documents and PNG
// charts. It never computes anything: every figure comes from the
// rendiconto package.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/rendilab/rendiconto"
)

// AnalysisMarkdown renders the full analysis report.
func AnalysisMarkdown(a *rendiconto.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Statement Analysis")
	doc.Table(summaryTable(a.Summary))

	doc.H2("Open Positions")
	if len(a.OpenPositions) == 0 {
		doc.PlainText("No open positions.")
	} else {
		doc.Table(openPositionsTable(a.OpenPositions))
	}

	doc.H2("Closed Positions")
	if len(a.ClosedPositions) == 0 {
		doc.PlainText("No closed positions.")
	} else {
		doc.Table(closedPositionsTable(a.ClosedPositions))
	}

	if a.Anomalies > 0 {
		doc.PlainText(fmt.Sprintf("Note: %d inconsistent position record(s) were tolerated (clamped or treated as cash).", a.Anomalies))
	}
	return doc.String()
}

// SummaryMarkdown renders only the summary totals.
func SummaryMarkdown(s rendiconto.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Summary")
	doc.Table(summaryTable(s))
	return doc.String()
}

func summaryTable(s rendiconto.Summary) md.TableSet {
	winRate := fmt.Sprintf("%d/%d (%s)", s.Wins, s.Wins+s.Losses, s.WinRate)
	return md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Realized P&L", s.RealizedPnL.String()},
			{"Dividends received", s.Dividends.String()},
			{"Commissions", s.Commissions.String()},
			{"Taxes", s.Taxes.String()},
			{"Net P&L", s.NetPnL.String()},
			{"Win rate", winRate},
		},
	}
}

// OpenPositionsMarkdown renders the open positions table.
func OpenPositionsMarkdown(positions []rendiconto.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Open Positions")
	if len(positions) == 0 {
		doc.PlainText("No open positions.")
	} else {
		doc.Table(openPositionsTable(positions))
	}
	return doc.String()
}

func openPositionsTable(positions []rendiconto.Position) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Asset", "Quantity", "Avg Cost", "Invested"},
		Rows:      [][]string{},
	}
	for _, p := range positions {
		table.Rows = append(table.Rows, []string{
			p.Asset,
			p.Quantity.String(),
			p.AverageCost.String(),
			p.Invested().String(),
		})
	}
	return table
}

// ClosedPositionsMarkdown renders the closed positions table, one row per
// sell event.
func ClosedPositionsMarkdown(closed []rendiconto.ClosedPosition) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Closed Positions")
	if len(closed) == 0 {
		doc.PlainText("No closed positions.")
	} else {
		doc.Table(closedPositionsTable(closed))
	}
	return doc.String()
}

func closedPositionsTable(closed []rendiconto.ClosedPosition) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Asset", "Quantity", "Cost Basis", "Proceeds", "P&L", "Holding (days)"},
		Rows:   [][]string{},
	}
	for _, c := range closed {
		holding := "-"
		if days, ok := c.HoldingDays(); ok {
			holding = strconv.Itoa(days)
		}
		table.Rows = append(table.Rows, []string{
			c.Asset,
			c.Quantity.String(),
			c.CostBasis.String(),
			c.Proceeds.String(),
			c.PnL.SignedString(),
			holding,
		})
	}
	return table
}

// EquityHistoryMarkdown renders the equity/invested/pool time series.
func EquityHistoryMarkdown(history []rendiconto.EquitySnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Equity History")
	doc.PlainText("Equity is the cost basis of open positions; invested is external capital at risk; pool is realized profit not yet reinvested.")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Equity", "Invested", "Pool"},
		Rows:      [][]string{},
	}
	for _, snap := range history {
		table.Rows = append(table.Rows, []string{
			snap.Date.String(),
			snap.Equity.String(),
			snap.Invested.String(),
			snap.Pool.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
