package rendiconto

// Summary is the at-a-glance result of a statement analysis.
type Summary struct {
	RealizedPnL Money   `json:"realizedPnL"`
	Dividends   Money   `json:"dividendsReceived"`
	Commissions Money   `json:"commissions"`
	Taxes       Money   `json:"taxes"`
	NetPnL      Money   `json:"netPnL"` // realized + dividends - commissions - taxes
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     Percent `json:"winRate"`
}

// Analysis bundles everything a renderer needs from one analysis run.
type Analysis struct {
	Summary         Summary          `json:"summary"`
	OpenPositions   []Position       `json:"openPositions"`
	ClosedPositions []ClosedPosition `json:"closedPositions"`
	PnLHistory      []PnLEntry       `json:"pnlHistory"`
	EquityHistory   []EquitySnapshot `json:"equityHistory"`
	Anomalies       int              `json:"anomalies,omitempty"`
}

// NewSummary folds the final ledger state into summary totals.
func NewSummary(l *Ledger) Summary {
	s := Summary{
		RealizedPnL: l.RealizedPnL(),
		Dividends:   l.Dividends(),
		Commissions: l.Commissions(),
		Taxes:       l.Taxes(),
	}
	s.NetPnL = s.RealizedPnL.Add(s.Dividends).Sub(s.Commissions).Sub(s.Taxes)
	for _, c := range l.ClosedPositions() {
		if c.Win() {
			s.Wins++
		} else {
			s.Losses++
		}
	}
	if total := s.Wins + s.Losses; total > 0 {
		s.WinRate = Percent(float64(s.Wins) / float64(total))
	}
	return s
}

// Analyze runs the ledger reconstruction over events, in order, and folds
// the result. Each call builds its own ledger, so concurrent analyses of
// different statements are independent.
func Analyze(events []Event) *Analysis {
	l := NewLedger()
	for _, e := range events {
		l.Process(e)
	}

	a := &Analysis{
		Summary:         NewSummary(l),
		OpenPositions:   make([]Position, 0),
		ClosedPositions: l.ClosedPositions(),
		PnLHistory:      l.PnLHistory(),
		EquityHistory:   l.EquityHistory(),
		Anomalies:       l.Anomalies(),
	}
	for pos := range l.Positions() {
		a.OpenPositions = append(a.OpenPositions, pos)
	}
	return a
}
