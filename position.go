package rendiconto

import "encoding/json"

// Position is the weighted-average-cost holding of a single asset.
//
// Invariants: Quantity never goes negative, and a zero Quantity implies a
// zero AverageCost.
type Position struct {
	Asset       string
	Quantity    Quantity
	AverageCost Money // cost per unit of the currently held quantity
}

// Invested is the cost basis of the whole position (quantity x average cost).
func (p Position) Invested() Money { return p.AverageCost.Mul(p.Quantity) }

// MarshalJSON exposes the derived invested value alongside the stored fields.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Asset       string   `json:"asset"`
		Quantity    Quantity `json:"quantity"`
		AverageCost Money    `json:"averageCost"`
		Invested    Money    `json:"invested"`
	}{p.Asset, p.Quantity, p.AverageCost, p.Invested()})
}

// acquire folds a purchase into the weighted average:
// the new average is (held cost + purchase cost) / new quantity.
func (p *Position) acquire(qty Quantity, cost Money) {
	total := p.Invested().Add(cost)
	p.Quantity = p.Quantity.Add(qty)
	p.AverageCost = total.Div(p.Quantity)
}

// dispose reduces the position by qty. The average cost is unchanged while
// shares remain; it resets to zero when the position fully closes.
func (p *Position) dispose(qty Quantity) {
	p.Quantity = p.Quantity.Sub(qty)
	if !p.Quantity.IsPositive() {
		p.Quantity = Q(0)
		p.AverageCost = Money{}
	}
}

// ClosedPosition reports one sell event against an open position. Partial
// sells of the same asset are reported as separate rows, never merged;
// callers needing per-asset totals fold the list themselves.
type ClosedPosition struct {
	Asset     string   `json:"asset"`
	Quantity  Quantity `json:"quantity"`
	CostBasis Money    `json:"costBasis"` // pre-transition average cost x quantity sold
	Proceeds  Money    `json:"proceeds"`
	PnL       Money    `json:"pnl"` // proceeds - cost basis
	FirstBuy  Date     `json:"firstBuy,omitzero"`
	Sold      Date     `json:"sold,omitzero"`
}

// HoldingDays returns the calendar days between the first acquisition of the
// open lot sequence and the sell. It returns ok=false when either date is
// unknown.
func (c ClosedPosition) HoldingDays() (days int, ok bool) {
	return c.FirstBuy.DaysUntil(c.Sold)
}

// Win reports whether this closed position counts as a win (pnl >= 0).
func (c ClosedPosition) Win() bool { return !c.PnL.IsNegative() }
