package rendiconto

import (
	"iter"
	"maps"
	"slices"
)

// EquitySnapshot is one row of the equity history, appended after every
// processed event in input order.
type EquitySnapshot struct {
	Date     Date  `json:"date,omitzero"`
	Equity   Money `json:"equity"`           // cost basis of all open positions
	Invested Money `json:"investedExternal"` // principal contributed from outside
	Pool     Money `json:"pool"`             // realized profit not yet consumed
}

// PnLEntry is one realized profit-or-loss history row.
type PnLEntry struct {
	Date  Date  `json:"date,omitzero"`
	Value Money `json:"value"`
}

// Ledger reconstructs the portfolio state from an ordered sequence of
// statement events: per-asset weighted-average positions, the running
// accounts, and the funding split between external capital and the pool of
// realized profit.
//
// A Ledger belongs to exactly one analysis run. It is not safe for
// concurrent use; concurrent runs must each construct their own.
type Ledger struct {
	positions map[string]*Position
	firstBuy  map[string]Date

	realized    Money
	dividends   Money
	commissions Money
	taxes       Money

	invested Money // external capital drawn so far
	pool     Money // may go negative when losses exceed realized profit

	closed    []ClosedPosition
	pnl       []PnLEntry
	history   []EquitySnapshot
	anomalies int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		positions: make(map[string]*Position),
		firstBuy:  make(map[string]Date),
	}
}

// settle funds a cash obligation (buy cost, fee, tax): it draws from the
// pool of realized profit first and charges only the shortfall to external
// capital. This is the single place the funding rule lives; every event
// handler that consumes cash goes through it.
//
// Only the positive part of the pool is drawable. A negative pool (losses
// not yet covered) stays negative until later profit credits it back; the
// reconciliation with external capital is lazy, never an eager capital call.
func (l *Ledger) settle(cost Money) {
	draw := l.pool
	if draw.IsNegative() {
		draw = Money{}
	}
	if cost.LessThan(draw) {
		draw = cost
	}
	l.pool = l.pool.Sub(draw)
	l.invested = l.invested.Add(cost.Sub(draw))
}

// position returns the open position for asset, creating it on first use.
func (l *Ledger) position(asset string) *Position {
	pos, ok := l.positions[asset]
	if !ok {
		pos = &Position{Asset: asset}
		l.positions[asset] = pos
	}
	return pos
}

// Process applies one event to the ledger state and appends the equity
// snapshot for it. Events must be fed in statement order.
func (l *Ledger) Process(e Event) {
	switch e.Kind {
	case KindBuy:
		cost := e.Amount.Abs()
		l.settle(cost)
		if _, ok := l.firstBuy[e.Asset]; !ok {
			// First buy since the last full close of this asset.
			l.firstBuy[e.Asset] = e.Date
		}
		l.position(e.Asset).acquire(e.Quantity, cost)

	case KindSell:
		l.sell(e)

	case KindDividend:
		l.dividends = l.dividends.Add(e.Amount)
		l.pool = l.pool.Add(e.Amount)
		l.pnl = append(l.pnl, PnLEntry{Date: e.Date, Value: e.Amount})

	case KindFee:
		cost := e.Amount.Abs()
		l.commissions = l.commissions.Add(cost)
		l.settle(cost)

	case KindTax:
		cost := e.Amount.Abs()
		l.taxes = l.taxes.Add(cost)
		l.settle(cost)

	case KindUnclassified:
		// No account mutation, the snapshot below keeps the history aligned
		// one row per input event.
	}

	l.history = append(l.history, EquitySnapshot{
		Date:     e.Date,
		Equity:   l.Equity(),
		Invested: l.invested,
		Pool:     l.pool,
	})
}

func (l *Ledger) sell(e Event) {
	pos, ok := l.positions[e.Asset]
	if !ok || !pos.Quantity.IsPositive() {
		// Broker data inconsistency: a sale against an asset we never saw
		// bought. The whole amount is realized-pool cash.
		l.anomalies++
		l.pool = l.pool.Add(e.Amount)
		l.pnl = append(l.pnl, PnLEntry{Date: e.Date, Value: e.Amount})
		return
	}

	qty := e.Quantity
	if qty.GreaterThan(pos.Quantity) {
		// Selling more than held: clamp and flag, never go negative.
		qty = pos.Quantity
		l.anomalies++
	}

	costBasis := pos.AverageCost.Mul(qty)
	realized := e.Amount.Sub(costBasis)
	l.realized = l.realized.Add(realized)
	l.pool = l.pool.Add(realized)
	l.pnl = append(l.pnl, PnLEntry{Date: e.Date, Value: realized})

	l.closed = append(l.closed, ClosedPosition{
		Asset:     e.Asset,
		Quantity:  qty,
		CostBasis: costBasis,
		Proceeds:  e.Amount,
		PnL:       realized,
		FirstBuy:  l.firstBuy[e.Asset],
		Sold:      e.Date,
	})

	pos.dispose(qty)
	if pos.Quantity.IsZero() {
		delete(l.positions, e.Asset)
		delete(l.firstBuy, e.Asset)
	}
}

// Equity is the total cost basis of all open positions. It is always
// recomputed from the position table, never tracked independently.
func (l *Ledger) Equity() Money {
	total := EUR(0)
	for _, pos := range l.positions {
		total = total.Add(pos.Invested())
	}
	return total
}

// Positions iterates over the open positions, sorted by asset.
func (l *Ledger) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		assets := slices.Collect(maps.Keys(l.positions))
		slices.Sort(assets)
		for _, asset := range assets {
			if !yield(*l.positions[asset]) {
				return
			}
		}
	}
}

// RealizedPnL is the sum of realized profit and loss over all sell events.
func (l *Ledger) RealizedPnL() Money { return l.realized }

// Dividends is the sum of dividend credits.
func (l *Ledger) Dividends() Money { return l.dividends }

// Commissions is the commission and fee total, as a non-negative magnitude.
func (l *Ledger) Commissions() Money { return l.commissions }

// Taxes is the tax total, as a non-negative magnitude.
func (l *Ledger) Taxes() Money { return l.taxes }

// Invested is the external capital account: principal the owner contributed,
// net of obligations the pool funded.
func (l *Ledger) Invested() Money { return l.invested }

// Pool is the realized profit not yet consumed by purchases or costs.
// It is negative when losses exceed the profit realized so far.
func (l *Ledger) Pool() Money { return l.pool }

// ClosedPositions returns the closed-position reports, one per sell event.
func (l *Ledger) ClosedPositions() []ClosedPosition { return l.closed }

// PnLHistory returns the realized profit rows (sells, dividends and
// untracked-sell cash events), in input order.
func (l *Ledger) PnLHistory() []PnLEntry { return l.pnl }

// EquityHistory returns one snapshot per processed event, in input order.
func (l *Ledger) EquityHistory() []EquitySnapshot { return l.history }

// Anomalies counts tolerated position inconsistencies: sells of untracked
// assets and sell quantities clamped to the held quantity.
func (l *Ledger) Anomalies() int { return l.anomalies }
