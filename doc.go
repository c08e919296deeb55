// Package rendiconto reconstructs portfolio analytics from an Italian
// brokerage transaction export.
//
// The input is an ordered sequence of heterogeneous cash-flow events
// (buys, sells, dividends, fees, taxes). A single-pass [Ledger] maintains
// per-asset weighted-average-cost positions and three interdependent
// running aggregates: the equity held at cost, the external capital the
// owner contributed, and the pool of realized profit not yet reinvested.
// [Analyze] is the one-call entry point; broker-specific tokenization lives
// in the fineco subpackage, rendering in renderer.
//
// Open positions are valued at cost, never at market price.
package rendiconto
