package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rendilab/rendiconto"
)

// EquityChart renders the equity/invested/pool time series as a PNG line
// chart. Snapshots with an unknown date are left out, the series needs at
// least two dated points.
func EquityChart(history []rendiconto.EquitySnapshot) ([]byte, error) {
	var xValues []time.Time
	var equityY, investedY, poolY []float64
	for _, snap := range history {
		if snap.Date.IsZero() {
			continue
		}
		xValues = append(xValues, snap.Date.Time())
		equityY = append(equityY, snap.Equity.AsFloat())
		investedY = append(investedY, snap.Invested.AsFloat())
		poolY = append(poolY, snap.Pool.AsFloat())
	}
	if len(xValues) < 2 {
		return nil, fmt.Errorf("need at least 2 dated snapshots, got %d", len(xValues))
	}

	graph := chart.Chart{
		Title:  "Equity / Invested / Pool",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Equity",
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("38bdf8"),
					StrokeWidth: 2.5,
				},
				XValues: xValues,
				YValues: equityY,
			},
			chart.TimeSeries{
				Name: "Invested",
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("22c55e"),
					StrokeWidth:     2.0,
					StrokeDashArray: []float64{4.0, 4.0},
				},
				XValues: xValues,
				YValues: investedY,
			},
			chart.TimeSeries{
				Name: "Pool",
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("facc15"),
					StrokeWidth: 2.0,
				},
				XValues: xValues,
				YValues: poolY,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// PnLChart renders the per-event realized profit history as a PNG bar
// chart: bar height is the absolute value, green for gains, red for losses.
func PnLChart(history []rendiconto.PnLEntry) ([]byte, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("no realized profit events to chart")
	}

	gain := drawing.ColorFromHex("22c55e")
	loss := drawing.ColorFromHex("ef4444")

	values := make([]chart.Value, 0, len(history))
	for _, e := range history {
		color := gain
		if e.Value.IsNegative() {
			color = loss
		}
		values = append(values, chart.Value{
			Label: e.Date.String(),
			Value: e.Value.Abs().AsFloat(),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	graph := chart.BarChart{
		Title:  "Realized P&L per event",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth: 20,
		Bars:     values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// AllocationChart renders the open-position allocation (by invested cost)
// as a PNG pie chart.
func AllocationChart(positions []rendiconto.Position) ([]byte, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("no open positions to chart")
	}

	values := make([]chart.Value, 0, len(positions))
	for _, p := range positions {
		values = append(values, chart.Value{
			Label: p.Asset,
			Value: p.Invested().AsFloat(),
		})
	}

	graph := chart.PieChart{
		Title:  "Allocation at cost",
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
