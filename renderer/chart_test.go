package renderer

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestEquityChart(t *testing.T) {
	a := sampleAnalysis(t)
	png, err := EquityChart(a.EquityHistory)
	if err != nil {
		t.Fatalf("EquityChart() failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("EquityChart() did not produce a PNG")
	}
}

func TestEquityChart_NotEnoughPoints(t *testing.T) {
	if _, err := EquityChart(nil); err == nil {
		t.Error("EquityChart(nil) should fail")
	}
}

func TestPnLChart(t *testing.T) {
	a := sampleAnalysis(t)
	png, err := PnLChart(a.PnLHistory)
	if err != nil {
		t.Fatalf("PnLChart() failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("PnLChart() did not produce a PNG")
	}
}

func TestAllocationChart(t *testing.T) {
	a := sampleAnalysis(t)
	png, err := AllocationChart(a.OpenPositions)
	if err != nil {
		t.Fatalf("AllocationChart() failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("AllocationChart() did not produce a PNG")
	}
}
