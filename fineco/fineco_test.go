package fineco

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/rendilab/rendiconto"
)

// sample is a movimenti export the way Excel writes it on an Italian locale.
const sample = `DATA;TIPOLOGIA;DESCRIZIONE;QTA';IMPORTO
02/01/2024;Acquisto titoli;Eni Spa;10;-1.000,00 €
;;;;
15/03/2024;Accredito dividendi;Eni Spa;;40,00 €
01/06/2024;Vendita titoli;Eni Spa;10;1.200,00 €
01/06/2024;Competenze;;;-2,95 €
01/06/2024;Imposta;;;-52,00 €
05/06/2024;Giroconto;;;
bad row only
`

// encode converts the UTF-8 sample to Windows-1252 bytes, as on disk.
func encode(t *testing.T, s string) []byte {
	t.Helper()
	out, _, err := transform.Bytes(charmap.Windows1252.NewEncoder(), []byte(s))
	if err != nil {
		t.Fatalf("could not encode sample: %v", err)
	}
	return out
}

func TestRead(t *testing.T) {
	records, err := Read(bytes.NewReader(encode(t, sample)))
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	// The blank row is dropped, the bad row is kept for the normalizer to judge.
	if len(records) != 7 {
		t.Fatalf("Read() = %d records, want 7", len(records))
	}
	first := records[0]
	if first[rendiconto.FieldAsset] != "Eni Spa" {
		t.Errorf("asset = %q, want %q", first[rendiconto.FieldAsset], "Eni Spa")
	}
	if first[rendiconto.FieldAmount] != "-1.000,00 €" {
		t.Errorf("amount = %q: euro sign lost in decoding", first[rendiconto.FieldAmount])
	}
}

func TestRead_CommaDelimiter(t *testing.T) {
	csvText := "DATA,TIPOLOGIA,DESCRIZIONE,QTA',IMPORTO\n02/01/2024,Acquisto titoli,Eni Spa,10,\"-1.000,00\"\n"
	records, err := Read(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Read() = %d records, want 1", len(records))
	}
	if records[0][rendiconto.FieldQuantity] != "10" {
		t.Errorf("quantity = %q, want 10", records[0][rendiconto.FieldQuantity])
	}
}

func TestReadEvents(t *testing.T) {
	events, skipped, err := ReadEvents(bytes.NewReader(encode(t, sample)))
	if err != nil {
		t.Fatalf("ReadEvents() failed: %v", err)
	}
	// The "bad row only" line has no amount and classifies unclassified, so
	// it passes through; nothing in the sample is a position event missing
	// its fields.
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(events) != 7 {
		t.Fatalf("ReadEvents() = %d events, want 7", len(events))
	}

	a := rendiconto.Analyze(events)
	if !a.Summary.RealizedPnL.Equal(rendiconto.EUR(200)) {
		t.Errorf("RealizedPnL = %s, want 200", a.Summary.RealizedPnL)
	}
	if !a.Summary.Dividends.Equal(rendiconto.EUR(40)) {
		t.Errorf("Dividends = %s, want 40", a.Summary.Dividends)
	}
	if !a.Summary.Commissions.Equal(rendiconto.EUR(2.95)) {
		t.Errorf("Commissions = %s, want 2.95", a.Summary.Commissions)
	}
	if !a.Summary.Taxes.Equal(rendiconto.EUR(52)) {
		t.Errorf("Taxes = %s, want 52", a.Summary.Taxes)
	}
	if days, ok := a.ClosedPositions[0].HoldingDays(); !ok || days != 151 {
		t.Errorf("HoldingDays = %d,%v, want 151,true", days, ok)
	}
	if len(a.EquityHistory) != len(events) {
		t.Errorf("history = %d rows, want one per event (%d)", len(a.EquityHistory), len(events))
	}
}

func TestReadEvents_SkipsMalformedRows(t *testing.T) {
	csvText := "DATA;TIPOLOGIA;DESCRIZIONE;QTA';IMPORTO\n" +
		"02/01/2024;Acquisto titoli;;10;-100,00\n" + // missing asset
		"02/01/2024;Acquisto titoli;Eni Spa;dieci;-100,00\n" + // bad quantity
		"03/01/2024;Acquisto titoli;Eni Spa;10;-100,00\n"
	events, skipped, err := ReadEvents(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("ReadEvents() failed: %v", err)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if len(events) != 1 {
		t.Errorf("events = %d, want 1", len(events))
	}
}
