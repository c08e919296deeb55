// Package fineco reads the "movimenti" CSV export of an Italian brokerage
// account and turns it into canonical statement records.
//
// The export is what Excel produces on an Italian locale: Windows-1252
// encoded, semicolon (sometimes comma) separated, amounts like
// "-1.211,88 €" and dates like "02/01/2024". Everything broker-specific
// stops here; the analysis itself works on rendiconto.Event values.
package fineco

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/rendilab/rendiconto"
)

// Read tokenizes a movimenti export into header-keyed records.
//
// The delimiter is sniffed on the header line (";" wins over ","), header
// names are trimmed and upper-cased, and short rows are padded: stray or
// truncated lines are a fact of these exports and must not abort a run.
func Read(r io.Reader) ([]rendiconto.Record, error) {
	decoded, err := io.ReadAll(transform.NewReader(r, charmap.Windows1252.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("could not decode export: %w", err)
	}
	text := string(decoded)

	header, _, _ := strings.Cut(text, "\n")
	delimiter := ','
	if strings.Contains(header, ";") {
		delimiter = ';'
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1 // rows are ragged, tolerate them
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	var records []rendiconto.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read row: %w", err)
		}
		if blank(row) {
			continue
		}
		rec := make(rendiconto.Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ReadEvents reads a movimenti export and normalizes it into canonical
// events, in statement order. Malformed rows are skipped, not fatal;
// the returned count says how many were.
func ReadEvents(r io.Reader) (events []rendiconto.Event, skipped int, err error) {
	records, err := Read(r)
	if err != nil {
		return nil, 0, err
	}
	events = make([]rendiconto.Event, 0, len(records))
	for _, rec := range records {
		e, err := rendiconto.NormalizeRecord(rec)
		if err != nil {
			skipped++
			continue
		}
		events = append(events, e)
	}
	return events, skipped, nil
}
