package rendiconto

import (
	"fmt"
	"strings"
)

// Kind is a typed string identifying the nature of a statement movement.
type Kind string

const (
	KindBuy          Kind = "buy"
	KindSell         Kind = "sell"
	KindDividend     Kind = "dividend"
	KindFee          Kind = "fee"
	KindTax          Kind = "tax"
	KindUnclassified Kind = "unclassified"
)

// Canonical field names of a normalized statement record.
const (
	FieldDate     = "DATA"
	FieldKind     = "TIPOLOGIA"
	FieldAsset    = "DESCRIZIONE"
	FieldQuantity = "QTA'"
	FieldAmount   = "IMPORTO"
)

// Record is one tokenized statement row, keyed by normalized
// (trimmed, upper-cased) header name.
type Record map[string]string

// ParseKind classifies a statement category label. The match is
// case-insensitive on the trimmed label: broker exports are not consistent
// about casing. Unknown labels classify as KindUnclassified, which the
// ledger ignores while still advancing the snapshot history.
func ParseKind(label string) Kind {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "acquisto titoli":
		return KindBuy
	case "vendita titoli":
		return KindSell
	case "accredito dividendi":
		return KindDividend
	case "competenze":
		return KindFee
	case "imposta":
		return KindTax
	default:
		return KindUnclassified
	}
}

// Event is the canonical form of one statement movement.
//
// Amount follows the statement's sign convention: negative for cash leaving
// the account, positive for cash entering. Asset and Quantity are only
// meaningful for position events (buy, sell).
type Event struct {
	Kind     Kind
	Asset    string
	Quantity Quantity
	Amount   Money
	Date     Date // zero when the statement date is missing or malformed
}

// MalformedRecordError reports a record that cannot be normalized into an
// Event: a missing asset on a position event, or a non-numeric quantity or
// amount where one is required. Per the degradation policy such a record is
// skipped, it never aborts a run.
type MalformedRecordError struct {
	Field string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record field %s: %v", e.Field, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// NormalizeRecord maps a raw tokenized row to a canonical Event.
//
// Position events (buy, sell) require an asset and a positive quantity.
// All classified kinds require a parsable amount. Unclassified rows are
// passed through with whatever parsed, so the history keeps one row per
// input record.
func NormalizeRecord(rec Record) (Event, error) {
	e := Event{
		Kind:  ParseKind(rec[FieldKind]),
		Asset: strings.ToUpper(strings.TrimSpace(rec[FieldAsset])),
		Date:  ParseItalianDate(rec[FieldDate]),
	}

	amount, amountErr := ParseAmount(rec[FieldAmount])
	if e.Kind == KindUnclassified {
		// Tolerated as-is: the engine only advances the history on these.
		e.Amount = amount
		return e, nil
	}
	if amountErr != nil {
		return Event{}, &MalformedRecordError{Field: FieldAmount, Err: amountErr}
	}
	e.Amount = amount

	if e.Kind == KindBuy || e.Kind == KindSell {
		if e.Asset == "" {
			return Event{}, &MalformedRecordError{Field: FieldAsset, Err: fmt.Errorf("missing asset on %s event", e.Kind)}
		}
		qty, err := ParseQuantity(rec[FieldQuantity])
		if err != nil {
			return Event{}, &MalformedRecordError{Field: FieldQuantity, Err: err}
		}
		if !qty.IsPositive() {
			return Event{}, &MalformedRecordError{Field: FieldQuantity, Err: fmt.Errorf("quantity %s is not positive", qty)}
		}
		e.Quantity = qty
	}
	return e, nil
}
