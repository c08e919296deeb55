package rendiconto

import (
	"errors"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "thousands and decimals", in: "-1.211,88 €", want: -1211.88},
		{name: "positive with symbol", in: "824,32€", want: 824.32},
		{name: "no symbol", in: "1.000,00", want: 1000},
		{name: "non-breaking space", in: "-824,32 €", want: -824.32},
		{name: "narrow non-breaking space", in: "1 200,50", want: 1200.50},
		{name: "plain integer", in: "42", want: 42},
		{name: "empty", in: "", wantErr: true},
		{name: "symbol only", in: "€", wantErr: true},
		{name: "words", in: "n.d.", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %s, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
			}
			if !got.Equal(EUR(tc.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "plain integer", in: "10", want: 10},
		{name: "thousands separator", in: "1.000", want: 1000},
		{name: "thousands and decimals", in: "1.234,5", want: 1234.5},
		{name: "decimal comma", in: "1,5", want: 1.5},
		{name: "surrounding space", in: " 25 ", want: 25},
		{name: "empty", in: "", wantErr: true},
		{name: "words", in: "dieci", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseQuantity(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseQuantity(%q) = %s, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuantity(%q) unexpected error: %v", tc.in, err)
			}
			if !got.Equal(Q(tc.want)) {
				t.Errorf("ParseQuantity(%q) = %s, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		in   string
		want Kind
	}{
		{"Acquisto titoli", KindBuy},
		{"acquisto titoli", KindBuy},
		{" Vendita titoli ", KindSell},
		{"Accredito dividendi", KindDividend},
		{"Competenze", KindFee},
		{"Imposta", KindTax},
		{"Giroconto", KindUnclassified},
		{"", KindUnclassified},
	}
	for _, tc := range testCases {
		if got := ParseKind(tc.in); got != tc.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeRecord(t *testing.T) {
	testCases := []struct {
		name    string
		rec     Record
		want    Event
		wantErr bool
	}{
		{
			name: "buy",
			rec: Record{
				FieldDate:     "01/01/2024",
				FieldKind:     "Acquisto titoli",
				FieldAsset:    " eni ",
				FieldQuantity: "10",
				FieldAmount:   "-1.000,00 €",
			},
			want: Event{
				Kind:     KindBuy,
				Asset:    "ENI",
				Quantity: Q(10),
				Amount:   EUR(-1000),
				Date:     NewDate(2024, time.January, 1),
			},
		},
		{
			name: "buy with thousands quantity",
			rec: Record{
				FieldDate:     "01/01/2024",
				FieldKind:     "Acquisto titoli",
				FieldAsset:    "ENI",
				FieldQuantity: "1.000",
				FieldAmount:   "-14.000,00 €",
			},
			want: Event{
				Kind:     KindBuy,
				Asset:    "ENI",
				Quantity: Q(1000),
				Amount:   EUR(-14000),
				Date:     NewDate(2024, time.January, 1),
			},
		},
		{
			name: "dividend without asset",
			rec: Record{
				FieldDate:   "05/03/2024",
				FieldKind:   "Accredito dividendi",
				FieldAmount: "12,50",
			},
			want: Event{
				Kind:   KindDividend,
				Amount: EUR(12.50),
				Date:   NewDate(2024, time.March, 5),
			},
		},
		{
			name: "unclassified passes through",
			rec: Record{
				FieldDate: "05/03/2024",
				FieldKind: "Giroconto",
			},
			want: Event{
				Kind: KindUnclassified,
				Date: NewDate(2024, time.March, 5),
			},
		},
		{
			name: "malformed date is not an error",
			rec: Record{
				FieldDate:     "zz/03/2024",
				FieldKind:     "Acquisto titoli",
				FieldAsset:    "ENI",
				FieldQuantity: "5",
				FieldAmount:   "-100,00",
			},
			want: Event{
				Kind:     KindBuy,
				Asset:    "ENI",
				Quantity: Q(5),
				Amount:   EUR(-100),
			},
		},
		{
			name: "buy without asset",
			rec: Record{
				FieldDate:     "01/01/2024",
				FieldKind:     "Acquisto titoli",
				FieldQuantity: "10",
				FieldAmount:   "-100,00",
			},
			wantErr: true,
		},
		{
			name: "sell with non-numeric quantity",
			rec: Record{
				FieldDate:     "01/01/2024",
				FieldKind:     "Vendita titoli",
				FieldAsset:    "ENI",
				FieldQuantity: "dieci",
				FieldAmount:   "100,00",
			},
			wantErr: true,
		},
		{
			name: "fee with unparsable amount",
			rec: Record{
				FieldDate:   "01/01/2024",
				FieldKind:   "Competenze",
				FieldAmount: "",
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeRecord(tc.rec)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NormalizeRecord() = %+v, want error", got)
				}
				var malformed *MalformedRecordError
				if !errors.As(err, &malformed) {
					t.Errorf("error %v is not a MalformedRecordError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeRecord() unexpected error: %v", err)
			}
			if got.Kind != tc.want.Kind || got.Asset != tc.want.Asset || got.Date != tc.want.Date {
				t.Errorf("NormalizeRecord() = %+v, want %+v", got, tc.want)
			}
			if !got.Quantity.Equal(tc.want.Quantity) {
				t.Errorf("Quantity = %s, want %s", got.Quantity, tc.want.Quantity)
			}
			if !got.Amount.value.Equal(tc.want.Amount.value) {
				t.Errorf("Amount = %s, want %s", got.Amount, tc.want.Amount)
			}
		})
	}
}
