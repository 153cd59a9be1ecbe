package pricing

import (
	"encoding/json"
	"testing"
)

func TestTotalsMarshalFixedDigits(t *testing.T) {
	totals := Totals{
		Subtotal: dec(t, "696.9"),
		Tax:      dec(t, "9.35"),
		Total:    dec(t, "706.25"),
	}
	raw, err := json.Marshal(totals)
	if err != nil {
		t.Fatalf("marshal totals: %v", err)
	}
	want := `{"subtotal":696.90,"tax":9.35,"total":706.25}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}

func TestTotalsRoundTrip(t *testing.T) {
	totals := Totals{Subtotal: dec(t, "10.00"), Tax: dec(t, "0.88"), Total: dec(t, "10.88")}
	raw, err := json.Marshal(totals)
	if err != nil {
		t.Fatalf("marshal totals: %v", err)
	}
	var decoded Totals
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal totals: %v", err)
	}
	if !decoded.Total.Equal(totals.Total) {
		t.Fatalf("expected total %s, got %s", totals.Total, decoded.Total)
	}
}

func TestDocumentDisplayTitle(t *testing.T) {
	cases := []struct {
		doc  Document
		want string
	}{
		{Document{Meta: Meta{Title: "Annual Service"}, Name: "fallback"}, "Annual Service"},
		{Document{Name: "fallback"}, "fallback"},
		{Document{}, "Proposal"},
	}
	for _, c := range cases {
		if got := c.doc.DisplayTitle(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestEntryQuantityDecoding(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"code":"X","quantity":2.5}`), &e); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if e.Qty().String() != "2.5" {
		t.Fatalf("expected quantity 2.5, got %s", e.Qty())
	}

	var absent Entry
	if err := json.Unmarshal([]byte(`{"code":"X"}`), &absent); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if absent.Qty().String() != "1" {
		t.Fatalf("expected default quantity 1, got %s", absent.Qty())
	}
}
