package pricing

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Meta carries presentation fields the composer passes through untouched.
type Meta struct {
	Title       string `json:"title,omitempty"`
	ProposalID  string `json:"proposal_id,omitempty"`
	Date        string `json:"date,omitempty"`
	LogoDataURL string `json:"logo_data_url,omitempty"`
}

// Entry is a single priced row within a section, either a line item or an
// add-on. Code is resolved against the catalog; UnitPrice and Taxable are
// fallbacks used only when the code does not resolve.
type Entry struct {
	Code        string           `json:"code"`
	Description string           `json:"description,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	Taxable     bool             `json:"taxable,omitempty"`
}

// Qty returns the entry quantity, defaulting to 1 when absent. An explicit
// zero quantity stays zero.
func (e Entry) Qty() decimal.Decimal {
	if e.Quantity == nil {
		return decimal.NewFromInt(1)
	}
	return *e.Quantity
}

// Section groups line items with their add-ons. For composition the effective
// entry list is LineItems followed by AddOns.
type Section struct {
	Title     string  `json:"title,omitempty"`
	LineItems []Entry `json:"line_items,omitempty"`
	AddOns    []Entry `json:"add_ons,omitempty"`
}

// Document is the proposal being priced. Everything outside Sections is opaque
// to the composer and only consumed by the renderers.
type Document struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Meta     Meta      `json:"meta,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

// DisplayTitle picks the best available title for rendering.
func (d Document) DisplayTitle() string {
	if d.Meta.Title != "" {
		return d.Meta.Title
	}
	if d.Name != "" {
		return d.Name
	}
	return "Proposal"
}

// Totals is the three-field output of composition. All fields are rounded to
// two decimal places before they land here.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// MarshalJSON emits each field as a JSON number with exactly two fractional
// digits, so 696.90 stays 696.90 on the wire.
func (t Totals) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"subtotal":%s,"tax":%s,"total":%s}`,
		t.Subtotal.StringFixed(2), t.Tax.StringFixed(2), t.Total.StringFixed(2))), nil
}

// UnmarshalJSON accepts the wire shape produced by MarshalJSON.
func (t *Totals) UnmarshalJSON(data []byte) error {
	var raw struct {
		Subtotal decimal.Decimal `json:"subtotal"`
		Tax      decimal.Decimal `json:"tax"`
		Total    decimal.Decimal `json:"total"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Subtotal = raw.Subtotal
	t.Tax = raw.Tax
	t.Total = raw.Total
	return nil
}
