package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/proposal-api/internal/catalog"
)

// DefaultTaxRate is the flat sales tax applied to taxable lines when no rate
// is configured.
var DefaultTaxRate = decimal.RequireFromString("0.0875")

// resolution is the outcome of matching an entry against the catalog. An
// unresolved entry contributes nothing to the totals.
type resolution struct {
	unitPrice decimal.Decimal
	taxable   bool
	resolved  bool
}

// resolve finds the entry's price and taxability. Catalog wins over inline
// values; a duplicate code takes the first catalog occurrence. An entry with no
// catalog match falls back to its own unit_price and taxable flags, and stays
// unresolved when it has no inline price either.
func resolve(e Entry, items []catalog.Item) resolution {
	for _, item := range items {
		if item.Code == e.Code {
			return resolution{unitPrice: item.UnitPrice, taxable: item.Taxable, resolved: true}
		}
	}
	if e.UnitPrice != nil {
		return resolution{unitPrice: *e.UnitPrice, taxable: e.Taxable, resolved: true}
	}
	return resolution{}
}

// Compose walks the document in order, resolves every line item and add-on
// against the catalog, and accumulates the totals. Each line amount is rounded
// to cents before accumulation, and tax is rounded per line as well, so the
// subtotal and tax always match what the individual lines show. Unresolvable
// entries are skipped silently.
func Compose(doc Document, items []catalog.Item, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for _, sec := range doc.Sections {
		entries := make([]Entry, 0, len(sec.LineItems)+len(sec.AddOns))
		entries = append(entries, sec.LineItems...)
		entries = append(entries, sec.AddOns...)
		for _, e := range entries {
			res := resolve(e, items)
			if !res.resolved {
				continue
			}
			line := res.unitPrice.Mul(e.Qty()).Round(2)
			subtotal = subtotal.Add(line)
			if res.taxable {
				taxTotal = taxTotal.Add(line.Mul(taxRate).Round(2))
			}
		}
	}
	return Totals{
		Subtotal: subtotal.Round(2),
		Tax:      taxTotal.Round(2),
		Total:    subtotal.Add(taxTotal).Round(2),
	}
}

// LineTotal computes a single line's amount including tax, rounded to cents.
// Used by the seeder demo to price catalog items at their default quantities.
func LineTotal(unitPrice, quantity decimal.Decimal, taxable bool, taxRate decimal.Decimal) decimal.Decimal {
	line := unitPrice.Mul(quantity).Round(2)
	if !taxable {
		return line
	}
	return line.Add(line.Mul(taxRate).Round(2)).Round(2)
}
