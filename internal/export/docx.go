package export

import (
	"bytes"
	"fmt"

	docx "github.com/fumiama/go-docx"

	"github.com/noah-isme/proposal-api/internal/pricing"
)

// DOCXContentType is the MIME type for generated Word documents.
const DOCXContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// RenderDOCX generates a Word document for the proposal and its totals.
func RenderDOCX(doc pricing.Document, totals pricing.Totals) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText(doc.DisplayTitle()).Size("32").Bold()

	if doc.Meta.ProposalID != "" || doc.Meta.Date != "" {
		p := w.AddParagraph()
		if doc.Meta.ProposalID != "" {
			p.AddText(fmt.Sprintf("Proposal ID: %s    ", doc.Meta.ProposalID)).Bold()
		}
		if doc.Meta.Date != "" {
			p.AddText(fmt.Sprintf("Date: %s", doc.Meta.Date))
		}
	}
	if doc.Notes != "" {
		w.AddParagraph().AddText(doc.Notes)
	}

	for _, sec := range doc.Sections {
		title := sec.Title
		if title == "" {
			title = "Section"
		}
		w.AddParagraph().AddText(title).Size("28").Bold()
		for _, li := range sec.LineItems {
			desc := li.Description
			if desc == "" {
				desc = li.Code
			}
			w.AddParagraph().AddText(fmt.Sprintf("- %s (x%s)", desc, li.Qty()))
		}
		for _, ao := range sec.AddOns {
			w.AddParagraph().AddText(fmt.Sprintf("* Add-on %s (x%s)", ao.Code, ao.Qty()))
		}
	}

	w.AddParagraph().AddText("")
	w.AddParagraph().AddText(fmt.Sprintf("Subtotal: $%s", totals.Subtotal.StringFixed(2)))
	w.AddParagraph().AddText(fmt.Sprintf("Tax: $%s", totals.Tax.StringFixed(2)))
	w.AddParagraph().AddText(fmt.Sprintf("Total: $%s", totals.Total.StringFixed(2))).Bold()

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}
