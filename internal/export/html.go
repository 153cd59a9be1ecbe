package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/noah-isme/proposal-api/internal/pricing"
)

//go:embed templates/proposal.html
var templateFS embed.FS

var proposalTmpl = template.Must(template.ParseFS(templateFS, "templates/proposal.html"))

// htmlContext is the data handed to the proposal template.
type htmlContext struct {
	Proposal pricing.Document
	Subtotal string
	Tax      string
	Total    string
}

// RenderHTML writes the proposal and its computed totals as an HTML document.
func RenderHTML(w io.Writer, doc pricing.Document, totals pricing.Totals) error {
	ctx := htmlContext{
		Proposal: doc,
		Subtotal: totals.Subtotal.StringFixed(2),
		Tax:      totals.Tax.StringFixed(2),
		Total:    totals.Total.StringFixed(2),
	}
	if err := proposalTmpl.Execute(w, ctx); err != nil {
		return fmt.Errorf("render proposal html: %w", err)
	}
	return nil
}
