package proposal_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/proposal-api/internal/catalog"
	"github.com/noah-isme/proposal-api/internal/proposal"
)

func newSeedHandler(t *testing.T) *proposal.Handler {
	t.Helper()
	return proposal.NewHandler(proposal.HandlerConfig{Service: newSeedService(t)})
}

func postProposal(t *testing.T, handler http.HandlerFunc, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func defaultProposalBytes(t *testing.T) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "seeds", "default_proposal.json"))
	require.NoError(t, err)
	return raw
}

func TestComposeHandler(t *testing.T) {
	handler := newSeedHandler(t)
	rec := postProposal(t, handler.Compose, "/api/v1/compose", defaultProposalBytes(t))
	require.Equal(t, http.StatusOK, rec.Code)

	// The totals must keep two fractional digits on the wire.
	body := rec.Body.String()
	require.Contains(t, body, `"subtotal":696.90`)
	require.Contains(t, body, `"tax":9.35`)
	require.Contains(t, body, `"total":706.25`)

	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var resp map[string]json.Number
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, "696.90", resp["subtotal"].String())
}

func TestComposeHandlerMalformedBody(t *testing.T) {
	handler := newSeedHandler(t)
	rec := postProposal(t, handler.Compose, "/api/v1/compose", []byte(`{"sections": 42}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_PROPOSAL")
}

func TestComposeHandlerUnknownCodes(t *testing.T) {
	handler := newSeedHandler(t)
	payload := []byte(`{"sections": [{"line_items": [{"code": "TYPO-CODE", "quantity": 3}]}]}`)
	rec := postProposal(t, handler.Compose, "/api/v1/compose", payload)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"subtotal":0.00`)
}

func TestComposeHandlerMissingSections(t *testing.T) {
	handler := newSeedHandler(t)
	rec := postProposal(t, handler.Compose, "/api/v1/compose", []byte(`{"id": "empty"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total":0.00`)
}

func TestComposeHandlerCatalogUnavailable(t *testing.T) {
	store, err := catalog.NewStore(catalog.StoreConfig{Path: filepath.Join(t.TempDir(), "absent.json")})
	require.NoError(t, err)
	svc, err := proposal.NewService(proposal.ServiceConfig{Store: store})
	require.NoError(t, err)
	handler := proposal.NewHandler(proposal.HandlerConfig{Service: svc})

	rec := postProposal(t, handler.Compose, "/api/v1/compose", defaultProposalBytes(t))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "CATALOG_UNAVAILABLE")
}

func TestExportHTMLHandler(t *testing.T) {
	handler := newSeedHandler(t)
	rec := postProposal(t, handler.ExportHTML, "/api/v1/export/html", defaultProposalBytes(t))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := strings.ToLower(rec.Body.String())
	require.Contains(t, body, "<html")
	require.Contains(t, rec.Body.String(), "696.90")
	require.Contains(t, rec.Body.String(), "706.25")
	require.Contains(t, rec.Body.String(), "Annual Fire Protection Service Agreement")
}

func TestExportDOCXHandler(t *testing.T) {
	handler := newSeedHandler(t)
	rec := postProposal(t, handler.ExportDOCX, "/api/v1/export/docx", defaultProposalBytes(t))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "proposal.docx")

	payload := rec.Body.Bytes()
	require.Greater(t, len(payload), 2)
	require.Equal(t, []byte("PK"), payload[:2], "docx payload must be a zip archive")
}

func TestAddonsHandler(t *testing.T) {
	handler := newSeedHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/addons", nil)
	rec := httptest.NewRecorder()
	handler.Addons(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []catalog.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 6)
	require.Equal(t, "F-A-ANNUAL", resp.Data[0].Code)
}
