package proposal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/noah-isme/proposal-api/internal/common"
	"github.com/noah-isme/proposal-api/internal/export"
	"github.com/noah-isme/proposal-api/internal/obs"
	"github.com/noah-isme/proposal-api/internal/pricing"
)

// Handler exposes proposal composition and export endpoints.
type Handler struct {
	service *Service
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{service: cfg.Service}
}

// Compose handles POST /api/v1/compose.
func (h *Handler) Compose(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "proposal service not configured", nil)
		return
	}
	doc, err := decodeProposal(r)
	if err != nil {
		obs.CountCompose("invalid")
		h.writeError(w, err)
		return
	}
	totals, err := h.service.Compose(r.Context(), doc)
	if err != nil {
		obs.CountCompose("error")
		h.writeError(w, err)
		return
	}
	obs.CountCompose("ok")
	common.JSON(w, http.StatusOK, totals)
}

// ExportHTML handles POST /api/v1/export/html.
func (h *Handler) ExportHTML(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "proposal service not configured", nil)
		return
	}
	doc, err := decodeProposal(r)
	if err != nil {
		obs.CountExport("html", "invalid")
		h.writeError(w, err)
		return
	}
	totals, err := h.service.Compose(r.Context(), doc)
	if err != nil {
		obs.CountExport("html", "error")
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := export.RenderHTML(w, doc, totals); err != nil {
		obs.CountExport("html", "error")
		return
	}
	obs.CountExport("html", "ok")
}

// ExportDOCX handles POST /api/v1/export/docx.
func (h *Handler) ExportDOCX(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "proposal service not configured", nil)
		return
	}
	doc, err := decodeProposal(r)
	if err != nil {
		obs.CountExport("docx", "invalid")
		h.writeError(w, err)
		return
	}
	totals, err := h.service.Compose(r.Context(), doc)
	if err != nil {
		obs.CountExport("docx", "error")
		h.writeError(w, err)
		return
	}
	payload, err := export.RenderDOCX(doc, totals)
	if err != nil {
		obs.CountExport("docx", "error")
		h.writeError(w, common.NewAppError("EXPORT_FAILED", "document could not be generated", http.StatusInternalServerError, err))
		return
	}
	obs.CountExport("docx", "ok")
	w.Header().Set("Content-Type", export.DOCXContentType)
	w.Header().Set("Content-Disposition", `attachment; filename=proposal.docx`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// Addons handles GET /api/v1/addons.
func (h *Handler) Addons(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "proposal service not configured", nil)
		return
	}
	items, err := h.service.Catalog(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": items})
}

// decodeProposal parses the request body into a proposal document. Any shape
// problem collapses into a single flat error; the caller cannot distinguish
// subtypes.
func decodeProposal(r *http.Request) (pricing.Document, error) {
	var doc pricing.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		return pricing.Document{}, common.NewAppError("INVALID_PROPOSAL", fmt.Sprintf("proposal could not be parsed: %v", err), http.StatusBadRequest, err)
	}
	return doc, nil
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = "INTERNAL"
		}
		common.JSONError(w, status, code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
}
