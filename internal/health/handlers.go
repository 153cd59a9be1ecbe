package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Checker represents dependencies that can be probed for readiness.
type Checker interface {
	PingCatalog(ctx context.Context, timeout time.Duration) error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker        Checker
	CatalogTimeout time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on dependency probes.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.Checker == nil {
		http.Error(w, "dependencies unavailable", http.StatusServiceUnavailable)
		return
	}
	catalogStatus := "ok"
	if err := h.Checker.PingCatalog(r.Context(), h.catalogTimeout()); err != nil {
		catalogStatus = err.Error()
	}
	status := map[string]string{
		"catalog": catalogStatus,
	}
	w.Header().Set("Content-Type", "application/json")
	if catalogStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (h Handler) catalogTimeout() time.Duration {
	if h.CatalogTimeout <= 0 {
		return 500 * time.Millisecond
	}
	return h.CatalogTimeout
}
