package proposal

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/proposal-api/internal/catalog"
	"github.com/noah-isme/proposal-api/internal/common"
	"github.com/noah-isme/proposal-api/internal/obs"
	"github.com/noah-isme/proposal-api/internal/pricing"
)

// Service composes proposals against the catalog store.
type Service struct {
	store   *catalog.Store
	taxRate decimal.Decimal
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Store   *catalog.Store
	TaxRate decimal.Decimal
}

// NewService constructs a Service. A zero TaxRate falls back to the default
// flat rate.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, common.NewAppError("INTERNAL", "catalog store is required", http.StatusInternalServerError, nil)
	}
	rate := cfg.TaxRate
	if rate.IsZero() {
		rate = pricing.DefaultTaxRate
	}
	return &Service{store: cfg.Store, taxRate: rate}, nil
}

// Compose loads the catalog and prices the document. The catalog is read fresh
// on every call.
func (s *Service) Compose(ctx context.Context, doc pricing.Document) (pricing.Totals, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		obs.CountCatalogLoad("error")
		return pricing.Totals{}, common.NewAppError("CATALOG_UNAVAILABLE", "catalog could not be loaded", http.StatusInternalServerError, err)
	}
	obs.CountCatalogLoad("ok")
	return pricing.Compose(doc, items, s.taxRate), nil
}

// Catalog returns the full add-ons list.
func (s *Service) Catalog(ctx context.Context) ([]catalog.Item, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		obs.CountCatalogLoad("error")
		return nil, common.NewAppError("CATALOG_UNAVAILABLE", "catalog could not be loaded", http.StatusInternalServerError, err)
	}
	obs.CountCatalogLoad("ok")
	return items, nil
}
