package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Item is a single priced record in the add-ons catalog.
type Item struct {
	Code            string          `json:"code" validate:"required"`
	Name            string          `json:"name,omitempty"`
	Unit            string          `json:"unit,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Taxable         bool            `json:"taxable,omitempty"`
	DefaultQuantity int             `json:"default_quantity,omitempty"`
}

// Store reads the catalog from a JSON file. The file is re-read on every Load so
// edits to the price list take effect without a restart; there is no caching and
// no last-known-good fallback.
type Store struct {
	path     string
	validate *validator.Validate
}

// StoreConfig groups Store dependencies.
type StoreConfig struct {
	Path string
}

// NewStore constructs a Store for the given catalog file path.
func NewStore(cfg StoreConfig) (*Store, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	return &Store{path: path, validate: validator.New()}, nil
}

// Path returns the configured catalog file path.
func (s *Store) Path() string { return s.path }

// Load reads and validates the catalog. Item order is preserved as written in the
// file; duplicate codes are allowed and resolution takes the first occurrence.
func (s *Store) Load(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", s.path, err)
	}
	for i, item := range items {
		if err := s.validate.Struct(item); err != nil {
			return nil, fmt.Errorf("catalog item %d: %w", i, err)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("catalog item %q: unit_price must not be negative", item.Code)
		}
	}
	return items, nil
}

// Ping reports whether the catalog can currently be loaded. Used by readiness.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.Load(ctx)
	return err
}
