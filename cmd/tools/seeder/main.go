package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/proposal-api/internal/catalog"
	"github.com/noah-isme/proposal-api/internal/pricing"
)

// Prints every catalog item priced at its default quantity, then a grand
// total. Useful for eyeballing a freshly edited price list.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		path = "seeds/add_ons.json"
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store, err := catalog.NewStore(catalog.StoreConfig{Path: path})
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	items, err := store.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	rate := pricing.DefaultTaxRate
	if env := os.Getenv("TAX_RATE"); env != "" {
		parsed, err := decimal.NewFromString(env)
		if err != nil {
			log.Fatalf("Invalid TAX_RATE %q: %v", env, err)
		}
		rate = parsed
	}

	log.Printf("Loaded add-ons: %d", len(items))
	total := decimal.Zero
	for _, item := range items {
		qty := item.DefaultQuantity
		if qty <= 0 {
			qty = 1
		}
		line := pricing.LineTotal(item.UnitPrice, decimal.NewFromInt(int64(qty)), item.Taxable, rate)
		fmt.Printf("%s: %d x $%s => $%s\n", item.Code, qty, item.UnitPrice.StringFixed(2), line.StringFixed(2))
		total = total.Add(line)
	}
	fmt.Printf("Grand total (with sample defaults): $%s\n", total.StringFixed(2))
}
