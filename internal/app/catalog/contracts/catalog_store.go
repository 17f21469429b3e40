package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/harborline/catalog-service/internal/app/catalog/domain"
)

// CatalogStore creates products together with their stock record.
type CatalogStore interface {
	// CreateProductWithStock assigns a fresh id to the draft and commits the
	// product plus a stock row (count = domain.DefaultStockCount) in a single
	// atomic transaction. Returns domain.ErrProductExists when either key is
	// already taken and domain.ErrStoreUnavailable for any other persistence
	// failure. The store never retries internally.
	CreateProductWithStock(ctx context.Context, draft domain.Draft) (*domain.Product, error)
}

// ProductRepository builds mutations for the products table.
// Repositories return mutations, they don't apply them.
type ProductRepository interface {
	InsertMut(product *domain.Product) *spanner.Mutation
}

// StockRepository builds mutations for the stocks table.
type StockRepository interface {
	InsertMut(stock *domain.Stock) *spanner.Mutation
}
