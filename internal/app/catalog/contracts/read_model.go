package contracts

import (
	"context"

	"github.com/harborline/catalog-service/internal/app/catalog/domain"
)

// ReadModel provides read-only access to the catalog tables. Joining products
// with their stock counts is left to the caller so that a missing stock row
// degrades to a count of zero instead of an error.
type ReadModel interface {
	// GetProduct returns a product by id, or domain.ErrProductNotFound.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts returns all products ordered by id.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetStock returns the stock row for a product, or domain.ErrStockNotFound.
	GetStock(ctx context.Context, productID string) (*domain.Stock, error)

	// ListStocks returns all stock rows.
	ListStocks(ctx context.Context) ([]domain.Stock, error)
}
