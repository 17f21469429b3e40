package get_product

import (
	"context"
	"errors"

	"github.com/harborline/catalog-service/internal/app/catalog/contracts"
	"github.com/harborline/catalog-service/internal/app/catalog/domain"
)

// Result is a product joined with its stock count.
type Result struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Count       int64   `json:"count"`
}

// Query fetches a single product joined with its stock count.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the product with its count. A missing stock row degrades to
// count 0; a missing product propagates domain.ErrProductNotFound.
func (q *Query) Execute(ctx context.Context, productID string) (*Result, error) {
	product, err := q.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
	}

	stock, err := q.readModel.GetStock(ctx, productID)
	switch {
	case err == nil:
		result.Count = stock.Count
	case errors.Is(err, domain.ErrStockNotFound):
		result.Count = 0
	default:
		return nil, err
	}

	return result, nil
}
