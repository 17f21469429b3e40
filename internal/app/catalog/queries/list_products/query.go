package list_products

import (
	"context"

	"github.com/harborline/catalog-service/internal/app/catalog/contracts"
)

// Item is a product joined with its stock count.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Count       int64   `json:"count"`
}

// Query fetches all products joined with their stock counts.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute lists all products; products without a stock row get count 0.
func (q *Query) Execute(ctx context.Context) ([]Item, error) {
	products, err := q.readModel.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	stocks, err := q.readModel.ListStocks(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(stocks))
	for _, s := range stocks {
		counts[s.ProductID] = s.Count
	}

	items := make([]Item, 0, len(products))
	for _, p := range products {
		items = append(items, Item{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Count:       counts[p.ID],
		})
	}

	return items, nil
}
