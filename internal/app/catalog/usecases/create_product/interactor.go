package create_product

import (
	"context"

	"github.com/harborline/catalog-service/internal/app/catalog/contracts"
	"github.com/harborline/catalog-service/internal/app/catalog/domain"
)

// Request contains the data needed to create a product.
type Request struct {
	Title       string
	Description string
	Price       *float64
}

// Interactor handles the create product use case for the HTTP surface.
type Interactor struct {
	store contracts.CatalogStore
}

// NewInteractor creates a new create product interactor.
func NewInteractor(store contracts.CatalogStore) *Interactor {
	return &Interactor{store: store}
}

// Execute validates the request with the creation rule (title required,
// price optional but non-negative) and commits product + stock atomically.
// Returns the generated product id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	draft := domain.Draft{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := draft.Validate(); err != nil {
		return "", err
	}

	product, err := i.store.CreateProductWithStock(ctx, draft)
	if err != nil {
		return "", err
	}

	return product.ID, nil
}
