package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	"github.com/harborline/catalog-service/internal/app/catalog/contracts"
	"github.com/harborline/catalog-service/internal/app/catalog/domain"
	"github.com/harborline/catalog-service/internal/pkg/committer"
)

// CatalogStoreImpl creates products and stock rows atomically. The product
// insert and the stock insert are collected into one CommitPlan so both land
// in the same transaction; spanner.Insert mutations reject existing keys,
// which gives the duplicate-id precondition without an extra read.
type CatalogStoreImpl struct {
	products  contracts.ProductRepository
	stocks    contracts.StockRepository
	committer *committer.Committer
}

// NewCatalogStore creates a new CatalogStoreImpl.
func NewCatalogStore(
	products contracts.ProductRepository,
	stocks contracts.StockRepository,
	comm *committer.Committer,
) contracts.CatalogStore {
	return &CatalogStoreImpl{
		products:  products,
		stocks:    stocks,
		committer: comm,
	}
}

// CreateProductWithStock assigns a fresh id and commits product + stock in a
// single transaction. The draft is assumed validated by the caller.
func (s *CatalogStoreImpl) CreateProductWithStock(ctx context.Context, draft domain.Draft) (*domain.Product, error) {
	product := &domain.Product{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.PriceOrZero(),
	}
	stock := &domain.Stock{
		ProductID: product.ID,
		Count:     domain.DefaultStockCount,
	}

	plan := committer.NewPlan()
	plan.Add(s.products.InsertMut(product))
	plan.Add(s.stocks.InsertMut(stock))

	if err := s.committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return nil, domain.ErrProductExists
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return product, nil
}
