package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/harborline/catalog-service/internal/app/catalog/contracts"
	"github.com/harborline/catalog-service/internal/app/catalog/domain"
	"github.com/harborline/catalog-service/internal/models/m_product"
	"github.com/harborline/catalog-service/internal/models/m_stock"
	"github.com/harborline/catalog-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProduct retrieves a product by id.
func (rm *ReadModelImpl) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.ID,
		m_product.Title,
		m_product.Description,
		m_product.Price,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var p domain.Product
	if err := row.Columns(&p.ID, &p.Title, &p.Description, &p.Price); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}
	return &p, nil
}

// ListProducts retrieves all products ordered by id.
func (rm *ReadModelImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ID, m_product.Title, m_product.Description, m_product.Price).
		OrderBy(m_product.ID, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var p domain.Product
		if err := row.Columns(&p.ID, &p.Title, &p.Description, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		products = append(products, p)
	}

	return products, nil
}

// GetStock retrieves the stock row for a product.
func (rm *ReadModelImpl) GetStock(ctx context.Context, productID string) (*domain.Stock, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_stock.TableName, spanner.Key{productID}, []string{
		m_stock.ProductID,
		m_stock.Count,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to read stock: %w", err)
	}

	var s domain.Stock
	if err := row.Columns(&s.ProductID, &s.Count); err != nil {
		return nil, fmt.Errorf("failed to parse stock: %w", err)
	}
	return &s, nil
}

// ListStocks retrieves all stock rows.
func (rm *ReadModelImpl) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	stmt := query.From(m_stock.TableName).
		Select(m_stock.ProductID, m_stock.Count).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	stocks := make([]domain.Stock, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate stocks: %w", err)
		}

		var s domain.Stock
		if err := row.Columns(&s.ProductID, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to parse stock: %w", err)
		}
		stocks = append(stocks, s)
	}

	return stocks, nil
}
