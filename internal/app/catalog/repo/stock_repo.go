package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/harborline/catalog-service/internal/app/catalog/contracts"
	"github.com/harborline/catalog-service/internal/app/catalog/domain"
	"github.com/harborline/catalog-service/internal/models/m_stock"
)

// StockRepo implements StockRepository for Spanner.
type StockRepo struct {
	model *m_stock.Model
}

// NewStockRepo creates a new StockRepo.
func NewStockRepo() contracts.StockRepository {
	return &StockRepo{
		model: m_stock.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new stock row.
func (r *StockRepo) InsertMut(stock *domain.Stock) *spanner.Mutation {
	data := &m_stock.Data{
		ProductID: stock.ProductID,
		Count:     stock.Count,
	}
	return r.model.InsertMut(data)
}
