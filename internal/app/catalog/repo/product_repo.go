package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/harborline/catalog-service/internal/app/catalog/contracts"
	"github.com/harborline/catalog-service/internal/app/catalog/domain"
	"github.com/harborline/catalog-service/internal/models/m_product"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	model *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo() contracts.ProductRepository {
	return &ProductRepo{
		model: m_product.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	data := &m_product.Data{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
	}
	return r.model.InsertMut(data)
}
