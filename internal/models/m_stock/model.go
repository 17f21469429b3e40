package m_stock

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the stocks table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a stock row.
// Fails with AlreadyExists when a row for the product already exists.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			ProductID,
			Count,
			CreatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.Count,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a stock row.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
