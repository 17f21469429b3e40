package m_stock

import "time"

// Data represents the database model for the stocks table.
type Data struct {
	ProductID string    `spanner:"product_id"`
	Count     int64     `spanner:"count"`
	CreatedAt time.Time `spanner:"created_at"`
}
