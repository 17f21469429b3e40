package m_product

import "time"

// Data represents the database model for the products table.
type Data struct {
	ID          string    `spanner:"id"`
	Title       string    `spanner:"title"`
	Description string    `spanner:"description"`
	Price       float64   `spanner:"price"`
	CreatedAt   time.Time `spanner:"created_at"`
	UpdatedAt   time.Time `spanner:"updated_at"`
}
