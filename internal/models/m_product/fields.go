package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ID          = "id"
	Title       = "title"
	Description = "description"
	Price       = "price"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)
