package m_stock

// Field name constants for the stocks table.
const (
	TableName = "stocks"

	ProductID = "product_id"
	Count     = "count"
	CreatedAt = "created_at"
)
