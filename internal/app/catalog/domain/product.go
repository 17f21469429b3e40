package domain

// Product is a catalog entry. The ID is assigned at creation time and is
// immutable afterwards; the pipeline never mutates a persisted product.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Stock tracks the available count for a product. A stock row exists if and
// only if its product exists; both are written in one transaction.
type Stock struct {
	ProductID string `json:"product_id"`
	Count     int64  `json:"count"`
}

// DefaultStockCount is the count assigned to every newly created product.
const DefaultStockCount int64 = 50
