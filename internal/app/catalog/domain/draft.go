package domain

import "strings"

// Draft is an unvalidated candidate product payload. Price is a pointer so
// that a payload carrying an explicit `"price": 0` can be told apart from one
// with no price field at all.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

// Validate applies the creation rule used by the HTTP surface: title must be
// non-blank, price is optional and defaults to zero but may not be negative.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.Price != nil && *d.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// ValidateForIngest applies the stricter rule used by the queue consumer:
// title, description and price must all be present, and price must not be
// negative. Rows failing this rule are skipped, never retried.
func (d Draft) ValidateForIngest() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.Description == "" {
		return ErrDescriptionRequired
	}
	if d.Price == nil {
		return ErrPriceRequired
	}
	if *d.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// PriceOrZero returns the draft price, defaulting to zero when absent.
func (d Draft) PriceOrZero() float64 {
	if d.Price == nil {
		return 0
	}
	return *d.Price
}
