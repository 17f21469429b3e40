package domain

import "errors"

// Domain errors as sentinel values
var (
	// Draft validation errors
	ErrTitleRequired       = errors.New("product title is required")
	ErrDescriptionRequired = errors.New("product description is required")
	ErrPriceRequired       = errors.New("product price is required")
	ErrNegativePrice       = errors.New("product price must not be negative")

	// Lookup errors
	ErrProductNotFound = errors.New("product not found")
	ErrStockNotFound   = errors.New("stock not found")

	// Persistence errors
	ErrProductExists    = errors.New("product already exists")
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)

// IsValidation reports whether err is one of the draft validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrDescriptionRequired) ||
		errors.Is(err, ErrPriceRequired) ||
		errors.Is(err, ErrNegativePrice)
}
