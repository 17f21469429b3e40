// Package httpapi exposes the REST surface of the catalog service.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harborline/catalog-service/internal/app/catalog/domain"
)

// jsonError is the error payload shape shared by all routes.
type jsonError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, label, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: label, Message: message})
}

// WriteDomainError maps domain errors onto HTTP statuses: validation errors
// become 400, missing products 404, anything else 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		WriteJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		WriteJSONError(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
	}
}
