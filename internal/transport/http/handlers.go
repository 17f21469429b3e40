package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/harborline/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/harborline/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/harborline/catalog-service/internal/app/catalog/usecases/create_product"
)

// CreateUsecase creates a product with its stock row.
type CreateUsecase interface {
	Execute(ctx context.Context, req *create_product.Request) (string, error)
}

// GetProductQuery fetches one product joined with its count.
type GetProductQuery interface {
	Execute(ctx context.Context, productID string) (*get_product.Result, error)
}

// ListProductsQuery fetches all products joined with their counts.
type ListProductsQuery interface {
	Execute(ctx context.Context) ([]list_products.Item, error)
}

// UploadSigner issues time-limited upload URLs into the staging prefix.
type UploadSigner interface {
	UploadURL(name string, ttl time.Duration) (string, error)
}

// API holds the REST handlers and their dependencies.
type API struct {
	Create       CreateUsecase
	GetProduct   GetProductQuery
	ListProducts ListProductsQuery
	Signer       UploadSigner
	UploadURLTTL time.Duration
	Log          *slog.Logger
}

type createRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

type createResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *API) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := a.ListProducts.Execute(r.Context())
	if err != nil {
		a.Log.Error("failed to list products", "error", err)
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) getProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Bad Request", "Product ID is required")
		return
	}

	result, err := a.GetProduct.Execute(r.Context(), productID)
	if err != nil {
		a.Log.Error("failed to get product", "product_id", productID, "error", err)
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	productID, err := a.Create.Execute(r.Context(), &create_product.Request{
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
	})
	if err != nil {
		a.Log.Error("failed to create product", "error", err)
		WriteDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{
		Message:   "Product created",
		ProductID: productID,
	})
}

func (a *API) importHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		WriteJSONError(w, http.StatusBadRequest, "Bad Request", "File name is required")
		return
	}

	url, err := a.Signer.UploadURL(name, a.UploadURLTTL)
	if err != nil {
		a.Log.Error("failed to sign upload URL", "name", name, "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Error generating signed URL")
		return
	}

	// The body is the bare URL, JSON-encoded.
	writeJSON(w, http.StatusOK, url)
}
