package httpapi

import "net/http"

// NewRouter registers the REST routes and wraps them with middleware.
func NewRouter(api *API) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", api.listProductsHandler)
	mux.HandleFunc("GET /products/{productId}", api.getProductHandler)
	mux.HandleFunc("POST /products", api.createProductHandler)
	mux.HandleFunc("GET /import", api.importHandler)
	return WithRequestID(WithLogging(api.Log, mux))
}
