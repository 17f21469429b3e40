package services

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/spanner"
	"cloud.google.com/go/storage"

	"github.com/harborline/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/harborline/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/harborline/catalog-service/internal/app/catalog/repo"
	"github.com/harborline/catalog-service/internal/app/catalog/usecases/create_product"
	"github.com/harborline/catalog-service/internal/config"
	"github.com/harborline/catalog-service/internal/ingest/filestore"
	"github.com/harborline/catalog-service/internal/pkg/committer"
	httpapi "github.com/harborline/catalog-service/internal/transport/http"
)

// ServiceOptions holds the wired dependencies of the API binary.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	StorageClient *storage.Client
	API           *httpapi.API
}

// NewServiceOptions creates and wires up the API's dependencies. Clients are
// constructed here and passed down explicitly; no package holds global state.
func NewServiceOptions(ctx context.Context, cfg config.Config, log *slog.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		spannerClient.Close()
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	comm := committer.NewCommitter(spannerClient)
	store := repo.NewCatalogStore(repo.NewProductRepo(), repo.NewStockRepo(), comm)
	readModel := repo.NewReadModel(spannerClient)
	uploader := filestore.NewUploader(filestore.NewGCS(storageClient), cfg.UploadBucket)

	api := &httpapi.API{
		Create:       create_product.NewInteractor(store),
		GetProduct:   get_product.NewQuery(readModel),
		ListProducts: list_products.NewQuery(readModel),
		Signer:       uploader,
		UploadURLTTL: cfg.UploadURLTTL,
		Log:          log,
	}

	return &ServiceOptions{
		SpannerClient: spannerClient,
		StorageClient: storageClient,
		API:           api,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.StorageClient != nil {
		s.StorageClient.Close()
	}
}
