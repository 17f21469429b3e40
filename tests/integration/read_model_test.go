//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborline/catalog-service/internal/app/catalog/domain"
	"github.com/harborline/catalog-service/internal/app/catalog/repo"
	"github.com/harborline/catalog-service/internal/pkg/committer"
	"github.com/harborline/catalog-service/tests/testutil"
)

func TestReadModel_GetProduct_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	_, err := repo.NewReadModel(client).GetProduct(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestReadModel_GetStock_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	_, err := repo.NewReadModel(client).GetStock(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
}

func TestReadModel_ListProducts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := repo.NewCatalogStore(repo.NewProductRepo(), repo.NewStockRepo(), committer.NewCommitter(client))

	for _, title := range []string{"Widget", "Gadget", "Doohickey"} {
		_, err := store.CreateProductWithStock(ctx, domain.Draft{Title: title})
		require.NoError(t, err)
	}

	readModel := repo.NewReadModel(client)

	products, err := readModel.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	stocks, err := readModel.ListStocks(ctx)
	require.NoError(t, err)
	assert.Len(t, stocks, 3)
	for _, s := range stocks {
		assert.Equal(t, domain.DefaultStockCount, s.Count)
	}
}
