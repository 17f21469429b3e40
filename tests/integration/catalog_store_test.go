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

func priceOf(v float64) *float64 { return &v }

func TestCatalogStore_CreateProductWithStock(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := repo.NewCatalogStore(repo.NewProductRepo(), repo.NewStockRepo(), committer.NewCommitter(client))

	product, err := store.CreateProductWithStock(ctx, domain.Draft{
		Title:       "Widget",
		Description: "A useful widget",
		Price:       priceOf(25),
	})
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)
	assert.Equal(t, 25.0, product.Price)

	// Both rows land or neither does.
	testutil.AssertRowCount(t, client, "products", 1)
	testutil.AssertRowCount(t, client, "stocks", 1)

	readModel := repo.NewReadModel(client)
	stock, err := readModel.GetStock(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStockCount, stock.Count)
}

func TestCatalogStore_PriceDefaultsToZero(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := repo.NewCatalogStore(repo.NewProductRepo(), repo.NewStockRepo(), committer.NewCommitter(client))

	product, err := store.CreateProductWithStock(ctx, domain.Draft{Title: "Widget"})
	require.NoError(t, err)

	got, err := repo.NewReadModel(client).GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Price)
}
