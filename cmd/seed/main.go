package main

import (
	"context"
	"flag"
	"log"

	"cloud.google.com/go/spanner"

	"github.com/harborline/catalog-service/internal/app/catalog/domain"
	"github.com/harborline/catalog-service/internal/app/catalog/repo"
	"github.com/harborline/catalog-service/internal/pkg/committer"
)

var spannerDB = flag.String("database", "projects/test-project/instances/dev-instance/databases/catalog-db", "Spanner database path")

// Sample catalog used for local development. Each product gets a fresh id and
// the default stock count on every run.
var samples = []domain.Draft{
	{Title: "Widget", Description: "A useful widget", Price: price(25)},
	{Title: "Gadget", Description: "A cool gadget", Price: price(40)},
	{Title: "Doohickey", Description: "An innovative tool", Price: price(15)},
}

func price(v float64) *float64 { return &v }

func main() {
	flag.Parse()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	store := repo.NewCatalogStore(
		repo.NewProductRepo(),
		repo.NewStockRepo(),
		committer.NewCommitter(client),
	)

	for _, draft := range samples {
		product, err := store.CreateProductWithStock(ctx, draft)
		if err != nil {
			log.Printf("Error inserting product %s: %v", draft.Title, err)
			continue
		}
		log.Printf("Inserted product %s (%s) with stock %d", product.Title, product.ID, domain.DefaultStockCount)
	}
}
