package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"

	"github.com/harborline/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/harborline/catalog-service/internal/app/catalog/repo"
	"github.com/harborline/catalog-service/internal/notify"
)

var spannerDB = flag.String("database", "projects/test-project/instances/dev-instance/databases/catalog-db", "Spanner database path")

func main() {
	flag.Parse()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	query := list_products.NewQuery(repo.NewReadModel(client))
	items, err := query.Execute(ctx)
	if err != nil {
		log.Fatalf("Failed to list products: %v", err)
	}

	fmt.Println("Products in catalog:")
	for i, item := range items {
		fmt.Printf("%d. %s - %q (price: %.2f, count: %d, group: %s)\n",
			i+1, item.ID, item.Title, item.Price, item.Count, notify.InterestGroup(item.Price))
	}

	if len(items) == 0 {
		fmt.Println("No products found!")
	} else {
		fmt.Printf("\nTotal: %d products\n", len(items))
	}
}
