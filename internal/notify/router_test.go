package notify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborline/catalog-service/internal/app/catalog/domain"
)

func TestInterestGroup(t *testing.T) {
	cases := []struct {
		price float64
		group string
	}{
		{0, GroupLowPrice},
		{99.99, GroupLowPrice},
		{100, GroupHighPrice},
		{100.01, GroupHighPrice},
		{2500, GroupHighPrice},
	}
	for _, c := range cases {
		assert.Equal(t, c.group, InterestGroup(c.price), "price %v", c.price)
	}
}

func TestAttributes(t *testing.T) {
	attrs := Attributes(&domain.Product{ID: "p-1", Price: 100})
	assert.Equal(t, "p-1", attrs["productId"])
	// Attribute filters compare strings, so the price must not carry a
	// trailing fraction.
	assert.Equal(t, "100", attrs["price"])

	attrs = Attributes(&domain.Product{ID: "p-2", Price: 19.99})
	assert.Equal(t, "19.99", attrs["price"])
}

func TestEventPayload(t *testing.T) {
	payload, err := json.Marshal(Event{
		Message: "New product has been created",
		Product: domain.Product{ID: "p-1", Title: "Widget", Description: "A useful widget", Price: 25},
	})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Contains(t, decoded, "message")
	assert.Contains(t, decoded, "product")

	var product domain.Product
	require.NoError(t, json.Unmarshal(decoded["product"], &product))
	assert.Equal(t, "Widget", product.Title)
	assert.Equal(t, 25.0, product.Price)
}
