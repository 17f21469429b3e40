package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("id", "title", "price").
		Build()

	assert.Equal(t, "SELECT id, title, price FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("stocks").
		Select("product_id", "count").
		Where(Eq("product_id", "abc")).
		Build()

	assert.Equal(t, "SELECT product_id, count FROM stocks WHERE product_id = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "abc",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("id").
		Where(Eq("title", "Widget")).
		Where(Eq("price", 25.0)).
		Build()

	assert.Equal(t, "SELECT id FROM products WHERE title = @p0 AND price = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "Widget",
		"p1": 25.0,
	}, stmt.Params)
}

func TestBuilder_InCondition(t *testing.T) {
	ids := []string{"a", "b"}
	stmt := From("stocks").
		Select("product_id", "count").
		Where(In("product_id", ids)).
		Build()

	assert.Equal(t, "SELECT product_id, count FROM stocks WHERE product_id IN UNNEST(@p0)", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": ids,
	}, stmt.Params)
}

func TestBuilder_OrderByAndLimit(t *testing.T) {
	stmt := From("products").
		Select("id", "title").
		OrderBy("id", Asc).
		Limit(10).
		Build()

	assert.Equal(t, "SELECT id, title FROM products ORDER BY id ASC LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit": int64(10),
	}, stmt.Params)
}

func TestBuilder_OrderByDesc(t *testing.T) {
	stmt := From("products").
		Select("id").
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT id FROM products ORDER BY created_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("id")
	withWhere := base.Where(Eq("title", "Widget"))

	assert.Equal(t, "SELECT id FROM products", base.Build().SQL)
	assert.Equal(t, "SELECT id FROM products WHERE title = @p0", withWhere.Build().SQL)
}
