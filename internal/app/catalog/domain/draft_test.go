package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceOf(v float64) *float64 { return &v }

func TestDraft_Validate(t *testing.T) {
	t.Run("title is required", func(t *testing.T) {
		err := Draft{Description: "x", Price: priceOf(10)}.Validate()
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		err := Draft{Title: "   "}.Validate()
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("description and price are optional", func(t *testing.T) {
		assert.NoError(t, Draft{Title: "Widget"}.Validate())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		err := Draft{Title: "Widget", Price: priceOf(-1)}.Validate()
		assert.ErrorIs(t, err, ErrNegativePrice)
	})
}

func TestDraft_ValidateForIngest(t *testing.T) {
	valid := Draft{Title: "Widget", Description: "A useful widget", Price: priceOf(25)}

	t.Run("complete draft passes", func(t *testing.T) {
		assert.NoError(t, valid.ValidateForIngest())
	})

	t.Run("all three fields are required", func(t *testing.T) {
		noTitle := valid
		noTitle.Title = ""
		assert.ErrorIs(t, noTitle.ValidateForIngest(), ErrTitleRequired)

		noDesc := valid
		noDesc.Description = ""
		assert.ErrorIs(t, noDesc.ValidateForIngest(), ErrDescriptionRequired)

		noPrice := valid
		noPrice.Price = nil
		assert.ErrorIs(t, noPrice.ValidateForIngest(), ErrPriceRequired)
	})

	t.Run("explicit zero price passes", func(t *testing.T) {
		free := valid
		free.Price = priceOf(0)
		assert.NoError(t, free.ValidateForIngest())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		cheap := valid
		cheap.Price = priceOf(-0.01)
		assert.ErrorIs(t, cheap.ValidateForIngest(), ErrNegativePrice)
	})
}

func TestDraft_PriceOrZero(t *testing.T) {
	assert.Equal(t, 0.0, Draft{}.PriceOrZero())
	assert.Equal(t, 25.5, Draft{Price: priceOf(25.5)}.PriceOrZero())
}

func TestIsValidation(t *testing.T) {
	require.True(t, IsValidation(ErrTitleRequired))
	require.True(t, IsValidation(ErrNegativePrice))
	require.False(t, IsValidation(ErrProductNotFound))
	require.False(t, IsValidation(nil))
}
