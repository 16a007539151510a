package catalog

import (
	"math"
	"testing"

	"wookporium/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsMalformedNumbers(t *testing.T) {
	p := &models.Product{
		BasePrice:      math.NaN(),
		CompareAtPrice: -10,
		Inventory:      -3,
		HasVariants:    true,
		Variants: []models.Variant{
			{SKU: " SKU-1 ", Size: " S", PriceAdjustment: math.Inf(1), Inventory: -1},
		},
	}

	Normalize(p)

	assert.Equal(t, 0.0, p.BasePrice)
	assert.Equal(t, 0.0, p.CompareAtPrice)
	assert.Equal(t, 0, p.Inventory)
	assert.Equal(t, "SKU-1", p.Variants[0].SKU)
	assert.Equal(t, "S", p.Variants[0].Size)
	assert.Equal(t, 0.0, p.Variants[0].PriceAdjustment)
	assert.Equal(t, 0, p.Variants[0].Inventory)
}

func TestNormalizeDropsEmptyOptionValues(t *testing.T) {
	p := &models.Product{
		HasVariants: true,
		VariantOptions: models.VariantOptions{
			Sizes:  []string{" S ", "", "M"},
			Colors: []string{"  "},
		},
		Variants: []models.Variant{{SKU: "X"}},
	}

	Normalize(p)

	assert.Equal(t, []string{"S", "M"}, p.VariantOptions.Sizes)
	assert.Empty(t, p.VariantOptions.Colors)
}

func TestNormalizeVariantFlagWithoutRows(t *testing.T) {
	p := &models.Product{HasVariants: true}

	Normalize(p)

	assert.False(t, p.HasVariants, "a variant flag without variant rows is treated as a simple product")
}

func TestNormalizeNil(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}
