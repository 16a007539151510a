package cart

import (
	"testing"

	"wookporium/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variantProduct() *models.Product {
	return &models.Product{
		ID:               "prod-7",
		Slug:             "hooded-vest",
		Title:            "Hooded Vest",
		ShortDescription: "Reversible festival vest",
		BasePrice:        60,
		IsAvailable:      true,
		HasVariants:      true,
		Tags:             []string{"festival", "handmade"},
		MainImageURL:     "https://cdn.example/vest.jpg",
	}
}

func TestBuildItemVariantCompositeID(t *testing.T) {
	p := variantProduct()
	res := &models.ResolvedResult{
		MatchedVariant: &models.Variant{SKU: "VEST-M-BLK", Name: "Medium Black", IsAvailable: true, Inventory: 2},
		EffectivePrice: 65,
		DisplayImage:   "https://cdn.example/vest-black.jpg",
		IsPurchasable:  true,
		AvailableStock: 2,
	}
	sel := models.Selection{Size: "M", Color: "Black"}

	item := BuildItem(p, res, sel, "https://thewookporium.com/")

	assert.Equal(t, "prod-7-VEST-M-BLK", item.ID)
	assert.Equal(t, "Hooded Vest (Medium Black)", item.Name)
	assert.Equal(t, 65.0, item.Price, "unit price is the effective price, never the base price")
	assert.Equal(t, "https://thewookporium.com/products/hooded-vest", item.URL)
	assert.Equal(t, "https://cdn.example/vest-black.jpg", item.ImageURL)
	assert.Equal(t, "size: M | color: Black", item.Options)
	assert.False(t, item.Disabled)
}

func TestBuildItemDisabledWhenNotPurchasable(t *testing.T) {
	p := variantProduct()
	res := &models.ResolvedResult{EffectivePrice: 60, IsPurchasable: false}

	item := BuildItem(p, res, models.Selection{}, "https://thewookporium.com")

	assert.True(t, item.Disabled)
	assert.Equal(t, "prod-7", item.ID, "no matched variant keeps the plain product ID")
}

func TestBuildItemSimpleProduct(t *testing.T) {
	p := &models.Product{
		ID:          "prod-3",
		Slug:        "beaded-ring",
		Title:       "Beaded Ring",
		BasePrice:   15,
		Inventory:   4,
		IsAvailable: true,
	}

	item := BuildItem(p, nil, models.Selection{}, "https://thewookporium.com")

	assert.Equal(t, "prod-3", item.ID)
	assert.Equal(t, 15.0, item.Price)
	assert.False(t, item.Disabled)
	assert.Equal(t, "Beaded Ring", item.Description, "description falls back to the title")

	p.Inventory = 0
	item = BuildItem(p, nil, models.Selection{}, "https://thewookporium.com")
	assert.True(t, item.Disabled)
}

func TestAttributes(t *testing.T) {
	p := variantProduct()
	res := &models.ResolvedResult{
		MatchedVariant: &models.Variant{SKU: "VEST-S-RED", Name: "Small Red"},
		EffectivePrice: 62.5,
		IsPurchasable:  true,
		AvailableStock: 1,
	}

	attrs := BuildItem(p, res, models.Selection{Size: "S", Color: "Red"}, "https://thewookporium.com").Attributes()

	assert.Equal(t, "prod-7-VEST-S-RED", attrs["data-item-id"])
	assert.Equal(t, "62.50", attrs["data-item-price"])
	assert.Equal(t, "festival,handmade", attrs["data-item-categories"])
	assert.Equal(t, "Options", attrs["data-item-custom1-name"])
	assert.Equal(t, "size: S | color: Red", attrs["data-item-custom1-value"])

	require.Contains(t, attrs, "data-item-url")
}

func TestSerializeSelectionCanonicalOrder(t *testing.T) {
	sel := models.Selection{Style: "Fitted", Size: "L", Material: "Hemp"}
	assert.Equal(t, "size: L | material: Hemp | style: Fitted", SerializeSelection(sel))
	assert.Equal(t, "", SerializeSelection(models.Selection{}))
}

func TestParseCompositeID(t *testing.T) {
	productID, sku := ParseCompositeID("prod7-VEST-M-BLK")
	assert.Equal(t, "prod7", productID)
	assert.Equal(t, "VEST-M-BLK", sku)

	productID, sku = ParseCompositeID("prod3")
	assert.Equal(t, "prod3", productID)
	assert.Equal(t, "", sku)
}
