package catalog

import (
	"math"
	"testing"

	"wookporium/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shirtProduct() *models.Product {
	return &models.Product{
		ID:          "prod-1",
		Slug:        "festival-shirt",
		Title:       "Festival Shirt",
		BasePrice:   20,
		IsAvailable: true,
		HasVariants: true,
		VariantOptions: models.VariantOptions{
			Sizes:  []string{"S", "M", "L"},
			Colors: []string{"Red", "Blue"},
		},
		Variants: []models.Variant{
			{SKU: "SHIRT-S-RED", Name: "Small Red", Size: "S", Color: "Red", PriceAdjustment: 0, Inventory: 3, IsAvailable: true},
			{SKU: "SHIRT-M-RED", Name: "Medium Red", Size: "M", Color: "Red", PriceAdjustment: 5, Inventory: 0, IsAvailable: true},
		},
	}
}

func TestResolveVariantFullSelection(t *testing.T) {
	p := shirtProduct()

	res := ResolveVariant(p, models.Selection{Size: "M", Color: "Red"})

	require.NotNil(t, res.MatchedVariant)
	assert.Equal(t, "SHIRT-M-RED", res.MatchedVariant.SKU)
	assert.Equal(t, 25.0, res.EffectivePrice)
	assert.False(t, res.IsPurchasable, "zero inventory must not be purchasable")
	assert.Equal(t, 0, res.AvailableStock)
}

func TestResolveVariantPartialSelectionFirstMatchWins(t *testing.T) {
	p := shirtProduct()

	res := ResolveVariant(p, models.Selection{Color: "Red"})

	require.NotNil(t, res.MatchedVariant)
	assert.Equal(t, "SHIRT-S-RED", res.MatchedVariant.SKU, "first variant in list order wins")
	assert.Equal(t, 20.0, res.EffectivePrice)
	assert.True(t, res.IsPurchasable)
}

func TestResolveVariantNoMatch(t *testing.T) {
	p := shirtProduct()

	res := ResolveVariant(p, models.Selection{Size: "L", Color: "Blue"})

	assert.Nil(t, res.MatchedVariant)
	assert.Equal(t, 20.0, res.EffectivePrice, "price falls back to base price")
	assert.False(t, res.IsPurchasable)
	assert.Equal(t, 3, res.AvailableStock, "aggregate stock across available variants")
}

func TestResolveVariantEmptySelectionAggregateStock(t *testing.T) {
	p := shirtProduct()
	p.Variants[1].Inventory = 2

	res := ResolveVariant(p, models.Selection{})

	// Empty selection: every axis is a wildcard, the first variant matches.
	require.NotNil(t, res.MatchedVariant)
	assert.Equal(t, "SHIRT-S-RED", res.MatchedVariant.SKU)
	assert.Equal(t, 3, res.AvailableStock)
}

func TestResolveVariantMatchedSatisfiesSelection(t *testing.T) {
	p := shirtProduct()
	selections := []models.Selection{
		{},
		{Size: "S"},
		{Size: "M"},
		{Color: "Red"},
		{Size: "S", Color: "Red"},
		{Size: "M", Color: "Red"},
		{Size: "L"},
		{Color: "Blue"},
	}

	for _, sel := range selections {
		res := ResolveVariant(p, sel)
		if res.MatchedVariant == nil {
			continue
		}
		for _, axis := range models.Axes {
			if want := sel.Value(axis); want != "" {
				assert.Equal(t, want, res.MatchedVariant.AxisValue(axis),
					"matched variant must satisfy every selected axis")
			}
		}
	}
}

func TestResolveVariantIdempotent(t *testing.T) {
	p := shirtProduct()
	sel := models.Selection{Size: "M", Color: "Red"}

	first := ResolveVariant(p, sel)
	second := ResolveVariant(p, sel)

	assert.Equal(t, first, second)
}

func TestResolveVariantOutOfTaxonomyNeverMatches(t *testing.T) {
	p := shirtProduct()
	p.Variants = append(p.Variants, models.Variant{
		SKU: "SHIRT-XL-RED", Size: "XL", Color: "Red",
		Inventory: 9, IsAvailable: true,
	})

	res := ResolveVariant(p, models.Selection{Size: "XL"})

	assert.Nil(t, res.MatchedVariant, "XL is not in the size options")
	assert.False(t, res.IsPurchasable)
}

func TestResolveVariantNaNAdjustmentTreatedAsZero(t *testing.T) {
	p := shirtProduct()
	p.Variants[0].PriceAdjustment = math.NaN()

	res := ResolveVariant(p, models.Selection{Size: "S", Color: "Red"})

	require.NotNil(t, res.MatchedVariant)
	assert.Equal(t, 20.0, res.EffectivePrice)
	assert.False(t, math.IsNaN(res.EffectivePrice))
}

func TestResolveVariantImagePrecedence(t *testing.T) {
	p := shirtProduct()
	p.MainImageURL = "https://cdn.example/main.jpg"
	p.GalleryImages = []string{"https://cdn.example/gallery-0.jpg"}
	p.Variants[0].VariantImageURL = "https://cdn.example/small-red.jpg"

	res := ResolveVariant(p, models.Selection{Size: "S", Color: "Red"})
	assert.Equal(t, "https://cdn.example/small-red.jpg", res.DisplayImage)

	res = ResolveVariant(p, models.Selection{Size: "M", Color: "Red"})
	assert.Equal(t, "https://cdn.example/main.jpg", res.DisplayImage, "variant without override falls back to main image")

	p.MainImageURL = ""
	res = ResolveVariant(p, models.Selection{Size: "L", Color: "Blue"})
	assert.Equal(t, "https://cdn.example/gallery-0.jpg", res.DisplayImage, "no match, no main image: first gallery image")
}

func TestResolveVariantProductUnavailableGate(t *testing.T) {
	p := shirtProduct()
	p.IsAvailable = false

	res := ResolveVariant(p, models.Selection{Size: "S", Color: "Red"})

	require.NotNil(t, res.MatchedVariant)
	assert.False(t, res.IsPurchasable, "product gate overrides variant availability")
}

func TestResolveSimpleProduct(t *testing.T) {
	p := &models.Product{
		ID:          "prod-2",
		Slug:        "one-off-pendant",
		Title:       "One-off Pendant",
		BasePrice:   45,
		Inventory:   4,
		IsAvailable: true,
	}

	res := ResolveVariant(p, models.Selection{})

	assert.Nil(t, res.MatchedVariant)
	assert.Equal(t, 45.0, res.EffectivePrice)
	assert.True(t, res.IsPurchasable)
	assert.Equal(t, 4, res.AvailableStock)

	p.Inventory = 0
	res = ResolveSimple(p)
	assert.False(t, res.IsPurchasable)
}

func TestAvailableValuesForAxis(t *testing.T) {
	p := shirtProduct()

	colors := AvailableValuesForAxis(p, models.Selection{Size: "S"}, models.AxisColor)
	assert.Equal(t, []string{"Red"}, colors)

	// The size axis itself is excluded from the filter, so the
	// out-of-stock M variant does not hide the S value.
	sizes := AvailableValuesForAxis(p, models.Selection{Size: "M"}, models.AxisSize)
	assert.Equal(t, []string{"S"}, sizes, "only in-stock variants contribute values")
}

func TestAvailableValuesForAxisInsertionOrder(t *testing.T) {
	p := shirtProduct()
	p.VariantOptions.Sizes = []string{"S", "M", "L"}
	p.Variants = []models.Variant{
		{SKU: "A", Size: "L", Color: "Red", Inventory: 1, IsAvailable: true},
		{SKU: "B", Size: "S", Color: "Red", Inventory: 1, IsAvailable: true},
		{SKU: "C", Size: "L", Color: "Red", Inventory: 1, IsAvailable: true},
	}

	sizes := AvailableValuesForAxis(p, models.Selection{}, models.AxisSize)
	assert.Equal(t, []string{"L", "S"}, sizes, "first-seen order from the variant list, not alphabetical")
}

func TestAvailableValuesForAxisStaysInsideTaxonomy(t *testing.T) {
	p := shirtProduct()
	p.Variants = append(p.Variants, models.Variant{
		SKU: "ROGUE", Size: "XXL", Inventory: 5, IsAvailable: true,
	})

	sizes := AvailableValuesForAxis(p, models.Selection{}, models.AxisSize)
	for _, s := range sizes {
		assert.Contains(t, p.VariantOptions.Sizes, s)
	}
	assert.NotContains(t, sizes, "XXL")
}

func TestAvailableValuesForAxisUnreferencedOptionNeverAvailable(t *testing.T) {
	p := shirtProduct()
	// "L" is defined in the taxonomy but no variant references it.
	sizes := AvailableValuesForAxis(p, models.Selection{}, models.AxisSize)
	assert.NotContains(t, sizes, "L")
}

func TestIsProductAvailable(t *testing.T) {
	p := shirtProduct()
	assert.True(t, IsProductAvailable(p))

	p.Variants[0].Inventory = 0
	assert.False(t, IsProductAvailable(p), "no in-stock variants left")

	simple := &models.Product{IsAvailable: true, Inventory: 1}
	assert.True(t, IsProductAvailable(simple))
	simple.Inventory = 0
	assert.False(t, IsProductAvailable(simple))
}

func TestListingPriceRange(t *testing.T) {
	p := shirtProduct()
	p.Variants = []models.Variant{
		{SKU: "A", Size: "S", PriceAdjustment: 0, Inventory: 1, IsAvailable: true},
		{SKU: "B", Size: "M", PriceAdjustment: 5, Inventory: 1, IsAvailable: true},
		{SKU: "C", Size: "L", PriceAdjustment: 10, Inventory: 1, IsAvailable: true},
	}

	r := ListingPriceRange(p)
	assert.Equal(t, "$20.00 - $30.00", r.String())
}

func TestListingPriceRangeSinglePrice(t *testing.T) {
	p := shirtProduct()
	p.Variants = []models.Variant{
		{SKU: "A", Size: "S", PriceAdjustment: 0, Inventory: 1, IsAvailable: true},
		{SKU: "B", Size: "M", PriceAdjustment: 0, Inventory: 1, IsAvailable: true},
	}

	assert.Equal(t, "$20.00", ListingPriceRange(p).String())
}

func TestListingPriceRangeSkipsUnavailableAndNonFinite(t *testing.T) {
	p := shirtProduct()
	p.Variants = []models.Variant{
		{SKU: "A", Size: "S", PriceAdjustment: 100, Inventory: 1, IsAvailable: false},
		{SKU: "B", Size: "M", PriceAdjustment: math.NaN(), Inventory: 1, IsAvailable: true},
		{SKU: "C", Size: "L", PriceAdjustment: 5, Inventory: 1, IsAvailable: true},
	}

	r := ListingPriceRange(p)
	assert.Equal(t, PriceRange{Min: 25, Max: 25}, r)
}

func TestListingPriceRangeFallsBackToBasePrice(t *testing.T) {
	p := shirtProduct()
	for i := range p.Variants {
		p.Variants[i].IsAvailable = false
	}

	assert.Equal(t, PriceRange{Min: 20, Max: 20}, ListingPriceRange(p))

	simple := &models.Product{BasePrice: 12.5}
	assert.Equal(t, "$12.50", ListingPriceRange(simple).String())
}
