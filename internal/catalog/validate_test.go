package catalog

import (
	"testing"

	"wookporium/internal/models"

	"github.com/stretchr/testify/assert"
)

func findingCodes(findings []Finding) []string {
	codes := make([]string, 0, len(findings))
	for _, f := range findings {
		codes = append(codes, f.Code)
	}
	return codes
}

func TestValidateCleanProduct(t *testing.T) {
	p := &models.Product{
		HasVariants:    true,
		VariantOptions: models.VariantOptions{Sizes: []string{"S", "M"}},
		Variants: []models.Variant{
			{SKU: "A", Size: "S", Inventory: 1, IsAvailable: true},
			{SKU: "B", Size: "M", Inventory: 1, IsAvailable: true},
		},
	}

	assert.Empty(t, Validate(p))
}

func TestValidateDuplicateCombination(t *testing.T) {
	p := &models.Product{
		HasVariants:    true,
		VariantOptions: models.VariantOptions{Sizes: []string{"S"}},
		Variants: []models.Variant{
			{SKU: "A", Size: "S", Inventory: 1},
			{SKU: "B", Size: "S", Inventory: 1},
		},
	}

	codes := findingCodes(Validate(p))
	assert.Contains(t, codes, FindingDuplicateCombination)
}

func TestValidateDuplicateSKU(t *testing.T) {
	p := &models.Product{
		HasVariants:    true,
		VariantOptions: models.VariantOptions{Sizes: []string{"S", "M"}},
		Variants: []models.Variant{
			{SKU: "A", Size: "S"},
			{SKU: "A", Size: "M"},
		},
	}

	codes := findingCodes(Validate(p))
	assert.Contains(t, codes, FindingDuplicateSKU)
}

func TestValidateOutOfTaxonomyAndUnreferenced(t *testing.T) {
	p := &models.Product{
		HasVariants:    true,
		VariantOptions: models.VariantOptions{Sizes: []string{"S", "L"}},
		Variants: []models.Variant{
			{SKU: "A", Size: "S"},
			{SKU: "B", Size: "XL"},
		},
	}

	findings := Validate(p)
	codes := findingCodes(findings)
	assert.Contains(t, codes, FindingOutOfTaxonomy)
	assert.Contains(t, codes, FindingUnreferencedOption)

	for _, f := range findings {
		if f.Code == FindingUnreferencedOption {
			assert.Equal(t, "L", f.Value)
		}
	}
}

func TestValidateSimpleProductHasNoFindings(t *testing.T) {
	assert.Nil(t, Validate(&models.Product{Inventory: 3}))
	assert.Nil(t, Validate(nil))
}
