package catalog

import (
	"math"
	"strings"

	"wookporium/internal/models"
)

// Normalize substitutes safe defaults for malformed content-author
// input so the engine can assume fully-defaulted values: non-finite or
// negative prices become zero, negative inventory becomes zero, and
// axis values are whitespace-trimmed. It mutates the product in place
// and returns it for chaining. Content from the provider is untrusted
// and frequently incomplete; the storefront degrades to "can't add to
// cart" rather than crash.
func Normalize(p *models.Product) *models.Product {
	if p == nil {
		return nil
	}

	p.BasePrice = clampPrice(p.BasePrice)
	p.CompareAtPrice = clampPrice(p.CompareAtPrice)
	p.Inventory = clampStock(p.Inventory)

	p.VariantOptions.Sizes = trimAll(p.VariantOptions.Sizes)
	p.VariantOptions.Colors = trimAll(p.VariantOptions.Colors)
	p.VariantOptions.Materials = trimAll(p.VariantOptions.Materials)
	p.VariantOptions.Styles = trimAll(p.VariantOptions.Styles)

	for i := range p.Variants {
		v := &p.Variants[i]
		v.SKU = strings.TrimSpace(v.SKU)
		v.Size = strings.TrimSpace(v.Size)
		v.Color = strings.TrimSpace(v.Color)
		v.Material = strings.TrimSpace(v.Material)
		v.Style = strings.TrimSpace(v.Style)
		if math.IsNaN(v.PriceAdjustment) || math.IsInf(v.PriceAdjustment, 0) {
			v.PriceAdjustment = 0
		}
		v.Inventory = clampStock(v.Inventory)
	}

	if p.HasVariants && len(p.Variants) == 0 {
		// Authored flag without any variant rows: treat as simple.
		p.HasVariants = false
	}

	return p
}

func clampPrice(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
