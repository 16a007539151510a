// Package catalog implements the variant resolution engine: pure
// computation from (product, selection) to a resolved variant, price,
// image, and availability. It performs no I/O and holds no state, so
// it is safe to run on every selection change.
package catalog

import (
	"fmt"
	"math"

	"wookporium/internal/models"
)

// ResolveVariant reconciles the current selection against the
// product's variant list and derives price, image, purchasability,
// and displayable stock. Axes absent from the selection act as
// wildcards; when several variants satisfy a partial selection the
// first one in list order wins. Products without variants fall
// through to ResolveSimple.
func ResolveVariant(p *models.Product, sel models.Selection) models.ResolvedResult {
	if p == nil {
		return models.ResolvedResult{}
	}
	if !p.HasVariants || len(p.Variants) == 0 {
		return ResolveSimple(p)
	}

	var matched *models.Variant
	for i := range p.Variants {
		v := &p.Variants[i]
		if !withinTaxonomy(p.VariantOptions, *v) {
			// Out-of-taxonomy data entry: the variant never matches.
			continue
		}
		if matchesSelection(*v, sel, "") {
			matched = v
			break
		}
	}

	res := models.ResolvedResult{
		EffectivePrice: safeNumber(p.BasePrice),
	}
	if matched != nil {
		res.MatchedVariant = matched
		res.EffectivePrice = safeNumber(p.BasePrice) + safeNumber(matched.PriceAdjustment)
		res.AvailableStock = clampStock(matched.Inventory)
		res.IsPurchasable = p.IsAvailable && matched.IsAvailable && matched.Inventory > 0
	} else {
		res.AvailableStock = totalVariantStock(p)
	}
	res.DisplayImage = displayImage(p, matched)
	return res
}

// ResolveSimple derives the same result shape for a product with no
// variants, straight from its base price and inventory.
func ResolveSimple(p *models.Product) models.ResolvedResult {
	if p == nil {
		return models.ResolvedResult{}
	}
	return models.ResolvedResult{
		EffectivePrice: safeNumber(p.BasePrice),
		DisplayImage:   displayImage(p, nil),
		IsPurchasable:  p.IsAvailable && p.Inventory > 0,
		AvailableStock: clampStock(p.Inventory),
	}
}

// AvailableValuesForAxis returns the values of axis still reachable
// under the current selection: variants consistent with the selection
// on the other axes, in stock and available, distinct values in
// first-seen variant-list order. Values the taxonomy defines but no
// variant references are simply never returned.
func AvailableValuesForAxis(p *models.Product, sel models.Selection, axis string) []string {
	if p == nil || !p.HasVariants {
		return nil
	}
	allowed := p.VariantOptions.ForAxis(axis)
	if len(allowed) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(allowed))
	var values []string
	for _, v := range p.Variants {
		if !v.IsAvailable || v.Inventory <= 0 {
			continue
		}
		if !matchesSelection(v, sel, axis) {
			continue
		}
		val := v.AxisValue(axis)
		if val == "" || seen[val] || !containsValue(allowed, val) {
			continue
		}
		seen[val] = true
		values = append(values, val)
	}
	return values
}

// IsProductAvailable reports whether the product can possibly be
// purchased at all: available and, for variant products, carrying at
// least one in-stock available variant.
func IsProductAvailable(p *models.Product) bool {
	if p == nil || !p.IsAvailable {
		return false
	}
	if p.HasVariants {
		for _, v := range p.Variants {
			if v.IsAvailable && v.Inventory > 0 {
				return true
			}
		}
		return false
	}
	return p.Inventory > 0
}

// PriceRange is the min/max effective price across a product's
// available variants, used on listing views before any selection.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ListingPriceRange collects basePrice+adjustment over available
// variants, discarding non-finite results; an empty set falls back to
// the base price alone.
func ListingPriceRange(p *models.Product) PriceRange {
	base := safeNumber(p.BasePrice)
	if !p.HasVariants || len(p.Variants) == 0 {
		return PriceRange{Min: base, Max: base}
	}

	r := PriceRange{Min: math.Inf(1), Max: math.Inf(-1)}
	found := false
	for _, v := range p.Variants {
		if !v.IsAvailable {
			continue
		}
		price := base + v.PriceAdjustment
		if math.IsNaN(price) || math.IsInf(price, 0) {
			continue
		}
		found = true
		r.Min = math.Min(r.Min, price)
		r.Max = math.Max(r.Max, price)
	}
	if !found {
		return PriceRange{Min: base, Max: base}
	}
	return r
}

// String renders a single price when min equals max, otherwise a
// "min - max" range.
func (r PriceRange) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("$%.2f", r.Min)
	}
	return fmt.Sprintf("$%.2f - $%.2f", r.Min, r.Max)
}

// matchesSelection reports whether the variant satisfies every
// selected axis, ignoring the axis named by except (used when
// computing reachable values for that axis).
func matchesSelection(v models.Variant, sel models.Selection, except string) bool {
	for _, axis := range models.Axes {
		if axis == except {
			continue
		}
		want := sel.Value(axis)
		if want == "" {
			continue
		}
		if v.AxisValue(axis) != want {
			return false
		}
	}
	return true
}

// withinTaxonomy reports whether every defined axis value on the
// variant belongs to the product's option set for that axis.
func withinTaxonomy(opts models.VariantOptions, v models.Variant) bool {
	for _, axis := range models.Axes {
		val := v.AxisValue(axis)
		if val == "" {
			continue
		}
		if !containsValue(opts.ForAxis(axis), val) {
			return false
		}
	}
	return true
}

// totalVariantStock is the aggregate in-stock figure shown before a
// full selection is made.
func totalVariantStock(p *models.Product) int {
	total := 0
	for _, v := range p.Variants {
		if v.IsAvailable {
			total += clampStock(v.Inventory)
		}
	}
	return total
}

func displayImage(p *models.Product, matched *models.Variant) string {
	if matched != nil && matched.VariantImageURL != "" {
		return matched.VariantImageURL
	}
	if p.MainImageURL != "" {
		return p.MainImageURL
	}
	if len(p.GalleryImages) > 0 {
		return p.GalleryImages[0]
	}
	return ""
}

// safeNumber turns NaN and infinities into zero so an invalid numeric
// input can never propagate into a price.
func safeNumber(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func clampStock(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func containsValue(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
