package catalog

import (
	"fmt"
	"strings"

	"wookporium/internal/models"
)

// Finding codes reported by Validate.
const (
	FindingDuplicateSKU         = "duplicate-sku"
	FindingDuplicateCombination = "duplicate-combination"
	FindingOutOfTaxonomy        = "out-of-taxonomy"
	FindingNegativeInventory    = "negative-inventory"
	FindingUnreferencedOption   = "unreferenced-option"
)

// Finding is one data-quality issue in a product's variant data,
// surfaced to the content-authoring side. The engine itself tolerates
// all of these; duplicates in particular just resolve to the first
// variant in list order.
type Finding struct {
	Code    string `json:"code"`
	SKU     string `json:"sku,omitempty"`
	Axis    string `json:"axis,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Validate inspects a product's variant data for authoring mistakes:
// duplicate SKUs, two variants sharing the exact same axis
// combination, axis values missing from the option taxonomy, negative
// inventory, and taxonomy values no variant references.
func Validate(p *models.Product) []Finding {
	if p == nil || !p.HasVariants {
		return nil
	}

	var findings []Finding
	seenSKU := make(map[string]bool, len(p.Variants))
	seenCombo := make(map[string]string, len(p.Variants))

	for _, v := range p.Variants {
		if v.SKU != "" {
			if seenSKU[v.SKU] {
				findings = append(findings, Finding{
					Code:    FindingDuplicateSKU,
					SKU:     v.SKU,
					Message: fmt.Sprintf("SKU %q appears more than once", v.SKU),
				})
			}
			seenSKU[v.SKU] = true
		}

		combo := comboKey(v)
		if first, ok := seenCombo[combo]; ok {
			findings = append(findings, Finding{
				Code: FindingDuplicateCombination,
				SKU:  v.SKU,
				Message: fmt.Sprintf("variant %q repeats the option combination of %q; the first in list order wins",
					v.SKU, first),
			})
		} else {
			seenCombo[combo] = v.SKU
		}

		for _, axis := range models.Axes {
			val := v.AxisValue(axis)
			if val == "" {
				continue
			}
			if !containsValue(p.VariantOptions.ForAxis(axis), val) {
				findings = append(findings, Finding{
					Code:    FindingOutOfTaxonomy,
					SKU:     v.SKU,
					Axis:    axis,
					Value:   val,
					Message: fmt.Sprintf("variant %q uses %s %q which is not in the product's options; it will never match a selection", v.SKU, axis, val),
				})
			}
		}

		if v.Inventory < 0 {
			findings = append(findings, Finding{
				Code:    FindingNegativeInventory,
				SKU:     v.SKU,
				Message: fmt.Sprintf("variant %q has negative inventory", v.SKU),
			})
		}
	}

	for _, axis := range p.VariantOptions.DefinedAxes() {
		for _, val := range p.VariantOptions.ForAxis(axis) {
			if !anyVariantUses(p.Variants, axis, val) {
				findings = append(findings, Finding{
					Code:    FindingUnreferencedOption,
					Axis:    axis,
					Value:   val,
					Message: fmt.Sprintf("option %s %q is defined but no variant references it; the button stays permanently disabled", axis, val),
				})
			}
		}
	}

	return findings
}

func comboKey(v models.Variant) string {
	parts := make([]string, 0, len(models.Axes))
	for _, axis := range models.Axes {
		parts = append(parts, v.AxisValue(axis))
	}
	return strings.Join(parts, "\x00")
}

func anyVariantUses(variants []models.Variant, axis, val string) bool {
	for _, v := range variants {
		if v.AxisValue(axis) == val {
			return true
		}
	}
	return false
}
