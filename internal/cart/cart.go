// Package cart builds the attribute set the external checkout widget
// consumes. The widget owns the whole cart and payment flow; this
// package only serializes a resolved product into its line-item
// contract.
package cart

import (
	"fmt"
	"strconv"
	"strings"

	"wookporium/internal/models"
)

// Item is one add-to-cart payload. Attributes renders it as the
// data-item-* map embedded on the storefront button.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url,omitempty"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	// Options is the serialized selection recorded on the merchant's
	// order, e.g. "size: M | color: Red".
	Options  string `json:"options,omitempty"`
	MaxStock int    `json:"max_stock"`
	// Disabled mirrors purchasability: the handoff button must never
	// be clickable when the item cannot be bought.
	Disabled bool `json:"disabled"`
}

// BuildItem assembles the checkout handoff for a product and its
// resolved selection. For variant products the item ID is the
// composite productID-sku so two variants of one product stay
// distinct line items in the widget; res may be nil for simple
// products.
func BuildItem(p *models.Product, res *models.ResolvedResult, sel models.Selection, baseURL string) Item {
	item := Item{
		ID:          p.ID,
		Name:        p.Title,
		Price:       p.BasePrice,
		URL:         productURL(baseURL, p.Slug),
		ImageURL:    p.MainImageURL,
		Description: p.ShortDescription,
		Categories:  p.Tags,
		MaxStock:    p.Inventory,
		Disabled:    !(p.IsAvailable && p.Inventory > 0),
	}
	if item.Description == "" {
		item.Description = p.Title
	}
	if item.ImageURL == "" && len(p.GalleryImages) > 0 {
		item.ImageURL = p.GalleryImages[0]
	}

	if !p.HasVariants || res == nil {
		return item
	}

	item.Price = res.EffectivePrice
	item.Disabled = !res.IsPurchasable
	item.MaxStock = res.AvailableStock
	if res.DisplayImage != "" {
		item.ImageURL = res.DisplayImage
	}
	item.Options = SerializeSelection(sel)

	if v := res.MatchedVariant; v != nil {
		if v.SKU != "" {
			item.ID = p.ID + "-" + v.SKU
		}
		if v.Name != "" {
			item.Name = fmt.Sprintf("%s (%s)", p.Title, v.Name)
		}
	}
	return item
}

// Attributes renders the item as checkout-widget button attributes.
func (i Item) Attributes() map[string]string {
	attrs := map[string]string{
		"data-item-id":           i.ID,
		"data-item-name":         i.Name,
		"data-item-price":        strconv.FormatFloat(i.Price, 'f', 2, 64),
		"data-item-url":          i.URL,
		"data-item-max-quantity": strconv.Itoa(i.MaxStock),
	}
	if i.ImageURL != "" {
		attrs["data-item-image"] = i.ImageURL
	}
	if i.Description != "" {
		attrs["data-item-description"] = i.Description
	}
	if len(i.Categories) > 0 {
		attrs["data-item-categories"] = strings.Join(i.Categories, ",")
	}
	if i.Options != "" {
		attrs["data-item-custom1-name"] = "Options"
		attrs["data-item-custom1-value"] = i.Options
	}
	return attrs
}

// SerializeSelection renders the selected axis values in canonical
// axis order for the merchant's order record.
func SerializeSelection(sel models.Selection) string {
	var parts []string
	for _, axis := range models.Axes {
		if val := sel.Value(axis); val != "" {
			parts = append(parts, axis+": "+val)
		}
	}
	return strings.Join(parts, " | ")
}

// ParseCompositeID splits a composite line-item identifier back into
// product ID and SKU. The split at the first hyphen is best-effort;
// callers keep the raw ID authoritative for record keeping.
func ParseCompositeID(id string) (productID, sku string) {
	productID, sku, _ = strings.Cut(id, "-")
	return productID, sku
}

func productURL(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/products/" + slug
}
