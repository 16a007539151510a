package models

import "time"

// Axis names for product variation. These are the singular field names
// used in variant matching; the content provider stores the option
// taxonomy under plural keys and the ingest layer maps between them.
const (
	AxisSize     = "size"
	AxisColor    = "color"
	AxisMaterial = "material"
	AxisStyle    = "style"
)

// Axes lists the variation axes in their canonical display order.
var Axes = []string{AxisSize, AxisColor, AxisMaterial, AxisStyle}

// Product is one catalog item, fully normalized from the content
// provider. All optional fields are defaulted at ingest so consumers
// never see NaN prices or negative inventory.
type Product struct {
	ID                  string         `json:"id"`
	Slug                string         `json:"slug"`
	Title               string         `json:"title"`
	ShortDescription    string         `json:"short_description,omitempty"`
	Description         []ContentBlock `json:"description,omitempty"`
	BasePrice           float64        `json:"base_price"`
	CompareAtPrice      float64        `json:"compare_at_price,omitempty"`
	Inventory           int            `json:"inventory"`
	IsAvailable         bool           `json:"is_available"`
	HasVariants         bool           `json:"has_variants"`
	VariantOptions      VariantOptions `json:"variant_options"`
	Variants            []Variant      `json:"variants,omitempty"`
	MainImageURL        string         `json:"main_image_url,omitempty"`
	GalleryImages       []string       `json:"gallery_images,omitempty"`
	Tags                []string       `json:"tags,omitempty"`
	FestivalAttribution string         `json:"festival_attribution,omitempty"`
	InstagramPost       string         `json:"instagram_post,omitempty"`
	Materials           []string       `json:"materials,omitempty"`
	CareInstructions    string         `json:"care_instructions,omitempty"`
	TimeToMake          string         `json:"time_to_make,omitempty"`
	ArtistNotes         string         `json:"artist_notes,omitempty"`
	IsOneOfAKind        bool           `json:"is_one_of_a_kind,omitempty"`
}

// ContentBlock is one paragraph of rich-text description authored in
// the content studio. Only plain text is carried through.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// VariantOptions is the option taxonomy for a variant-bearing product:
// up to four named axes, each a set of allowed values.
type VariantOptions struct {
	Sizes     []string `json:"sizes,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Materials []string `json:"materials,omitempty"`
	Styles    []string `json:"styles,omitempty"`
}

// ForAxis returns the allowed values for one axis.
func (o VariantOptions) ForAxis(axis string) []string {
	switch axis {
	case AxisSize:
		return o.Sizes
	case AxisColor:
		return o.Colors
	case AxisMaterial:
		return o.Materials
	case AxisStyle:
		return o.Styles
	}
	return nil
}

// DefinedAxes returns the axes that have at least one allowed value.
func (o VariantOptions) DefinedAxes() []string {
	axes := make([]string, 0, len(Axes))
	for _, axis := range Axes {
		if len(o.ForAxis(axis)) > 0 {
			axes = append(axes, axis)
		}
	}
	return axes
}

// Variant is one concrete SKU of a variant-bearing product. Axis
// values are empty when the axis does not apply to this variant.
type Variant struct {
	SKU             string  `json:"sku"`
	Name            string  `json:"name,omitempty"`
	Size            string  `json:"size,omitempty"`
	Color           string  `json:"color,omitempty"`
	Material        string  `json:"material,omitempty"`
	Style           string  `json:"style,omitempty"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Inventory       int     `json:"inventory"`
	IsAvailable     bool    `json:"is_available"`
	VariantImageURL string  `json:"variant_image_url,omitempty"`
}

// AxisValue returns the variant's value for one axis, or "" when the
// axis is absent.
func (v Variant) AxisValue(axis string) string {
	switch axis {
	case AxisSize:
		return v.Size
	case AxisColor:
		return v.Color
	case AxisMaterial:
		return v.Material
	case AxisStyle:
		return v.Style
	}
	return ""
}

// Selection is the user's in-progress choice of option values on a
// product detail view. An empty string means the axis is unselected
// and acts as a wildcard during matching.
type Selection struct {
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
	Material string `json:"material,omitempty"`
	Style    string `json:"style,omitempty"`
}

// Value returns the selected value for one axis, or "" when none.
func (s Selection) Value(axis string) string {
	switch axis {
	case AxisSize:
		return s.Size
	case AxisColor:
		return s.Color
	case AxisMaterial:
		return s.Material
	case AxisStyle:
		return s.Style
	}
	return ""
}

// IsEmpty reports whether no axis has been selected.
func (s Selection) IsEmpty() bool {
	return s.Size == "" && s.Color == "" && s.Material == "" && s.Style == ""
}

// ResolvedResult is the engine's output for one (product, selection)
// pair, recomputed on every selection change.
type ResolvedResult struct {
	MatchedVariant *Variant `json:"matched_variant,omitempty"`
	EffectivePrice float64  `json:"effective_price"`
	DisplayImage   string   `json:"display_image,omitempty"`
	IsPurchasable  bool     `json:"is_purchasable"`
	AvailableStock int      `json:"available_stock"`
}

// ProductCard is the trimmed product shape used on listing views.
type ProductCard struct {
	ID                  string   `json:"id"`
	Slug                string   `json:"slug"`
	Title               string   `json:"title"`
	ShortDescription    string   `json:"short_description,omitempty"`
	PriceDisplay        string   `json:"price_display"`
	MainImageURL        string   `json:"main_image_url,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	FestivalAttribution string   `json:"festival_attribution,omitempty"`
}

// BrandSettings is the merchant-authored brand document: logo, colors,
// theme and font choices, hero content, and featured products.
type BrandSettings struct {
	LogoURL                string        `json:"logo_url,omitempty"`
	LogoText               string        `json:"logo_text,omitempty"`
	LogoIcon               string        `json:"logo_icon,omitempty"`
	PrimaryColor           string        `json:"primary_color,omitempty"`
	SecondaryColor         string        `json:"secondary_color,omitempty"`
	BackgroundColor        string        `json:"background_color,omitempty"`
	SectionBackgroundColor string        `json:"section_background_color,omitempty"`
	HeroTitle              string        `json:"hero_title,omitempty"`
	HeroSubtitle           string        `json:"hero_subtitle,omitempty"`
	HeroBackgroundImageURL string        `json:"hero_background_image_url,omitempty"`
	HeroImages             []HeroImage   `json:"hero_images,omitempty"`
	ThemeStyle             string        `json:"theme_style,omitempty"`
	ButtonStyle            string        `json:"button_style,omitempty"`
	HeaderFont             string        `json:"header_font,omitempty"`
	BodyFont               string        `json:"body_font,omitempty"`
	FontWeightStyle        string        `json:"font_weight_style,omitempty"`
	FeaturedProducts       []ProductCard `json:"featured_products,omitempty"`
}

// HeroImage is one image in the homepage hero carousel.
type HeroImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// ValueItem is one emoji/title/description block used on the homepage
// and about page.
type ValueItem struct {
	Emoji       string `json:"emoji,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	LinkURL     string `json:"link_url,omitempty"`
}

// HomepageContent is the editable homepage copy.
type HomepageContent struct {
	ValuesSectionTitle      string      `json:"values_section_title,omitempty"`
	Values                  []ValueItem `json:"values,omitempty"`
	CollectionsSectionTitle string      `json:"collections_section_title,omitempty"`
	Collections             []ValueItem `json:"collections,omitempty"`
	PrimaryButtonText       string      `json:"primary_button_text,omitempty"`
	PrimaryButtonURL        string      `json:"primary_button_url,omitempty"`
	SecondaryButtonText     string      `json:"secondary_button_text,omitempty"`
	SecondaryButtonURL      string      `json:"secondary_button_url,omitempty"`
	FooterDescription       string      `json:"footer_description,omitempty"`
}

// AboutPageContent is the editable about-page copy.
type AboutPageContent struct {
	PageTitle           string      `json:"page_title,omitempty"`
	PageSubtitle        string      `json:"page_subtitle,omitempty"`
	StoryTitle          string      `json:"story_title,omitempty"`
	StoryParagraphs     []string    `json:"story_paragraphs,omitempty"`
	Values              []ValueItem `json:"values,omitempty"`
	SpecialSectionTitle string      `json:"special_section_title,omitempty"`
	SpecialItems        []ValueItem `json:"special_items,omitempty"`
	CTATitle            string      `json:"cta_title,omitempty"`
	CTADescription      string      `json:"cta_description,omitempty"`
	PrimaryButtonText   string      `json:"primary_button_text,omitempty"`
	PrimaryButtonURL    string      `json:"primary_button_url,omitempty"`
	SecondaryButtonText string      `json:"secondary_button_text,omitempty"`
	SecondaryButtonURL  string      `json:"secondary_button_url,omitempty"`
}

// LinkEntry is one outbound link on the links page.
type LinkEntry struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// LinkCategory groups links under an emoji heading.
type LinkCategory struct {
	Title string      `json:"title"`
	Emoji string      `json:"emoji,omitempty"`
	Links []LinkEntry `json:"links,omitempty"`
}

// LinksPageContent is the editable links-page copy.
type LinksPageContent struct {
	PageTitle       string         `json:"page_title,omitempty"`
	PageDescription string         `json:"page_description,omitempty"`
	LinkCategories  []LinkCategory `json:"link_categories,omitempty"`
	CTATitle        string         `json:"cta_title,omitempty"`
	CTADescription  string         `json:"cta_description,omitempty"`
	CTAButtonText   string         `json:"cta_button_text,omitempty"`
	CTAButtonURL    string         `json:"cta_button_url,omitempty"`
	DisclaimerText  string         `json:"disclaimer_text,omitempty"`
}

// HomepageData aggregates everything the homepage renders in one shot.
type HomepageData struct {
	BrandSettings    *BrandSettings   `json:"brand_settings,omitempty"`
	HomepageContent  *HomepageContent `json:"homepage_content,omitempty"`
	FeaturedProducts []ProductCard    `json:"featured_products"`
	NewArrivals      []ProductCard    `json:"new_arrivals"`
}

// OrderRecord is the merchant-side record of an order completed in the
// external checkout widget, captured from its webhook. Checkout and
// payment themselves happen entirely outside this service.
type OrderRecord struct {
	ID            int64     `db:"id" json:"id"`
	Token         string    `db:"token" json:"token"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	Email         string    `db:"email" json:"email,omitempty"`
	Total         float64   `db:"total" json:"total"`
	Currency      string    `db:"currency" json:"currency"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// OrderLineItem is one line of an OrderRecord. ItemID is the composite
// identifier emitted by the cart handoff (product ID, or product ID
// plus SKU for variant items); ProductID and SKU are the best-effort
// split of that composite, with ItemID staying authoritative.
type OrderLineItem struct {
	ID        int64   `db:"id" json:"id"`
	OrderID   int64   `db:"order_id" json:"order_id"`
	ItemID    string  `db:"item_id" json:"item_id"`
	ProductID string  `db:"product_id" json:"product_id"`
	SKU       string  `db:"sku" json:"sku,omitempty"`
	Name      string  `db:"name" json:"name"`
	Quantity  int     `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
	Options   string  `db:"options" json:"options,omitempty"`
}

// Order record statuses.
const (
	OrderRecordStatusProcessed = "PROCESSED"
	OrderRecordStatusDuplicate = "DUPLICATE"
)
