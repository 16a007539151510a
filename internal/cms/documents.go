package cms

import (
	"strings"

	"wookporium/internal/catalog"
	"wookporium/internal/models"
)

// Raw document shapes as the content repository returns them. The
// option taxonomy uses plural keys (sizes, colors, ...) which map to
// the singular axis fields used in matching.

type rawSlug struct {
	Current string `json:"current"`
}

type rawVariant struct {
	SKU             string  `json:"sku"`
	Name            string  `json:"name"`
	Size            string  `json:"size"`
	Color           string  `json:"color"`
	Material        string  `json:"material"`
	Style           string  `json:"style"`
	PriceAdjustment float64 `json:"priceAdjustment"`
	Inventory       int     `json:"inventory"`
	IsAvailable     bool    `json:"isAvailable"`
	VariantImageURL string  `json:"variantImageUrl"`
}

type rawVariantOptions struct {
	Sizes     []string `json:"sizes"`
	Colors    []string `json:"colors"`
	Materials []string `json:"materials"`
	Styles    []string `json:"styles"`
}

type rawBlock struct {
	Type     string `json:"_type"`
	Children []struct {
		Text string `json:"text"`
	} `json:"children"`
}

type rawProduct struct {
	ID                  string            `json:"_id"`
	Title               string            `json:"title"`
	Slug                rawSlug           `json:"slug"`
	Description         []rawBlock        `json:"description"`
	ShortDescription    string            `json:"shortDescription"`
	Price               float64           `json:"price"`
	CompareAtPrice      float64           `json:"compareAtPrice"`
	Inventory           int               `json:"inventory"`
	MainImageURL        string            `json:"mainImageUrl"`
	GalleryImages       []string          `json:"galleryImages"`
	Tags                []string          `json:"tags"`
	FestivalAttribution string            `json:"festivalAttribution"`
	InstagramPost       string            `json:"instagramPost"`
	HasVariants         bool              `json:"hasVariants"`
	VariantOptions      rawVariantOptions `json:"variantOptions"`
	Variants            []rawVariant      `json:"variants"`
	Materials           []string          `json:"materials"`
	CareInstructions    string            `json:"careInstructions"`
	TimeToMake          string            `json:"timeToMake"`
	ArtistNotes         string            `json:"artistNotes"`
	IsOneOfAKind        bool              `json:"isOneOfAKind"`
	IsAvailable         bool              `json:"isAvailable"`
}

func (r rawProduct) toModel() *models.Product {
	p := &models.Product{
		ID:                  r.ID,
		Slug:                r.Slug.Current,
		Title:               r.Title,
		ShortDescription:    r.ShortDescription,
		BasePrice:           r.Price,
		CompareAtPrice:      r.CompareAtPrice,
		Inventory:           r.Inventory,
		IsAvailable:         r.IsAvailable,
		HasVariants:         r.HasVariants,
		MainImageURL:        r.MainImageURL,
		GalleryImages:       r.GalleryImages,
		Tags:                r.Tags,
		FestivalAttribution: r.FestivalAttribution,
		InstagramPost:       r.InstagramPost,
		Materials:           r.Materials,
		CareInstructions:    r.CareInstructions,
		TimeToMake:          r.TimeToMake,
		ArtistNotes:         r.ArtistNotes,
		IsOneOfAKind:        r.IsOneOfAKind,
		VariantOptions: models.VariantOptions{
			Sizes:     r.VariantOptions.Sizes,
			Colors:    r.VariantOptions.Colors,
			Materials: r.VariantOptions.Materials,
			Styles:    r.VariantOptions.Styles,
		},
	}

	for _, block := range r.Description {
		if block.Type != "block" {
			continue
		}
		var texts []string
		for _, child := range block.Children {
			texts = append(texts, child.Text)
		}
		p.Description = append(p.Description, models.ContentBlock{
			Type: "paragraph",
			Text: strings.Join(texts, ""),
		})
	}

	for _, rv := range r.Variants {
		p.Variants = append(p.Variants, models.Variant{
			SKU:             rv.SKU,
			Name:            rv.Name,
			Size:            rv.Size,
			Color:           rv.Color,
			Material:        rv.Material,
			Style:           rv.Style,
			PriceAdjustment: rv.PriceAdjustment,
			Inventory:       rv.Inventory,
			IsAvailable:     rv.IsAvailable,
			VariantImageURL: rv.VariantImageURL,
		})
	}

	return catalog.Normalize(p)
}

func (r rawProduct) toCard() models.ProductCard {
	p := r.toModel()
	return models.ProductCard{
		ID:                  p.ID,
		Slug:                p.Slug,
		Title:               p.Title,
		ShortDescription:    p.ShortDescription,
		PriceDisplay:        catalog.ListingPriceRange(p).String(),
		MainImageURL:        p.MainImageURL,
		Tags:                p.Tags,
		FestivalAttribution: p.FestivalAttribution,
	}
}

type rawHeroImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type rawBrandSettings struct {
	LogoURL                string         `json:"logoUrl"`
	LogoText               string         `json:"logoText"`
	LogoIcon               string         `json:"logoIcon"`
	PrimaryColor           string         `json:"primaryColor"`
	SecondaryColor         string         `json:"secondaryColor"`
	BackgroundColor        string         `json:"backgroundColor"`
	SectionBackgroundColor string         `json:"sectionBackgroundColor"`
	HeroTitle              string         `json:"heroTitle"`
	HeroSubtitle           string         `json:"heroSubtitle"`
	HeroBackgroundImageURL string         `json:"heroBackgroundImageUrl"`
	HeroImages             []rawHeroImage `json:"heroImages"`
	ThemeStyle             string         `json:"themeStyle"`
	ButtonStyle            string         `json:"buttonStyle"`
	HeaderFont             string         `json:"headerFont"`
	BodyFont               string         `json:"bodyFont"`
	FontWeightStyle        string         `json:"fontWeightStyle"`
	FeaturedProducts       []rawProduct   `json:"featuredProducts"`
}

func (r rawBrandSettings) toModel() *models.BrandSettings {
	b := &models.BrandSettings{
		LogoURL:                r.LogoURL,
		LogoText:               r.LogoText,
		LogoIcon:               r.LogoIcon,
		PrimaryColor:           r.PrimaryColor,
		SecondaryColor:         r.SecondaryColor,
		BackgroundColor:        r.BackgroundColor,
		SectionBackgroundColor: r.SectionBackgroundColor,
		HeroTitle:              r.HeroTitle,
		HeroSubtitle:           r.HeroSubtitle,
		HeroBackgroundImageURL: r.HeroBackgroundImageURL,
		ThemeStyle:             r.ThemeStyle,
		ButtonStyle:            r.ButtonStyle,
		HeaderFont:             r.HeaderFont,
		BodyFont:               r.BodyFont,
		FontWeightStyle:        r.FontWeightStyle,
	}
	for _, img := range r.HeroImages {
		b.HeroImages = append(b.HeroImages, models.HeroImage{URL: img.URL, Alt: img.Alt})
	}
	for _, rp := range r.FeaturedProducts {
		b.FeaturedProducts = append(b.FeaturedProducts, rp.toCard())
	}
	return b
}

type rawValueItem struct {
	Emoji       string `json:"emoji"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LinkURL     string `json:"linkUrl"`
}

func toValueItems(raw []rawValueItem) []models.ValueItem {
	items := make([]models.ValueItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, models.ValueItem{
			Emoji:       r.Emoji,
			Icon:        r.Icon,
			Title:       r.Title,
			Description: r.Description,
			LinkURL:     r.LinkURL,
		})
	}
	return items
}

type rawHomepageContent struct {
	ValuesSectionTitle      string         `json:"valuesSectionTitle"`
	Values                  []rawValueItem `json:"values"`
	CollectionsSectionTitle string         `json:"collectionsSectionTitle"`
	Collections             []rawValueItem `json:"collections"`
	PrimaryButtonText       string         `json:"primaryButtonText"`
	PrimaryButtonURL        string         `json:"primaryButtonUrl"`
	SecondaryButtonText     string         `json:"secondaryButtonText"`
	SecondaryButtonURL      string         `json:"secondaryButtonUrl"`
	FooterDescription       string         `json:"footerDescription"`
}

func (r rawHomepageContent) toModel() *models.HomepageContent {
	return &models.HomepageContent{
		ValuesSectionTitle:      r.ValuesSectionTitle,
		Values:                  toValueItems(r.Values),
		CollectionsSectionTitle: r.CollectionsSectionTitle,
		Collections:             toValueItems(r.Collections),
		PrimaryButtonText:       r.PrimaryButtonText,
		PrimaryButtonURL:        r.PrimaryButtonURL,
		SecondaryButtonText:     r.SecondaryButtonText,
		SecondaryButtonURL:      r.SecondaryButtonURL,
		FooterDescription:       r.FooterDescription,
	}
}

type rawAboutPageContent struct {
	PageTitle    string `json:"pageTitle"`
	PageSubtitle string `json:"pageSubtitle"`
	StoryTitle   string `json:"storyTitle"`
	StoryContent []struct {
		Paragraph string `json:"paragraph"`
	} `json:"storyContent"`
	Values              []rawValueItem `json:"values"`
	SpecialSectionTitle string         `json:"specialSectionTitle"`
	SpecialItems        []rawValueItem `json:"specialItems"`
	CTATitle            string         `json:"ctaTitle"`
	CTADescription      string         `json:"ctaDescription"`
	PrimaryButtonText   string         `json:"primaryButtonText"`
	PrimaryButtonURL    string         `json:"primaryButtonUrl"`
	SecondaryButtonText string         `json:"secondaryButtonText"`
	SecondaryButtonURL  string         `json:"secondaryButtonUrl"`
}

func (r rawAboutPageContent) toModel() *models.AboutPageContent {
	about := &models.AboutPageContent{
		PageTitle:           r.PageTitle,
		PageSubtitle:        r.PageSubtitle,
		StoryTitle:          r.StoryTitle,
		Values:              toValueItems(r.Values),
		SpecialSectionTitle: r.SpecialSectionTitle,
		SpecialItems:        toValueItems(r.SpecialItems),
		CTATitle:            r.CTATitle,
		CTADescription:      r.CTADescription,
		PrimaryButtonText:   r.PrimaryButtonText,
		PrimaryButtonURL:    r.PrimaryButtonURL,
		SecondaryButtonText: r.SecondaryButtonText,
		SecondaryButtonURL:  r.SecondaryButtonURL,
	}
	for _, block := range r.StoryContent {
		if block.Paragraph != "" {
			about.StoryParagraphs = append(about.StoryParagraphs, block.Paragraph)
		}
	}
	return about
}

type rawLinksPageContent struct {
	PageTitle       string `json:"pageTitle"`
	PageDescription string `json:"pageDescription"`
	LinkCategories  []struct {
		Title string `json:"title"`
		Emoji string `json:"emoji"`
		Links []struct {
			Name        string `json:"name"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"links"`
	} `json:"linkCategories"`
	CTATitle       string `json:"ctaTitle"`
	CTADescription string `json:"ctaDescription"`
	CTAButtonText  string `json:"ctaButtonText"`
	CTAButtonURL   string `json:"ctaButtonUrl"`
	DisclaimerText string `json:"disclaimerText"`
}

func (r rawLinksPageContent) toModel() *models.LinksPageContent {
	links := &models.LinksPageContent{
		PageTitle:       r.PageTitle,
		PageDescription: r.PageDescription,
		CTATitle:        r.CTATitle,
		CTADescription:  r.CTADescription,
		CTAButtonText:   r.CTAButtonText,
		CTAButtonURL:    r.CTAButtonURL,
		DisclaimerText:  r.DisclaimerText,
	}
	for _, rc := range r.LinkCategories {
		cat := models.LinkCategory{Title: rc.Title, Emoji: rc.Emoji}
		for _, rl := range rc.Links {
			cat.Links = append(cat.Links, models.LinkEntry{
				Name:        rl.Name,
				URL:         rl.URL,
				Description: rl.Description,
			})
		}
		links.LinkCategories = append(links.LinkCategories, cat)
	}
	return links
}
