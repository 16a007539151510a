package cms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wookporium/internal/models"
	"wookporium/internal/storecache"
	"wookporium/internal/util"

	"go.uber.org/zap"
)

// Cache keys. One key per document; products are additionally keyed
// by slug.
const (
	keyProducts = "content:products"
	keyProduct  = "content:product:" // + slug
	keyBrand    = "content:brand"
	keyHomepage = "content:homepage"
	keyAbout    = "content:about"
	keyLinks    = "content:links"
)

// Service fetches content documents through the cache-aside Redis
// layer and shapes them into view models.
type Service struct {
	client *Client
	cache  *storecache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates a content service. cache may be nil, in which
// case every read goes straight to the content API.
func NewService(client *Client, cache *storecache.Cache, ttl time.Duration) *Service {
	return &Service{
		client: client,
		cache:  cache,
		ttl:    ttl,
		logger: util.GetLogger(),
	}
}

// Products returns the listing cards for all available products,
// newest first, with their price range already rendered.
func (s *Service) Products(ctx context.Context) ([]models.ProductCard, error) {
	ctx, span := util.StartSpan(ctx, "cms.Products")
	defer span.End()

	var cards []models.ProductCard
	if s.cacheGet(ctx, keyProducts, "products", &cards) {
		return cards, nil
	}

	var raw []rawProduct
	if err := s.client.Query(ctx, productListQuery, nil, &raw); err != nil {
		if errors.Is(err, ErrNotFound) {
			// An empty catalog is a valid state.
			return []models.ProductCard{}, nil
		}
		util.ContentFetchesTotal.WithLabelValues("products", "error").Inc()
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	util.ContentFetchesTotal.WithLabelValues("products", "ok").Inc()

	cards = make([]models.ProductCard, 0, len(raw))
	for _, rp := range raw {
		cards = append(cards, rp.toCard())
	}

	s.cacheSet(ctx, keyProducts, cards)
	return cards, nil
}

// ProductBySlug returns one fully normalized product, or ErrNotFound
// for an unknown slug.
func (s *Service) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	ctx, span := util.StartSpanWithSlug(ctx, "cms.ProductBySlug", slug)
	defer span.End()

	key := keyProduct + slug
	var cached models.Product
	if s.cacheGet(ctx, key, "product", &cached) {
		return &cached, nil
	}

	var raw rawProduct
	err := s.client.Query(ctx, productBySlugQuery, map[string]string{"slug": slug}, &raw)
	if errors.Is(err, ErrNotFound) {
		util.ContentFetchesTotal.WithLabelValues("product", "not_found").Inc()
		return nil, ErrNotFound
	}
	if err != nil {
		util.ContentFetchesTotal.WithLabelValues("product", "error").Inc()
		return nil, fmt.Errorf("fetch product %s: %w", slug, err)
	}
	util.ContentFetchesTotal.WithLabelValues("product", "ok").Inc()

	p := raw.toModel()
	s.cacheSet(ctx, key, p)
	return p, nil
}

// BrandSettings returns the merchant's brand document. A missing
// document resolves to zero-value settings so the storefront renders
// with defaults.
func (s *Service) BrandSettings(ctx context.Context) (*models.BrandSettings, error) {
	ctx, span := util.StartSpan(ctx, "cms.BrandSettings")
	defer span.End()

	var cached models.BrandSettings
	if s.cacheGet(ctx, keyBrand, "brand", &cached) {
		return &cached, nil
	}

	var raw rawBrandSettings
	err := s.client.Query(ctx, brandSettingsQuery, nil, &raw)
	if errors.Is(err, ErrNotFound) {
		return &models.BrandSettings{}, nil
	}
	if err != nil {
		util.ContentFetchesTotal.WithLabelValues("brand", "error").Inc()
		return nil, fmt.Errorf("fetch brand settings: %w", err)
	}
	util.ContentFetchesTotal.WithLabelValues("brand", "ok").Inc()

	b := raw.toModel()
	s.cacheSet(ctx, keyBrand, b)
	return b, nil
}

// HomepageContent returns the editable homepage copy.
func (s *Service) HomepageContent(ctx context.Context) (*models.HomepageContent, error) {
	var cached models.HomepageContent
	if s.cacheGet(ctx, keyHomepage, "homepage", &cached) {
		return &cached, nil
	}

	var raw rawHomepageContent
	err := s.client.Query(ctx, homepageContentQuery, nil, &raw)
	if errors.Is(err, ErrNotFound) {
		return &models.HomepageContent{}, nil
	}
	if err != nil {
		util.ContentFetchesTotal.WithLabelValues("homepage", "error").Inc()
		return nil, fmt.Errorf("fetch homepage content: %w", err)
	}
	util.ContentFetchesTotal.WithLabelValues("homepage", "ok").Inc()

	content := raw.toModel()
	s.cacheSet(ctx, keyHomepage, content)
	return content, nil
}

// AboutPageContent returns the editable about-page copy, or
// ErrNotFound when the page has not been authored.
func (s *Service) AboutPageContent(ctx context.Context) (*models.AboutPageContent, error) {
	var cached models.AboutPageContent
	if s.cacheGet(ctx, keyAbout, "about", &cached) {
		return &cached, nil
	}

	var raw rawAboutPageContent
	if err := s.client.Query(ctx, aboutPageContentQuery, nil, &raw); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		util.ContentFetchesTotal.WithLabelValues("about", "error").Inc()
		return nil, fmt.Errorf("fetch about page: %w", err)
	}
	util.ContentFetchesTotal.WithLabelValues("about", "ok").Inc()

	content := raw.toModel()
	s.cacheSet(ctx, keyAbout, content)
	return content, nil
}

// LinksPageContent returns the editable links-page copy, or
// ErrNotFound when the page has not been authored.
func (s *Service) LinksPageContent(ctx context.Context) (*models.LinksPageContent, error) {
	var cached models.LinksPageContent
	if s.cacheGet(ctx, keyLinks, "links", &cached) {
		return &cached, nil
	}

	var raw rawLinksPageContent
	if err := s.client.Query(ctx, linksPageContentQuery, nil, &raw); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		util.ContentFetchesTotal.WithLabelValues("links", "error").Inc()
		return nil, fmt.Errorf("fetch links page: %w", err)
	}
	util.ContentFetchesTotal.WithLabelValues("links", "ok").Inc()

	content := raw.toModel()
	s.cacheSet(ctx, keyLinks, content)
	return content, nil
}

// HomepageData aggregates brand settings, homepage copy, and product
// cards in one shot. Featured products come from brand settings when
// authored, otherwise the six most recent products; the four most
// recent double as new arrivals.
func (s *Service) HomepageData(ctx context.Context) (*models.HomepageData, error) {
	ctx, span := util.StartSpan(ctx, "cms.HomepageData")
	defer span.End()

	brand, err := s.BrandSettings(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.HomepageContent(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	featured := brand.FeaturedProducts
	if len(featured) == 0 {
		featured = firstN(cards, 6)
	}

	return &models.HomepageData{
		BrandSettings:    brand,
		HomepageContent:  content,
		FeaturedProducts: featured,
		NewArrivals:      firstN(cards, 4),
	}, nil
}

// InvalidateFor drops the cache entries affected by a content change.
// Product edits also drop the listing and homepage aggregates; brand
// edits drop everything theme-related.
func (s *Service) InvalidateFor(ctx context.Context, documentType, slug string) {
	if s.cache == nil {
		return
	}

	var keys []string
	switch documentType {
	case "product":
		keys = []string{keyProducts, keyBrand}
		if slug != "" {
			keys = append(keys, keyProduct+slug)
		}
	case "brandSettings":
		keys = []string{keyBrand}
	case "homepageContent":
		keys = []string{keyHomepage}
	case "aboutPageContent":
		keys = []string{keyAbout}
	case "linksPageContent":
		keys = []string{keyLinks}
	default:
		// Unknown document type: drop the whole content keyspace.
		if err := s.cache.InvalidatePrefix(ctx, "content:"); err != nil {
			s.logger.Error("Failed to invalidate content cache", zap.Error(err))
			return
		}
		util.ContentInvalidationsTotal.Inc()
		return
	}

	if documentType == "product" && slug == "" {
		// Without a slug we cannot name the product key; drop them all.
		if err := s.cache.InvalidatePrefix(ctx, keyProduct); err != nil {
			s.logger.Error("Failed to invalidate product cache", zap.Error(err))
		}
	}

	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Error("Failed to invalidate content cache",
			zap.String("document_type", documentType),
			zap.Error(err))
		return
	}
	util.ContentInvalidationsTotal.Inc()
	s.logger.Info("Content cache invalidated",
		zap.String("document_type", documentType),
		zap.String("slug", slug))
}

func (s *Service) cacheGet(ctx context.Context, key, kind string, v interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, v)
	if err != nil {
		s.logger.Warn("Content cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if hit {
		util.ContentCacheHitsTotal.WithLabelValues(kind).Inc()
	} else {
		util.ContentCacheMissesTotal.WithLabelValues(kind).Inc()
	}
	return hit
}

func (s *Service) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v, s.ttl); err != nil {
		s.logger.Warn("Content cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func firstN(cards []models.ProductCard, n int) []models.ProductCard {
	if len(cards) < n {
		n = len(cards)
	}
	return cards[:n]
}
