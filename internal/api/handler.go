package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"wookporium/internal/broker"
	"wookporium/internal/cart"
	"wookporium/internal/catalog"
	"wookporium/internal/cms"
	"wookporium/internal/models"
	"wookporium/internal/orders"
	"wookporium/internal/theme"
	"wookporium/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler contains HTTP handlers
type Handler struct {
	content   *cms.Service
	orders    *orders.Service
	publisher *broker.EventPublisher
	siteURL   string
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(content *cms.Service, orderService *orders.Service, publisher *broker.EventPublisher, siteURL string) *Handler {
	return &Handler{
		content:   content,
		orders:    orderService,
		publisher: publisher,
		siteURL:   siteURL,
		logger:    util.GetLogger(),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:slug", h.getProduct)
		v1.GET("/products/:slug/resolve", h.resolveProduct)
		v1.GET("/products/:slug/validation", h.validateProduct)
		v1.GET("/home", h.getHomepage)
		v1.GET("/pages/about", h.getAboutPage)
		v1.GET("/pages/links", h.getLinksPage)
		v1.GET("/theme", h.getTheme)
		v1.GET("/orders/:id", h.getOrder)
	}

	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/orders", h.orderWebhook)
		webhooks.POST("/content", h.contentWebhook)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listProducts returns the listing cards for all available products
func (h *Handler) listProducts(c *gin.Context) {
	cards, err := h.content.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch products",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": cards,
		"count":    len(cards),
	})
}

// getProduct returns one product by slug
func (h *Handler) getProduct(c *gin.Context) {
	slug := c.Param("slug")

	p, err := h.content.ProductBySlug(c.Request.Context(), slug)
	if errors.Is(err, cms.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":     p,
		"price_range": catalog.ListingPriceRange(p).String(),
		"available":   catalog.IsProductAvailable(p),
	})
}

// resolveProduct resolves an option selection against a product's
// variants and returns the effective price, stock, image, the checkout
// handoff payload, and the still-available values per option axis.
func (h *Handler) resolveProduct(c *gin.Context) {
	slug := c.Param("slug")

	p, err := h.content.ProductBySlug(c.Request.Context(), slug)
	if errors.Is(err, cms.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch product",
			"details": err.Error(),
		})
		return
	}

	sel := models.Selection{
		Size:     c.Query("size"),
		Color:    c.Query("color"),
		Material: c.Query("material"),
		Style:    c.Query("style"),
	}

	if !p.HasVariants {
		res := catalog.ResolveSimple(p)
		util.VariantResolutionsTotal.WithLabelValues("simple").Inc()
		item := cart.BuildItem(p, nil, sel, h.siteURL)
		countHandoff(item)
		c.JSON(http.StatusOK, gin.H{
			"resolved":  res,
			"cart_item": item,
		})
		return
	}

	res := catalog.ResolveVariant(p, sel)
	if res.MatchedVariant != nil {
		util.VariantResolutionsTotal.WithLabelValues("matched").Inc()
	} else {
		util.VariantResolutionsTotal.WithLabelValues("unmatched").Inc()
	}

	available := make(map[string][]string)
	for _, axis := range p.VariantOptions.DefinedAxes() {
		available[axis] = catalog.AvailableValuesForAxis(p, sel, axis)
	}

	item := cart.BuildItem(p, &res, sel, h.siteURL)
	countHandoff(item)

	c.JSON(http.StatusOK, gin.H{
		"selection":        sel,
		"resolved":         res,
		"available_values": available,
		"cart_item":        item,
		"cart_attributes":  item.Attributes(),
	})
}

// validateProduct reports catalog consistency findings for one product
func (h *Handler) validateProduct(c *gin.Context) {
	slug := c.Param("slug")

	p, err := h.content.ProductBySlug(c.Request.Context(), slug)
	if errors.Is(err, cms.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch product",
			"details": err.Error(),
		})
		return
	}

	findings := catalog.Validate(p)
	c.JSON(http.StatusOK, gin.H{
		"slug":     slug,
		"findings": findings,
		"count":    len(findings),
	})
}

// getHomepage aggregates brand settings, homepage copy, featured
// products and new arrivals
func (h *Handler) getHomepage(c *gin.Context) {
	data, err := h.content.HomepageData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch homepage",
			"details": err.Error(),
		})
		return
	}

	brand := data.BrandSettings
	c.JSON(http.StatusOK, gin.H{
		"brand_settings":    brand,
		"homepage_content":  data.HomepageContent,
		"featured_products": data.FeaturedProducts,
		"new_arrivals":      data.NewArrivals,
		"theme": gin.H{
			"tokens": theme.Resolve(brand.ThemeStyle, theme.Overrides{
				PrimaryColor:           brand.PrimaryColor,
				SecondaryColor:         brand.SecondaryColor,
				BackgroundColor:        brand.BackgroundColor,
				SectionBackgroundColor: brand.SectionBackgroundColor,
			}),
			"fonts": theme.ResolveFonts(brand.HeaderFont, brand.BodyFont, brand.FontWeightStyle),
		},
	})
}

// getAboutPage returns the about-page content
func (h *Handler) getAboutPage(c *gin.Context) {
	content, err := h.content.AboutPageContent(c.Request.Context())
	if errors.Is(err, cms.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Page not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch page",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, content)
}

// getLinksPage returns the links-page content
func (h *Handler) getLinksPage(c *gin.Context) {
	content, err := h.content.LinksPageContent(c.Request.Context())
	if errors.Is(err, cms.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Page not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch page",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, content)
}

// getTheme resolves the brand's theme and font choices into concrete
// design tokens
func (h *Handler) getTheme(c *gin.Context) {
	brand, err := h.content.BrandSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch brand settings",
			"details": err.Error(),
		})
		return
	}

	tokens := theme.Resolve(brand.ThemeStyle, theme.Overrides{
		PrimaryColor:           brand.PrimaryColor,
		SecondaryColor:         brand.SecondaryColor,
		BackgroundColor:        brand.BackgroundColor,
		SectionBackgroundColor: brand.SectionBackgroundColor,
	})
	fonts := theme.ResolveFonts(brand.HeaderFont, brand.BodyFont, brand.FontWeightStyle)

	c.JSON(http.StatusOK, gin.H{
		"theme":        brand.ThemeStyle,
		"tokens":       tokens,
		"fonts":        fonts,
		"button_style": brand.ButtonStyle,
	})
}

// getOrder handles get order record by ID
func (h *Handler) getOrder(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	order, items, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Order not found",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
		"items": items,
	})
}

// orderWebhook records a completed order posted by the checkout widget
func (h *Handler) orderWebhook(c *gin.Context) {
	var payload orders.WebhookPayload

	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if payload.EventName != "" && payload.EventName != "order.completed" {
		// Other widget events are acknowledged and ignored.
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	rec, created, err := h.orders.RecordOrder(c.Request.Context(), &payload.Content)
	if err != nil {
		h.logger.Error("Order webhook failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to record order",
			"details": err.Error(),
		})
		return
	}

	status := http.StatusCreated
	result := rec.Status
	if !created {
		status = http.StatusOK
		result = models.OrderRecordStatusDuplicate
	}
	c.JSON(status, gin.H{
		"order_id": rec.ID,
		"status":   result,
	})
}

// contentWebhookRequest is the CMS change-notification payload.
type contentWebhookRequest struct {
	DocumentID   string `json:"_id"`
	DocumentType string `json:"_type"`
	Slug         struct {
		Current string `json:"current"`
	} `json:"slug"`
	Operation string `json:"operation"`
}

// contentWebhook publishes a content-changed event for async cache
// invalidation
func (h *Handler) contentWebhook(c *gin.Context) {
	var req contentWebhookRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if req.DocumentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing document type",
		})
		return
	}
	if req.Operation == "" {
		req.Operation = models.ContentOpUpdate
	}

	event := &models.ContentChangedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeContentChanged,
			Timestamp: time.Now(),
		},
		DocumentID:   req.DocumentID,
		DocumentType: req.DocumentType,
		Slug:         req.Slug.Current,
		Operation:    req.Operation,
	}

	if err := h.publisher.PublishContentChanged(c.Request.Context(), event); err != nil {
		h.logger.Error("Failed to publish ContentChanged event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to queue invalidation",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func countHandoff(item cart.Item) {
	if item.Disabled {
		util.CartHandoffsTotal.WithLabelValues("disabled").Inc()
	} else {
		util.CartHandoffsTotal.WithLabelValues("enabled").Inc()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
