// Package orders captures completed-order webhooks from the external
// checkout widget and persists them as merchant-side records. The
// checkout and payment flow itself lives entirely in the widget; this
// is bookkeeping after the fact.
package orders

import (
	"context"
	"fmt"
	"time"

	"wookporium/internal/broker"
	"wookporium/internal/cart"
	"wookporium/internal/models"
	"wookporium/internal/store"
	"wookporium/internal/storecache"
	"wookporium/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

// WebhookPayload is the envelope the checkout widget posts on order
// completion.
type WebhookPayload struct {
	EventName string       `json:"eventName"`
	Content   WebhookOrder `json:"content"`
}

// WebhookOrder is the order body inside a completion webhook.
type WebhookOrder struct {
	Token           string        `json:"token"`
	InvoiceNumber   string        `json:"invoiceNumber"`
	Email           string        `json:"email"`
	Currency        string        `json:"currency"`
	FinalGrandTotal float64       `json:"finalGrandTotal"`
	Items           []WebhookItem `json:"items"`
}

// WebhookItem is one purchased line item. ID is the composite
// identifier the cart handoff emitted.
type WebhookItem struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Quantity     int                  `json:"quantity"`
	Price        float64              `json:"price"`
	CustomFields []WebhookCustomField `json:"customFields"`
}

// WebhookCustomField carries the serialized option selection back to
// the merchant.
type WebhookCustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Service persists order records and publishes order-recorded events.
type Service struct {
	store     *store.Store
	cache     *storecache.Cache
	publisher *broker.EventPublisher
	logger    *zap.Logger
}

// NewService creates a new order-record service.
func NewService(store *store.Store, cache *storecache.Cache, publisher *broker.EventPublisher) *Service {
	return &Service{
		store:     store,
		cache:     cache,
		publisher: publisher,
		logger:    util.NamedLogger("orders"),
	}
}

// RecordOrder persists one completed order. The bool reports whether a
// new record was created; a duplicate delivery returns the existing
// record with false.
func (s *Service) RecordOrder(ctx context.Context, order *WebhookOrder) (*models.OrderRecord, bool, error) {
	ctx, span := util.StartSpan(ctx, "orders.RecordOrder")
	defer span.End()

	if order.Token == "" {
		util.OrderWebhooksTotal.WithLabelValues("invalid").Inc()
		return nil, false, fmt.Errorf("order webhook missing token")
	}

	if s.cache != nil {
		seen, err := s.cache.CheckIdempotencyKey(ctx, order.Token)
		if err != nil {
			s.logger.Warn("Idempotency check failed, falling back to DB",
				zap.String("token", order.Token), zap.Error(err))
		} else if seen {
			return s.existingRecord(ctx, order.Token)
		}
	}

	existing, err := s.store.GetOrderRecordByToken(ctx, order.Token)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing order record: %w", err)
	}
	if existing != nil {
		util.OrderWebhooksTotal.WithLabelValues("duplicate").Inc()
		return existing, false, nil
	}

	rec := &models.OrderRecord{
		Token:         order.Token,
		InvoiceNumber: order.InvoiceNumber,
		Email:         order.Email,
		Total:         order.FinalGrandTotal,
		Currency:      order.Currency,
		Status:        models.OrderRecordStatusProcessed,
	}
	if err := s.store.CreateOrderRecord(ctx, rec); err != nil {
		util.OrderWebhooksTotal.WithLabelValues("db_error").Inc()
		return nil, false, fmt.Errorf("failed to create order record: %w", err)
	}

	for _, item := range order.Items {
		productID, sku := cart.ParseCompositeID(item.ID)
		line := &models.OrderLineItem{
			OrderID:   rec.ID,
			ItemID:    item.ID,
			ProductID: productID,
			SKU:       sku,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Options:   optionsField(item.CustomFields),
		}
		if err := s.store.CreateOrderLineItem(ctx, line); err != nil {
			return nil, false, fmt.Errorf("failed to create order line item: %w", err)
		}
	}

	util.OrderWebhooksTotal.WithLabelValues("ok").Inc()
	util.OrderRecordsCreatedTotal.Inc()
	s.logger.Info("Order recorded",
		zap.Int64("order_id", rec.ID),
		zap.String("invoice", rec.InvoiceNumber),
		zap.Int("items", len(order.Items)))

	if s.cache != nil {
		if err := s.cache.SetIdempotencyKey(ctx, order.Token, rec.ID, idempotencyTTL); err != nil {
			s.logger.Warn("Failed to store idempotency key", zap.Error(err))
		}
	}

	if s.publisher != nil {
		event := &models.OrderRecordedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeOrderRecorded,
				Timestamp: time.Now(),
			},
			OrderID:       rec.ID,
			InvoiceNumber: rec.InvoiceNumber,
			Total:         rec.Total,
			ItemCount:     len(order.Items),
		}
		if err := s.publisher.PublishOrderRecorded(ctx, event); err != nil {
			s.logger.Error("Failed to publish OrderRecorded event", zap.Error(err))
		}
	}

	return rec, true, nil
}

// GetOrder retrieves an order record with its line items.
func (s *Service) GetOrder(ctx context.Context, id int64) (*models.OrderRecord, []models.OrderLineItem, error) {
	rec, err := s.store.GetOrderRecordByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.store.GetOrderLineItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return rec, items, nil
}

func (s *Service) existingRecord(ctx context.Context, token string) (*models.OrderRecord, bool, error) {
	existing, err := s.store.GetOrderRecordByToken(ctx, token)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load existing order record: %w", err)
	}
	if existing == nil {
		// Idempotency key without a row: let the insert proceed on the
		// next delivery rather than failing the webhook.
		return nil, false, fmt.Errorf("order record for token %s not found", token)
	}
	util.OrderWebhooksTotal.WithLabelValues("duplicate").Inc()
	return existing, false, nil
}

func optionsField(fields []WebhookCustomField) string {
	for _, f := range fields {
		if f.Name == "Options" {
			return f.Value
		}
	}
	return ""
}
