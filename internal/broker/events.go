package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"wookporium/internal/models"
	"wookporium/internal/util"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventPublisher handles publishing storefront events
type EventPublisher struct {
	content *Producer
	orders  *Producer
}

// NewEventPublisher creates a new event publisher over the content
// and order topics.
func NewEventPublisher(content, orders *Producer) *EventPublisher {
	return &EventPublisher{content: content, orders: orders}
}

// PublishContentChanged publishes a ContentChanged event
func (ep *EventPublisher) PublishContentChanged(ctx context.Context, event *models.ContentChangedEvent) error {
	key := fmt.Sprintf("doc-%s", event.DocumentID)
	return ep.content.PublishEvent(ctx, key, event)
}

// PublishOrderRecorded publishes an OrderRecorded event
func (ep *EventPublisher) PublishOrderRecorded(ctx context.Context, event *models.OrderRecordedEvent) error {
	key := fmt.Sprintf("order-%d", event.OrderID)
	return ep.orders.PublishEvent(ctx, key, event)
}

// EventHandler routes incoming events to registered handlers.
type EventHandler struct {
	logger           *zap.Logger
	onContentChanged func(context.Context, *models.ContentChangedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{logger: util.GetLogger()}
}

// OnContentChanged registers a handler for ContentChanged events
func (eh *EventHandler) OnContentChanged(handler func(context.Context, *models.ContentChangedEvent) error) {
	eh.onContentChanged = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	eh.logger.Debug("Handling event",
		zap.String("type", baseEvent.EventType),
		zap.String("id", baseEvent.EventID))

	switch baseEvent.EventType {
	case models.EventTypeContentChanged:
		if eh.onContentChanged != nil {
			var event models.ContentChangedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ContentChanged event: %w", err)
			}
			return eh.onContentChanged(ctx, &event)
		}

	default:
		eh.logger.Debug("Unhandled event type", zap.String("type", baseEvent.EventType))
	}

	return nil
}
