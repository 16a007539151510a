package worker

import (
	"context"

	"wookporium/internal/broker"
	"wookporium/internal/cms"
	"wookporium/internal/models"
	"wookporium/internal/util"

	"go.uber.org/zap"
)

// ContentWorker consumes content-change events from the CMS webhook
// and drops the affected cache entries.
type ContentWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	content      *cms.Service
	logger       *zap.Logger
}

// NewContentWorker creates a new content worker.
func NewContentWorker(consumer *broker.Consumer, content *cms.Service) *ContentWorker {
	w := &ContentWorker{
		consumer: consumer,
		content:  content,
		logger:   util.NamedLogger("worker"),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnContentChanged(w.handleContentChanged)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker.
func (w *ContentWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting content worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker.
func (w *ContentWorker) Stop() error {
	w.logger.Info("Stopping content worker")
	return w.consumer.Close()
}

func (w *ContentWorker) handleContentChanged(ctx context.Context, event *models.ContentChangedEvent) error {
	w.logger.Info("Content changed, invalidating cache",
		zap.String("document_id", event.DocumentID),
		zap.String("document_type", event.DocumentType),
		zap.String("slug", event.Slug),
		zap.String("operation", event.Operation))

	w.content.InvalidateFor(ctx, event.DocumentType, event.Slug)
	return nil
}
