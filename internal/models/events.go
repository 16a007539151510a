package models

import "time"

// Event types
const (
	EventTypeContentChanged = "CONTENT_CHANGED"
	EventTypeOrderRecorded  = "ORDER_RECORDED"
)

// Content mutation operations reported by the content provider's
// change webhook.
const (
	ContentOpCreate = "create"
	ContentOpUpdate = "update"
	ContentOpDelete = "delete"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// ContentChangedEvent is published when the content provider reports a
// document mutation; consumers drop the affected cache entries.
type ContentChangedEvent struct {
	BaseEvent
	DocumentID   string `json:"document_id"`
	DocumentType string `json:"document_type"`
	Slug         string `json:"slug,omitempty"`
	Operation    string `json:"operation"`
}

// OrderRecordedEvent is published after a checkout-widget order
// webhook has been persisted, for downstream consumers (fulfilment,
// mail) outside this service.
type OrderRecordedEvent struct {
	BaseEvent
	OrderID       int64   `json:"order_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Total         float64 `json:"total"`
	ItemCount     int     `json:"item_count"`
}
