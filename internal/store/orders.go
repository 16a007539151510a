package store

import (
	"context"
	"database/sql"
	"fmt"

	"wookporium/internal/models"
)

// CreateOrderRecord inserts one order record. The token column carries
// a unique constraint, so duplicate webhook deliveries fail here and
// the caller falls back to the existing record.
func (s *Store) CreateOrderRecord(ctx context.Context, rec *models.OrderRecord) error {
	query := `
		INSERT INTO order_records (token, invoice_number, email, total, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, rec, query,
		rec.Token, rec.InvoiceNumber, rec.Email, rec.Total, rec.Currency, rec.Status)
}

// GetOrderRecordByID retrieves an order record by ID
func (s *Store) GetOrderRecordByID(ctx context.Context, id int64) (*models.OrderRecord, error) {
	var rec models.OrderRecord
	err := s.db.GetContext(ctx, &rec, "SELECT * FROM order_records WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order record not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetOrderRecordByToken retrieves an order record by its webhook
// token; nil without error when absent (idempotency probe).
func (s *Store) GetOrderRecordByToken(ctx context.Context, token string) (*models.OrderRecord, error) {
	var rec models.OrderRecord
	err := s.db.GetContext(ctx, &rec, "SELECT * FROM order_records WHERE token = $1", token)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateOrderLineItem inserts one line of an order record.
func (s *Store) CreateOrderLineItem(ctx context.Context, item *models.OrderLineItem) error {
	query := `
		INSERT INTO order_line_items (order_id, item_id, product_id, sku, name, quantity, unit_price, options)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	return s.db.GetContext(ctx, &item.ID, query,
		item.OrderID, item.ItemID, item.ProductID, item.SKU,
		item.Name, item.Quantity, item.UnitPrice, item.Options)
}

// GetOrderLineItems retrieves all lines for an order record.
func (s *Store) GetOrderLineItems(ctx context.Context, orderID int64) ([]models.OrderLineItem, error) {
	var items []models.OrderLineItem
	err := s.db.SelectContext(ctx, &items,
		"SELECT * FROM order_line_items WHERE order_id = $1 ORDER BY id", orderID)
	return items, err
}

// ListOrderRecords retrieves recent order records, newest first.
func (s *Store) ListOrderRecords(ctx context.Context, limit int) ([]models.OrderRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var recs []models.OrderRecord
	err := s.db.SelectContext(ctx, &recs,
		"SELECT * FROM order_records ORDER BY created_at DESC LIMIT $1", limit)
	return recs, err
}
