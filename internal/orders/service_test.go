package orders

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookPayloadDecode(t *testing.T) {
	body := `{
		"eventName": "order.completed",
		"content": {
			"token": "tok-123",
			"invoiceNumber": "WOOK-1001",
			"email": "buyer@example.com",
			"currency": "usd",
			"finalGrandTotal": 45.00,
			"items": [
				{
					"id": "prod-1-SHIRT-M-RED",
					"name": "Basic Tee (M / Red)",
					"quantity": 2,
					"price": 22.50,
					"customFields": [
						{"name": "Options", "value": "size: M | color: Red"}
					]
				}
			]
		}
	}`

	var payload WebhookPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	assert.Equal(t, "order.completed", payload.EventName)
	assert.Equal(t, "tok-123", payload.Content.Token)
	assert.Equal(t, "WOOK-1001", payload.Content.InvoiceNumber)
	assert.Equal(t, 45.00, payload.Content.FinalGrandTotal)
	require.Len(t, payload.Content.Items, 1)
	assert.Equal(t, 2, payload.Content.Items[0].Quantity)
	assert.Equal(t, "size: M | color: Red", optionsField(payload.Content.Items[0].CustomFields))
}

func TestOptionsFieldAbsent(t *testing.T) {
	fields := []WebhookCustomField{
		{Name: "GiftMessage", Value: "Happy birthday"},
	}
	assert.Equal(t, "", optionsField(fields))
	assert.Equal(t, "", optionsField(nil))
}

// Full RecordOrder flow needs Postgres, Redis and Kafka. Run against
// docker-compose:
//
//	go test ./internal/orders/ -tags=integration
func TestRecordOrderIntegration(t *testing.T) {
	t.Skip("requires Postgres, Redis and Kafka")
}
