package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRawOrder(t *testing.T, payload string) rawOrder {
	t.Helper()
	var raw rawOrder
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func TestNormalizeSnakeCasePayload(t *testing.T) {
	raw := decodeRawOrder(t, `{
		"id": "o1",
		"order_number": "ORD-001",
		"shipping_address": {"fullName": "Nguyễn Văn A", "city": "Hà Nội"},
		"items": [{"productName": "iPhone 15", "price": 20000000, "quantity": 1}],
		"sub_total": 20000000,
		"discount": 500000,
		"total_amount": 19500000,
		"status": "PENDING",
		"payment_method": "COD",
		"payment_status": "UNPAID",
		"status_history": [{"status": "PENDING", "created_at": "2026-01-02T10:00:00Z"}],
		"created_at": "2026-01-02T10:00:00Z"
	}`)

	order := raw.normalize()
	assert.Equal(t, "ORD-001", order.OrderNumber)
	assert.Equal(t, "Nguyễn Văn A", order.ShippingAddress.FullName)
	assert.Equal(t, 20000000.0, order.SubTotal)
	assert.Equal(t, 19500000.0, order.Total)
	assert.Equal(t, "COD", order.PaymentMethod)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "iPhone 15", order.Items[0].Name)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC), order.CreatedAt)
}

func TestNormalizeCamelCasePayload(t *testing.T) {
	raw := decodeRawOrder(t, `{
		"id": "o2",
		"orderNumber": "ORD-002",
		"shippingAddress": {"fullName": "Trần Thị B"},
		"items": [{"name": "Galaxy S24", "price": 18000000, "quantity": 2}],
		"subTotal": 36000000,
		"totalAmount": 36000000,
		"status": "PAID",
		"paymentMethod": "MOMO",
		"paymentStatus": "PAID",
		"statusHistory": [{"status": "PAID", "createdAt": "2026-01-03 09:30:00"}],
		"createdAt": "2026-01-03 09:00:00"
	}`)

	order := raw.normalize()
	assert.Equal(t, "ORD-002", order.OrderNumber)
	assert.Equal(t, "Trần Thị B", order.ShippingAddress.FullName)
	assert.Equal(t, 36000000.0, order.Total)
	assert.Equal(t, "MOMO", order.PaymentMethod)
	assert.Equal(t, "Galaxy S24", order.Items[0].Name)
	require.Len(t, order.StatusHistory, 1)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestNormalizeSnakePrecedence(t *testing.T) {
	// When both spellings are present, snake_case wins.
	raw := decodeRawOrder(t, `{
		"order_number": "ORD-SNAKE",
		"orderNumber": "ORD-CAMEL",
		"total_amount": 100,
		"totalAmount": 200,
		"total": 300
	}`)

	order := raw.normalize()
	assert.Equal(t, "ORD-SNAKE", order.OrderNumber)
	assert.Equal(t, 100.0, order.Total)
}

func TestNormalizeTotalFallsBackToPlainTotal(t *testing.T) {
	raw := decodeRawOrder(t, `{"order_number": "ORD-003", "total": 300}`)
	assert.Equal(t, 300.0, raw.normalize().Total)
}

func TestNormalizeItemNamePrefersProductName(t *testing.T) {
	raw := decodeRawOrder(t, `{
		"items": [{"productName": "iPhone 15 Pro", "name": "legacy name"}]
	}`)
	assert.Equal(t, "iPhone 15 Pro", raw.normalize().Items[0].Name)
}

func TestNormalizeZeroTotalIsZero(t *testing.T) {
	// An explicit zero is distinct from an absent field.
	raw := decodeRawOrder(t, `{"total_amount": 0, "total": 300}`)
	assert.Equal(t, 0.0, raw.normalize().Total)
}

func TestParseTimeFormats(t *testing.T) {
	assert.Equal(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC), parseTime("2026-05-01T12:00:00Z"))
	assert.Equal(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC), parseTime("2026-05-01 12:00:00"))
	assert.True(t, parseTime("not a date").IsZero())
	assert.True(t, parseTime("").IsZero())
}
