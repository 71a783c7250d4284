package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// OrderItem is a snapshot taken at order time; price and quantity never
// change afterwards, whatever happens to the variant.
type OrderItem struct {
	ProductID string  `json:"productId"`
	VariantID string  `json:"variantId"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Color     string  `json:"color"`
	Storage   string  `json:"storage"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

type StatusHistoryEntry struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// Order is the canonical client-side order record. The API emits several
// optional spellings for some of these fields; internal/api folds them into
// this one shape before anything else sees them.
type Order struct {
	ID              string               `json:"id"`
	OrderNumber     string               `json:"orderNumber"`
	ShippingAddress ShippingAddress      `json:"shippingAddress"`
	Items           []OrderItem          `json:"items"`
	SubTotal        float64              `json:"subTotal"`
	Discount        float64              `json:"discount"`
	Total           float64              `json:"total"`
	Status          OrderStatus          `json:"status"`
	PaymentMethod   string               `json:"paymentMethod"`
	PaymentStatus   string               `json:"paymentStatus"`
	StatusHistory   []StatusHistoryEntry `json:"statusHistory"`
	CreatedAt       time.Time            `json:"createdAt"`
}
