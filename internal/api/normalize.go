package api

import (
	"time"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

// The order endpoints have grown two spellings for several fields
// (snake_case and camelCase), and older payloads carry amounts under
// total_amount instead of total. Everything is folded into the canonical
// models.Order here, in one place; dual-named fields never travel further.

type rawOrder struct {
	ID                 string                  `json:"id"`
	OrderNumber        string                  `json:"order_number"`
	OrderNumberCamel   string                  `json:"orderNumber"`
	ShippingAddress    *models.ShippingAddress `json:"shipping_address"`
	ShippingAddrCamel  *models.ShippingAddress `json:"shippingAddress"`
	Items              []rawOrderItem          `json:"items"`
	SubTotal           *float64                `json:"sub_total"`
	SubTotalCamel      *float64                `json:"subTotal"`
	Discount           float64                 `json:"discount"`
	TotalAmount        *float64                `json:"total_amount"`
	TotalAmountCamel   *float64                `json:"totalAmount"`
	Total              *float64                `json:"total"`
	Status             string                  `json:"status"`
	PaymentMethod      string                  `json:"payment_method"`
	PaymentMethodCamel string                  `json:"paymentMethod"`
	PaymentStatus      string                  `json:"payment_status"`
	PaymentStatusCamel string                  `json:"paymentStatus"`
	StatusHistory      []rawHistoryEntry       `json:"status_history"`
	StatusHistoryCamel []rawHistoryEntry       `json:"statusHistory"`
	CreatedAt          string                  `json:"created_at"`
	CreatedAtCamel     string                  `json:"createdAt"`
}

type rawOrderItem struct {
	ProductID   string  `json:"productId"`
	VariantID   string  `json:"variantId"`
	Name        string  `json:"name"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	Color       string  `json:"color"`
	Storage     string  `json:"storage"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

type rawHistoryEntry struct {
	Status         string `json:"status"`
	Note           string `json:"note"`
	CreatedAt      string `json:"created_at"`
	CreatedAtCamel string `json:"createdAt"`
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstFloat(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func parseTime(values ...string) time.Time {
	for _, v := range values {
		if v == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (r rawOrder) normalize() models.Order {
	order := models.Order{
		ID:            r.ID,
		OrderNumber:   firstString(r.OrderNumber, r.OrderNumberCamel),
		SubTotal:      firstFloat(r.SubTotal, r.SubTotalCamel),
		Discount:      r.Discount,
		Total:         firstFloat(r.TotalAmount, r.TotalAmountCamel, r.Total),
		Status:        models.OrderStatus(r.Status),
		PaymentMethod: firstString(r.PaymentMethod, r.PaymentMethodCamel),
		PaymentStatus: firstString(r.PaymentStatus, r.PaymentStatusCamel),
		CreatedAt:     parseTime(r.CreatedAt, r.CreatedAtCamel),
	}

	if r.ShippingAddress != nil {
		order.ShippingAddress = *r.ShippingAddress
	} else if r.ShippingAddrCamel != nil {
		order.ShippingAddress = *r.ShippingAddrCamel
	}

	for _, it := range r.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Name:      firstString(it.ProductName, it.Name),
			SKU:       it.SKU,
			Color:     it.Color,
			Storage:   it.Storage,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	history := r.StatusHistory
	if len(history) == 0 {
		history = r.StatusHistoryCamel
	}
	for _, h := range history {
		order.StatusHistory = append(order.StatusHistory, models.StatusHistoryEntry{
			Status:    h.Status,
			Note:      h.Note,
			CreatedAt: parseTime(h.CreatedAt, h.CreatedAtCamel),
		})
	}

	return order
}
