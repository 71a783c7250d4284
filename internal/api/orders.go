package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

type CreateOrderRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	VoucherCode     string                 `json:"voucherCode,omitempty"`
}

// CreateOrder places an order for the authenticated user's current cart.
// The item list is deliberately absent from the request: the server reads
// the cart itself, so the client cannot order stale line items.
func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (*models.Order, error) {
	var raw rawOrder
	if err := c.do(ctx, token, http.MethodPost, "/orders", nil, req, &raw); err != nil {
		return nil, err
	}
	order := raw.normalize()
	return &order, nil
}

func (c *Client) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var raws []rawOrder
	if err := c.do(ctx, token, http.MethodGet, "/orders/me", nil, nil, &raws); err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(raws))
	for _, r := range raws {
		orders = append(orders, r.normalize())
	}
	return orders, nil
}

func (c *Client) OrderByID(ctx context.Context, token, id string) (*models.Order, error) {
	var raw rawOrder
	if err := c.do(ctx, token, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return nil, err
	}
	order := raw.normalize()
	return &order, nil
}
