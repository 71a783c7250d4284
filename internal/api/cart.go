package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

type AddCartItemRequest struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Cart fetches the caller's current cart. Callers re-fetch after every
// mutation instead of patching a local copy.
func (c *Client) Cart(ctx context.Context, token string) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, token, http.MethodGet, "/cart", nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddCartItem(ctx context.Context, token string, req AddCartItemRequest) error {
	return c.do(ctx, token, http.MethodPost, "/cart/items", nil, req, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, token, variantID string, quantity int) error {
	path := "/cart/items/" + url.PathEscape(variantID)
	return c.do(ctx, token, http.MethodPut, path, nil, UpdateCartItemRequest{Quantity: quantity}, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, token, variantID string) error {
	path := "/cart/items/" + url.PathEscape(variantID)
	return c.do(ctx, token, http.MethodDelete, path, nil, nil, nil)
}
