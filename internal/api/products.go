package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

// ProductQuery mirrors the parameters the listing endpoint understands.
// Zero values are omitted from the request.
type ProductQuery struct {
	Search   string
	Brand    string // comma-joined slugs
	Category string // comma-joined slugs
	MinPrice float64
	MaxPrice float64
	Page     int
	Limit    int
	Sort     string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Brand != "" {
		v.Set("brand", q.Brand)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	return v
}

func (c *Client) Products(ctx context.Context, q ProductQuery) (*models.Paginated[models.Product], error) {
	var page models.Paginated[models.Product]
	if err := c.do(ctx, "", http.MethodGet, "/products", q.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) ProductBySlug(ctx context.Context, slug string) (*models.ProductDetail, error) {
	var detail models.ProductDetail
	if err := c.do(ctx, "", http.MethodGet, "/products/"+url.PathEscape(slug), nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) Brands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := c.do(ctx, "", http.MethodGet, "/brands", nil, nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, "", http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
