package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Cart(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsAuthWhenAnonymous(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Brands(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/")
	_, err := client.Brands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/brands", gotPath)
}

func TestClientDecodesErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "variant out of stock", "code": "OUT_OF_STOCK"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.AddCartItem(context.Background(), "tok", AddCartItemRequest{VariantID: "v1", Quantity: 1})
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "OUT_OF_STOCK", apiErr.Code)
	assert.Equal(t, "variant out of stock", err.Error())
}

func TestClientErrorFieldFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.Register(context.Background(), RegisterRequest{Email: "a@b.c"})
	require.Error(t, err)
	assert.Equal(t, "email already registered", err.Error())
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{Status: 401, Message: "401 Unauthorized"}))
	assert.True(t, IsUnauthorized(errors.New("request failed with status code 401")))
	assert.True(t, IsUnauthorized(errors.New("Unauthorized")))
	assert.False(t, IsUnauthorized(errors.New("500 Internal Server Error")))
	assert.False(t, IsUnauthorized(nil))
}

func TestClientBareStatusLineStaysDetectable(t *testing.T) {
	// A 401 with an empty body must still trip the substring check.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Cart(context.Background(), "expired")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestProductQueryValues(t *testing.T) {
	q := ProductQuery{
		Search:   "iphone",
		Brand:    "apple,samsung",
		MinPrice: 4_000_000,
		MaxPrice: 7_000_000,
		Page:     2,
		Limit:    12,
		Sort:     "price-asc",
	}
	v := q.values()
	assert.Equal(t, "iphone", v.Get("search"))
	assert.Equal(t, "apple,samsung", v.Get("brand"))
	assert.Equal(t, "4000000", v.Get("minPrice"))
	assert.Equal(t, "7000000", v.Get("maxPrice"))
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "12", v.Get("limit"))

	// Zero values never reach the wire.
	empty := ProductQuery{}.values()
	assert.Empty(t, empty.Encode())
}

func TestProductsPassesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{
			"data":       []any{map[string]any{"id": "p1", "name": "iPhone 15", "slug": "iphone-15"}},
			"page":       1,
			"limit":      12,
			"total":      1,
			"totalPages": 1,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	page, err := client.Products(context.Background(), ProductQuery{Search: "iphone", Page: 1, Limit: 12})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "iPhone 15", page.Data[0].Name)
	assert.Contains(t, gotQuery, "search=iphone")
}
