package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
)

func TestCheckoutSubmitBlocksIncompleteAddress(t *testing.T) {
	var orderCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/orders" {
			orderCalls.Add(1)
		}
	}))
	defer srv.Close()

	store := testSessionStore()
	h := &CheckoutHandler{API: api.NewClient(srv.URL), Templates: NewTemplateCache(), SessionStore: store}

	form := url.Values{
		"fullName": {"Nguyễn Văn A"},
		"phone":    {"0901234567"},
		"address":  {"123 Lê Lợi"},
		"city":     {"TP. Hồ Chí Minh"},
		// district and ward missing
	}
	r := authedRequest(t, store, "POST", "/checkout", form)
	w := httptest.NewRecorder()
	h.Submit(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/checkout", w.Header().Get("Location"))
	assert.Equal(t, int32(0), orderCalls.Load())
}

func TestCheckoutSubmitPlacesOrder(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"id":           "o1",
			"order_number": "ORD-001",
			"status":       "PENDING",
		})
	}))
	defer srv.Close()

	store := testSessionStore()
	h := &CheckoutHandler{API: api.NewClient(srv.URL), Templates: NewTemplateCache(), SessionStore: store}

	form := url.Values{
		"fullName": {"Nguyễn Văn A"},
		"phone":    {"0901234567"},
		"address":  {"123 Lê Lợi"},
		"city":     {"TP. Hồ Chí Minh"},
		"district": {"Quận 1"},
		"ward":     {"Phường Bến Nghé"},
		"voucher":  {"SALE"},
		"payment":  {"MOMO"},
	}
	r := authedRequest(t, store, "POST", "/checkout", form)
	w := httptest.NewRecorder()
	h.Submit(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/orders", w.Header().Get("Location"))

	addr, _ := gotBody["shippingAddress"].(map[string]any)
	assert.Equal(t, "Nguyễn Văn A", addr["fullName"])
	assert.Equal(t, "SALE", gotBody["voucherCode"])
	// The payment method is a display choice only; it never goes out.
	_, hasPayment := gotBody["payment"]
	assert.False(t, hasPayment)
	_, hasPaymentMethod := gotBody["paymentMethod"]
	assert.False(t, hasPaymentMethod)
}

func TestCheckoutFormRedirectsEmptyCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "c1", "items": []any{}})
	}))
	defer srv.Close()

	store := testSessionStore()
	h := &CheckoutHandler{API: api.NewClient(srv.URL), Templates: NewTemplateCache(), SessionStore: store}

	r := authedRequest(t, store, "GET", "/checkout", nil)
	w := httptest.NewRecorder()
	h.Form(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
}
