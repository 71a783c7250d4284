// Package storefront holds the view-state rules of the shop pages: cart
// arithmetic, voucher matching, variant selection, checkout validation and
// catalog filter state. It never performs I/O; handlers feed it data fetched
// from the store API and render whatever it derives.
package storefront

import (
	"errors"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

// CartVoucherCode is the only code the cart page accepts. The checkout page
// has its own, unrelated voucher stub (see checkout.go); the server applies
// the authoritative discount when the order is created.
const CartVoucherCode = "DISCOUNT10"

// cartVoucherRate is the fraction of the subtotal discounted by CartVoucherCode.
const cartVoucherRate = 0.10

var ErrInvalidVoucher = errors.New("invalid voucher code")

// Subtotal sums price×quantity over the items. It depends only on the
// multiset of items, not their order.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// VoucherDiscount returns the discount for code against subtotal. Anything
// but the exact CartVoucherCode yields 0 and ErrInvalidVoucher.
func VoucherDiscount(code string, subtotal float64) (float64, error) {
	if code != CartVoucherCode {
		return 0, ErrInvalidVoucher
	}
	return subtotal * cartVoucherRate, nil
}

// CartSummary is the price breakdown rendered on the cart and checkout pages.
type CartSummary struct {
	Subtotal float64
	Discount float64
	Total    float64
}

// Summarize derives the breakdown for items with a discount already decided.
// Total is not floored: a discount larger than the subtotal goes negative,
// exactly as the numbers say.
func Summarize(items []models.CartItem, discount float64) CartSummary {
	subtotal := Subtotal(items)
	return CartSummary{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}
}

// TotalQuantity counts units across all lines, for the header badge.
func TotalQuantity(items []models.CartItem) int {
	var n int
	for _, item := range items {
		n += item.Quantity
	}
	return n
}
