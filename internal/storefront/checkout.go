package storefront

import (
	"errors"
	"strings"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

// ErrIncompleteAddress is the single aggregate error the checkout page shows;
// there is no per-field reporting.
var ErrIncompleteAddress = errors.New("all shipping fields are required")

// ValidateShipping checks that every shipping field carries a non-blank
// value. Submission is blocked on failure and no order request is issued.
func ValidateShipping(addr models.ShippingAddress) error {
	fields := []string{addr.FullName, addr.Phone, addr.Address, addr.City, addr.District, addr.Ward}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrIncompleteAddress
		}
	}
	return nil
}

// PaymentMethod is one of the fixed choices on the checkout page. Selection
// is display-only; the order API does not take a payment method.
type PaymentMethod struct {
	Code        string
	Label       string
	Description string
}

// PaymentMethods lists the supported options; the first is the default.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{Code: "COD", Label: "Thanh toán khi nhận hàng (COD)", Description: "Thanh toán bằng tiền mặt khi shipper giao hàng."},
		{Code: "CARD", Label: "Thẻ ATM / Visa / Mastercard", Description: "Thanh toán an toàn qua các thẻ thanh toán trực tuyến."},
		{Code: "MOMO", Label: "Ví điện tử MoMo", Description: "Quét mã QR để thanh toán qua ứng dụng MoMo."},
		{Code: "VNPAY", Label: "VNPAY-QR", Description: "Thanh toán qua ứng dụng hỗ trợ VNPAY QR."},
	}
}

// checkoutVoucherAmount is the flat preview discount the checkout page grants
// for any non-empty code. This is a placeholder mechanism and is knowingly
// inconsistent with the cart page's exact-match voucher; the server computes
// the real discount when the order is created.
const checkoutVoucherAmount = 500000

// CheckoutVoucherDiscount returns the preview discount for the checkout page.
func CheckoutVoucherDiscount(code string) float64 {
	if strings.TrimSpace(code) == "" {
		return 0
	}
	return checkoutVoucherAmount
}
