package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/storefront"
)

type CheckoutHandler struct {
	API          *api.Client
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// Form renders the checkout page: address form, payment options and the
// price breakdown. The checkout voucher is its own flat-amount preview,
// independent of the cart-page code; the server recomputes the real discount
// when the order lands.
func (h *CheckoutHandler) Form(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để thanh toán")
		return
	}

	cart, err := h.API.Cart(r.Context(), token)
	if err != nil {
		if api.IsUnauthorized(err) {
			ClearAuth(session)
			redirectToLogin(w, r, session, "Vui lòng đăng nhập để thanh toán")
			return
		}
		slog.Error("Failed to load cart for checkout", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể tải giỏ hàng"})
		session.Save(r, w)
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	if len(cart.Items) == 0 {
		session.AddFlash(FlashMessage{Type: "error", Message: "Giỏ hàng trống"})
		session.Save(r, w)
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	voucher := strings.TrimSpace(r.URL.Query().Get("voucher"))
	discount := storefront.CheckoutVoucherDiscount(voucher)
	summary := storefront.Summarize(cart.Items, discount)

	user, _ := CurrentUser(session)

	tmpl := h.Templates.Get("checkout.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":          "Thanh toán",
		"Items":          cart.Items,
		"Summary":        summary,
		"Voucher":        voucher,
		"User":           user,
		"PaymentMethods": storefront.PaymentMethods(),
		"CsrfField":      csrf.TemplateField(r),
		"LoggedIn":       true,
		"Flashes":        GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}

// Submit validates the shipping form and places the order. Incomplete
// addresses never reach the API. The chosen payment method stays on this
// side of the wire.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để thanh toán")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	addr := models.ShippingAddress{
		FullName: strings.TrimSpace(r.FormValue("fullName")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		Address:  strings.TrimSpace(r.FormValue("address")),
		City:     strings.TrimSpace(r.FormValue("city")),
		District: strings.TrimSpace(r.FormValue("district")),
		Ward:     strings.TrimSpace(r.FormValue("ward")),
	}
	if err := storefront.ValidateShipping(addr); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Vui lòng điền đầy đủ thông tin giao hàng"})
		session.Save(r, w)
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	req := api.CreateOrderRequest{
		ShippingAddress: addr,
		VoucherCode:     strings.TrimSpace(r.FormValue("voucher")),
	}
	order, err := h.API.CreateOrder(r.Context(), token, req)
	if err != nil {
		if api.IsUnauthorized(err) {
			ClearAuth(session)
			redirectToLogin(w, r, session, "Vui lòng đăng nhập để thanh toán")
			return
		}
		slog.Error("Failed to create order", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Đặt hàng thất bại. Vui lòng thử lại"})
		session.Save(r, w)
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	// Ordering consumes the server-side cart; the session voucher goes too.
	SetVoucher(session, "")
	slog.Info("Order placed", "order_number", order.OrderNumber)
	session.AddFlash(FlashMessage{Type: "success", Message: "Đặt hàng thành công!"})
	session.Save(r, w)
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}
