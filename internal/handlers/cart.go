package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/storefront"
)

type CartHandler struct {
	API          *api.Client
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// View renders the cart page with the price breakdown. A voucher applied
// earlier stays in the session and is re-validated against the fresh subtotal
// on every render, so the discount tracks quantity changes.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem giỏ hàng")
		return
	}

	cart, err := h.API.Cart(r.Context(), token)
	if err != nil {
		if api.IsUnauthorized(err) {
			ClearAuth(session)
			redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem giỏ hàng")
			return
		}
		slog.Error("Failed to load cart", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể tải giỏ hàng"})
		session.Save(r, w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	var discount float64
	voucher := Voucher(session)
	if voucher != "" {
		d, err := storefront.VoucherDiscount(voucher, storefront.Subtotal(cart.Items))
		if err != nil {
			SetVoucher(session, "")
		} else {
			discount = d
		}
	}
	summary := storefront.Summarize(cart.Items, discount)

	tmpl := h.Templates.Get("cart.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":     "Giỏ hàng",
		"Items":     cart.Items,
		"Summary":   summary,
		"Voucher":   voucher,
		"ItemCount": storefront.TotalQuantity(cart.Items),
		"CsrfField": csrf.TemplateField(r),
		"LoggedIn":  true,
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}

// AddItem handles the add-to-cart form from the product page. With
// buynow=1 the user is sent straight to checkout instead of back to the
// product.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để mua hàng")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	variantID := r.FormValue("variantId")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 1 {
		quantity = 1
	}
	back := r.FormValue("back")
	if !strings.HasPrefix(back, "/") {
		back = "/products"
	}

	if variantID == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Vui lòng chọn phiên bản sản phẩm"})
		session.Save(r, w)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	err = h.API.AddCartItem(r.Context(), token, api.AddCartItemRequest{VariantID: variantID, Quantity: quantity})
	if err != nil {
		if api.IsUnauthorized(err) {
			ClearAuth(session)
			redirectToLogin(w, r, session, "Vui lòng đăng nhập để mua hàng")
			return
		}
		slog.Error("Failed to add cart item", "variant_id", variantID, "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể thêm vào giỏ hàng"})
		session.Save(r, w)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	if r.FormValue("buynow") == "1" {
		session.Save(r, w)
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}
	session.AddFlash(FlashMessage{Type: "success", Message: "Đã thêm vào giỏ hàng"})
	session.Save(r, w)
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// UpdateItem changes a line's quantity. A quantity below 1 is ignored
// without an API call; the page just re-renders with the old value.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem giỏ hàng")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	variantID := r.PathValue("variantID")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 1 {
		session.Save(r, w)
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	if err := h.API.UpdateCartItem(r.Context(), token, variantID, quantity); err != nil {
		if api.IsUnauthorized(err) {
			ClearAuth(session)
			redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem giỏ hàng")
			return
		}
		slog.Error("Failed to update cart item", "variant_id", variantID, "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể cập nhật giỏ hàng"})
	} else {
		session.AddFlash(FlashMessage{Type: "success", Message: "Đã cập nhật số lượng"})
	}
	session.Save(r, w)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// RemoveItem deletes a line from the cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem giỏ hàng")
		return
	}

	variantID := r.PathValue("variantID")
	if err := h.API.RemoveCartItem(r.Context(), token, variantID); err != nil {
		if api.IsUnauthorized(err) {
			ClearAuth(session)
			redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem giỏ hàng")
			return
		}
		slog.Error("Failed to remove cart item", "variant_id", variantID, "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể xóa sản phẩm"})
	} else {
		session.AddFlash(FlashMessage{Type: "success", Message: "Đã xóa sản phẩm"})
	}
	session.Save(r, w)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// ApplyVoucher validates the cart-page voucher code. A valid code is kept in
// the session so the discount survives the redirect and later re-renders; an
// invalid one is rejected with a flash and nothing stored.
func (h *CartHandler) ApplyVoucher(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem giỏ hàng")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	code := strings.TrimSpace(r.FormValue("code"))
	if _, err := storefront.VoucherDiscount(code, 0); err != nil {
		SetVoucher(session, "")
		session.AddFlash(FlashMessage{Type: "error", Message: "Mã giảm giá không hợp lệ"})
	} else {
		SetVoucher(session, code)
		session.AddFlash(FlashMessage{Type: "success", Message: "Đã áp dụng mã giảm giá"})
	}
	session.Save(r, w)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}
