package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

type OrderHandler struct {
	API          *api.Client
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// StatusTab is one entry of the status filter row on the order list.
type StatusTab struct {
	Value  string
	Label  string
	Count  int
	Active bool
}

var statusTabOrder = []string{"", "PENDING", "PAID", "SHIPPING", "COMPLETED", "CANCELED"}

// List shows the user's order history. The status tabs filter the already
// fetched list; no extra API round trip per tab.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem đơn hàng")
		return
	}

	orders, err := h.API.MyOrders(r.Context(), token)
	if err != nil {
		if api.IsUnauthorized(err) {
			ClearAuth(session)
			redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem đơn hàng")
			return
		}
		slog.Error("Failed to load orders", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể tải danh sách đơn hàng"})
		orders = nil
	}

	active := r.URL.Query().Get("status")
	counts := make(map[string]int, len(statusTabOrder))
	for _, o := range orders {
		counts[string(o.Status)]++
	}

	tabs := make([]StatusTab, 0, len(statusTabOrder))
	for _, s := range statusTabOrder {
		tab := StatusTab{Value: s, Active: s == active}
		if s == "" {
			tab.Label = "Tất cả"
			tab.Count = len(orders)
		} else {
			tab.Label = StatusLabel(s)
			tab.Count = counts[s]
		}
		tabs = append(tabs, tab)
	}

	shown := orders
	if active != "" {
		shown = nil
		for _, o := range orders {
			if string(o.Status) == active {
				shown = append(shown, o)
			}
		}
	}

	tmpl := h.Templates.Get("orders.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":    "Đơn hàng của tôi",
		"Orders":   shown,
		"Tabs":     tabs,
		"LoggedIn": true,
		"Flashes":  GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}

// Detail shows one order: line items, shipping address, payment state and
// the status history timeline.
func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem đơn hàng")
		return
	}

	id := r.PathValue("id")
	order, err := h.API.OrderByID(r.Context(), token, id)
	if err != nil {
		if api.IsUnauthorized(err) {
			ClearAuth(session)
			redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem đơn hàng")
			return
		}
		slog.Error("Failed to load order", "order_id", id, "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể tải đơn hàng"})
		session.Save(r, w)
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("order.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":    "Đơn hàng " + order.OrderNumber,
		"Order":    order,
		"Canceled": order.Status == models.OrderStatusCanceled,
		"LoggedIn": true,
		"Flashes":  GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}
