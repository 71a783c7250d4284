package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

type HomeHandler struct {
	API          *api.Client
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	session, _ := h.SessionStore.Get(r, SessionName)

	ctx := r.Context()
	var featured []models.Product
	page, err := h.API.Products(ctx, api.ProductQuery{Limit: 8, Sort: "newest"})
	if err != nil {
		slog.Error("Failed to load products for home page", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể tải dữ liệu"})
	} else {
		for _, p := range page.Data {
			if p.IsFeatured {
				featured = append(featured, p)
			}
		}
		if len(featured) == 0 {
			featured = page.Data
		}
	}

	brands, err := h.API.Brands(ctx)
	if err != nil {
		slog.Error("Failed to load brands", "error", err)
	}
	categories, err := h.API.Categories(ctx)
	if err != nil {
		slog.Error("Failed to load categories", "error", err)
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	user, _ := CurrentUser(session)
	data := map[string]interface{}{
		"Title":      "Trang chủ",
		"Featured":   featured,
		"Brands":     brands,
		"Categories": categories,
		"User":       user,
		"LoggedIn":   CurrentToken(session) != "",
		"Flashes":    GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}
