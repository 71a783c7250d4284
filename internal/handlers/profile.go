package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
)

type ProfileHandler struct {
	API          *api.Client
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// View shows the account page. The profile is read-only; there is no edit
// endpoint on the API yet. Data comes fresh from /auth/me rather than the
// session snapshot so a stale cookie cannot show outdated details.
func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	token := CurrentToken(session)
	if token == "" {
		redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem tài khoản")
		return
	}

	user, err := h.API.Me(r.Context(), token)
	if err != nil {
		if api.IsUnauthorized(err) {
			ClearAuth(session)
			redirectToLogin(w, r, session, "Vui lòng đăng nhập để xem tài khoản")
			return
		}
		slog.Error("Failed to load profile", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể tải thông tin tài khoản"})
		session.Save(r, w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("profile.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":    "Tài khoản",
		"User":     user,
		"LoggedIn": true,
		"Flashes":  GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}
