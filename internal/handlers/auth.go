package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
)

type AuthHandler struct {
	API          *api.Client
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	tmpl := h.Templates.Get("login.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":     "Đăng nhập",
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	defer session.Save(r, w)

	if err := r.ParseForm(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Dữ liệu không hợp lệ"})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Vui lòng nhập email và mật khẩu"})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	resp, err := h.API.Login(r.Context(), api.LoginRequest{Email: email, Password: password})
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Đăng nhập thất bại"})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	SaveAuth(session, resp.Token, resp.User)
	session.AddFlash(FlashMessage{Type: "success", Message: "Đăng nhập thành công"})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterGet(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	tmpl := h.Templates.Get("register.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":     "Đăng ký",
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	defer session.Save(r, w)

	if err := r.ParseForm(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Dữ liệu không hợp lệ"})
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	req := api.RegisterRequest{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		FullName: strings.TrimSpace(r.FormValue("fullName")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" || req.Phone == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Vui lòng điền đầy đủ thông tin"})
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	if err := h.API.Register(r.Context(), req); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Đăng ký thất bại"})
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Đăng ký thành công! Vui lòng đăng nhập"})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	ClearAuth(session)
	session.Save(r, w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
