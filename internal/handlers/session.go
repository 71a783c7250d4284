package handlers

import (
	"encoding/gob"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

// SessionName is the cookie that stands in for the browser storage of the
// old client: it holds the bearer token, a user snapshot and flash messages.
const SessionName = "storefront-session"

// swapped in tests
var timeNow = time.Now

const (
	sessionKeyToken   = "token"
	sessionKeyUser    = "user"
	sessionKeyVoucher = "voucher"
)

// Register types for gob encoding (used by sessions)
func init() {
	gob.Register(FlashMessage{})
	gob.Register(models.User{})
}

// FlashMessage structure
type FlashMessage struct {
	Type    string
	Message string
}

// GetFlash retrieves flash messages from the session
func GetFlash(session *sessions.Session) []FlashMessage {
	flashes := session.Flashes()
	var messages []FlashMessage
	for _, f := range flashes {
		if fm, ok := f.(FlashMessage); ok {
			messages = append(messages, fm)
		}
	}
	return messages
}

// SaveAuth stores the login result in the session.
func SaveAuth(session *sessions.Session, token string, user models.User) {
	session.Values[sessionKeyToken] = token
	session.Values[sessionKeyUser] = user
}

// ClearAuth drops the token and user snapshot.
func ClearAuth(session *sessions.Session) {
	delete(session.Values, sessionKeyToken)
	delete(session.Values, sessionKeyUser)
	delete(session.Values, sessionKeyVoucher)
}

// CurrentToken returns the stored bearer token, or "" when logged out. A
// token past its expiry is treated as absent and removed, so pages redirect
// to login instead of firing a doomed API call.
func CurrentToken(session *sessions.Session) string {
	token, _ := session.Values[sessionKeyToken].(string)
	if token == "" {
		return ""
	}
	if tokenExpired(token) {
		slog.Debug("Stored token expired, clearing session auth")
		ClearAuth(session)
		return ""
	}
	return token
}

// CurrentUser returns the cached user snapshot from login time.
func CurrentUser(session *sessions.Session) (models.User, bool) {
	user, ok := session.Values[sessionKeyUser].(models.User)
	return user, ok
}

// tokenExpired inspects the token's exp claim without verifying the
// signature — the client does not hold the signing secret; the server still
// rejects forged tokens.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens are passed through untouched; the API decides.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(timeNow())
}

// SetVoucher remembers the cart-page voucher code across the re-fetch cycle.
func SetVoucher(session *sessions.Session, code string) {
	if code == "" {
		delete(session.Values, sessionKeyVoucher)
		return
	}
	session.Values[sessionKeyVoucher] = code
}

// Voucher returns the remembered cart-page voucher code.
func Voucher(session *sessions.Session) string {
	code, _ := session.Values[sessionKeyVoucher].(string)
	return code
}

// redirectToLogin flashes the message and sends the user to the login page.
// The old client waited 1.5s so the toast could render; with server-side
// flashes the message survives the redirect, so there is nothing to wait for.
func redirectToLogin(w http.ResponseWriter, r *http.Request, session *sessions.Session, message string) {
	session.AddFlash(FlashMessage{Type: "error", Message: message})
	session.Save(r, w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
