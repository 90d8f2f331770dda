// Package session owns the session cookie: its name and attributes live
// here so the gate and the handlers cannot drift apart.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the name of the cookie carrying the session token.
const CookieName = "token"

// Set attaches a session cookie carrying the token. HttpOnly keeps it
// away from page scripts; SameSite=Lax matches the reference behavior;
// Secure is environment-dependent and comes from config.
func Set(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

// Clear expires the session cookie on the client. Tokens already issued
// stay valid until their own expiry; there is no server-side session
// table to invalidate.
func Clear(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

// Token extracts the raw session token from the request, or "" when the
// cookie is absent or empty.
func Token(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}
