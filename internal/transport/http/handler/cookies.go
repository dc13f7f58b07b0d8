package handler

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "token"

// CookieSettings controls the attributes of the session cookie. In a
// production deployment the cookie is Secure with SameSite=None so it can
// ride cross-site requests; elsewhere it stays SameSite=Strict over plain
// HTTP. MaxAge is independent of the token's own expiry.
type CookieSettings struct {
	Production bool
	MaxAge     time.Duration
}

func (cs CookieSettings) sameSite() http.SameSite {
	if cs.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

func (cs CookieSettings) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   cs.Production,
		SameSite: cs.sameSite(),
		MaxAge:   int(cs.MaxAge.Seconds()),
	})
}

func (cs CookieSettings) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   cs.Production,
		SameSite: cs.sameSite(),
		MaxAge:   -1,
	})
}
