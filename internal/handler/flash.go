package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/ecoswap/ecoswap/internal/i18n"
	"github.com/ecoswap/ecoswap/internal/view"
)

const (
	flashCookie  = "flash"
	flashSuccess = "success"
	flashError   = "error"
)

// setFlash stores a one-shot notice in a short-lived cookie. The value
// is a translation key, not display text, so the message renders in
// whatever language the next page loads with.
func setFlash(w http.ResponseWriter, kind, key string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + ":" + key),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// popFlash reads and clears the flash cookie, translating the stored
// key for display. Returns nil when there is no pending flash.
func popFlash(w http.ResponseWriter, r *http.Request, tr i18n.Translator) *view.Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	kind, key, ok := strings.Cut(raw, ":")
	if !ok {
		return nil
	}
	return &view.Flash{Kind: kind, Message: tr.T(key)}
}
