package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/ecoswap/ecoswap/internal/i18n"
)

// LangHandler switches the UI language.
type LangHandler struct{}

// NewLangHandler creates a new LangHandler.
func NewLangHandler() *LangHandler {
	return &LangHandler{}
}

// HandleSetLanguage stores the chosen language in a cookie and sends
// the user back where they came from. Unknown codes fall back to the
// closest supported language rather than erroring.
// GET /set-language/{lang}
func (h *LangHandler) HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.PathValue("lang")
	if !i18n.Supported(lang) {
		lang = i18n.Match(lang)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "lang",
		Value:    lang,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   365 * 24 * 3600,
	})

	// Follow same-site referers only; open redirects stay closed.
	target := "/"
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" && (ref.Host == "" || ref.Host == r.Host) {
		target = ref.Path
		if ref.RawQuery != "" {
			target += "?" + ref.RawQuery
		}
	}
	if !strings.HasPrefix(target, "/") {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
