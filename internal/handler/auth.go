package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/service"
	"github.com/ecoswap/ecoswap/internal/view"
)

// AuthHandler handles signup, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// HandleSignupPage renders the registration form.
// GET /signup
func (h *AuthHandler) HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	view.SignupPage(translator(r), "", "", "", "").Render(r.Context(), w)
}

// HandleSignup processes a registration form submission. Validation
// failures redisplay the form with the submitted values and a message.
// POST /signup
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	tr := translator(r)

	email := r.FormValue("email")
	displayName := r.FormValue("display_name")
	location := r.FormValue("location")
	password := r.FormValue("password")

	_, err := h.auth.Register(r.Context(), email, displayName, location, password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			view.SignupPage(tr, tr.T("auth.email_taken"), email, displayName, location).Render(r.Context(), w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			view.SignupPage(tr, err.Error(), email, displayName, location).Render(r.Context(), w)
			return
		}
		slog.Error("register user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		view.SignupPage(tr, "An unexpected error occurred. Please try again.", email, displayName, location).Render(r.Context(), w)
		return
	}

	setFlash(w, flashSuccess, "auth.account_created")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleLoginPage renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	view.LoginPage(translator(r), "", "").Render(r.Context(), w)
}

// HandleLogin processes a login form submission. Bad credentials get a
// generic message that never says which field was wrong. Admins land
// on the dashboard, everyone else on the marketplace.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	tr := translator(r)

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			w.WriteHeader(http.StatusUnauthorized)
			view.LoginPage(tr, tr.T("auth.invalid_credentials"), email).Render(r.Context(), w)
			return
		}
		slog.Error("login user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		view.LoginPage(tr, "An unexpected error occurred. Please try again.", email).Render(r.Context(), w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})

	if user.IsAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/marketplace", http.StatusSeeOther)
}

// HandleLogout clears the session cookie.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	setFlash(w, flashSuccess, "auth.logged_out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
