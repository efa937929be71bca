package handler

import (
	"context"
	"net/http"

	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/i18n"
	"github.com/ecoswap/ecoswap/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// SessionFromRequest builds the explicit per-request session object
// from the authenticated user (may be nil) and the language cookie.
func SessionFromRequest(r *http.Request) *domain.Session {
	user := UserFromContext(r.Context())
	if user == nil {
		return nil
	}
	return &domain.Session{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin,
		Lang:        requestLang(r),
	}
}

// requestLang resolves the request language from the lang cookie,
// falling back through Accept-Language to the default. Invalid codes
// are ignored.
func requestLang(r *http.Request) string {
	if cookie, err := r.Cookie("lang"); err == nil && cookie.Value != "" {
		if i18n.Supported(cookie.Value) {
			return cookie.Value
		}
		return i18n.Match(cookie.Value)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return i18n.Match(accept)
	}
	return i18n.DefaultLang
}

// translator returns the bound translator for the request language.
func translator(r *http.Request) i18n.Translator {
	return i18n.NewTranslator(requestLang(r))
}

// RequireAuth protects routes requiring a logged-in user. It reads the
// auth_token cookie, validates the JWT, loads the user from the DB,
// and injects it into the request context. Unauthenticated requests
// are redirected to the login page with a flash.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, auth)
		if err != nil {
			setFlash(w, flashError, "auth.login_required")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin protects moderation routes. Non-admins get the same
// redirect as anonymous users; the routes do not acknowledge that
// they exist.
func RequireAdmin(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, auth)
		if err != nil || !user.IsAdmin {
			setFlash(w, flashError, "auth.admin_required")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attempts to authenticate but does not block
// unauthenticated requests. If a valid token is present, the user is
// injected into context; otherwise the request proceeds without one.
func OptionalAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, auth)
		if err == nil && user != nil {
			ctx := context.WithValue(r.Context(), userContextKey, user)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets baseline response headers on every request.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}

func authenticateRequest(r *http.Request, auth *service.AuthService) (*domain.User, error) {
	cookie, err := r.Cookie("auth_token")
	if err != nil {
		return nil, err
	}

	userID, err := auth.ValidateToken(cookie.Value)
	if err != nil {
		return nil, err
	}

	user, err := auth.GetUserByID(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
