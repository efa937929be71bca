package handler_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/ecoswap/ecoswap/internal/handler"
	"github.com/ecoswap/ecoswap/internal/repository/sqlite"
	"github.com/ecoswap/ecoswap/internal/service"
)

const testJWTSecret = "test-secret-key-for-handler-tests"

// newTestServer spins up the full route table over a fresh database.
func newTestServer(t *testing.T) (*httptest.Server, *sqlite.DB) {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Use cost 4 for fast tests.
	auth := service.NewAuthService(db.Users(), testJWTSecret, 4)
	listings := service.NewListingService(db.Listings(), db.FileStore())
	requests := service.NewRequestService(db.Requests(), db.Listings())
	admin := service.NewAdminService(db.Users(), db.Listings(), db.Requests())

	if err := auth.SeedAdmin(context.Background(), "admin@example.com", "adminpassword"); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, listings, requests, admin, false)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)
	return srv, db
}

// newTestClient returns a cookie-carrying client that does not follow
// redirects, so tests can assert on Location headers.
func newTestClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse // don't follow redirects automatically
		},
	}
}

// signup registers a user through the HTTP surface.
func signup(t *testing.T, client *http.Client, baseURL, email, password string) {
	t.Helper()

	resp, err := client.PostForm(baseURL+"/signup", url.Values{
		"email":        {email},
		"display_name": {"User " + email},
		"location":     {"Berlin"},
		"password":     {password},
	})
	if err != nil {
		t.Fatalf("POST /signup: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("signup %s: expected 303, got %d", email, resp.StatusCode)
	}
}

// login authenticates and leaves the auth cookie in the client's jar.
func login(t *testing.T, client *http.Client, baseURL, email, password string) {
	t.Helper()

	resp, err := client.PostForm(baseURL+"/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login %s: expected 303, got %d", email, resp.StatusCode)
	}
}

// createListing posts the listing form without a photo.
func createListing(t *testing.T, client *http.Client, baseURL, title string) {
	t.Helper()

	resp, err := client.PostForm(baseURL+"/create-listing", url.Values{
		"title":        {title},
		"description":  {"a " + title},
		"category":     {"Books"},
		"condition":    {"Good"},
		"listing_type": {"Exchange"},
	})
	if err != nil {
		t.Fatalf("POST /create-listing: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("create listing %s: expected 303, got %d", title, resp.StatusCode)
	}
}
