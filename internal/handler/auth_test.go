package handler_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestSignupDuplicateEmail(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newTestClient(t)

	signup(t, client, srv.URL, "dup@example.com", "password123")

	resp, err := client.PostForm(srv.URL+"/signup", url.Values{
		"email":        {"dup@example.com"},
		"display_name": {"Someone Else"},
		"location":     {"Munich"},
		"password":     {"password456"},
	})
	if err != nil {
		t.Fatalf("POST /signup: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for duplicate email, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "Email already registered") {
		t.Fatal("expected duplicate email message in response")
	}
	// The submitted email is echoed back into the form.
	if !strings.Contains(string(body), "dup@example.com") {
		t.Fatal("expected form to echo the submitted email")
	}
}

func TestSignupValidationFailure(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newTestClient(t)

	resp, err := client.PostForm(srv.URL+"/signup", url.Values{
		"email":        {"short@example.com"},
		"display_name": {"Short"},
		"location":     {"Berlin"},
		"password":     {"short"},
	})
	if err != nil {
		t.Fatalf("POST /signup: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for weak password, got %d", resp.StatusCode)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newTestClient(t)

	signup(t, client, srv.URL, "user@example.com", "password123")

	// Wrong password and unknown email produce the same generic
	// message; neither reveals which part was wrong.
	for _, creds := range []url.Values{
		{"email": {"user@example.com"}, "password": {"wrongpassword"}},
		{"email": {"nobody@example.com"}, "password": {"password123"}},
	} {
		resp, err := client.PostForm(srv.URL+"/login", creds)
		if err != nil {
			t.Fatalf("POST /login: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", resp.StatusCode)
		}
		if !strings.Contains(string(body), "Invalid email or password") {
			t.Fatal("expected generic credentials message")
		}
	}
}

func TestLoginRedirectsByRole(t *testing.T) {
	srv, _ := newTestServer(t)

	// Members land on the marketplace.
	member := newTestClient(t)
	signup(t, member, srv.URL, "member@example.com", "password123")
	resp, err := member.PostForm(srv.URL+"/login", url.Values{
		"email":    {"member@example.com"},
		"password": {"password123"},
	})
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	resp.Body.Close()
	if loc := resp.Header.Get("Location"); loc != "/marketplace" {
		t.Fatalf("expected member redirect to /marketplace, got %s", loc)
	}

	// Admins land on the dashboard.
	admin := newTestClient(t)
	resp, err = admin.PostForm(srv.URL+"/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"adminpassword"},
	})
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	resp.Body.Close()
	if loc := resp.Header.Get("Location"); loc != "/admin" {
		t.Fatalf("expected admin redirect to /admin, got %s", loc)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newTestClient(t)

	signup(t, client, srv.URL, "bye@example.com", "password123")
	login(t, client, srv.URL, "bye@example.com", "password123")

	resp, err := client.Get(srv.URL + "/logout")
	if err != nil {
		t.Fatalf("GET /logout: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("logout: expected 303, got %d", resp.StatusCode)
	}

	// Protected routes bounce again.
	resp, err = client.Get(srv.URL + "/marketplace")
	if err != nil {
		t.Fatalf("GET /marketplace: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 after logout, got %d", resp.StatusCode)
	}
}
