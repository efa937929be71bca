package handler

import (
	"net/http"

	"github.com/ecoswap/ecoswap/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	authService *service.AuthService,
	listingService *service.ListingService,
	requestService *service.RequestService,
	adminService *service.AdminService,
	cookieSecure bool,
) {
	home := NewHomeHandler()
	auth := NewAuthHandler(authService, cookieSecure)
	listings := NewListingHandler(listingService)
	requests := NewRequestHandler(requestService)
	admin := NewAdminHandler(adminService)
	lang := NewLangHandler()

	// Public pages. The landing page still shows the nav for a
	// logged-in visitor, hence OptionalAuth.
	mux.HandleFunc("GET /healthz", home.HandleHealth)
	mux.Handle("GET /", OptionalAuth(authService, http.HandlerFunc(home.HandleHome)))
	mux.Handle("GET /set-language/{lang}", http.HandlerFunc(lang.HandleSetLanguage))

	// Auth.
	mux.HandleFunc("GET /signup", auth.HandleSignupPage)
	mux.HandleFunc("POST /signup", auth.HandleSignup)
	mux.HandleFunc("GET /login", auth.HandleLoginPage)
	mux.HandleFunc("POST /login", auth.HandleLogin)
	mux.HandleFunc("GET /logout", auth.HandleLogout)

	// Member routes.
	mux.Handle("GET /marketplace", RequireAuth(authService, http.HandlerFunc(listings.HandleMarketplace)))
	mux.Handle("GET /my-listings", RequireAuth(authService, http.HandlerFunc(listings.HandleMyListings)))
	mux.Handle("GET /create-listing", RequireAuth(authService, http.HandlerFunc(listings.HandleCreatePage)))
	mux.Handle("POST /create-listing", RequireAuth(authService, http.HandlerFunc(listings.HandleCreate)))
	mux.Handle("GET /edit-listing/{id}", RequireAuth(authService, http.HandlerFunc(listings.HandleEditPage)))
	mux.Handle("POST /edit-listing/{id}", RequireAuth(authService, http.HandlerFunc(listings.HandleEdit)))
	mux.Handle("GET /delete-listing/{id}", RequireAuth(authService, http.HandlerFunc(listings.HandleDelete)))
	mux.Handle("GET /request-item/{id}", RequireAuth(authService, http.HandlerFunc(requests.HandleRequestItem)))
	mux.Handle("GET /my-requests", RequireAuth(authService, http.HandlerFunc(requests.HandleMyRequests)))
	mux.Handle("GET /handle-request/{id}/{action}", RequireAuth(authService, http.HandlerFunc(requests.HandleDecision)))
	mux.Handle("GET /images/{key}", RequireAuth(authService, http.HandlerFunc(listings.HandleImage)))

	// Moderation.
	mux.Handle("GET /admin", RequireAdmin(authService, http.HandlerFunc(admin.HandleDashboard)))
	mux.Handle("GET /admin/stats", RequireAdmin(authService, http.HandlerFunc(admin.HandleStats)))
	mux.Handle("GET /admin/users", RequireAdmin(authService, http.HandlerFunc(admin.HandleUsers)))
	mux.Handle("GET /admin/listings", RequireAdmin(authService, http.HandlerFunc(admin.HandleListings)))
	mux.Handle("GET /admin/delete-user/{id}", RequireAdmin(authService, http.HandlerFunc(admin.HandleDeleteUser)))
	mux.Handle("GET /admin/delete-listing/{id}", RequireAdmin(authService, http.HandlerFunc(admin.HandleDeleteListing)))
}
