package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/service"
	"github.com/ecoswap/ecoswap/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

// AdminHandler handles the moderation dashboard and its actions.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// HandleDashboard renders the dashboard with the current counters.
// GET /admin
func (h *AdminHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	sess := SessionFromRequest(r)
	tr := translator(r)

	stats, err := h.admin.Stats(r.Context(), user)
	if err != nil {
		slog.Error("load admin stats", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.AdminDashboardPage(sess, tr, popFlash(w, r, tr),
		stats.TotalMembers, stats.ActiveListings, stats.TotalRequests).Render(r.Context(), w)
}

// HandleStats re-renders the counter block over SSE. The dashboard
// polls this on an interval so the numbers stay fresh without a reload.
// GET /admin/stats
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	tr := translator(r)

	stats, err := h.admin.Stats(r.Context(), user)
	if err != nil {
		slog.Error("load admin stats", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.AdminStatsFragment(tr, stats.TotalMembers, stats.ActiveListings, stats.TotalRequests),
		datastar.WithSelectorID("admin-stats"),
		datastar.WithModeInner(),
	)
}

// HandleUsers renders the member moderation table.
// GET /admin/users
func (h *AdminHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	sess := SessionFromRequest(r)
	tr := translator(r)

	users, err := h.admin.ListMembers(r.Context(), user)
	if err != nil {
		slog.Error("list members", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.AdminUsersPage(sess, tr, popFlash(w, r, tr), users).Render(r.Context(), w)
}

// HandleListings renders every listing, active or not, with owner
// contact details.
// GET /admin/listings
func (h *AdminHandler) HandleListings(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	sess := SessionFromRequest(r)
	tr := translator(r)

	listings, err := h.admin.ListAllListings(r.Context(), user)
	if err != nil {
		slog.Error("list all listings", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.AdminListingsPage(sess, tr, popFlash(w, r, tr), listings).Render(r.Context(), w)
}

// HandleDeleteUser removes a member and everything they own. Admin
// accounts are refused the same way a missing account is.
// GET /admin/delete-user/{id}
func (h *AdminHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.admin.DeleteUser(r.Context(), user, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		slog.Error("delete user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	setFlash(w, flashSuccess, "admin.user_deleted")
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// HandleDeleteListing removes any listing.
// GET /admin/delete-listing/{id}
func (h *AdminHandler) HandleDeleteListing(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.admin.DeleteListing(r.Context(), user, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		slog.Error("admin delete listing", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	setFlash(w, flashSuccess, "admin.listing_deleted")
	http.Redirect(w, r, "/admin/listings", http.StatusSeeOther)
}
