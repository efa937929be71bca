package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/service"
	"github.com/ecoswap/ecoswap/internal/view"
)

// RequestHandler handles item requests and their accept/decline
// transitions.
type RequestHandler struct {
	requests *service.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(requests *service.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

// HandleRequestItem records interest in a listing and bounces back to
// the marketplace with a flash describing the outcome.
// GET /request-item/{id}
func (h *RequestHandler) HandleRequestItem(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err = h.requests.Create(r.Context(), user, id)
	switch {
	case err == nil:
		setFlash(w, flashSuccess, "request.sent")
	case errors.Is(err, domain.ErrAlreadyRequested):
		setFlash(w, flashError, "request.duplicate")
	case errors.Is(err, domain.ErrOwnListing):
		setFlash(w, flashError, "request.own_listing")
	case errors.Is(err, domain.ErrNotFound):
		setFlash(w, flashError, "listing.not_found")
	default:
		slog.Error("create request", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/marketplace", http.StatusSeeOther)
}

// HandleMyRequests renders sent and received requests side by side.
// GET /my-requests
func (h *RequestHandler) HandleMyRequests(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromRequest(r)
	tr := translator(r)

	sent, received, err := h.requests.ListForUser(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("list requests", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.MyRequestsPage(sess, tr, popFlash(w, r, tr), sent, received).Render(r.Context(), w)
}

// HandleDecision applies accept or decline to a pending request on one
// of the user's listings. A request that is gone, someone else's, or
// already settled all just flash and bounce; none of those outcomes
// reveals more than "not available".
// GET /handle-request/{id}/{action}
func (h *RequestHandler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	action := service.RequestAction(r.PathValue("action"))

	err = h.requests.Handle(r.Context(), user, id, action)
	switch {
	case err == nil:
		if action == service.ActionAccept {
			setFlash(w, flashSuccess, "request.accepted")
		} else {
			setFlash(w, flashSuccess, "request.declined")
		}
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrAlreadyHandled):
		setFlash(w, flashError, "request.already_handled")
	case errors.Is(err, domain.ErrNotFound):
		setFlash(w, flashError, "request.not_found")
	default:
		slog.Error("handle request", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/my-requests", http.StatusSeeOther)
}
