package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/service"
	"github.com/ecoswap/ecoswap/internal/view"
)

// ListingHandler handles listing pages and mutations.
type ListingHandler struct {
	listings *service.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listings *service.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// HandleMarketplace renders active listings, filtered by the query
// string. Inactive listings never appear no matter the filter.
// GET /marketplace?search&category&type
func (h *ListingHandler) HandleMarketplace(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromRequest(r)
	tr := translator(r)

	filter := domain.ListingFilter{
		Search:      r.URL.Query().Get("search"),
		Category:    r.URL.Query().Get("category"),
		ListingType: r.URL.Query().Get("type"),
	}

	listings, err := h.listings.Marketplace(r.Context(), filter)
	if err != nil {
		slog.Error("list marketplace", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.MarketplacePage(sess, tr, popFlash(w, r, tr), listings, filter).Render(r.Context(), w)
}

// HandleMyListings renders the user's own listings.
// GET /my-listings
func (h *ListingHandler) HandleMyListings(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromRequest(r)
	tr := translator(r)

	listings, err := h.listings.ListByUser(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("list own listings", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.MyListingsPage(sess, tr, popFlash(w, r, tr), listings).Render(r.Context(), w)
}

// HandleCreatePage renders the empty listing form.
// GET /create-listing
func (h *ListingHandler) HandleCreatePage(w http.ResponseWriter, r *http.Request) {
	view.ListingFormPage(SessionFromRequest(r), translator(r), nil, "").Render(r.Context(), w)
}

// HandleCreate processes listing creation, including an optional photo
// upload.
// POST /create-listing
func (h *ListingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	sess := SessionFromRequest(r)
	tr := translator(r)

	listing, imageData, imageType, err := parseListingForm(r)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		view.ListingFormPage(sess, tr, listing, err.Error()).Render(r.Context(), w)
		return
	}

	if err := h.listings.Create(r.Context(), user, listing, imageData, imageType); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			view.ListingFormPage(sess, tr, listing, err.Error()).Render(r.Context(), w)
			return
		}
		slog.Error("create listing", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		view.ListingFormPage(sess, tr, listing, "An unexpected error occurred.").Render(r.Context(), w)
		return
	}

	setFlash(w, flashSuccess, "listing.created")
	http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
}

// HandleEditPage renders the edit form for a listing the user owns.
// A listing that is missing or owned by someone else gets the same
// redirect; existence is not disclosed.
// GET /edit-listing/{id}
func (h *ListingHandler) HandleEditPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	sess := SessionFromRequest(r)
	tr := translator(r)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	listing, err := h.listings.GetOwned(r.Context(), user, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			setFlash(w, flashError, "listing.not_found")
			http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
			return
		}
		slog.Error("get listing for edit", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.ListingFormPage(sess, tr, listing, "").Render(r.Context(), w)
}

// HandleEdit processes an edit form submission. Only descriptive
// fields change; owner and status are untouchable here.
// POST /edit-listing/{id}
func (h *ListingHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	sess := SessionFromRequest(r)
	tr := translator(r)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	listing, _, _, err := parseListingForm(r)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		view.ListingFormPage(sess, tr, listing, err.Error()).Render(r.Context(), w)
		return
	}
	listing.ID = id

	if err := h.listings.Update(r.Context(), user, listing); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			setFlash(w, flashError, "listing.not_found")
			http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			view.ListingFormPage(sess, tr, listing, err.Error()).Render(r.Context(), w)
			return
		}
		slog.Error("update listing", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	setFlash(w, flashSuccess, "listing.updated")
	http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
}

// HandleDelete deletes a listing the user owns. The redirect is the
// same whether or not the row existed.
// GET /delete-listing/{id}
func (h *ListingHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.listings.Delete(r.Context(), user, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		slog.Error("delete listing", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	setFlash(w, flashSuccess, "listing.deleted")
	http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
}

// HandleImage serves a listing photo.
// GET /images/{key}
func (h *ListingHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	data, contentType, err := h.listings.GetImage(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("serve image", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// parseListingForm reads listing fields and the optional photo from a
// multipart or urlencoded form submission.
func parseListingForm(r *http.Request) (*domain.Listing, []byte, string, error) {
	var imageData []byte
	var imageType string

	contentType := r.Header.Get("Content-Type")
	if len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return nil, nil, "", err
		}
		if file, _, err := r.FormFile("image"); err == nil {
			defer file.Close()
			data, err := io.ReadAll(file)
			if err != nil {
				return nil, nil, "", err
			}
			if len(data) > 0 {
				imageData = data
				// Detect content type from file bytes (more reliable
				// than the multipart header).
				imageType = http.DetectContentType(data)
			}
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, nil, "", err
	}

	listing := &domain.Listing{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Condition:   r.FormValue("condition"),
		ListingType: domain.ListingType(r.FormValue("listing_type")),
	}
	return listing, imageData, imageType, nil
}
