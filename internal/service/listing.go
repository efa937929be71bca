package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/google/uuid"
)

const maxImageBytes = 10 << 20 // 10MB

// ListingService handles listing CRUD and photo storage.
type ListingService struct {
	listings domain.ListingRepository
	files    domain.FileStore
}

// NewListingService creates a new ListingService.
func NewListingService(listings domain.ListingRepository, files domain.FileStore) *ListingService {
	return &ListingService{listings: listings, files: files}
}

// Create validates and stores a new Active listing owned by actor. If
// image data is provided it is saved to the blob store under a fresh
// UUID key and the listing references that key.
func (s *ListingService) Create(ctx context.Context, actor *domain.User, listing *domain.Listing, imageData []byte, imageType string) error {
	if err := validateListing(listing); err != nil {
		return err
	}

	listing.UserID = actor.ID
	listing.Status = domain.ListingStatusActive

	if len(imageData) > 0 {
		if len(imageData) > maxImageBytes {
			return fmt.Errorf("%w: image exceeds 10MB", domain.ErrInvalidInput)
		}
		if !strings.HasPrefix(imageType, "image/") {
			return fmt.Errorf("%w: uploaded file is not an image", domain.ErrInvalidInput)
		}
		key := uuid.NewString()
		if err := s.files.Save(ctx, key, imageType, imageData); err != nil {
			return fmt.Errorf("save listing photo: %w", err)
		}
		listing.ImageKey = key
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return fmt.Errorf("create listing: %w", err)
	}
	return nil
}

// GetOwned loads a listing for editing. A listing that does not exist
// and one the actor does not own are the same ErrNotFound.
func (s *ListingService) GetOwned(ctx context.Context, actor *domain.User, id int64) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanEditListing(actor, listing) {
		return nil, domain.ErrNotFound
	}
	return listing, nil
}

// Update applies descriptive field changes to a listing the actor
// owns. Ownership and status are never transferable through this path.
func (s *ListingService) Update(ctx context.Context, actor *domain.User, listing *domain.Listing) error {
	if err := validateListing(listing); err != nil {
		return err
	}
	listing.UserID = actor.ID
	return s.listings.UpdateOwned(ctx, listing)
}

// Delete removes a listing the actor may delete. Owners go through the
// owner-scoped statement; admins may delete any listing. Both paths
// report ErrNotFound without revealing whether the row existed.
func (s *ListingService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if actor.IsAdmin {
		return s.listings.Delete(ctx, id)
	}
	return s.listings.DeleteOwned(ctx, id, actor.ID)
}

// Marketplace returns Active listings matching the filter.
func (s *ListingService) Marketplace(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	return s.listings.ListActive(ctx, filter)
}

// ListByUser returns the actor's own listings, any status.
func (s *ListingService) ListByUser(ctx context.Context, userID int64) ([]domain.Listing, error) {
	return s.listings.ListByUser(ctx, userID)
}

// GetImage returns photo bytes and content type for a storage key.
func (s *ListingService) GetImage(ctx context.Context, key string) ([]byte, string, error) {
	return s.files.Get(ctx, key)
}

func validateListing(l *domain.Listing) error {
	if l.Title == "" || l.Description == "" || l.Category == "" || l.Condition == "" {
		return fmt.Errorf("%w: title, description, category, and condition are required", domain.ErrInvalidInput)
	}
	switch l.ListingType {
	case domain.ListingTypeExchange, domain.ListingTypeDonate:
	default:
		return fmt.Errorf("%w: listing type must be Exchange or Donate", domain.ErrInvalidInput)
	}
	return nil
}
