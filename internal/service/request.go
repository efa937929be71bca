package service

import (
	"context"
	"fmt"

	"github.com/ecoswap/ecoswap/internal/domain"
)

// RequestAction is an accept/decline verb from the handle-request URL.
type RequestAction string

const (
	ActionAccept  RequestAction = "accept"
	ActionDecline RequestAction = "decline"
)

// RequestService handles request creation and the accept/decline state
// transitions.
type RequestService struct {
	requests domain.RequestRepository
	listings domain.ListingRepository
}

// NewRequestService creates a new RequestService.
func NewRequestService(requests domain.RequestRepository, listings domain.ListingRepository) *RequestService {
	return &RequestService{requests: requests, listings: listings}
}

// Create records actor's interest in a listing. Guard order is
// user-visible: the duplicate check runs before the own-listing check
// so each failure produces its distinct message. Listing status is not
// consulted.
func (s *RequestService) Create(ctx context.Context, actor *domain.User, listingID int64) (*domain.Request, error) {
	exists, err := s.requests.Exists(ctx, listingID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing request: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyRequested
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.UserID == actor.ID {
		return nil, domain.ErrOwnListing
	}
	if !domain.CanRequestListing(actor, listing, exists) {
		return nil, domain.ErrUnauthorized
	}

	request := &domain.Request{
		ListingID:   listingID,
		RequesterID: actor.ID,
		Status:      domain.RequestStatusPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// Handle applies an accept or decline to a pending request.
//   - An unknown action is ErrInvalidInput; nothing is touched.
//   - A request that does not exist and one whose listing the actor
//     does not own are both ErrNotFound.
//   - A request that is no longer Pending is ErrAlreadyHandled;
//     terminal states are never overwritten.
//
// Accepting also marks the listing Inactive; request and listing move
// together in one transaction. Declining leaves the listing alone, and
// sibling pending requests are never auto-declined.
func (s *RequestService) Handle(ctx context.Context, actor *domain.User, requestID int64, action RequestAction) error {
	if action != ActionAccept && action != ActionDecline {
		return fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, action)
	}

	request, err := s.requests.GetOwned(ctx, requestID, actor.ID)
	if err != nil {
		return err
	}

	listing, err := s.listings.GetByID(ctx, request.ListingID)
	if err != nil {
		return err
	}
	if !domain.CanHandleRequest(actor, request, listing) {
		return domain.ErrNotFound
	}

	if action == ActionAccept {
		return s.requests.Accept(ctx, requestID)
	}
	return s.requests.Decline(ctx, requestID)
}

// ListForUser returns the requests the user has sent and the requests
// received on the user's listings, both newest first.
func (s *RequestService) ListForUser(ctx context.Context, userID int64) (sent, received []domain.Request, err error) {
	sent, err = s.requests.ListByRequester(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list sent requests: %w", err)
	}
	received, err = s.requests.ListByOwner(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list received requests: %w", err)
	}
	return sent, received, nil
}
