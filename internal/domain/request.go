package domain

import (
	"context"
	"time"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusAccepted RequestStatus = "Accepted"
	RequestStatusDeclined RequestStatus = "Declined"
)

// Request is a claim by one user expressing interest in another
// user's listing. At most one request exists per (listing, requester)
// pair; the status moves from Pending to Accepted or Declined exactly
// once and is terminal thereafter.
type Request struct {
	ID          int64
	ListingID   int64
	RequesterID int64
	Status      RequestStatus
	CreatedAt   time.Time

	// Denormalized fields populated by list queries.
	ListingTitle  string
	ListingImage  string
	OwnerName     string
	RequesterName string
}

// RequestRepository defines persistence operations for requests.
type RequestRepository interface {
	Create(ctx context.Context, request *Request) error
	// GetOwned returns a request only if ownerID owns its listing.
	// Missing and not-owned are both ErrNotFound.
	GetOwned(ctx context.Context, id, ownerID int64) (*Request, error)
	Exists(ctx context.Context, listingID, requesterID int64) (bool, error)
	// Accept marks the request Accepted and its listing Inactive in a
	// single transaction. Returns ErrAlreadyHandled if the request is
	// no longer Pending.
	Accept(ctx context.Context, id int64) error
	// Decline marks the request Declined. The listing is untouched.
	// Returns ErrAlreadyHandled if the request is no longer Pending.
	Decline(ctx context.Context, id int64) error
	// ListByRequester returns requests the user has sent, newest first.
	ListByRequester(ctx context.Context, requesterID int64) ([]Request, error)
	// ListByOwner returns requests received on the user's listings,
	// newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]Request, error)
	Count(ctx context.Context) (int64, error)
}
