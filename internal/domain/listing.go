package domain

import (
	"context"
	"time"
)

type ListingType string

const (
	ListingTypeExchange ListingType = "Exchange"
	ListingTypeDonate   ListingType = "Donate"
)

type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "Active"
	ListingStatusInactive ListingStatus = "Inactive"
)

// Listing is an item offered for exchange or donation.
type Listing struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Category    string
	Condition   string
	ListingType ListingType
	Status      ListingStatus
	ImageKey    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Denormalized owner fields populated by list queries.
	OwnerName     string
	OwnerLocation string
	OwnerEmail    string
}

// ListingFilter narrows a marketplace query. Zero-value fields are
// ignored; every value is bound as a query parameter.
type ListingFilter struct {
	Search      string
	Category    string
	ListingType string
}

// ListingRepository defines persistence operations for listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	GetByID(ctx context.Context, id int64) (*Listing, error)
	// ListActive returns Active listings matching the filter, newest
	// first, with owner name and location joined in.
	ListActive(ctx context.Context, filter ListingFilter) ([]Listing, error)
	ListByUser(ctx context.Context, userID int64) ([]Listing, error)
	// ListAll returns every listing regardless of status, with owner
	// name and email joined in. Admin views only.
	ListAll(ctx context.Context) ([]Listing, error)
	// UpdateOwned updates descriptive fields of a listing scoped by
	// owner. Returns ErrNotFound if no row matched; ownership and
	// existence are indistinguishable to the caller.
	UpdateOwned(ctx context.Context, listing *Listing) error
	// DeleteOwned deletes a listing scoped by owner, with the same
	// opaque not-found semantics as UpdateOwned.
	DeleteOwned(ctx context.Context, id, ownerID int64) error
	Delete(ctx context.Context, id int64) error
	CountActive(ctx context.Context) (int64, error)
}
