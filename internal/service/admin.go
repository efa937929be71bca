package service

import (
	"context"
	"fmt"

	"github.com/ecoswap/ecoswap/internal/domain"
)

// AdminStats are the dashboard counters.
type AdminStats struct {
	TotalMembers   int64
	ActiveListings int64
	TotalRequests  int64
}

// AdminService handles moderation operations. Every entry point
// re-checks that the actor is an admin; handlers gate the routes but
// the service does not trust them to.
type AdminService struct {
	users    domain.UserRepository
	listings domain.ListingRepository
	requests domain.RequestRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(users domain.UserRepository, listings domain.ListingRepository, requests domain.RequestRepository) *AdminService {
	return &AdminService{users: users, listings: listings, requests: requests}
}

// Stats returns the dashboard counters.
func (s *AdminService) Stats(ctx context.Context, actor *domain.User) (*AdminStats, error) {
	if actor == nil || !actor.IsAdmin {
		return nil, domain.ErrUnauthorized
	}

	members, err := s.users.CountMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}
	active, err := s.listings.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active listings: %w", err)
	}
	requests, err := s.requests.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count requests: %w", err)
	}

	return &AdminStats{
		TotalMembers:   members,
		ActiveListings: active,
		TotalRequests:  requests,
	}, nil
}

// ListMembers returns all non-admin users for the moderation view.
func (s *AdminService) ListMembers(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if actor == nil || !actor.IsAdmin {
		return nil, domain.ErrUnauthorized
	}
	return s.users.ListMembers(ctx)
}

// ListAllListings returns every listing with owner details.
func (s *AdminService) ListAllListings(ctx context.Context, actor *domain.User) ([]domain.Listing, error) {
	if actor == nil || !actor.IsAdmin {
		return nil, domain.ErrUnauthorized
	}
	return s.listings.ListAll(ctx)
}

// DeleteUser removes a member account. Admin accounts can never be
// deleted: the predicate refuses them and the repository statement is
// scoped to is_admin = 0 as well.
func (s *AdminService) DeleteUser(ctx context.Context, actor *domain.User, targetID int64) error {
	if actor == nil || !actor.IsAdmin {
		return domain.ErrUnauthorized
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if !domain.CanDeleteUser(actor, target) {
		return domain.ErrNotFound
	}

	return s.users.DeleteMember(ctx, targetID)
}

// DeleteListing removes any listing. Requests on it cascade away.
func (s *AdminService) DeleteListing(ctx context.Context, actor *domain.User, listingID int64) error {
	if actor == nil || !actor.IsAdmin {
		return domain.ErrUnauthorized
	}
	return s.listings.Delete(ctx, listingID)
}
