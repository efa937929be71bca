package domain_test

import (
	"testing"

	"github.com/ecoswap/ecoswap/internal/domain"
)

var (
	owner     = &domain.User{ID: 1, DisplayName: "Owner"}
	stranger  = &domain.User{ID: 2, DisplayName: "Stranger"}
	moderator = &domain.User{ID: 3, DisplayName: "Moderator", IsAdmin: true}
)

func activeListing() *domain.Listing {
	return &domain.Listing{ID: 10, UserID: owner.ID, Status: domain.ListingStatusActive}
}

func TestCanEditListing(t *testing.T) {
	l := activeListing()

	if !domain.CanEditListing(owner, l) {
		t.Fatal("owner should be able to edit own listing")
	}
	if domain.CanEditListing(stranger, l) {
		t.Fatal("non-owner should not be able to edit listing")
	}
	if domain.CanEditListing(moderator, l) {
		t.Fatal("admin should not get an edit override")
	}
	if domain.CanEditListing(nil, l) || domain.CanEditListing(owner, nil) {
		t.Fatal("nil actor or listing should never be allowed")
	}
}

func TestCanDeleteListing(t *testing.T) {
	l := activeListing()

	if !domain.CanDeleteListing(owner, l) {
		t.Fatal("owner should be able to delete own listing")
	}
	if !domain.CanDeleteListing(moderator, l) {
		t.Fatal("admin should be able to delete any listing")
	}
	if domain.CanDeleteListing(stranger, l) {
		t.Fatal("non-owner non-admin should not be able to delete listing")
	}
}

func TestCanRequestListing(t *testing.T) {
	l := activeListing()

	if !domain.CanRequestListing(stranger, l, false) {
		t.Fatal("non-owner without an existing request should be allowed")
	}
	if domain.CanRequestListing(owner, l, false) {
		t.Fatal("owner should never be able to request own listing")
	}
	if domain.CanRequestListing(stranger, l, true) {
		t.Fatal("duplicate request should be blocked")
	}

	// Status is deliberately not consulted.
	l.Status = domain.ListingStatusInactive
	if !domain.CanRequestListing(stranger, l, false) {
		t.Fatal("listing status should not affect the request predicate")
	}
}

func TestCanHandleRequest(t *testing.T) {
	l := activeListing()
	req := &domain.Request{ID: 20, ListingID: l.ID, RequesterID: stranger.ID}

	if !domain.CanHandleRequest(owner, req, l) {
		t.Fatal("listing owner should be able to handle the request")
	}
	if domain.CanHandleRequest(stranger, req, l) {
		t.Fatal("requester should not be able to handle their own request")
	}
	if domain.CanHandleRequest(moderator, req, l) {
		t.Fatal("admin should not get a handle-request override")
	}

	other := &domain.Listing{ID: 99, UserID: owner.ID}
	if domain.CanHandleRequest(owner, req, other) {
		t.Fatal("request must belong to the listing being checked")
	}
}

func TestCanDeleteUser(t *testing.T) {
	if !domain.CanDeleteUser(moderator, stranger) {
		t.Fatal("admin should be able to delete a member")
	}
	if domain.CanDeleteUser(stranger, owner) {
		t.Fatal("non-admin should not be able to delete anyone")
	}
	otherAdmin := &domain.User{ID: 4, IsAdmin: true}
	if domain.CanDeleteUser(moderator, otherAdmin) {
		t.Fatal("admin accounts must be immutable through the delete path")
	}
}
