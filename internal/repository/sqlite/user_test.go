package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ecoswap/ecoswap/internal/domain"
)

func TestUserCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com", false)
	if user.ID == 0 {
		t.Fatal("expected user ID to be set after Create")
	}

	byID, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != "anna@example.com" {
		t.Fatalf("expected email anna@example.com, got %s", byID.Email)
	}

	byEmail, err := db.Users().GetByEmail(ctx, "anna@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Fatalf("expected ID %d, got %d", user.ID, byEmail.ID)
	}
}

func TestUserGetNotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Users().GetByID(context.Background(), 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := db.Users().GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	seedUser(t, db, "dup@example.com", false)

	err := db.Users().Create(context.Background(), &domain.User{
		Email:        "dup@example.com",
		DisplayName:  "Other",
		PasswordHash: "hash",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserListMembersExcludesAdmins(t *testing.T) {
	db := newTestDB(t)

	seedUser(t, db, "member1@example.com", false)
	seedUser(t, db, "member2@example.com", false)
	seedUser(t, db, "admin@example.com", true)

	members, err := db.Users().ListMembers(context.Background())
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	for _, m := range members {
		if m.IsAdmin {
			t.Fatalf("admin %s leaked into member list", m.Email)
		}
	}

	count, err := db.Users().CountMembers(context.Background())
	if err != nil {
		t.Fatalf("CountMembers: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected member count 2, got %d", count)
	}
}

func TestUserDeleteMember(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	member := seedUser(t, db, "member@example.com", false)

	if err := db.Users().DeleteMember(ctx, member.ID); err != nil {
		t.Fatalf("DeleteMember: %v", err)
	}
	if _, err := db.Users().GetByID(ctx, member.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected deleted user to be gone, got %v", err)
	}

	// Deleting again reports not found.
	if err := db.Users().DeleteMember(ctx, member.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestUserDeleteMemberRefusesAdmins(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	admin := seedUser(t, db, "admin@example.com", true)

	// The statement is scoped to is_admin = 0, so the admin row never
	// matches.
	if err := db.Users().DeleteMember(ctx, admin.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for admin target, got %v", err)
	}
	if _, err := db.Users().GetByID(ctx, admin.ID); err != nil {
		t.Fatalf("admin should still exist: %v", err)
	}
}

func TestUserDeleteCascadesListings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", false)
	listing := seedListing(t, db, owner.ID, "Lamp")

	if err := db.Users().DeleteMember(ctx, owner.ID); err != nil {
		t.Fatalf("DeleteMember: %v", err)
	}
	if _, err := db.Listings().GetByID(ctx, listing.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected listing to cascade away, got %v", err)
	}
}
