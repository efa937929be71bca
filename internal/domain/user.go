package domain

import (
	"context"
	"time"
)

// User represents a registered user of the marketplace.
type User struct {
	ID           int64
	Email        string
	DisplayName  string
	Location     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// ListMembers returns all non-admin users, newest first.
	ListMembers(ctx context.Context) ([]User, error)
	// DeleteMember deletes a user only if they are not an admin.
	// Admin rows are never touched through this path.
	DeleteMember(ctx context.Context, id int64) error
	CountMembers(ctx context.Context) (int64, error)
}
