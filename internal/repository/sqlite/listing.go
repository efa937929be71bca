package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecoswap/ecoswap/internal/domain"
)

// ListingRepository implements domain.ListingRepository using SQLite.
type ListingRepository struct {
	db *sql.DB
}

// NewListingRepository creates a new SQLite-backed ListingRepository.
func NewListingRepository(db *DB) *ListingRepository {
	return &ListingRepository{db: db.SqlDB}
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	now := time.Now().UTC()
	if listing.Status == "" {
		listing.Status = domain.ListingStatusActive
	}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO listings (user_id, title, description, category, condition, listing_type, status, image_key, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		listing.UserID, listing.Title, listing.Description, listing.Category,
		listing.Condition, listing.ListingType, listing.Status, listing.ImageKey, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	listing.ID = id
	listing.CreatedAt = now
	listing.UpdatedAt = now
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, description, category, condition, listing_type, status, image_key, created_at, updated_at
		 FROM listings WHERE id = ?`, id,
	).Scan(&l.ID, &l.UserID, &l.Title, &l.Description, &l.Category,
		&l.Condition, &l.ListingType, &l.Status, &l.ImageKey, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// ListActive returns Active listings matching the filter, newest first.
// The query is assembled from a fixed set of predicate clauses; user
// input only ever travels as bound parameters.
func (r *ListingRepository) ListActive(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	where := []string{"l.status = ?"}
	args := []any{domain.ListingStatusActive}

	if filter.Search != "" {
		where = append(where, "(l.title LIKE ? OR l.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Category != "" {
		where = append(where, "l.category = ?")
		args = append(args, filter.Category)
	}
	if filter.ListingType != "" {
		where = append(where, "l.listing_type = ?")
		args = append(args, filter.ListingType)
	}

	query := `SELECT l.id, l.user_id, l.title, l.description, l.category, l.condition, l.listing_type, l.status, l.image_key, l.created_at, l.updated_at,
	                 u.display_name, u.location
	          FROM listings l
	          JOIN users u ON l.user_id = u.id
	          WHERE ` + strings.Join(where, " AND ") + `
	          ORDER BY l.created_at DESC, l.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list active listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.Description, &l.Category,
			&l.Condition, &l.ListingType, &l.Status, &l.ImageKey, &l.CreatedAt, &l.UpdatedAt,
			&l.OwnerName, &l.OwnerLocation); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, description, category, condition, listing_type, status, image_key, created_at, updated_at
		 FROM listings WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list listings by user: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.Description, &l.Category,
			&l.Condition, &l.ListingType, &l.Status, &l.ImageKey, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) ListAll(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT l.id, l.user_id, l.title, l.description, l.category, l.condition, l.listing_type, l.status, l.image_key, l.created_at, l.updated_at,
		        u.display_name, u.email
		 FROM listings l
		 JOIN users u ON l.user_id = u.id
		 ORDER BY l.created_at DESC, l.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.Description, &l.Category,
			&l.Condition, &l.ListingType, &l.Status, &l.ImageKey, &l.CreatedAt, &l.UpdatedAt,
			&l.OwnerName, &l.OwnerEmail); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// UpdateOwned updates descriptive fields of a listing, scoped by owner.
// Ownership and status are never written through this path. A missing
// or foreign row both come back as ErrNotFound.
func (r *ListingRepository) UpdateOwned(ctx context.Context, listing *domain.Listing) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE listings SET title = ?, description = ?, category = ?, condition = ?, listing_type = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		listing.Title, listing.Description, listing.Category, listing.Condition,
		listing.ListingType, now, listing.ID, listing.UserID,
	)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	listing.UpdatedAt = now
	return nil
}

func (r *ListingRepository) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM listings WHERE id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM listings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ListingRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM listings WHERE status = ?", domain.ListingStatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active listings: %w", err)
	}
	return count, nil
}
