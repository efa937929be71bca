package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ecoswap/ecoswap/internal/domain"
)

// RequestRepository implements domain.RequestRepository using SQLite.
type RequestRepository struct {
	db *sql.DB
}

// NewRequestRepository creates a new SQLite-backed RequestRepository.
func NewRequestRepository(db *DB) *RequestRepository {
	return &RequestRepository{db: db.SqlDB}
}

func (r *RequestRepository) Create(ctx context.Context, request *domain.Request) error {
	now := time.Now().UTC()
	if request.Status == "" {
		request.Status = domain.RequestStatusPending
	}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO requests (listing_id, requester_id, status, created_at)
		 VALUES (?, ?, ?, ?)`,
		request.ListingID, request.RequesterID, request.Status, now,
	)
	if err != nil {
		// The UNIQUE(listing_id, requester_id) constraint backstops
		// the service-level duplicate check against races.
		if isUniqueConstraintError(err) {
			return domain.ErrAlreadyRequested
		}
		return fmt.Errorf("insert request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	request.ID = id
	request.CreatedAt = now
	return nil
}

// GetOwned returns a request only if ownerID owns the listing it
// targets. A missing request and someone else's request are both
// ErrNotFound; callers cannot tell the cases apart.
func (r *RequestRepository) GetOwned(ctx context.Context, id, ownerID int64) (*domain.Request, error) {
	req := &domain.Request{}
	err := r.db.QueryRowContext(ctx,
		`SELECT r.id, r.listing_id, r.requester_id, r.status, r.created_at
		 FROM requests r
		 JOIN listings l ON r.listing_id = l.id
		 WHERE r.id = ? AND l.user_id = ?`, id, ownerID,
	).Scan(&req.ID, &req.ListingID, &req.RequesterID, &req.Status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get owned request: %w", err)
	}
	return req, nil
}

func (r *RequestRepository) Exists(ctx context.Context, listingID, requesterID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM requests WHERE listing_id = ? AND requester_id = ?",
		listingID, requesterID,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check request exists: %w", err)
	}
	return true, nil
}

// Accept marks the request Accepted and its listing Inactive in one
// transaction, so a concurrent reader never sees an accepted request
// against a still-active listing. The status='Pending' guard makes
// handled requests terminal.
func (r *RequestRepository) Accept(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE requests SET status = ? WHERE id = ? AND status = ?",
		domain.RequestStatusAccepted, id, domain.RequestStatusPending,
	)
	if err != nil {
		return fmt.Errorf("accept request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAlreadyHandled
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE listings SET status = ?, updated_at = ?
		 WHERE id = (SELECT listing_id FROM requests WHERE id = ?)`,
		domain.ListingStatusInactive, time.Now().UTC(), id,
	); err != nil {
		return fmt.Errorf("deactivate listing: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Decline marks the request Declined. The listing stays as it is.
func (r *RequestRepository) Decline(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE requests SET status = ? WHERE id = ? AND status = ?",
		domain.RequestStatusDeclined, id, domain.RequestStatusPending,
	)
	if err != nil {
		return fmt.Errorf("decline request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAlreadyHandled
	}
	return nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]domain.Request, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.listing_id, r.requester_id, r.status, r.created_at,
		        l.title, l.image_key, u.display_name
		 FROM requests r
		 JOIN listings l ON r.listing_id = l.id
		 JOIN users u ON l.user_id = u.id
		 WHERE r.requester_id = ?
		 ORDER BY r.created_at DESC, r.id DESC`, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list requests by requester: %w", err)
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.ListingID, &req.RequesterID, &req.Status, &req.CreatedAt,
			&req.ListingTitle, &req.ListingImage, &req.OwnerName); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Request, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.listing_id, r.requester_id, r.status, r.created_at,
		        l.title, l.image_key, u.display_name
		 FROM requests r
		 JOIN listings l ON r.listing_id = l.id
		 JOIN users u ON r.requester_id = u.id
		 WHERE l.user_id = ?
		 ORDER BY r.created_at DESC, r.id DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list requests by owner: %w", err)
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.ListingID, &req.RequesterID, &req.Status, &req.CreatedAt,
			&req.ListingTitle, &req.ListingImage, &req.RequesterName); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM requests").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return count, nil
}
