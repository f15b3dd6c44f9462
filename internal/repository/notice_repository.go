package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolmgt/sms-backend/internal/model"
)

// NoticeRepository handles notice data access.
type NoticeRepository interface {
	List(ctx context.Context) ([]model.Notice, error)
	GetByID(ctx context.Context, id int) (*model.Notice, error)
	Create(ctx context.Context, n *model.Notice) error
	Update(ctx context.Context, n *model.Notice) error
	Delete(ctx context.Context, id int) error
}

type noticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository creates a new NoticeRepository.
func NewNoticeRepository(pool *pgxpool.Pool) NoticeRepository {
	return &noticeRepository{pool: pool}
}

// List retrieves all notices, newest first.
func (r *noticeRepository) List(ctx context.Context) ([]model.Notice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, message, created_at, updated_at
		 FROM notices ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []model.Notice
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// GetByID retrieves a notice by ID.
func (r *noticeRepository) GetByID(ctx context.Context, id int) (*model.Notice, error) {
	n := &model.Notice{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, message, created_at, updated_at
		 FROM notices WHERE id = $1`, id,
	).Scan(&n.ID, &n.Title, &n.Message, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// Create inserts a new notice.
func (r *noticeRepository) Create(ctx context.Context, n *model.Notice) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notices (title, message)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		n.Title, n.Message,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

// Update modifies an existing notice.
func (r *noticeRepository) Update(ctx context.Context, n *model.Notice) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE notices SET title = $1, message = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		n.Title, n.Message, n.ID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a notice by ID.
func (r *noticeRepository) Delete(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
