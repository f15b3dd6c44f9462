package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolmgt/sms-backend/internal/model"
)

// UserProfileRepository handles user profile data access.
type UserProfileRepository interface {
	List(ctx context.Context) ([]model.UserProfile, error)
	GetByID(ctx context.Context, id int) (*model.UserProfile, error)
	Create(ctx context.Context, p *model.UserProfile) error
	Update(ctx context.Context, p *model.UserProfile) error
	Delete(ctx context.Context, id int) error
}

type userProfileRepository struct {
	pool *pgxpool.Pool
}

// NewUserProfileRepository creates a new UserProfileRepository.
func NewUserProfileRepository(pool *pgxpool.Pool) UserProfileRepository {
	return &userProfileRepository{pool: pool}
}

// List retrieves all profiles in insertion order.
func (r *userProfileRepository) List(ctx context.Context) ([]model.UserProfile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email, role, created_at, updated_at
		 FROM user_profiles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []model.UserProfile
	for rows.Next() {
		var p model.UserProfile
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Role, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// GetByID retrieves a profile by ID.
func (r *userProfileRepository) GetByID(ctx context.Context, id int) (*model.UserProfile, error) {
	p := &model.UserProfile{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, role, created_at, updated_at
		 FROM user_profiles WHERE id = $1`, id,
	).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Role, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new profile.
func (r *userProfileRepository) Create(ctx context.Context, p *model.UserProfile) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO user_profiles (first_name, last_name, email, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		p.FirstName, p.LastName, p.Email, p.Role,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if pgErrCode(err) == pgUniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}

// Update modifies an existing profile.
func (r *userProfileRepository) Update(ctx context.Context, p *model.UserProfile) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE user_profiles
		 SET first_name = $1, last_name = $2, email = $3, role = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		p.FirstName, p.LastName, p.Email, p.Role, p.ID,
	)
	if pgErrCode(err) == pgUniqueViolation {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a profile by ID. Dependent student/teacher records are
// removed by the ON DELETE CASCADE rules.
func (r *userProfileRepository) Delete(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
