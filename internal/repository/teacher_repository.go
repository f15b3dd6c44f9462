package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolmgt/sms-backend/internal/model"
)

// TeacherRepository handles teacher data access. Read operations join the
// linked user profile so the presentation layer can flatten it.
type TeacherRepository interface {
	List(ctx context.Context) ([]model.Teacher, error)
	GetByID(ctx context.Context, id int) (*model.Teacher, error)
	Create(ctx context.Context, t *model.Teacher) error
	Update(ctx context.Context, t *model.Teacher) error
	Delete(ctx context.Context, id int) error
}

type teacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) TeacherRepository {
	return &teacherRepository{pool: pool}
}

const teacherSelect = `
	SELECT t.id, t.user_id, t.subject, t.created_at, t.updated_at,
	       u.id, u.first_name, u.last_name, u.email, u.role
	FROM teachers t
	JOIN user_profiles u ON u.id = t.user_id`

func scanTeacher(row pgx.Row) (*model.Teacher, error) {
	t := &model.Teacher{}
	u := &model.UserProfile{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.Subject, &t.CreatedAt, &t.UpdatedAt,
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role,
	)
	if err != nil {
		return nil, err
	}
	t.User = u
	return t, nil
}

// List retrieves all teachers with their profiles, in insertion order.
func (r *teacherRepository) List(ctx context.Context) ([]model.Teacher, error) {
	rows, err := r.pool.Query(ctx, teacherSelect+` ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, *t)
	}
	return teachers, rows.Err()
}

// GetByID retrieves a teacher with their profile by ID.
func (r *teacherRepository) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	t, err := scanTeacher(r.pool.QueryRow(ctx, teacherSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create inserts a new teacher.
func (r *teacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO teachers (user_id, subject)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		t.UserID, t.Subject,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return mapTeacherWriteErr(err)
}

// Update modifies an existing teacher.
func (r *teacherRepository) Update(ctx context.Context, t *model.Teacher) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE teachers
		 SET user_id = $1, subject = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		t.UserID, t.Subject, t.ID,
	)
	if err != nil {
		return mapTeacherWriteErr(err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a teacher by ID. Classrooms referencing the teacher keep
// existing with a nulled reference (ON DELETE SET NULL).
func (r *teacherRepository) Delete(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func mapTeacherWriteErr(err error) error {
	switch pgErrCode(err) {
	case pgUniqueViolation:
		return ErrDuplicateUser
	case pgForeignKeyViolation:
		return ErrBadReference
	}
	return err
}
