package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolmgt/sms-backend/internal/model"
)

// StudentRepository handles student data access. Read operations join the
// linked user profile so the presentation layer can flatten it.
type StudentRepository interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id int) (*model.Student, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, id int) error
}

type studentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) StudentRepository {
	return &studentRepository{pool: pool}
}

const studentSelect = `
	SELECT s.id, s.user_id, s.roll_number, s.grade, s.created_at, s.updated_at,
	       u.id, u.first_name, u.last_name, u.email, u.role
	FROM students s
	JOIN user_profiles u ON u.id = s.user_id`

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	u := &model.UserProfile{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.RollNumber, &s.Grade, &s.CreatedAt, &s.UpdatedAt,
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role,
	)
	if err != nil {
		return nil, err
	}
	s.User = u
	return s, nil
}

// List retrieves all students with their profiles, in insertion order.
func (r *studentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx, studentSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student with their profile by ID.
func (r *studentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s, err := scanStudent(r.pool.QueryRow(ctx, studentSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Create inserts a new student.
func (r *studentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (user_id, roll_number, grade)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		s.UserID, s.RollNumber, s.Grade,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return mapStudentWriteErr(err)
}

// Update modifies an existing student.
func (r *studentRepository) Update(ctx context.Context, s *model.Student) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE students
		 SET user_id = $1, roll_number = $2, grade = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		s.UserID, s.RollNumber, s.Grade, s.ID,
	)
	if err != nil {
		return mapStudentWriteErr(err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a student by ID. Attendance rows and classroom links are
// removed by the ON DELETE CASCADE rules.
func (r *studentRepository) Delete(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// mapStudentWriteErr translates constraint violations into typed errors.
// The one-to-one user constraint and the roll_number constraint share the
// unique-violation code and are told apart by constraint name.
func mapStudentWriteErr(err error) error {
	switch pgErrCode(err) {
	case pgUniqueViolation:
		if strings.Contains(pgConstraint(err), "roll_number") {
			return ErrDuplicateRollNumber
		}
		return ErrDuplicateUser
	case pgForeignKeyViolation:
		return ErrBadReference
	}
	return err
}
