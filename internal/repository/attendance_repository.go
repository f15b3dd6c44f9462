package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolmgt/sms-backend/internal/model"
)

// AttendanceRepository handles attendance data access. Reads join the
// student and their profile for the name projections.
type AttendanceRepository interface {
	List(ctx context.Context) ([]model.Attendance, error)
	GetByID(ctx context.Context, id int) (*model.Attendance, error)
	Create(ctx context.Context, a *model.Attendance) error
	Update(ctx context.Context, a *model.Attendance) error
	Delete(ctx context.Context, id int) error
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

const attendanceSelect = `
	SELECT a.id, a.student_id, a.date, a.status, a.created_at, a.updated_at,
	       s.id, s.user_id, s.roll_number, s.grade,
	       u.id, u.first_name, u.last_name, u.email, u.role
	FROM attendance a
	JOIN students s ON s.id = a.student_id
	JOIN user_profiles u ON u.id = s.user_id`

func scanAttendance(row pgx.Row) (*model.Attendance, error) {
	a := &model.Attendance{}
	s := &model.Student{}
	u := &model.UserProfile{}
	err := row.Scan(
		&a.ID, &a.StudentID, &a.Date, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&s.ID, &s.UserID, &s.RollNumber, &s.Grade,
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role,
	)
	if err != nil {
		return nil, err
	}
	s.User = u
	a.Student = s
	return a, nil
}

// List retrieves all attendance records, newest date first. Same-date ties
// keep insertion order.
func (r *attendanceRepository) List(ctx context.Context) ([]model.Attendance, error) {
	rows, err := r.pool.Query(ctx, attendanceSelect+` ORDER BY a.date DESC, a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *a)
	}
	return records, rows.Err()
}

// GetByID retrieves one attendance record by ID.
func (r *attendanceRepository) GetByID(ctx context.Context, id int) (*model.Attendance, error) {
	a, err := scanAttendance(r.pool.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new attendance record. No uniqueness is enforced on
// (student, date); duplicates are permitted.
func (r *attendanceRepository) Create(ctx context.Context, a *model.Attendance) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO attendance (student_id, date, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		a.StudentID, a.Date, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if pgErrCode(err) == pgForeignKeyViolation {
		return ErrBadReference
	}
	return err
}

// Update modifies an existing attendance record.
func (r *attendanceRepository) Update(ctx context.Context, a *model.Attendance) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE attendance
		 SET student_id = $1, date = $2, status = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		a.StudentID, a.Date, a.Status, a.ID,
	)
	if pgErrCode(err) == pgForeignKeyViolation {
		return ErrBadReference
	}
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an attendance record by ID.
func (r *attendanceRepository) Delete(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
