package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail signals the unique constraint on user_profiles.email.
	ErrDuplicateEmail = errors.New("a user profile with this email already exists")

	// ErrDuplicateRollNumber signals the unique constraint on students.roll_number.
	ErrDuplicateRollNumber = errors.New("a student with this roll number already exists")

	// ErrDuplicateUser signals the one-to-one constraint between a profile
	// and its student/teacher record.
	ErrDuplicateUser = errors.New("a record for this user already exists")

	// ErrDuplicateStudentLink signals a student linked twice to one classroom.
	ErrDuplicateStudentLink = errors.New("student is already linked to this classroom")

	// ErrBadReference is returned when a write references a missing row.
	ErrBadReference = errors.New("referenced record does not exist")
)

// PostgreSQL error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgErrCode extracts the PostgreSQL error code, or "" for non-pg errors.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// pgConstraint extracts the violated constraint name, or "" for non-pg errors.
func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
