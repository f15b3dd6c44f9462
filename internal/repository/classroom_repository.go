package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolmgt/sms-backend/internal/model"
)

// ClassRoomRepository handles classroom data access, including the
// student link set. Reads join the optional teacher and each linked
// student's profile.
type ClassRoomRepository interface {
	List(ctx context.Context) ([]model.ClassRoom, error)
	GetByID(ctx context.Context, id int) (*model.ClassRoom, error)
	Create(ctx context.Context, c *model.ClassRoom, studentIDs []int) error
	Update(ctx context.Context, c *model.ClassRoom, studentIDs []int) error
	Delete(ctx context.Context, id int) error
}

type classRoomRepository struct {
	pool *pgxpool.Pool
}

// NewClassRoomRepository creates a new ClassRoomRepository.
func NewClassRoomRepository(pool *pgxpool.Pool) ClassRoomRepository {
	return &classRoomRepository{pool: pool}
}

const classRoomSelect = `
	SELECT c.id, c.name, c.teacher_id, c.created_at, c.updated_at,
	       t.id, t.user_id, t.subject,
	       tu.id, tu.first_name, tu.last_name, tu.email, tu.role
	FROM classrooms c
	LEFT JOIN teachers t ON t.id = c.teacher_id
	LEFT JOIN user_profiles tu ON tu.id = t.user_id`

// scanClassRoom scans a classroom row with its optional teacher columns.
func scanClassRoom(row pgx.Row) (*model.ClassRoom, error) {
	c := &model.ClassRoom{}
	var (
		tID, tUserID             *int
		tSubject                 *string
		tuID                     *int
		tuFirst, tuLast, tuEmail *string
		tuRole                   *model.Role
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt,
		&tID, &tUserID, &tSubject,
		&tuID, &tuFirst, &tuLast, &tuEmail, &tuRole,
	)
	if err != nil {
		return nil, err
	}
	if tID != nil {
		c.Teacher = &model.Teacher{ID: *tID, UserID: *tUserID, Subject: *tSubject}
		if tuID != nil {
			c.Teacher.User = &model.UserProfile{
				ID:        *tuID,
				FirstName: *tuFirst,
				LastName:  *tuLast,
				Email:     *tuEmail,
				Role:      *tuRole,
			}
		}
	}
	return c, nil
}

// List retrieves all classrooms with teachers and linked students.
func (r *classRoomRepository) List(ctx context.Context) ([]model.ClassRoom, error) {
	rows, err := r.pool.Query(ctx, classRoomSelect+` ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []model.ClassRoom
	for rows.Next() {
		c, err := scanClassRoom(rows)
		if err != nil {
			return nil, err
		}
		classrooms = append(classrooms, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(classrooms) == 0 {
		return classrooms, nil
	}

	index := make(map[int]*model.ClassRoom, len(classrooms))
	ids := make([]int, 0, len(classrooms))
	for i := range classrooms {
		index[classrooms[i].ID] = &classrooms[i]
		ids = append(ids, classrooms[i].ID)
	}

	linked, err := r.pool.Query(ctx, `
		SELECT cs.classroom_id,
		       s.id, s.user_id, s.roll_number, s.grade,
		       u.id, u.first_name, u.last_name, u.email, u.role
		FROM classroom_students cs
		JOIN students s ON s.id = cs.student_id
		LEFT JOIN user_profiles u ON u.id = s.user_id
		WHERE cs.classroom_id = ANY($1)
		ORDER BY cs.id`, ids)
	if err != nil {
		return nil, err
	}
	defer linked.Close()

	for linked.Next() {
		var classroomID int
		s, err := scanLinkedStudent(linked, &classroomID)
		if err != nil {
			return nil, err
		}
		if c, ok := index[classroomID]; ok {
			c.Students = append(c.Students, *s)
		}
	}
	return classrooms, linked.Err()
}

// GetByID retrieves one classroom with its teacher and linked students.
func (r *classRoomRepository) GetByID(ctx context.Context, id int) (*model.ClassRoom, error) {
	c, err := scanClassRoom(r.pool.QueryRow(ctx, classRoomSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	linked, err := r.pool.Query(ctx, `
		SELECT cs.classroom_id,
		       s.id, s.user_id, s.roll_number, s.grade,
		       u.id, u.first_name, u.last_name, u.email, u.role
		FROM classroom_students cs
		JOIN students s ON s.id = cs.student_id
		LEFT JOIN user_profiles u ON u.id = s.user_id
		WHERE cs.classroom_id = $1
		ORDER BY cs.id`, id)
	if err != nil {
		return nil, err
	}
	defer linked.Close()

	for linked.Next() {
		var classroomID int
		s, err := scanLinkedStudent(linked, &classroomID)
		if err != nil {
			return nil, err
		}
		c.Students = append(c.Students, *s)
	}
	return c, linked.Err()
}

// scanLinkedStudent scans a link row: classroom id, student columns and the
// student's (possibly absent) profile columns.
func scanLinkedStudent(rows pgx.Rows, classroomID *int) (*model.Student, error) {
	s := &model.Student{}
	var (
		uID                   *int
		uFirst, uLast, uEmail *string
		uRole                 *model.Role
	)
	err := rows.Scan(
		classroomID,
		&s.ID, &s.UserID, &s.RollNumber, &s.Grade,
		&uID, &uFirst, &uLast, &uEmail, &uRole,
	)
	if err != nil {
		return nil, err
	}
	if uID != nil {
		s.User = &model.UserProfile{
			ID:        *uID,
			FirstName: *uFirst,
			LastName:  *uLast,
			Email:     *uEmail,
			Role:      *uRole,
		}
	}
	return s, nil
}

// Create inserts a classroom and its student links in one transaction.
func (r *classRoomRepository) Create(ctx context.Context, c *model.ClassRoom, studentIDs []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO classrooms (name, teacher_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.TeacherID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return mapClassRoomWriteErr(err)
	}

	if err := insertStudentLinks(ctx, tx, c.ID, studentIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update modifies a classroom and replaces its student link set with the
// given ids, preserving payload order.
func (r *classRoomRepository) Update(ctx context.Context, c *model.ClassRoom, studentIDs []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx,
		`UPDATE classrooms SET name = $1, teacher_id = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		c.Name, c.TeacherID, c.ID,
	)
	if err != nil {
		return mapClassRoomWriteErr(err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM classroom_students WHERE classroom_id = $1`, c.ID); err != nil {
		return err
	}
	if err := insertStudentLinks(ctx, tx, c.ID, studentIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete removes a classroom by ID. Link rows cascade.
func (r *classRoomRepository) Delete(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM classrooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func insertStudentLinks(ctx context.Context, tx pgx.Tx, classroomID int, studentIDs []int) error {
	for _, sid := range studentIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO classroom_students (classroom_id, student_id) VALUES ($1, $2)`,
			classroomID, sid,
		)
		if err != nil {
			return mapClassRoomWriteErr(err)
		}
	}
	return nil
}

func mapClassRoomWriteErr(err error) error {
	switch pgErrCode(err) {
	case pgUniqueViolation:
		return ErrDuplicateStudentLink
	case pgForeignKeyViolation:
		return ErrBadReference
	}
	return err
}
