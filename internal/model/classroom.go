package model

import "time"

// ClassRoom groups students under an optional homeroom teacher.
// The teacher reference is nulled when the teacher is deleted; the
// classroom itself survives.
type ClassRoom struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	TeacherID *int      `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Teacher and Students are populated by repository joins. Students
	// preserve the link-set order.
	Teacher  *Teacher  `json:"teacher,omitempty"`
	Students []Student `json:"students,omitempty"`
}

// ClassRoomView is the API read shape of a classroom.
type ClassRoomView struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Teacher         *int     `json:"teacher"`
	TeacherFullName *string  `json:"teacher_full_name"`
	Students        []int    `json:"students"`
	StudentNames    []string `json:"student_names"`
}

// NewClassRoomView flattens the linked teacher and student profiles.
// teacher_full_name is null when no teacher is assigned or the teacher's
// profile is missing; students without a profile are skipped in
// student_names but still listed in students.
func NewClassRoomView(c *ClassRoom) ClassRoomView {
	v := ClassRoomView{
		ID:           c.ID,
		Name:         c.Name,
		Teacher:      c.TeacherID,
		Students:     make([]int, 0, len(c.Students)),
		StudentNames: make([]string, 0, len(c.Students)),
	}
	if c.Teacher != nil && c.Teacher.User != nil {
		name := c.Teacher.User.FullName()
		v.TeacherFullName = &name
	}
	for i := range c.Students {
		s := &c.Students[i]
		v.Students = append(v.Students, s.ID)
		if s.User != nil {
			v.StudentNames = append(v.StudentNames, s.User.FullName())
		}
	}
	return v
}

// ClassRoomRequest is the payload for creating or updating a classroom.
// Any teacher/student id is accepted; dangling ids are rejected by the
// store's foreign keys, not by role validation.
type ClassRoomRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Teacher  *int   `json:"teacher"`
	Students []int  `json:"students"`
}
