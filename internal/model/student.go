package model

import "time"

// Student links a user profile to enrollment data.
type Student struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	RollNumber string    `json:"roll_number"`
	Grade      string    `json:"grade"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// User is the linked profile, populated by repository joins.
	User *UserProfile `json:"user,omitempty"`
}

// StudentView is the API read shape of a student. FullName and Email are
// projected through the linked profile.
type StudentView struct {
	ID         int    `json:"id"`
	User       int    `json:"user"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number"`
	Grade      string `json:"grade"`
}

// NewStudentView flattens the linked profile into the student read shape.
func NewStudentView(s *Student) StudentView {
	v := StudentView{
		ID:         s.ID,
		User:       s.UserID,
		RollNumber: s.RollNumber,
		Grade:      s.Grade,
	}
	if s.User != nil {
		v.FullName = s.User.FullName()
		v.Email = s.User.Email
	}
	return v
}

// StudentRequest is the payload for creating or updating a student.
// The user reference is deliberately not bound as required: its presence,
// existence and role are checked by the service so violations surface as
// the domain's own messages.
type StudentRequest struct {
	User       int    `json:"user"`
	RollNumber string `json:"roll_number" binding:"required,max=20"`
	Grade      string `json:"grade" binding:"required,max=20"`
}
