package model

import "time"

// Teacher links a user profile to the subject they teach.
type Teacher struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// User is the linked profile, populated by repository joins.
	User *UserProfile `json:"user,omitempty"`
}

// TeacherView is the API read shape of a teacher.
type TeacherView struct {
	ID       int    `json:"id"`
	User     int    `json:"user"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
}

// NewTeacherView flattens the linked profile into the teacher read shape.
func NewTeacherView(t *Teacher) TeacherView {
	v := TeacherView{
		ID:      t.ID,
		User:    t.UserID,
		Subject: t.Subject,
	}
	if t.User != nil {
		v.FullName = t.User.FullName()
		v.Email = t.User.Email
	}
	return v
}

// TeacherRequest is the payload for creating or updating a teacher.
// The user reference is validated by the service, see StudentRequest.
type TeacherRequest struct {
	User    int    `json:"user"`
	Subject string `json:"subject" binding:"required,max=50"`
}
