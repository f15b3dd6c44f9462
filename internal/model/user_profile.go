package model

import "time"

// Role classifies a user profile.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// UserProfile represents an identity record for an admin, teacher or student.
type UserProfile struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins first and last name with a single separating space.
func (p *UserProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// UserProfileView is the API read shape of a user profile.
type UserProfileView struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FullName  string `json:"full_name"`
}

// NewUserProfileView maps a stored profile to its read shape.
func NewUserProfileView(p *UserProfile) UserProfileView {
	return UserProfileView{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Role:      p.Role,
		FullName:  p.FullName(),
	}
}

// UserProfileRequest is the payload for creating or updating a user profile.
type UserProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Role      Role   `json:"role" binding:"required,oneof=admin teacher student"`
}
