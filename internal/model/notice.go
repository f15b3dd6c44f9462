package model

import "time"

// Notice is a standalone school announcement.
type Notice struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoticeView is the API read shape of a notice.
type NoticeView struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNoticeView maps a stored notice to its read shape.
func NewNoticeView(n *Notice) NoticeView {
	return NoticeView{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}

// NoticeRequest is the payload for creating or updating a notice.
type NoticeRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Message string `json:"message" binding:"required"`
}
