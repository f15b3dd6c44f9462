package service

import (
	"context"

	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
)

// NoticeService handles notice records.
type NoticeService struct {
	noticeRepo repository.NoticeRepository
}

// NewNoticeService creates a new NoticeService.
func NewNoticeService(noticeRepo repository.NoticeRepository) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo}
}

// List retrieves all notices, newest first.
func (s *NoticeService) List(ctx context.Context) ([]model.NoticeView, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.NoticeView, 0, len(notices))
	for i := range notices {
		views = append(views, model.NewNoticeView(&notices[i]))
	}
	return views, nil
}

// Get retrieves one notice by ID.
func (s *NoticeService) Get(ctx context.Context, id int) (*model.NoticeView, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewNoticeView(notice)
	return &view, nil
}

// Create persists a new notice.
func (s *NoticeService) Create(ctx context.Context, req model.NoticeRequest) (*model.NoticeView, error) {
	notice := &model.Notice{
		Title:   req.Title,
		Message: req.Message,
	}
	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}
	view := model.NewNoticeView(notice)
	return &view, nil
}

// Update replaces an existing notice.
func (s *NoticeService) Update(ctx context.Context, id int, req model.NoticeRequest) (*model.NoticeView, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notice.Title = req.Title
	notice.Message = req.Message

	if err := s.noticeRepo.Update(ctx, notice); err != nil {
		return nil, err
	}
	view := model.NewNoticeView(notice)
	return &view, nil
}

// Delete removes a notice.
func (s *NoticeService) Delete(ctx context.Context, id int) error {
	return s.noticeRepo.Delete(ctx, id)
}
