package service

import (
	"context"
	"time"

	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
)

// AttendanceService handles attendance records.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

// List retrieves all attendance records, newest date first.
func (s *AttendanceService) List(ctx context.Context) ([]model.AttendanceView, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.AttendanceView, 0, len(records))
	for i := range records {
		views = append(views, model.NewAttendanceView(&records[i]))
	}
	return views, nil
}

// Get retrieves one attendance record by ID.
func (s *AttendanceService) Get(ctx context.Context, id int) (*model.AttendanceView, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewAttendanceView(record)
	return &view, nil
}

// Create persists a new attendance record. Duplicate (student, date) pairs
// are allowed.
func (s *AttendanceService) Create(ctx context.Context, req model.AttendanceRequest) (*model.AttendanceView, error) {
	date, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, newValidationError("Date has wrong format. Use YYYY-MM-DD.")
	}

	record := &model.Attendance{
		StudentID: req.Student,
		Date:      date,
		Status:    req.Status,
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.attendanceRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	view := model.NewAttendanceView(created)
	return &view, nil
}

// Update replaces an existing attendance record.
func (s *AttendanceService) Update(ctx context.Context, id int, req model.AttendanceRequest) (*model.AttendanceView, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, newValidationError("Date has wrong format. Use YYYY-MM-DD.")
	}

	record.StudentID = req.Student
	record.Date = date
	record.Status = req.Status

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	updated, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewAttendanceView(updated)
	return &view, nil
}

// Delete removes an attendance record.
func (s *AttendanceService) Delete(ctx context.Context, id int) error {
	return s.attendanceRepo.Delete(ctx, id)
}
