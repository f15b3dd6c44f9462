package service

import (
	"context"

	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
)

// StudentService handles student records and their write-time validation.
type StudentService struct {
	studentRepo repository.StudentRepository
	profileRepo repository.UserProfileRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo repository.StudentRepository, profileRepo repository.UserProfileRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo, profileRepo: profileRepo}
}

// List retrieves all students in insertion order.
func (s *StudentService) List(ctx context.Context) ([]model.StudentView, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.StudentView, 0, len(students))
	for i := range students {
		views = append(views, model.NewStudentView(&students[i]))
	}
	return views, nil
}

// Get retrieves one student by ID.
func (s *StudentService) Get(ctx context.Context, id int) (*model.StudentView, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewStudentView(student)
	return &view, nil
}

// Create validates the user reference and persists a new student.
func (s *StudentService) Create(ctx context.Context, req model.StudentRequest) (*model.StudentView, error) {
	if err := validateUserRef(ctx, s.profileRepo, req.User, model.RoleStudent); err != nil {
		return nil, err
	}

	student := &model.Student{
		UserID:     req.User,
		RollNumber: req.RollNumber,
		Grade:      req.Grade,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	// Re-read to pick up the joined profile for the read shape.
	created, err := s.studentRepo.GetByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	view := model.NewStudentView(created)
	return &view, nil
}

// Update re-runs the create-time validation and replaces the record.
func (s *StudentService) Update(ctx context.Context, id int, req model.StudentRequest) (*model.StudentView, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateUserRef(ctx, s.profileRepo, req.User, model.RoleStudent); err != nil {
		return nil, err
	}

	student.UserID = req.User
	student.RollNumber = req.RollNumber
	student.Grade = req.Grade

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	updated, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewStudentView(updated)
	return &view, nil
}

// Delete removes a student. Attendance rows and classroom links cascade.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.studentRepo.Delete(ctx, id)
}
