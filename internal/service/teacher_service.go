package service

import (
	"context"

	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
)

// TeacherService handles teacher records and their write-time validation.
type TeacherService struct {
	teacherRepo repository.TeacherRepository
	profileRepo repository.UserProfileRepository
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teacherRepo repository.TeacherRepository, profileRepo repository.UserProfileRepository) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo, profileRepo: profileRepo}
}

// List retrieves all teachers in insertion order.
func (s *TeacherService) List(ctx context.Context) ([]model.TeacherView, error) {
	teachers, err := s.teacherRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.TeacherView, 0, len(teachers))
	for i := range teachers {
		views = append(views, model.NewTeacherView(&teachers[i]))
	}
	return views, nil
}

// Get retrieves one teacher by ID.
func (s *TeacherService) Get(ctx context.Context, id int) (*model.TeacherView, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewTeacherView(teacher)
	return &view, nil
}

// Create validates the user reference and persists a new teacher.
func (s *TeacherService) Create(ctx context.Context, req model.TeacherRequest) (*model.TeacherView, error) {
	if err := validateUserRef(ctx, s.profileRepo, req.User, model.RoleTeacher); err != nil {
		return nil, err
	}

	teacher := &model.Teacher{
		UserID:  req.User,
		Subject: req.Subject,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	created, err := s.teacherRepo.GetByID(ctx, teacher.ID)
	if err != nil {
		return nil, err
	}
	view := model.NewTeacherView(created)
	return &view, nil
}

// Update re-runs the create-time validation and replaces the record.
func (s *TeacherService) Update(ctx context.Context, id int, req model.TeacherRequest) (*model.TeacherView, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateUserRef(ctx, s.profileRepo, req.User, model.RoleTeacher); err != nil {
		return nil, err
	}

	teacher.UserID = req.User
	teacher.Subject = req.Subject

	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}

	updated, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewTeacherView(updated)
	return &view, nil
}

// Delete removes a teacher. Classrooms referencing the teacher keep
// existing with a nulled reference.
func (s *TeacherService) Delete(ctx context.Context, id int) error {
	return s.teacherRepo.Delete(ctx, id)
}
