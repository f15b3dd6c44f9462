package service

import (
	"context"

	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
)

// ClassRoomService handles classroom records. No cross-entity role
// validation applies here; any teacher/student id is accepted and dangling
// ids are rejected by the store's foreign keys.
type ClassRoomService struct {
	classRoomRepo repository.ClassRoomRepository
}

// NewClassRoomService creates a new ClassRoomService.
func NewClassRoomService(classRoomRepo repository.ClassRoomRepository) *ClassRoomService {
	return &ClassRoomService{classRoomRepo: classRoomRepo}
}

// List retrieves all classrooms in insertion order.
func (s *ClassRoomService) List(ctx context.Context) ([]model.ClassRoomView, error) {
	classrooms, err := s.classRoomRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.ClassRoomView, 0, len(classrooms))
	for i := range classrooms {
		views = append(views, model.NewClassRoomView(&classrooms[i]))
	}
	return views, nil
}

// Get retrieves one classroom by ID.
func (s *ClassRoomService) Get(ctx context.Context, id int) (*model.ClassRoomView, error) {
	classroom, err := s.classRoomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewClassRoomView(classroom)
	return &view, nil
}

// Create persists a new classroom with its student link set.
func (s *ClassRoomService) Create(ctx context.Context, req model.ClassRoomRequest) (*model.ClassRoomView, error) {
	classroom := &model.ClassRoom{
		Name:      req.Name,
		TeacherID: req.Teacher,
	}
	if err := s.classRoomRepo.Create(ctx, classroom, req.Students); err != nil {
		return nil, err
	}

	created, err := s.classRoomRepo.GetByID(ctx, classroom.ID)
	if err != nil {
		return nil, err
	}
	view := model.NewClassRoomView(created)
	return &view, nil
}

// Update replaces a classroom and its student link set.
func (s *ClassRoomService) Update(ctx context.Context, id int, req model.ClassRoomRequest) (*model.ClassRoomView, error) {
	classroom := &model.ClassRoom{
		ID:        id,
		Name:      req.Name,
		TeacherID: req.Teacher,
	}
	if err := s.classRoomRepo.Update(ctx, classroom, req.Students); err != nil {
		return nil, err
	}

	updated, err := s.classRoomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewClassRoomView(updated)
	return &view, nil
}

// Delete removes a classroom and its link rows.
func (s *ClassRoomService) Delete(ctx context.Context, id int) error {
	return s.classRoomRepo.Delete(ctx, id)
}
