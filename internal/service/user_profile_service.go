package service

import (
	"context"

	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
)

// UserProfileService handles account records.
type UserProfileService struct {
	profileRepo repository.UserProfileRepository
}

// NewUserProfileService creates a new UserProfileService.
func NewUserProfileService(profileRepo repository.UserProfileRepository) *UserProfileService {
	return &UserProfileService{profileRepo: profileRepo}
}

// List retrieves all profiles in insertion order.
func (s *UserProfileService) List(ctx context.Context) ([]model.UserProfileView, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.UserProfileView, 0, len(profiles))
	for i := range profiles {
		views = append(views, model.NewUserProfileView(&profiles[i]))
	}
	return views, nil
}

// Get retrieves one profile by ID.
func (s *UserProfileService) Get(ctx context.Context, id int) (*model.UserProfileView, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := model.NewUserProfileView(profile)
	return &view, nil
}

// Create persists a new profile and returns its read shape.
func (s *UserProfileService) Create(ctx context.Context, req model.UserProfileRequest) (*model.UserProfileView, error) {
	profile := &model.UserProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	view := model.NewUserProfileView(profile)
	return &view, nil
}

// Update replaces an existing profile and returns its read shape.
func (s *UserProfileService) Update(ctx context.Context, id int, req model.UserProfileRequest) (*model.UserProfileView, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Email = req.Email
	profile.Role = req.Role

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	view := model.NewUserProfileView(profile)
	return &view, nil
}

// Delete removes a profile. Dependent student/teacher records are removed
// by the store's cascade rules.
func (s *UserProfileService) Delete(ctx context.Context, id int) error {
	return s.profileRepo.Delete(ctx, id)
}
