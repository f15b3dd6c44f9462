package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
)

// ValidationError is a rejected write: an ordered list of human-readable
// violations. Nothing has been persisted when it is returned.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Violations: messages}
}

// validateUserRef enforces the cross-entity rules for a student/teacher
// user reference, in order: the reference is present, the referenced
// profile exists, and the profile carries the expected role. It runs on
// create and update alike.
func validateUserRef(ctx context.Context, profiles repository.UserProfileRepository, userID int, role model.Role) error {
	if userID == 0 {
		return newValidationError("User field is required.")
	}

	profile, err := profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newValidationError("User does not exist.")
		}
		return err
	}

	if profile.Role != role {
		return newValidationError(fmt.Sprintf("This user is not assigned the '%s' role.", role))
	}
	return nil
}
