package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolmgt/sms-backend/internal/model"
)

func newStudentFixture() (*StudentService, *fakeStudentRepo, *fakeProfileRepo) {
	profiles := newFakeProfileRepo()
	students := newFakeStudentRepo(profiles)
	return NewStudentService(students, profiles), students, profiles
}

func TestStudentCreateRequiresUser(t *testing.T) {
	svc, students, _ := newStudentFixture()

	_, err := svc.Create(context.Background(), model.StudentRequest{
		RollNumber: "R-001",
		Grade:      "10",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"User field is required."}, vErr.Violations)
	assert.Empty(t, students.students)
}

func TestStudentCreateUnknownUser(t *testing.T) {
	svc, students, _ := newStudentFixture()

	_, err := svc.Create(context.Background(), model.StudentRequest{
		User:       99,
		RollNumber: "R-001",
		Grade:      "10",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"User does not exist."}, vErr.Violations)
	assert.Empty(t, students.students)
}

func TestStudentCreateRoleMismatch(t *testing.T) {
	svc, students, profiles := newStudentFixture()
	teacherID := profiles.add("Brian", "Keller", "brian.keller@school.test", model.RoleTeacher)

	_, err := svc.Create(context.Background(), model.StudentRequest{
		User:       teacherID,
		RollNumber: "R-001",
		Grade:      "10",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"This user is not assigned the 'student' role."}, vErr.Violations)
	assert.Empty(t, students.students)
}

func TestStudentCreateSuccess(t *testing.T) {
	svc, _, profiles := newStudentFixture()
	userID := profiles.add("Dennis", "Okafor", "dennis.okafor@school.test", model.RoleStudent)

	view, err := svc.Create(context.Background(), model.StudentRequest{
		User:       userID,
		RollNumber: "R-001",
		Grade:      "10",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, view.User)
	assert.Equal(t, "Dennis Okafor", view.FullName)
	assert.Equal(t, "dennis.okafor@school.test", view.Email)
	assert.Equal(t, "R-001", view.RollNumber)
	assert.Equal(t, "10", view.Grade)
}

func TestStudentUpdateRevalidatesUser(t *testing.T) {
	svc, students, profiles := newStudentFixture()
	studentUser := profiles.add("Dennis", "Okafor", "dennis.okafor@school.test", model.RoleStudent)
	adminUser := profiles.add("Alice", "Morgan", "alice.morgan@school.test", model.RoleAdmin)

	created, err := svc.Create(context.Background(), model.StudentRequest{
		User:       studentUser,
		RollNumber: "R-001",
		Grade:      "10",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, model.StudentRequest{
		User:       adminUser,
		RollNumber: "R-002",
		Grade:      "11",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"This user is not assigned the 'student' role."}, vErr.Violations)

	// The stored record is untouched.
	assert.Equal(t, "R-001", students.students[created.ID].RollNumber)
	assert.Equal(t, studentUser, students.students[created.ID].UserID)
}

func TestStudentUpdateSuccess(t *testing.T) {
	svc, _, profiles := newStudentFixture()
	userID := profiles.add("Dennis", "Okafor", "dennis.okafor@school.test", model.RoleStudent)

	created, err := svc.Create(context.Background(), model.StudentRequest{
		User:       userID,
		RollNumber: "R-001",
		Grade:      "10",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, model.StudentRequest{
		User:       userID,
		RollNumber: "R-002",
		Grade:      "11",
	})

	require.NoError(t, err)
	assert.Equal(t, "R-002", updated.RollNumber)
	assert.Equal(t, "11", updated.Grade)
	assert.Equal(t, "Dennis Okafor", updated.FullName)
}
