package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
)

func newAttendanceFixture(t *testing.T) (*AttendanceService, int) {
	t.Helper()
	profiles := newFakeProfileRepo()
	students := newFakeStudentRepo(profiles)
	userID := profiles.add("Grace", "Lindqvist", "grace.lindqvist@school.test", model.RoleStudent)

	student := model.Student{UserID: userID, RollNumber: "R-004", Grade: "10"}
	require.NoError(t, students.Create(context.Background(), &student))

	return NewAttendanceService(newFakeAttendanceRepo(students)), student.ID
}

func TestAttendanceCreate(t *testing.T) {
	svc, studentID := newAttendanceFixture(t)

	view, err := svc.Create(context.Background(), model.AttendanceRequest{
		Student: studentID,
		Date:    "2024-09-02",
		Status:  model.AttendanceAbsent,
	})

	require.NoError(t, err)
	assert.Equal(t, studentID, view.Student)
	assert.Equal(t, "2024-09-02", view.Date)
	assert.Equal(t, model.AttendanceAbsent, view.Status)
	assert.Equal(t, "Grace", view.StudentName)
	assert.Equal(t, "Lindqvist", view.StudentLastName)
}

func TestAttendanceCreateBadDate(t *testing.T) {
	svc, studentID := newAttendanceFixture(t)

	_, err := svc.Create(context.Background(), model.AttendanceRequest{
		Student: studentID,
		Date:    "02-09-2024",
		Status:  model.AttendancePresent,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Date has wrong format. Use YYYY-MM-DD."}, vErr.Violations)
}

func TestAttendanceDuplicatePairAllowed(t *testing.T) {
	svc, studentID := newAttendanceFixture(t)

	req := model.AttendanceRequest{
		Student: studentID,
		Date:    "2024-09-02",
		Status:  model.AttendancePresent,
	}

	first, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestAttendanceListNewestDateFirst(t *testing.T) {
	svc, studentID := newAttendanceFixture(t)

	for _, date := range []string{"2024-09-01", "2024-09-03", "2024-09-02"} {
		_, err := svc.Create(context.Background(), model.AttendanceRequest{
			Student: studentID,
			Date:    date,
			Status:  model.AttendancePresent,
		})
		require.NoError(t, err)
	}

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-09-03", records[0].Date)
	assert.Equal(t, "2024-09-02", records[1].Date)
	assert.Equal(t, "2024-09-01", records[2].Date)
}

func TestAttendanceUpdateNotFound(t *testing.T) {
	svc, studentID := newAttendanceFixture(t)

	_, err := svc.Update(context.Background(), 42, model.AttendanceRequest{
		Student: studentID,
		Date:    "2024-09-02",
		Status:  model.AttendanceLeave,
	})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
