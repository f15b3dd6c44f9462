package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolmgt/sms-backend/internal/model"
)

type classRoomFixture struct {
	svc      *ClassRoomService
	profiles *fakeProfileRepo
	students *fakeStudentRepo
	teachers *fakeTeacherRepo
}

func newClassRoomFixture() classRoomFixture {
	profiles := newFakeProfileRepo()
	students := newFakeStudentRepo(profiles)
	teachers := newFakeTeacherRepo(profiles)
	return classRoomFixture{
		svc:      NewClassRoomService(newFakeClassRoomRepo(students, teachers)),
		profiles: profiles,
		students: students,
		teachers: teachers,
	}
}

func (f classRoomFixture) addStudent(t *testing.T, firstName, lastName, roll string) int {
	t.Helper()
	userID := f.profiles.add(firstName, lastName, firstName+"@school.test", model.RoleStudent)
	student := model.Student{UserID: userID, RollNumber: roll, Grade: "10"}
	require.NoError(t, f.students.Create(context.Background(), &student))
	return student.ID
}

func (f classRoomFixture) addTeacher(t *testing.T, firstName, lastName string) int {
	t.Helper()
	userID := f.profiles.add(firstName, lastName, firstName+"@school.test", model.RoleTeacher)
	teacher := model.Teacher{UserID: userID, Subject: "Mathematics"}
	require.NoError(t, f.teachers.Create(context.Background(), &teacher))
	return teacher.ID
}

func TestClassRoomCreateFlattensLinks(t *testing.T) {
	f := newClassRoomFixture()
	teacherID := f.addTeacher(t, "Brian", "Keller")
	s1 := f.addStudent(t, "Dennis", "Okafor", "R-001")
	s2 := f.addStudent(t, "Elena", "Petrova", "R-002")

	view, err := f.svc.Create(context.Background(), model.ClassRoomRequest{
		Name:     "Grade 10 - A",
		Teacher:  &teacherID,
		Students: []int{s1, s2},
	})

	require.NoError(t, err)
	assert.Equal(t, "Grade 10 - A", view.Name)
	require.NotNil(t, view.Teacher)
	assert.Equal(t, teacherID, *view.Teacher)
	require.NotNil(t, view.TeacherFullName)
	assert.Equal(t, "Brian Keller", *view.TeacherFullName)
	assert.Equal(t, []int{s1, s2}, view.Students)
	assert.Equal(t, []string{"Dennis Okafor", "Elena Petrova"}, view.StudentNames)
}

func TestClassRoomCreateWithoutTeacher(t *testing.T) {
	f := newClassRoomFixture()

	view, err := f.svc.Create(context.Background(), model.ClassRoomRequest{Name: "Grade 11 - B"})

	require.NoError(t, err)
	assert.Nil(t, view.Teacher)
	assert.Nil(t, view.TeacherFullName)
	assert.Empty(t, view.Students)
}

func TestClassRoomUpdateReplacesLinkSet(t *testing.T) {
	f := newClassRoomFixture()
	s1 := f.addStudent(t, "Dennis", "Okafor", "R-001")
	s2 := f.addStudent(t, "Elena", "Petrova", "R-002")
	s3 := f.addStudent(t, "Farid", "Hassan", "R-003")

	created, err := f.svc.Create(context.Background(), model.ClassRoomRequest{
		Name:     "Grade 10 - A",
		Students: []int{s1, s2},
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), created.ID, model.ClassRoomRequest{
		Name:     "Grade 10 - A2",
		Students: []int{s3},
	})

	require.NoError(t, err)
	assert.Equal(t, "Grade 10 - A2", updated.Name)
	assert.Equal(t, []int{s3}, updated.Students)
	assert.Equal(t, []string{"Farid Hassan"}, updated.StudentNames)
}
