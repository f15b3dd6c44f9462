package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassRoomViewWithTeacherAndStudents(t *testing.T) {
	teacherID := 3
	c := ClassRoom{
		ID:        1,
		Name:      "Grade 10 - A",
		TeacherID: &teacherID,
		Teacher: &Teacher{
			ID:     3,
			UserID: 30,
			User:   &UserProfile{FirstName: "Brian", LastName: "Keller"},
		},
		Students: []Student{
			{ID: 11, User: &UserProfile{FirstName: "Dennis", LastName: "Okafor"}},
			{ID: 12, User: &UserProfile{FirstName: "Elena", LastName: "Petrova"}},
		},
	}

	v := NewClassRoomView(&c)

	assert.Equal(t, 1, v.ID)
	assert.Equal(t, "Grade 10 - A", v.Name)
	require.NotNil(t, v.Teacher)
	assert.Equal(t, 3, *v.Teacher)
	require.NotNil(t, v.TeacherFullName)
	assert.Equal(t, "Brian Keller", *v.TeacherFullName)
	assert.Equal(t, []int{11, 12}, v.Students)
	assert.Equal(t, []string{"Dennis Okafor", "Elena Petrova"}, v.StudentNames)
}

func TestNewClassRoomViewNoTeacher(t *testing.T) {
	c := ClassRoom{ID: 2, Name: "Grade 11 - B"}

	v := NewClassRoomView(&c)

	assert.Nil(t, v.Teacher)
	assert.Nil(t, v.TeacherFullName)
	assert.Empty(t, v.Students)
	assert.Empty(t, v.StudentNames)
	// Empty sets marshal as [], not null.
	assert.NotNil(t, v.Students)
	assert.NotNil(t, v.StudentNames)
}

func TestNewClassRoomViewSkipsNamelessStudents(t *testing.T) {
	c := ClassRoom{
		ID:   3,
		Name: "Grade 12 - C",
		Students: []Student{
			{ID: 21, User: &UserProfile{FirstName: "Farid", LastName: "Hassan"}},
			{ID: 22}, // no joined profile
		},
	}

	v := NewClassRoomView(&c)

	// Both ids are kept; only the profiled student contributes a name.
	assert.Equal(t, []int{21, 22}, v.Students)
	assert.Equal(t, []string{"Farid Hassan"}, v.StudentNames)
}
