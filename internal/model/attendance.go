package model

import "time"

// AttendanceStatus is the per-day presence marker.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLeave   AttendanceStatus = "Leave"
)

// DateLayout is the wire format for attendance dates.
const DateLayout = "2006-01-02"

// Attendance is a per-student per-date status record. Duplicate rows for
// the same (student, date) pair are permitted.
type Attendance struct {
	ID        int              `json:"id"`
	StudentID int              `json:"student_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Student is the linked record with its profile, populated by joins.
	Student *Student `json:"student,omitempty"`
}

// AttendanceView is the API read shape of an attendance record.
// student_name/student_last_name are projections through student.user.
type AttendanceView struct {
	ID              int              `json:"id"`
	Student         int              `json:"student"`
	StudentName     string           `json:"student_name"`
	StudentLastName string           `json:"student_last_name"`
	Date            string           `json:"date"`
	Status          AttendanceStatus `json:"status"`
}

// NewAttendanceView maps a stored record to its read shape.
func NewAttendanceView(a *Attendance) AttendanceView {
	v := AttendanceView{
		ID:      a.ID,
		Student: a.StudentID,
		Date:    a.Date.Format(DateLayout),
		Status:  a.Status,
	}
	if a.Student != nil && a.Student.User != nil {
		v.StudentName = a.Student.User.FirstName
		v.StudentLastName = a.Student.User.LastName
	}
	return v
}

// AttendanceRequest is the payload for creating or updating an attendance
// record.
type AttendanceRequest struct {
	Student int              `json:"student" binding:"required"`
	Date    string           `json:"date" binding:"required,datetime=2006-01-02"`
	Status  AttendanceStatus `json:"status" binding:"required,oneof=Present Absent Leave"`
}
