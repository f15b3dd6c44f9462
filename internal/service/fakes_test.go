package service

import (
	"context"
	"sort"

	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
)

// In-memory repository fakes. They mirror the store's read shapes: list
// and get results carry the joined profile the way the pgx repositories do.

type fakeProfileRepo struct {
	nextID   int
	profiles map[int]model.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{nextID: 1, profiles: make(map[int]model.UserProfile)}
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]model.UserProfile, error) {
	out := make([]model.UserProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id int) (*model.UserProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *model.UserProfile) error {
	p.ID = r.nextID
	r.nextID++
	r.profiles[p.ID] = *p
	return nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *model.UserProfile) error {
	if _, ok := r.profiles[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.profiles[p.ID] = *p
	return nil
}

func (r *fakeProfileRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.profiles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.profiles, id)
	return nil
}

func (r *fakeProfileRepo) add(firstName, lastName, email string, role model.Role) int {
	p := model.UserProfile{FirstName: firstName, LastName: lastName, Email: email, Role: role}
	_ = r.Create(context.Background(), &p)
	return p.ID
}

type fakeStudentRepo struct {
	nextID   int
	students map[int]model.Student
	profiles *fakeProfileRepo
}

func newFakeStudentRepo(profiles *fakeProfileRepo) *fakeStudentRepo {
	return &fakeStudentRepo{nextID: 1, students: make(map[int]model.Student), profiles: profiles}
}

func (r *fakeStudentRepo) join(s model.Student) model.Student {
	if p, ok := r.profiles.profiles[s.UserID]; ok {
		s.User = &p
	}
	return s
}

func (r *fakeStudentRepo) List(ctx context.Context) ([]model.Student, error) {
	out := make([]model.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, r.join(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	joined := r.join(s)
	return &joined, nil
}

func (r *fakeStudentRepo) Create(ctx context.Context, s *model.Student) error {
	s.ID = r.nextID
	r.nextID++
	r.students[s.ID] = *s
	return nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, s *model.Student) error {
	if _, ok := r.students[s.ID]; !ok {
		return repository.ErrNotFound
	}
	r.students[s.ID] = *s
	return nil
}

func (r *fakeStudentRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.students[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.students, id)
	return nil
}

type fakeTeacherRepo struct {
	nextID   int
	teachers map[int]model.Teacher
	profiles *fakeProfileRepo
}

func newFakeTeacherRepo(profiles *fakeProfileRepo) *fakeTeacherRepo {
	return &fakeTeacherRepo{nextID: 1, teachers: make(map[int]model.Teacher), profiles: profiles}
}

func (r *fakeTeacherRepo) join(t model.Teacher) model.Teacher {
	if p, ok := r.profiles.profiles[t.UserID]; ok {
		t.User = &p
	}
	return t
}

func (r *fakeTeacherRepo) List(ctx context.Context) ([]model.Teacher, error) {
	out := make([]model.Teacher, 0, len(r.teachers))
	for _, t := range r.teachers {
		out = append(out, r.join(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTeacherRepo) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	t, ok := r.teachers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	joined := r.join(t)
	return &joined, nil
}

func (r *fakeTeacherRepo) Create(ctx context.Context, t *model.Teacher) error {
	t.ID = r.nextID
	r.nextID++
	r.teachers[t.ID] = *t
	return nil
}

func (r *fakeTeacherRepo) Update(ctx context.Context, t *model.Teacher) error {
	if _, ok := r.teachers[t.ID]; !ok {
		return repository.ErrNotFound
	}
	r.teachers[t.ID] = *t
	return nil
}

func (r *fakeTeacherRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.teachers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.teachers, id)
	return nil
}

type fakeClassRoomRepo struct {
	nextID     int
	classrooms map[int]model.ClassRoom
	links      map[int][]int
	students   *fakeStudentRepo
	teachers   *fakeTeacherRepo
}

func newFakeClassRoomRepo(students *fakeStudentRepo, teachers *fakeTeacherRepo) *fakeClassRoomRepo {
	return &fakeClassRoomRepo{
		nextID:     1,
		classrooms: make(map[int]model.ClassRoom),
		links:      make(map[int][]int),
		students:   students,
		teachers:   teachers,
	}
}

func (r *fakeClassRoomRepo) join(c model.ClassRoom) model.ClassRoom {
	if c.TeacherID != nil {
		if t, ok := r.teachers.teachers[*c.TeacherID]; ok {
			joined := r.teachers.join(t)
			c.Teacher = &joined
		}
	}
	for _, sid := range r.links[c.ID] {
		if s, ok := r.students.students[sid]; ok {
			c.Students = append(c.Students, r.students.join(s))
		}
	}
	return c
}

func (r *fakeClassRoomRepo) List(ctx context.Context) ([]model.ClassRoom, error) {
	out := make([]model.ClassRoom, 0, len(r.classrooms))
	for _, c := range r.classrooms {
		out = append(out, r.join(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeClassRoomRepo) GetByID(ctx context.Context, id int) (*model.ClassRoom, error) {
	c, ok := r.classrooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	joined := r.join(c)
	return &joined, nil
}

func (r *fakeClassRoomRepo) Create(ctx context.Context, c *model.ClassRoom, studentIDs []int) error {
	c.ID = r.nextID
	r.nextID++
	r.classrooms[c.ID] = *c
	r.links[c.ID] = append([]int(nil), studentIDs...)
	return nil
}

func (r *fakeClassRoomRepo) Update(ctx context.Context, c *model.ClassRoom, studentIDs []int) error {
	if _, ok := r.classrooms[c.ID]; !ok {
		return repository.ErrNotFound
	}
	r.classrooms[c.ID] = *c
	r.links[c.ID] = append([]int(nil), studentIDs...)
	return nil
}

func (r *fakeClassRoomRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.classrooms[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.classrooms, id)
	delete(r.links, id)
	return nil
}

type fakeAttendanceRepo struct {
	nextID   int
	records  map[int]model.Attendance
	students *fakeStudentRepo
}

func newFakeAttendanceRepo(students *fakeStudentRepo) *fakeAttendanceRepo {
	return &fakeAttendanceRepo{nextID: 1, records: make(map[int]model.Attendance), students: students}
}

func (r *fakeAttendanceRepo) join(a model.Attendance) model.Attendance {
	if s, ok := r.students.students[a.StudentID]; ok {
		joined := r.students.join(s)
		a.Student = &joined
	}
	return a
}

func (r *fakeAttendanceRepo) List(ctx context.Context) ([]model.Attendance, error) {
	out := make([]model.Attendance, 0, len(r.records))
	for _, a := range r.records {
		out = append(out, r.join(a))
	}
	// Newest date first, id ascending as tie-break.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id int) (*model.Attendance, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	joined := r.join(a)
	return &joined, nil
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, a *model.Attendance) error {
	a.ID = r.nextID
	r.nextID++
	r.records[a.ID] = *a
	return nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, a *model.Attendance) error {
	if _, ok := r.records[a.ID]; !ok {
		return repository.ErrNotFound
	}
	r.records[a.ID] = *a
	return nil
}

func (r *fakeAttendanceRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeNoticeRepo struct {
	nextID  int
	notices map[int]model.Notice
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{nextID: 1, notices: make(map[int]model.Notice)}
}

func (r *fakeNoticeRepo) List(ctx context.Context) ([]model.Notice, error) {
	out := make([]model.Notice, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n)
	}
	// Newest first, id descending as tie-break.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *fakeNoticeRepo) GetByID(ctx context.Context, id int) (*model.Notice, error) {
	n, ok := r.notices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &n, nil
}

func (r *fakeNoticeRepo) Create(ctx context.Context, n *model.Notice) error {
	n.ID = r.nextID
	r.nextID++
	r.notices[n.ID] = *n
	return nil
}

func (r *fakeNoticeRepo) Update(ctx context.Context, n *model.Notice) error {
	if _, ok := r.notices[n.ID]; !ok {
		return repository.ErrNotFound
	}
	r.notices[n.ID] = *n
	return nil
}

func (r *fakeNoticeRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.notices[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.notices, id)
	return nil
}
