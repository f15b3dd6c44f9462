package main

import (
	"context"
	"fmt"
	"time"

	"github.com/schoolmgt/sms-backend/internal/config"
	"github.com/schoolmgt/sms-backend/internal/database"
	"github.com/schoolmgt/sms-backend/internal/logger"
	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/repository"
	"github.com/schoolmgt/sms-backend/internal/service"
)

type seedProfile struct {
	firstName string
	lastName  string
	email     string
	role      model.Role
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	profileRepo := repository.NewUserProfileRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	classRoomRepo := repository.NewClassRoomRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)

	profileService := service.NewUserProfileService(profileRepo)
	studentService := service.NewStudentService(studentRepo, profileRepo)
	teacherService := service.NewTeacherService(teacherRepo, profileRepo)
	classRoomService := service.NewClassRoomService(classRoomRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	noticeService := service.NewNoticeService(noticeRepo)

	fmt.Println("=== Seeding demo school data ===")

	profiles := []seedProfile{
		{"Alice", "Morgan", "alice.morgan@school.test", model.RoleAdmin},
		{"Brian", "Keller", "brian.keller@school.test", model.RoleTeacher},
		{"Carla", "Diaz", "carla.diaz@school.test", model.RoleTeacher},
		{"Dennis", "Okafor", "dennis.okafor@school.test", model.RoleStudent},
		{"Elena", "Petrova", "elena.petrova@school.test", model.RoleStudent},
		{"Farid", "Hassan", "farid.hassan@school.test", model.RoleStudent},
		{"Grace", "Lindqvist", "grace.lindqvist@school.test", model.RoleStudent},
	}

	profileIDs := make(map[string]int, len(profiles))
	for _, p := range profiles {
		view, err := profileService.Create(ctx, model.UserProfileRequest{
			FirstName: p.firstName,
			LastName:  p.lastName,
			Email:     p.email,
			Role:      p.role,
		})
		if err != nil {
			fmt.Printf("Skipping profile %s: %v\n", p.email, err)
			continue
		}
		profileIDs[p.email] = view.ID
		fmt.Printf("Created %s profile %s (id=%d)\n", p.role, p.email, view.ID)
	}

	var teacherIDs []int
	for i, email := range []string{"brian.keller@school.test", "carla.diaz@school.test"} {
		userID, ok := profileIDs[email]
		if !ok {
			continue
		}
		subject := []string{"Mathematics", "History"}[i]
		view, err := teacherService.Create(ctx, model.TeacherRequest{
			User:    userID,
			Subject: subject,
		})
		if err != nil {
			fmt.Printf("Skipping teacher %s: %v\n", email, err)
			continue
		}
		teacherIDs = append(teacherIDs, view.ID)
	}

	var studentIDs []int
	studentEmails := []string{
		"dennis.okafor@school.test",
		"elena.petrova@school.test",
		"farid.hassan@school.test",
		"grace.lindqvist@school.test",
	}
	for i, email := range studentEmails {
		userID, ok := profileIDs[email]
		if !ok {
			continue
		}
		view, err := studentService.Create(ctx, model.StudentRequest{
			User:       userID,
			RollNumber: fmt.Sprintf("R-%03d", i+1),
			Grade:      "10",
		})
		if err != nil {
			fmt.Printf("Skipping student %s: %v\n", email, err)
			continue
		}
		studentIDs = append(studentIDs, view.ID)
	}

	if len(teacherIDs) > 0 && len(studentIDs) > 0 {
		classReq := model.ClassRoomRequest{
			Name:     "Grade 10 - A",
			Teacher:  &teacherIDs[0],
			Students: studentIDs,
		}
		if view, err := classRoomService.Create(ctx, classReq); err != nil {
			fmt.Printf("Skipping classroom: %v\n", err)
		} else {
			fmt.Printf("Created classroom %q (id=%d) with %d students\n", view.Name, view.ID, len(view.Students))
		}
	}

	today := time.Now().Format(model.DateLayout)
	statuses := []model.AttendanceStatus{
		model.AttendancePresent,
		model.AttendancePresent,
		model.AttendanceAbsent,
		model.AttendanceLeave,
	}
	for i, studentID := range studentIDs {
		_, err := attendanceService.Create(ctx, model.AttendanceRequest{
			Student: studentID,
			Date:    today,
			Status:  statuses[i%len(statuses)],
		})
		if err != nil {
			fmt.Printf("Skipping attendance for student %d: %v\n", studentID, err)
		}
	}

	notices := []model.NoticeRequest{
		{Title: "Welcome back", Message: "The new term starts Monday. Classrooms open at 8 AM."},
		{Title: "Sports day", Message: "Annual sports day is scheduled for the last Friday of the month."},
	}
	for _, n := range notices {
		if _, err := noticeService.Create(ctx, n); err != nil {
			fmt.Printf("Skipping notice %q: %v\n", n.Title, err)
		}
	}

	fmt.Println("\nSeed completed!")
}
