package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/schoolmgt/sms-backend/internal/config"
	"github.com/schoolmgt/sms-backend/internal/database"
	"github.com/schoolmgt/sms-backend/internal/handler"
	"github.com/schoolmgt/sms-backend/internal/logger"
	"github.com/schoolmgt/sms-backend/internal/repository"
	"github.com/schoolmgt/sms-backend/internal/router"
	"github.com/schoolmgt/sms-backend/internal/service"
	"github.com/schoolmgt/sms-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SMS Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	profileRepo := repository.NewUserProfileRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	classRoomRepo := repository.NewClassRoomRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	profileService := service.NewUserProfileService(profileRepo)
	studentService := service.NewStudentService(studentRepo, profileRepo)
	teacherService := service.NewTeacherService(teacherRepo, profileRepo)
	classRoomService := service.NewClassRoomService(classRoomRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	noticeService := service.NewNoticeService(noticeRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		UserProfile: handler.NewUserProfileHandler(profileService),
		Student:     handler.NewStudentHandler(studentService),
		Teacher:     handler.NewTeacherHandler(teacherService),
		ClassRoom:   handler.NewClassRoomHandler(classRoomService),
		Attendance:  handler.NewAttendanceHandler(attendanceService),
		Notice:      handler.NewNoticeHandler(noticeService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
