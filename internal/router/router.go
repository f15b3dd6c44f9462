package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/schoolmgt/sms-backend/internal/config"
	"github.com/schoolmgt/sms-backend/internal/handler"
	"github.com/schoolmgt/sms-backend/internal/middleware"
	"github.com/schoolmgt/sms-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	UserProfile *handler.UserProfileHandler
	Student     *handler.StudentHandler
	Teacher     *handler.TeacherHandler
	ClassRoom   *handler.ClassRoomHandler
	Attendance  *handler.AttendanceHandler
	Notice      *handler.NoticeHandler
}

// crudHandler is the shape every entity handler shares.
type crudHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// SetupRouter configures the Gin engine with global middlewares and
// one CRUD route group per entity collection.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Trailing-slash style clients are common here; let Gin redirect bare
	// paths to the canonical slash form.
	router.RedirectTrailingSlash = true

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	mount(router, "accounts", handlers.UserProfile)
	mount(router, "students", handlers.Student)
	mount(router, "teachers", handlers.Teacher)
	mount(router, "classes", handlers.ClassRoom)
	mount(router, "attendance", handlers.Attendance)
	mount(router, "notices", handlers.Notice)

	return router
}

// mount registers the standard CRUD routes for one collection.
// Collection paths end with a slash, and PUT/PATCH share the same
// full-replace handler.
func mount(router *gin.Engine, name string, h crudHandler) {
	group := router.Group("/" + name)
	{
		group.GET("/", h.List)
		group.POST("/", h.Create)
		group.GET("/:id/", h.Get)
		group.PUT("/:id/", h.Update)
		group.PATCH("/:id/", h.Update)
		group.DELETE("/:id/", h.Delete)
	}
}
