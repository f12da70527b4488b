package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/provado/provado-backend/internal/config"
	"github.com/provado/provado-backend/internal/handler"
	"github.com/provado/provado-backend/internal/middleware"
	"github.com/provado/provado-backend/internal/response"
	"github.com/provado/provado-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Exam     *handler.ExamHandler
	Attempt  *handler.AttemptHandler
	Progress *handler.ProgressHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the credential endpoints (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", authLimiter.Middleware(), handlers.Auth.Register)
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. App Group (JWT + Active Session) ───────────────────────────
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequireJWT(authService),
		middleware.CheckActiveSession(authService),
	)
	{
		// Catalog
		api.GET("/exams", handlers.Exam.ListExams)
		api.GET("/exams/:exam_id", handlers.Exam.GetExam)
		api.GET("/exams/:exam_id/subjects", handlers.Exam.ListExamSubjects)
		api.GET("/subjects", handlers.Exam.ListSubjects)
		api.GET("/subjects/exams", handlers.Exam.ListExamsWithSubject)

		// Attempt lifecycle
		api.POST("/attempts", handlers.Attempt.Start)
		api.GET("/attempts", handlers.Attempt.List)
		api.GET("/attempts/:attempt_id", handlers.Attempt.Get)
		api.POST("/attempts/:attempt_id/answers", handlers.Attempt.SubmitAnswer)
		api.POST("/attempts/:attempt_id/finish", handlers.Attempt.Finish)
		api.GET("/attempts/:attempt_id/review", handlers.Attempt.Review)

		// Progress
		api.GET("/progress", handlers.Progress.Overall)
		api.GET("/progress/recent", handlers.Progress.Recent)
	}

	return router
}
