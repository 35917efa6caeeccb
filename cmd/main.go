package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vthang/Skillforge/config"
	"github.com/vthang/Skillforge/database"
	_ "github.com/vthang/Skillforge/docs" // Swagger docs - auto-generated
	adminctrl "github.com/vthang/Skillforge/internal/controller/admin"
	userctrl "github.com/vthang/Skillforge/internal/controller/user"
	"github.com/vthang/Skillforge/internal/logger"
	"github.com/vthang/Skillforge/internal/model"
	"github.com/vthang/Skillforge/internal/repository"
	"github.com/vthang/Skillforge/internal/sandbox"
	"github.com/vthang/Skillforge/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Skillforge Assessment API
// @version 1.0
// @description Recruiting assessment platform: assessments with coding, multiple-choice, short-answer, and essay questions, sandboxed code execution, automatic scoring, and recruiter review.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewAssessmentRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewAttemptAnswerRepository,
			repository.NewReviewRepository,
			repository.NewNotificationRepository,
		),

		// Sandbox: one shared process runner plus a per-language adapter set.
		fx.Provide(
			NewCodeEvaluator,
		),

		fx.Provide(
			service.NewScoringService,
			service.NewNotificationService,
			service.NewAdvisorService,
			service.NewExecutionService,
			service.NewAssessmentService,
			service.NewAttemptService,
			service.NewReviewService,
		),

		fx.Provide(
			adminctrl.NewRecruiterController,
			userctrl.NewCandidateController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewCodeEvaluator wires the process runner and language adapters from config.
func NewCodeEvaluator(cfg *config.Config) service.CodeEvaluator {
	runner := sandbox.NewProcessRunner(time.Duration(cfg.Sandbox.TimeoutSeconds) * time.Second)
	return sandbox.NewEvaluator(runner,
		sandbox.NewPythonAdapter(cfg.Sandbox.PythonBinary),
		sandbox.NewJavaScriptAdapter(cfg.Sandbox.NodeBinary),
	)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	recruiterCtrl *adminctrl.RecruiterController,
	candidateCtrl *userctrl.CandidateController,
) {
	// Recruiter routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/assessments", recruiterCtrl.CreateAssessment)
		adminAPIGroup.GET("/assessments/:assessment_id/attempts", recruiterCtrl.ListAssessmentAttempts)

		adminAPIGroup.POST("/attempts/:attempt_id/review", recruiterCtrl.OpenReview)
		adminAPIGroup.GET("/reviews/:review_id", recruiterCtrl.GetReview)
		adminAPIGroup.PUT("/reviews/:review_id/answers/:question_id", recruiterCtrl.EditReviewAnswer)
		adminAPIGroup.POST("/reviews/:review_id/complete", recruiterCtrl.CompleteReview)
		adminAPIGroup.POST("/reviews/:review_id/release", recruiterCtrl.ReleaseReview)
	}

	// Candidate routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/assessments", candidateCtrl.ListAssessments)
		userAPIGroup.GET("/assessments/:assessment_id", candidateCtrl.GetAssessment)
		userAPIGroup.POST("/assessments/:assessment_id/attempts", candidateCtrl.StartAttempt)
		userAPIGroup.GET("/assessments/:assessment_id/my-attempts", candidateCtrl.GetMyAttempts)

		userAPIGroup.POST("/attempts/:attempt_id/answers", candidateCtrl.SubmitAnswer)
		userAPIGroup.POST("/attempts/:attempt_id/submit", candidateCtrl.SubmitAttempt)
		userAPIGroup.GET("/attempts/:attempt_id", candidateCtrl.GetAttemptDetails)

		userAPIGroup.POST("/execute", candidateCtrl.ExecuteCode)

		userAPIGroup.GET("/notifications", candidateCtrl.GetNotifications)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Skillforge API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Assessment{},
		&model.Question{},
		&model.Attempt{},
		&model.AttemptAnswer{},
		&model.Review{},
		&model.ReviewAnswer{},
		&model.Notification{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
