package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sentret/config"
	"github.com/lshigami/Sentret/database"
	_ "github.com/lshigami/Sentret/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Sentret/internal/controller"
	"github.com/lshigami/Sentret/internal/controller/admin"
	"github.com/lshigami/Sentret/internal/controller/user"
	"github.com/lshigami/Sentret/internal/logger"
	"github.com/lshigami/Sentret/internal/model"
	"github.com/lshigami/Sentret/internal/repository"
	"github.com/lshigami/Sentret/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Sentence Blank Quiz API
// @version 1.0
// @description Fill-in-the-blank quiz with sessions, progress saving and a leaderboard.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewRedisClient,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewProgressRepository,
			repository.NewLeaderboardRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewQuestionService,
			service.NewLeaderboardService,
			// SessionService wants the leaderboard service as a cache
			// invalidator, not by its full interface.
			func(
				questionRepo repository.QuestionRepository,
				progressRepo repository.ProgressRepository,
				boardRepo repository.LeaderboardRepository,
				boardSvc service.LeaderboardService,
				cfg *config.Config,
			) service.SessionService {
				return service.NewSessionService(questionRepo, progressRepo, boardRepo, boardSvc, cfg)
			},
			service.NewProfileService,
			service.NewGeminiQuestionService,
		),

		fx.Provide(
			user.NewAuthController,
			user.NewQuizController,
			user.NewLeaderboardController,
			user.NewProfileController,
			admin.NewQuestionController,
			controller.NewRouter,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewRedisClient returns nil when no Redis address is configured; the
// leaderboard then serves straight from the database.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR is not set. Leaderboard caching is disabled.")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewGinEngine() *gin.Engine {
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

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	apiRouter *controller.Router,
	sessionService service.SessionService,
) {
	apiRouter.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz API server starting on port %s", cfg.Server.Port)
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
			sessionService.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.ProgressRecord{},
		&model.LeaderboardEntry{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
