package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sentret/internal/controller/admin"
	"github.com/lshigami/Sentret/internal/controller/user"
	"github.com/lshigami/Sentret/internal/middleware"
	"github.com/lshigami/Sentret/internal/service"
)

// Router groups every controller and mounts them under /api/v1.
type Router struct {
	authController        *user.AuthController
	quizController        *user.QuizController
	leaderboardController *user.LeaderboardController
	profileController     *user.ProfileController
	questionController    *admin.QuestionController
	authService           service.AuthService
}

func NewRouter(
	authController *user.AuthController,
	quizController *user.QuizController,
	leaderboardController *user.LeaderboardController,
	profileController *user.ProfileController,
	questionController *admin.QuestionController,
	authService service.AuthService,
) *Router {
	return &Router{
		authController:        authController,
		quizController:        quizController,
		leaderboardController: leaderboardController,
		profileController:     profileController,
		questionController:    questionController,
		authService:           authService,
	}
}

func (r *Router) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.authController.Login)

		// Play routes work with or without a token; a valid token binds the
		// session to the user and enables progress saving.
		play := apiV1.Group("", middleware.OptionalAuth(r.authService))
		play.GET("/questions", r.quizController.GetAllQuestions)
		play.POST("/session", r.quizController.StartSession)
		play.GET("/session/:session_id", r.quizController.GetSessionState)
		play.POST("/session/:session_id/answers", r.quizController.SubmitAnswers)
		play.POST("/session/:session_id/restart", r.quizController.RestartSession)
		play.GET("/session/:session_id/summary", r.quizController.GetSummary)
		play.GET("/session/:session_id/events", r.quizController.WatchSession)
		play.GET("/leaderboard", r.leaderboardController.GetLeaderboard)

		profile := apiV1.Group("/profile", middleware.RequireAuth(r.authService))
		profile.GET("", r.profileController.GetProfile)

		adminGroup := apiV1.Group("/admin", middleware.RequireAuth(r.authService))
		adminGroup.GET("/questions", r.questionController.ListQuestions)
		adminGroup.POST("/questions", r.questionController.CreateQuestion)
		adminGroup.DELETE("/questions/:id", r.questionController.DeleteQuestion)
		adminGroup.POST("/questions/generate", r.questionController.GenerateQuestions)
	}
}
