package controller_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sentret/internal/controller"
	"github.com/lshigami/Sentret/internal/controller/admin"
	"github.com/lshigami/Sentret/internal/controller/user"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/model"
	"github.com/lshigami/Sentret/internal/quiz"
	"github.com/lshigami/Sentret/internal/service"
)

type stubAuthService struct{}

func (s *stubAuthService) Register(req dto.RegisterDTO) (*dto.AuthResponseDTO, error) {
	return &dto.AuthResponseDTO{}, nil
}

func (s *stubAuthService) Login(req dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	return &dto.AuthResponseDTO{}, nil
}

func (s *stubAuthService) ParseToken(token string) (*service.Claims, error) {
	if token != "valid-token" {
		return nil, fmt.Errorf("invalid token")
	}
	return &service.Claims{UserID: 1, Username: "ada"}, nil
}

func (s *stubAuthService) GetUser(id uint) (*model.User, error) {
	return &model.User{ID: id, Username: "ada"}, nil
}

type stubQuestionService struct{}

func (s *stubQuestionService) GetAllQuestions() ([]dto.QuestionDTO, error) {
	return []dto.QuestionDTO{
		{ID: 1, Sentence: "The cat _ on the mat.", Options: []string{"sat", "ran"}, CorrectAnswers: []string{"sat"}},
	}, nil
}

func (s *stubQuestionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionDTO, error) {
	if quiz.BlankCount(req.Sentence) == 0 {
		return nil, fmt.Errorf("%w: sentence must contain at least one blank marker", quiz.ErrValidation)
	}
	return &dto.QuestionDTO{ID: 2, Sentence: req.Sentence}, nil
}

func (s *stubQuestionService) DeleteQuestion(id uint) error { return nil }

type stubSessionService struct{}

func (s *stubSessionService) Start(u *model.User) (*dto.SessionStateDTO, error) {
	return &dto.SessionStateDTO{SessionID: "stub"}, nil
}

func (s *stubSessionService) State(id string, u *model.User) (*dto.SessionStateDTO, error) {
	return nil, quiz.ErrSessionNotFound
}

func (s *stubSessionService) Submit(id string, u *model.User, req dto.SubmitAnswersDTO) (*dto.SessionStateDTO, error) {
	return nil, quiz.ErrSessionNotFound
}

func (s *stubSessionService) Restart(id string, u *model.User) (*dto.SessionStateDTO, error) {
	return nil, quiz.ErrSessionNotFound
}

func (s *stubSessionService) Summary(id string, u *model.User) (*dto.SummaryDTO, error) {
	return nil, quiz.ErrSessionNotFound
}

func (s *stubSessionService) Watch(id string, u *model.User) (<-chan quiz.Snapshot, func(), error) {
	return nil, nil, quiz.ErrSessionNotFound
}

func (s *stubSessionService) Close() {}

type stubLeaderboardService struct{}

func (s *stubLeaderboardService) GetLeaderboard(ctx context.Context, filter service.TimeFilter, userID *uint) (*dto.LeaderboardDTO, error) {
	return &dto.LeaderboardDTO{Filter: string(filter)}, nil
}

func (s *stubLeaderboardService) InvalidateCache(ctx context.Context) {}

type stubProfileService struct{}

func (s *stubProfileService) GetProfile(userID uint) (*dto.ProfileDTO, error) {
	return &dto.ProfileDTO{User: dto.UserDTO{ID: userID, Username: "ada"}}, nil
}

type stubGeminiService struct{}

func (s *stubGeminiService) GenerateQuestions(topic string, count int) ([]model.Question, error) {
	return nil, fmt.Errorf("%w: gemini client not configured", quiz.ErrFetch)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	authService := &stubAuthService{}
	questionService := &stubQuestionService{}

	router := controller.NewRouter(
		user.NewAuthController(authService),
		user.NewQuizController(questionService, &stubSessionService{}),
		user.NewLeaderboardController(&stubLeaderboardService{}),
		user.NewProfileController(&stubProfileService{}),
		admin.NewQuestionController(questionService, &stubGeminiService{}),
		authService,
	)
	router.RegisterRoutes(engine)
	return engine
}

func TestAdminQuestionListRoute(t *testing.T) {
	engine := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/questions", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/admin/questions status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "The cat _ on the mat.") {
		t.Errorf("response body %q does not contain the question set", rec.Body.String())
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	engine := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/questions", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated admin request status = %d, want 401", rec.Code)
	}
}

func TestCreateQuestionValidationStatus(t *testing.T) {
	engine := newTestRouter()

	body := strings.NewReader(`{"sentence":"No blanks here.","options":["sat"],"correctAnswers":["sat"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/questions", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid question status = %d, want 422", rec.Code)
	}
}

func TestLeaderboardRouteIsPublic(t *testing.T) {
	engine := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?filter=weekly", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous leaderboard status = %d, want 200", rec.Code)
	}
}
