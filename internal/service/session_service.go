package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Sentret/config"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/model"
	"github.com/lshigami/Sentret/internal/quiz"
	"github.com/lshigami/Sentret/internal/repository"
	"github.com/rs/zerolog/log"
)

// CacheInvalidator is implemented by the leaderboard service; a new score
// drops the cached boards so the next read sees it.
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// SessionService owns the per-player session registry. Authenticated players
// hold one logical session keyed by their user ID; anonymous players get a
// UUID-keyed session that acts as a bearer handle.
type SessionService interface {
	Start(user *model.User) (*dto.SessionStateDTO, error)
	State(sessionID string, user *model.User) (*dto.SessionStateDTO, error)
	Submit(sessionID string, user *model.User, req dto.SubmitAnswersDTO) (*dto.SessionStateDTO, error)
	Restart(sessionID string, user *model.User) (*dto.SessionStateDTO, error)
	Summary(sessionID string, user *model.User) (*dto.SummaryDTO, error)
	Watch(sessionID string, user *model.User) (<-chan quiz.Snapshot, func(), error)
	Close()
}

type sessionService struct {
	questionRepo repository.QuestionRepository
	progressRepo repository.ProgressRepository
	boardRepo    repository.LeaderboardRepository
	invalidator  CacheInvalidator
	cfg          *config.Config

	writer *quiz.Writer

	mu       sync.Mutex
	sessions map[string]*quiz.Session
	// Anonymous session IDs in creation order; the oldest is evicted once
	// the configured cap is reached. User-keyed sessions are never evicted.
	anonOrder []string
}

func NewSessionService(
	questionRepo repository.QuestionRepository,
	progressRepo repository.ProgressRepository,
	boardRepo repository.LeaderboardRepository,
	invalidator CacheInvalidator,
	cfg *config.Config,
) SessionService {
	return &sessionService{
		questionRepo: questionRepo,
		progressRepo: progressRepo,
		boardRepo:    boardRepo,
		invalidator:  invalidator,
		cfg:          cfg,
		writer:       quiz.NewWriter(128),
		sessions:     make(map[string]*quiz.Session),
	}
}

func (s *sessionService) Start(user *model.User) (*dto.SessionStateDTO, error) {
	sessionID := sessionKey(user)

	s.mu.Lock()
	if existing, ok := s.sessions[sessionID]; ok {
		s.mu.Unlock()
		return s.stateDTO(existing), nil
	}
	s.mu.Unlock()

	questions, err := s.questionRepo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("Start: failed to load questions")
		return nil, fmt.Errorf("%w: %v", quiz.ErrFetch, err)
	}
	if len(questions) == 0 {
		return nil, quiz.ErrNoQuestions
	}

	var identity *quiz.Identity
	var resume *quiz.Resume
	if user != nil {
		identity = &quiz.Identity{UserID: user.ID, Username: user.Username}
		resume = s.loadResume(user.ID)
	}

	session, err := quiz.NewSession(sessionID, identity, questions,
		quiz.WithResume(resume),
		quiz.WithSinks(s.writer, &progressSink{repo: s.progressRepo}, &scoreSink{repo: s.boardRepo, invalidator: s.invalidator}),
	)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// A concurrent Start for the same player may have won; keep the first.
	if existing, ok := s.sessions[sessionID]; ok {
		s.mu.Unlock()
		return s.stateDTO(existing), nil
	}
	s.sessions[sessionID] = session
	if identity == nil {
		s.evictAnonymousLocked()
		s.anonOrder = append(s.anonOrder, sessionID)
	}
	s.mu.Unlock()

	log.Info().Str("sessionID", sessionID).Bool("resumed", resume != nil).Msg("Quiz session started")
	return s.stateDTO(session), nil
}

// loadResume fetches the latest progress snapshot. A read failure is logged
// and treated as "no snapshot": the quiz must stay playable without a backend.
func (s *sessionService) loadResume(userID uint) *quiz.Resume {
	record, err := s.progressRepo.FindLatestByUser(userID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("Failed to load progress; starting fresh")
		return nil
	}
	if record == nil {
		return nil
	}
	return &quiz.Resume{
		LastQuestionIndex: record.LastQuestionIndex,
		Answers:           record.UserAnswers,
	}
}

func (s *sessionService) State(sessionID string, user *model.User) (*dto.SessionStateDTO, error) {
	session, err := s.lookup(sessionID, user)
	if err != nil {
		return nil, err
	}
	return s.stateDTO(session), nil
}

func (s *sessionService) Submit(sessionID string, user *model.User, req dto.SubmitAnswersDTO) (*dto.SessionStateDTO, error) {
	session, err := s.lookup(sessionID, user)
	if err != nil {
		return nil, err
	}

	if req.TimedOut {
		_, err = session.SubmitOnTimeout(req.Words)
	} else {
		_, err = session.SubmitAnswer(req.Words)
	}
	if err != nil {
		return nil, err
	}
	return s.stateDTO(session), nil
}

func (s *sessionService) Restart(sessionID string, user *model.User) (*dto.SessionStateDTO, error) {
	session, err := s.lookup(sessionID, user)
	if err != nil {
		return nil, err
	}
	session.Restart()
	return s.stateDTO(session), nil
}

func (s *sessionService) Summary(sessionID string, user *model.User) (*dto.SummaryDTO, error) {
	session, err := s.lookup(sessionID, user)
	if err != nil {
		return nil, err
	}

	snap := session.Snapshot()
	if !snap.Completed {
		return nil, quiz.ErrOutOfRange
	}

	questions := session.Questions()
	questionByID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	review := make([]dto.ReviewItemDTO, 0, len(snap.Answers))
	for _, answer := range snap.Answers {
		q, ok := questionByID[answer.QuestionID]
		if !ok {
			// A resumed snapshot can reference a question deleted since it
			// was saved; there is nothing to show for that row.
			log.Warn().Str("sessionID", session.ID()).Uint("questionID", answer.QuestionID).Msg("Skipping review row for a question no longer in the set")
			continue
		}
		review = append(review, dto.ReviewItemDTO{
			Question: dto.QuestionDTO{
				ID:             q.ID,
				Sentence:       q.Sentence,
				Options:        q.Options,
				CorrectAnswers: q.CorrectAnswers,
				CreatedAt:      q.CreatedAt,
			},
			UserAnswers: answer.UserAnswers,
			IsCorrect:   answer.IsCorrect,
		})
	}

	return &dto.SummaryDTO{
		Score:          snap.Score,
		TotalQuestions: snap.TotalQuestions,
		Review:         review,
	}, nil
}

// evictAnonymousLocked drops the oldest anonymous sessions until there is
// room for one more under the configured cap. Caller holds s.mu.
func (s *sessionService) evictAnonymousLocked() {
	limit := s.cfg.Quiz.MaxAnonymousSessions
	if limit <= 0 {
		return
	}
	for len(s.anonOrder) >= limit {
		oldest := s.anonOrder[0]
		s.anonOrder = s.anonOrder[1:]
		delete(s.sessions, oldest)
		log.Info().Str("sessionID", oldest).Msg("Evicted oldest anonymous session")
	}
}

// Watch subscribes to state changes. The first value is the current state;
// the cancel func must be called when the caller is done.
func (s *sessionService) Watch(sessionID string, user *model.User) (<-chan quiz.Snapshot, func(), error) {
	session, err := s.lookup(sessionID, user)
	if err != nil {
		return nil, nil, err
	}
	updates, cancel := session.Subscribe()
	return updates, cancel, nil
}

// Close drains the best-effort writer. Pending writes finish; nothing new is
// accepted.
func (s *sessionService) Close() {
	s.writer.Close()
}

func (s *sessionService) lookup(sessionID string, user *model.User) (*quiz.Session, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, quiz.ErrSessionNotFound
	}

	// A session with an identity may only be touched by that user.
	if identity := session.Identity(); identity != nil {
		if user == nil || user.ID != identity.UserID {
			return nil, quiz.ErrSessionNotFound
		}
	}
	return session, nil
}

func (s *sessionService) stateDTO(session *quiz.Session) *dto.SessionStateDTO {
	snap := session.Snapshot()

	answers := make([]dto.AnswerDTO, 0, len(snap.Answers))
	for _, a := range snap.Answers {
		answers = append(answers, dto.AnswerDTO{
			QuestionID:  a.QuestionID,
			UserAnswers: a.UserAnswers,
			IsCorrect:   a.IsCorrect,
		})
	}

	state := &dto.SessionStateDTO{
		SessionID:            session.ID(),
		CurrentQuestionIndex: snap.CurrentQuestionIndex,
		TotalQuestions:       snap.TotalQuestions,
		Completed:            snap.Completed,
		Score:                snap.Score,
		Answers:              answers,
	}

	if question, err := session.CurrentQuestion(); err == nil {
		state.CurrentQuestion = &dto.CurrentQuestionDTO{
			ID:               question.ID,
			Sentence:         question.Sentence,
			Options:          question.Options,
			Blanks:           quiz.BlankCount(question.Sentence),
			TimeLimitSeconds: s.cfg.Quiz.QuestionTimeLimit,
		}
	}
	return state
}

func sessionKey(user *model.User) string {
	if user != nil {
		return fmt.Sprintf("user-%d", user.ID)
	}
	return uuid.NewString()
}

// progressSink writes snapshots through the progress repository.
type progressSink struct {
	repo repository.ProgressRepository
}

func (p *progressSink) SaveProgress(_ context.Context, userID uint, lastQuestionIndex int, answers []model.AnswerRecord) error {
	record := model.ProgressRecord{
		UserID:            userID,
		LastQuestionIndex: lastQuestionIndex,
		UserAnswers:       answers,
		Timestamp:         time.Now(),
	}
	return p.repo.Create(&record)
}

// scoreSink appends leaderboard entries and drops the cached boards.
type scoreSink struct {
	repo        repository.LeaderboardRepository
	invalidator CacheInvalidator
}

func (s *scoreSink) SaveScore(ctx context.Context, userID uint, score, totalQuestions int, completedAt time.Time) error {
	entry := model.LeaderboardEntry{
		UserID:         userID,
		Score:          score,
		TotalQuestions: totalQuestions,
		CompletedAt:    completedAt,
	}
	if err := s.repo.Create(&entry); err != nil {
		return err
	}
	if s.invalidator != nil {
		s.invalidator.InvalidateCache(ctx)
	}
	return nil
}
