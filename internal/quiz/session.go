package quiz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/Sentret/internal/model"
	"github.com/rs/zerolog/log"
)

// Identity is the authenticated player, passed in explicitly at session start.
// A nil identity means anonymous play: fully functional, nothing persisted.
type Identity struct {
	UserID   uint
	Username string
}

// ProgressSink persists a progress snapshot after every answered question.
type ProgressSink interface {
	SaveProgress(ctx context.Context, userID uint, lastQuestionIndex int, answers []model.AnswerRecord) error
}

// ScoreSink persists exactly one leaderboard entry per completed session.
type ScoreSink interface {
	SaveScore(ctx context.Context, userID uint, score, totalQuestions int, completedAt time.Time) error
}

// Resume is a previously persisted progress snapshot adopted at session start.
type Resume struct {
	LastQuestionIndex int
	Answers           []model.AnswerRecord
}

// Snapshot is an immutable view of session state, pulled by subscribers on
// every change notification.
type Snapshot struct {
	CurrentQuestionIndex int
	TotalQuestions       int
	Answers              []model.AnswerRecord
	Completed            bool
	Score                int
}

// Session drives one play-through: question pointer, accumulated answers and
// the completion flag. States are InProgress(i) and Completed; submissions
// advance i until the last question flips the session to Completed, and only
// Restart leaves Completed. Persistence is emitted through the sinks via the
// best-effort writer; the session never learns whether a write landed.
type Session struct {
	id        string
	identity  *Identity
	questions []model.Question
	now       func() time.Time

	writer   *Writer
	progress ProgressSink
	scores   ScoreSink

	mu          sync.RWMutex
	index       int
	answers     []model.AnswerRecord
	completed   bool
	subscribers map[chan Snapshot]struct{}
}

// Option tweaks session construction.
type Option func(*Session)

// WithClock makes timestamps deterministic in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithResume adopts a prior progress snapshot. Invalid snapshots (index out of
// range, answer count not matching the index, or a finished run) are discarded
// silently and the session starts fresh.
func WithResume(r *Resume) Option {
	return func(s *Session) {
		if r == nil {
			return
		}
		if r.LastQuestionIndex < 0 || r.LastQuestionIndex >= len(s.questions) {
			log.Debug().Str("session", s.id).Int("index", r.LastQuestionIndex).Msg("Resume snapshot outside question range; starting fresh")
			return
		}
		if len(r.Answers) != r.LastQuestionIndex {
			log.Debug().Str("session", s.id).Msg("Resume snapshot answer count mismatch; starting fresh")
			return
		}
		s.index = r.LastQuestionIndex
		s.answers = append(s.answers[:0], r.Answers...)
	}
}

// WithSinks wires the persistence collaborators. Writes only happen when the
// session has an identity.
func WithSinks(w *Writer, progress ProgressSink, scores ScoreSink) Option {
	return func(s *Session) {
		s.writer = w
		s.progress = progress
		s.scores = scores
	}
}

// NewSession initializes a session over an ordered question list. An empty
// list is a distinct "no content" outcome, not a session state.
func NewSession(id string, identity *Identity, questions []model.Question, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{
		id:          id,
		identity:    identity,
		questions:   questions,
		now:         time.Now,
		answers:     make([]model.AnswerRecord, 0, len(questions)),
		subscribers: make(map[chan Snapshot]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Identity returns the player this session belongs to, or nil for anonymous play.
func (s *Session) Identity() *Identity { return s.identity }

// Questions returns the ordered question list the session was initialized
// with. Immutable for the session's lifetime.
func (s *Session) Questions() []model.Question { return s.questions }

// CurrentQuestion returns the question the pointer is on. Callers must check
// Completed on the snapshot first.
func (s *Session) CurrentQuestion() (model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.completed || s.index < 0 || s.index >= len(s.questions) {
		return model.Question{}, ErrOutOfRange
	}
	return s.questions[s.index], nil
}

// SubmitAnswer scores a full selection against the current question. The
// selection must cover every blank; partial selections are rejected before
// scoring with ErrValidation.
func (s *Session) SubmitAnswer(selected []string) (Snapshot, error) {
	return s.submit(selected, false)
}

// SubmitOnTimeout records whatever selection exists when the question timer
// expires. The blank-count precondition is waived; scoring is unchanged, so a
// partial selection simply counts as incorrect.
func (s *Session) SubmitOnTimeout(selected []string) (Snapshot, error) {
	return s.submit(selected, true)
}

func (s *Session) submit(selected []string, timedOut bool) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed || s.index >= len(s.questions) {
		return Snapshot{}, ErrOutOfRange
	}
	question := s.questions[s.index]

	if !timedOut {
		if blanks := BlankCount(question.Sentence); len(selected) != blanks {
			return Snapshot{}, fmt.Errorf("%w: got %d words for %d blanks", ErrValidation, len(selected), blanks)
		}
	}

	words := append([]string(nil), selected...)
	record := model.AnswerRecord{
		QuestionID:  question.ID,
		UserAnswers: words,
		IsCorrect:   IsCorrect(words, question.CorrectAnswers),
	}
	s.answers = append(s.answers, record)

	lastQuestion := s.index == len(s.questions)-1
	if lastQuestion {
		s.completed = true
	} else {
		s.index++
	}

	if s.identity != nil {
		s.enqueueProgressLocked()
		if lastQuestion {
			s.enqueueScoreLocked()
		}
	}

	return s.broadcastLocked(), nil
}

// Restart resets to InProgress(0) with no answers. Persisted progress and
// leaderboard rows are history and stay untouched.
func (s *Session) Restart() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = 0
	s.answers = s.answers[:0]
	s.completed = false
	return s.broadcastLocked()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe returns a channel receiving a snapshot after every transition,
// starting with the current one. The cancel func must be called to avoid leaks.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.snapshotLocked()
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) enqueueProgressLocked() {
	if s.writer == nil || s.progress == nil {
		return
	}
	userID := s.identity.UserID
	lastIndex := s.index
	if s.completed {
		lastIndex = len(s.questions)
	}
	answers := append([]model.AnswerRecord(nil), s.answers...)
	s.writer.Enqueue("progress", func(ctx context.Context) error {
		return s.progress.SaveProgress(ctx, userID, lastIndex, answers)
	})
}

func (s *Session) enqueueScoreLocked() {
	if s.writer == nil || s.scores == nil {
		return
	}
	userID := s.identity.UserID
	score := countCorrect(s.answers)
	total := len(s.questions)
	completedAt := s.now()
	s.writer.Enqueue("leaderboard", func(ctx context.Context) error {
		return s.scores.SaveScore(ctx, userID, score, total, completedAt)
	})
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		CurrentQuestionIndex: s.index,
		TotalQuestions:       len(s.questions),
		Answers:              append([]model.AnswerRecord(nil), s.answers...),
		Completed:            s.completed,
		Score:                countCorrect(s.answers),
	}
}

func (s *Session) broadcastLocked() Snapshot {
	snap := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the stale update so a slow subscriber cannot block transitions.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	return snap
}

func countCorrect(answers []model.AnswerRecord) int {
	count := 0
	for _, a := range answers {
		if a.IsCorrect {
			count++
		}
	}
	return count
}
