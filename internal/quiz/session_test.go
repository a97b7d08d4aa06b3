package quiz_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/Sentret/internal/model"
	"github.com/lshigami/Sentret/internal/quiz"
)

func testQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Sentence: "The cat _ on the _.", Options: []string{"sat", "mat", "hat"}, CorrectAnswers: []string{"sat", "mat"}},
		{ID: 2, Sentence: "Dogs _ loudly.", Options: []string{"bark", "meow"}, CorrectAnswers: []string{"bark"}},
		{ID: 3, Sentence: "Birds _ in the _.", Options: []string{"fly", "sky", "sea"}, CorrectAnswers: []string{"fly", "sky"}},
	}
}

type recordingSink struct {
	mu        sync.Mutex
	progress  []int // lastQuestionIndex of each save
	scores    []int
	totals    []int
	completed []time.Time
	saved     chan struct{}
	err       error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{saved: make(chan struct{}, 16)}
}

func (r *recordingSink) SaveProgress(_ context.Context, _ uint, lastQuestionIndex int, _ []model.AnswerRecord) error {
	r.mu.Lock()
	r.progress = append(r.progress, lastQuestionIndex)
	r.mu.Unlock()
	r.saved <- struct{}{}
	return r.err
}

func (r *recordingSink) SaveScore(_ context.Context, _ uint, score, totalQuestions int, completedAt time.Time) error {
	r.mu.Lock()
	r.scores = append(r.scores, score)
	r.totals = append(r.totals, totalQuestions)
	r.completed = append(r.completed, completedAt)
	r.mu.Unlock()
	r.saved <- struct{}{}
	return r.err
}

func (r *recordingSink) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.saved:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for write %d of %d", i+1, n)
		}
	}
}

func TestNewSessionRequiresQuestions(t *testing.T) {
	if _, err := quiz.NewSession("s1", nil, nil); !errors.Is(err, quiz.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestFullRunToCompletion(t *testing.T) {
	session, err := quiz.NewSession("s1", nil, testQuestions())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	snap, err := session.SubmitAnswer([]string{"sat", "mat"})
	if err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	if snap.CurrentQuestionIndex != 1 || snap.Completed {
		t.Fatalf("expected InProgress(1), got index=%d completed=%v", snap.CurrentQuestionIndex, snap.Completed)
	}
	if len(snap.Answers) != snap.CurrentQuestionIndex {
		t.Fatalf("answers/index invariant broken: %d answers at index %d", len(snap.Answers), snap.CurrentQuestionIndex)
	}

	if _, err := session.SubmitAnswer([]string{"meow"}); err != nil {
		t.Fatalf("submit 2: %v", err)
	}
	snap, err = session.SubmitAnswer([]string{"fly", "sky"})
	if err != nil {
		t.Fatalf("submit 3: %v", err)
	}

	if !snap.Completed {
		t.Fatal("expected session to be completed after last question")
	}
	if len(snap.Answers) != 3 {
		t.Fatalf("expected 3 answers at completion, got %d", len(snap.Answers))
	}
	if snap.Score != 2 {
		t.Fatalf("expected score 2 (q2 was wrong), got %d", snap.Score)
	}

	// Completed admits no submissions and no current question.
	if _, err := session.SubmitAnswer([]string{"x"}); !errors.Is(err, quiz.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange after completion, got %v", err)
	}
	if _, err := session.CurrentQuestion(); !errors.Is(err, quiz.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange from CurrentQuestion, got %v", err)
	}
}

func TestSubmitAnswerValidatesBlankCount(t *testing.T) {
	session, _ := quiz.NewSession("s1", nil, testQuestions())

	_, err := session.SubmitAnswer([]string{"sat"})
	if !errors.Is(err, quiz.ErrValidation) {
		t.Fatalf("expected ErrValidation for partial selection, got %v", err)
	}

	// The rejected submission must not have advanced the session.
	snap := session.Snapshot()
	if snap.CurrentQuestionIndex != 0 || len(snap.Answers) != 0 {
		t.Fatalf("rejected submission mutated state: %+v", snap)
	}
}

func TestSubmitOnTimeoutSkipsValidation(t *testing.T) {
	session, _ := quiz.NewSession("s1", nil, testQuestions())

	snap, err := session.SubmitOnTimeout([]string{"sat"})
	if err != nil {
		t.Fatalf("timeout submit: %v", err)
	}
	if snap.CurrentQuestionIndex != 1 {
		t.Fatalf("expected advance to index 1, got %d", snap.CurrentQuestionIndex)
	}
	if snap.Answers[0].IsCorrect {
		t.Fatal("partial timeout submission must score as incorrect")
	}

	snap, err = session.SubmitOnTimeout(nil)
	if err != nil {
		t.Fatalf("empty timeout submit: %v", err)
	}
	if snap.Answers[1].IsCorrect {
		t.Fatal("empty timeout submission must score as incorrect")
	}
}

func TestRestartResetsState(t *testing.T) {
	session, _ := quiz.NewSession("s1", nil, testQuestions()[:1])

	snap, err := session.SubmitAnswer([]string{"sat", "mat"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !snap.Completed {
		t.Fatal("expected completion")
	}

	snap = session.Restart()
	if snap.Completed || snap.CurrentQuestionIndex != 0 || len(snap.Answers) != 0 {
		t.Fatalf("restart did not reset: %+v", snap)
	}

	if _, err := session.CurrentQuestion(); err != nil {
		t.Fatalf("current question after restart: %v", err)
	}
}

func TestResumeAdoptsSnapshot(t *testing.T) {
	resume := &quiz.Resume{
		LastQuestionIndex: 2,
		Answers: []model.AnswerRecord{
			{QuestionID: 1, UserAnswers: []string{"sat", "mat"}, IsCorrect: true},
			{QuestionID: 2, UserAnswers: []string{"meow"}, IsCorrect: false},
		},
	}
	session, err := quiz.NewSession("s1", &quiz.Identity{UserID: 7}, testQuestions(), quiz.WithResume(resume))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	snap := session.Snapshot()
	if snap.CurrentQuestionIndex != 2 || len(snap.Answers) != 2 {
		t.Fatalf("expected resumed InProgress(2) with 2 answers, got %+v", snap)
	}

	q, err := session.CurrentQuestion()
	if err != nil {
		t.Fatalf("current question: %v", err)
	}
	if q.ID != 3 {
		t.Fatalf("expected question 3 after resume, got %d", q.ID)
	}
}

func TestResumeRejectsInvalidSnapshots(t *testing.T) {
	tests := []struct {
		name   string
		resume *quiz.Resume
	}{
		{
			name:   "index beyond question range",
			resume: &quiz.Resume{LastQuestionIndex: 3, Answers: make([]model.AnswerRecord, 3)},
		},
		{
			name:   "negative index",
			resume: &quiz.Resume{LastQuestionIndex: -1},
		},
		{
			name:   "answer count mismatch",
			resume: &quiz.Resume{LastQuestionIndex: 2, Answers: make([]model.AnswerRecord, 1)},
		},
		{
			name:   "nil snapshot",
			resume: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := quiz.NewSession("s1", nil, testQuestions(), quiz.WithResume(tt.resume))
			if err != nil {
				t.Fatalf("new session: %v", err)
			}
			snap := session.Snapshot()
			if snap.CurrentQuestionIndex != 0 || len(snap.Answers) != 0 {
				t.Fatalf("expected fresh start, got %+v", snap)
			}
		})
	}
}

func TestPersistenceWritesForAuthenticatedPlayer(t *testing.T) {
	sink := newRecordingSink()
	writer := quiz.NewWriter(8)
	defer writer.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session, err := quiz.NewSession("s1", &quiz.Identity{UserID: 42, Username: "alice"}, testQuestions()[:2],
		quiz.WithSinks(writer, sink, sink),
		quiz.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if _, err := session.SubmitAnswer([]string{"sat", "mat"}); err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	sink.wait(t, 1)

	if _, err := session.SubmitAnswer([]string{"bark"}); err != nil {
		t.Fatalf("submit 2: %v", err)
	}
	// Final question triggers both the progress write and the leaderboard write.
	sink.wait(t, 2)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.progress) != 2 || sink.progress[0] != 1 || sink.progress[1] != 2 {
		t.Fatalf("expected progress indexes [1 2], got %v", sink.progress)
	}
	if len(sink.scores) != 1 || sink.scores[0] != 2 || sink.totals[0] != 2 {
		t.Fatalf("expected one leaderboard write with score 2/2, got scores=%v totals=%v", sink.scores, sink.totals)
	}
	if !sink.completed[0].Equal(now) {
		t.Fatalf("expected completedAt %v, got %v", now, sink.completed[0])
	}
}

func TestAnonymousPlayerWritesNothing(t *testing.T) {
	sink := newRecordingSink()
	writer := quiz.NewWriter(8)

	session, _ := quiz.NewSession("s1", nil, testQuestions()[:1], quiz.WithSinks(writer, sink, sink))
	if _, err := session.SubmitAnswer([]string{"sat", "mat"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	writer.Close() // drains the queue

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.progress) != 0 || len(sink.scores) != 0 {
		t.Fatalf("anonymous session must not persist anything, got progress=%v scores=%v", sink.progress, sink.scores)
	}
}

func TestWriteFailureDoesNotBlockPlay(t *testing.T) {
	sink := newRecordingSink()
	sink.err = errors.New("store unreachable")
	writer := quiz.NewWriter(8)
	defer writer.Close()

	session, _ := quiz.NewSession("s1", &quiz.Identity{UserID: 1}, testQuestions()[:2], quiz.WithSinks(writer, sink, sink))

	if _, err := session.SubmitAnswer([]string{"sat", "mat"}); err != nil {
		t.Fatalf("submit must not surface write errors: %v", err)
	}
	sink.wait(t, 1)

	snap, err := session.SubmitAnswer([]string{"bark"})
	if err != nil {
		t.Fatalf("play must continue after failed writes: %v", err)
	}
	if !snap.Completed {
		t.Fatal("expected completion despite failed writes")
	}
}

func TestSubscribeReceivesTransitions(t *testing.T) {
	session, _ := quiz.NewSession("s1", nil, testQuestions())

	ch, cancel := session.Subscribe()
	defer cancel()

	initial := <-ch
	if initial.CurrentQuestionIndex != 0 {
		t.Fatalf("expected initial snapshot at index 0, got %d", initial.CurrentQuestionIndex)
	}

	if _, err := session.SubmitAnswer([]string{"sat", "mat"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	update := <-ch
	if update.CurrentQuestionIndex != 1 || update.Score != 1 {
		t.Fatalf("expected notified snapshot index=1 score=1, got %+v", update)
	}

	session.Restart()
	update = <-ch
	if update.CurrentQuestionIndex != 0 || len(update.Answers) != 0 {
		t.Fatalf("expected restart notification, got %+v", update)
	}
}
