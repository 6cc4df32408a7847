// Package session holds the per-user quiz state of the web application.
package session

import (
	"maps"
	"sync"
	"time"

	"github.com/pavelanni/diagnostic/internal/bank"
	"github.com/pavelanni/diagnostic/internal/model"
	"github.com/pavelanni/diagnostic/internal/results"
)

// Session is one student's progress through the diagnostic. It is safe for
// concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time

	mu      sync.Mutex
	name    string
	current model.Subject
	answers model.Answers
	version uint64

	advice        string
	adviceVersion uint64
}

func newSession(id, name string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		name:      name,
		current:   model.Subjects[0],
		answers:   make(model.Answers),
	}
}

func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *Session) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

// CurrentSubject is the subject the student is working on.
func (s *Session) CurrentSubject() model.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) SetCurrentSubject(sub model.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sub
}

// SetAnswer records the selected option for a question, replacing any earlier choice.
// Changing an answer discards the cached advice.
func (s *Session) SetAnswer(questionID string, key model.OptionKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.answers[questionID]; ok && prev == key {
		return
	}
	s.answers[questionID] = key
	s.version++
	s.advice = ""
}

// Answer returns the selected option for a question.
func (s *Session) Answer(questionID string) (model.OptionKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, ok := s.answers[questionID]
	return k, ok
}

// Answers returns a copy of all recorded answers.
func (s *Session) Answers() model.Answers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.answers)
}

// Snapshot returns a copy of the answers and their version. The version changes
// whenever the answers do.
func (s *Session) Snapshot() (model.Answers, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.answers), s.version
}

// ClearAnswers drops all answers and the advice and rewinds to the first subject.
func (s *Session) ClearAnswers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = make(model.Answers)
	s.current = model.Subjects[0]
	s.version++
	s.advice = ""
}

// Advice returns the advisor note cached for the given answers version, if any.
func (s *Session) Advice(version uint64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adviceVersion != version {
		return ""
	}
	return s.advice
}

// SetAdvice caches note for the given answers version. It reports false and
// stores nothing when the answers have changed since that version.
func (s *Session) SetAdvice(note string, version uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version != s.version {
		return false
	}
	s.advice = note
	s.adviceVersion = version
	return true
}

// AnsweredCount reports how many of the given questions have an answer.
func (s *Session) AnsweredCount(questions []model.Question) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, q := range questions {
		if _, ok := s.answers[q.ID]; ok {
			n++
		}
	}
	return n
}

// Results computes the results of the recorded answers.
func (s *Session) Results(e results.Engine, b *bank.Bank) model.TestResults {
	res, _ := s.VersionedResults(e, b)
	return res
}

// VersionedResults computes the results together with the answers version they
// were computed from.
func (s *Session) VersionedResults(e results.Engine, b *bank.Bank) (model.TestResults, uint64) {
	answers, version := s.Snapshot()
	return e.Calculate(b, answers), version
}
