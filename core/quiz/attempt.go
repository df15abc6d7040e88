package quiz

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Attempt tracks one in-progress pass through a quiz's question sequence.
// It is ephemeral: created on start, destroyed on submit or abandon. A
// mutex guards all mutable state so concurrent requests can drive the
// same attempt.
type Attempt struct {
	mu         sync.Mutex
	id         string
	quiz       Quiz
	selections map[int]int
	current    int
	submitted  bool
	startedAt  time.Time
}

// AttemptView is a point-in-time copy of an attempt's state, safe to
// serialize while the attempt keeps moving.
type AttemptView struct {
	ID         string      `json:"id"`
	Quiz       Quiz        `json:"quiz"`
	Selections map[int]int `json:"selections"`
	Current    int         `json:"current_question"`
	Submitted  bool        `json:"submitted"`
	StartedAt  time.Time   `json:"started_at"`
}

func StartAttempt(q Quiz) *Attempt {
	return &Attempt{
		id:         uuid.New().String(),
		quiz:       q,
		selections: make(map[int]int, len(q.Questions)),
		startedAt:  time.Now().UTC(),
	}
}

// ID, Quiz and StartedAt are fixed at creation.

func (a *Attempt) ID() string { return a.id }

func (a *Attempt) Quiz() Quiz { return a.quiz }

func (a *Attempt) StartedAt() time.Time { return a.startedAt }

// View copies the attempt's state into a serializable snapshot.
func (a *Attempt) View() AttemptView {
	a.mu.Lock()
	defer a.mu.Unlock()

	sels := make(map[int]int, len(a.selections))
	for q, opt := range a.selections {
		sels[q] = opt
	}
	return AttemptView{
		ID:         a.id,
		Quiz:       a.quiz,
		Selections: sels,
		Current:    a.current,
		Submitted:  a.submitted,
		StartedAt:  a.startedAt,
	}
}

// Select records (or overwrites) the option picked for a question. It is a
// no-op once the attempt has been submitted.
func (a *Attempt) Select(questionIdx, optionIdx int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.submitted {
		return nil
	}
	if questionIdx < 0 || questionIdx >= len(a.quiz.Questions) {
		return ErrInvalidOption
	}
	if optionIdx < 0 || optionIdx >= len(a.quiz.Questions[questionIdx].Options) {
		return ErrInvalidOption
	}
	a.selections[questionIdx] = optionIdx
	return nil
}

// GoTo jumps to a question; out-of-range indices are clamped.
func (a *Attempt) GoTo(questionIdx int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if questionIdx < 0 {
		questionIdx = 0
	}
	if max := len(a.quiz.Questions) - 1; questionIdx > max {
		questionIdx = max
	}
	a.current = questionIdx
}

// Next advances to the following question; a no-op on the last one.
func (a *Attempt) Next() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current < len(a.quiz.Questions)-1 {
		a.current++
	}
}

// Previous steps back; a no-op on the first question.
func (a *Attempt) Previous() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current > 0 {
		a.current--
	}
}

// Current returns the index of the question being viewed.
func (a *Attempt) Current() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Submitted reports whether the attempt has been graded.
func (a *Attempt) Submitted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.submitted
}

// CanAdvance reports whether the current question has a selection; it
// gates forward navigation in the linear flow (GoTo stays unrestricted).
func (a *Attempt) CanAdvance() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, ok := a.selections[a.current]
	return ok
}

// Selection returns the recorded option for a question, if any.
func (a *Attempt) Selection(questionIdx int) (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	opt, ok := a.selections[questionIdx]
	return opt, ok
}

// Answered counts questions with a recorded selection.
func (a *Attempt) Answered() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.selections)
}

// Submit grades the attempt against the quiz's passing score. Every
// question must have a selection; otherwise the attempt stays in progress
// and ErrIncompleteAttempt is returned.
func (a *Attempt) Submit() (Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.submitted {
		return Result{}, ErrAlreadySubmitted
	}

	total := len(a.quiz.Questions)
	if len(a.selections) < total {
		return Result{}, ErrIncompleteAttempt
	}

	var correct int
	for i, q := range a.quiz.Questions {
		if a.selections[i] == q.CorrectOption {
			correct++
		}
	}

	var score int
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	a.submitted = true
	return Result{
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: total,
		Passed:         score >= a.quiz.PassingScore,
	}, nil
}
