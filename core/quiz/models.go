package quiz

import "github.com/pkg/errors"

var (
	ErrNotFound          = errors.New("quiz not found")
	ErrAttemptNotFound   = errors.New("quiz attempt not found")
	ErrIncompleteAttempt = errors.New("all questions must be answered before submitting")
	ErrInvalidOption     = errors.New("selected option is out of range")
	ErrAlreadySubmitted  = errors.New("attempt has already been submitted")
)

type (
	// Question is a multiple-choice question; CorrectOption indexes into
	// Options and is never serialized.
	Question struct {
		ID            string   `json:"id"`
		Text          string   `json:"text"`
		Options       []string `json:"options"`
		CorrectOption int      `json:"-"`
	}

	Quiz struct {
		ID           string     `json:"id"`
		Title        string     `json:"title"`
		PassingScore int        `json:"passing_score"`
		Questions    []Question `json:"questions"`
	}

	// Result is the sole authoritative output of a submitted attempt; the
	// engine does not persist it anywhere.
	Result struct {
		Score          int  `json:"score"`
		CorrectCount   int  `json:"correct_count"`
		TotalQuestions int  `json:"total_questions"`
		Passed         bool `json:"passed"`
	}
)

func (q Quiz) QuestionCount() int {
	return len(q.Questions)
}
