package quiz

import (
	"sync"
	"testing"
)

func twoQuestionQuiz() Quiz {
	return Quiz{
		ID:           "q",
		Title:        "Quiz",
		PassingScore: 70,
		Questions: []Question{
			{ID: "1", Options: []string{"a", "b", "c"}, CorrectOption: 1},
			{ID: "2", Options: []string{"a", "b", "c"}, CorrectOption: 2},
		},
	}
}

func TestAttempt_Select(t *testing.T) {
	att := StartAttempt(twoQuestionQuiz())

	tests := []struct {
		name     string
		question int
		option   int
		wantErr  error
	}{
		{name: "valid", question: 0, option: 1},
		{name: "overwrite", question: 0, option: 2},
		{name: "negative question", question: -1, option: 0, wantErr: ErrInvalidOption},
		{name: "question out of range", question: 2, option: 0, wantErr: ErrInvalidOption},
		{name: "negative option", question: 0, option: -1, wantErr: ErrInvalidOption},
		{name: "option out of range", question: 0, option: 3, wantErr: ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := att.Select(tt.question, tt.option); err != tt.wantErr {
				t.Errorf("Select() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if got, _ := att.Selection(0); got != 2 {
		t.Errorf("Selection(0) = %v, want overwrite to 2", got)
	}
	if att.Answered() != 1 {
		t.Errorf("Answered() = %v, want 1", att.Answered())
	}
}

func TestAttempt_navigation(t *testing.T) {
	att := StartAttempt(twoQuestionQuiz())

	att.Previous() // no-op on first question
	if att.Current() != 0 {
		t.Errorf("Current() = %v after Previous on first, want 0", att.Current())
	}

	att.Next()
	if att.Current() != 1 {
		t.Errorf("Current() = %v after Next, want 1", att.Current())
	}

	att.Next() // no-op on last question
	if att.Current() != 1 {
		t.Errorf("Current() = %v after Next on last, want 1", att.Current())
	}

	att.GoTo(-5)
	if att.Current() != 0 {
		t.Errorf("Current() = %v after GoTo(-5), want clamp to 0", att.Current())
	}
	att.GoTo(99)
	if att.Current() != 1 {
		t.Errorf("Current() = %v after GoTo(99), want clamp to 1", att.Current())
	}
}

// Run with -race: the same attempt is shared between concurrent requests,
// so selections, navigation and snapshots must all hold up under parallel
// callers.
func TestAttempt_concurrentCallers(t *testing.T) {
	att := StartAttempt(twoQuestionQuiz())

	const callers = 200
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			if err := att.Select(i%2, i%3); err != nil {
				t.Errorf("Select() error = %v", err)
			}
			att.GoTo(i % 2)
			att.Next()
			att.Previous()
			_ = att.CanAdvance()
			_ = att.View()
		}(i)
	}
	wg.Wait()

	if att.Answered() != 2 {
		t.Errorf("Answered() = %v after concurrent selects, want 2", att.Answered())
	}
	for q := 0; q < 2; q++ {
		if opt, ok := att.Selection(q); !ok || opt < 0 || opt > 2 {
			t.Errorf("Selection(%d) = %v, %v; want a recorded in-range option", q, opt, ok)
		}
	}

	res, err := att.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if res.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %v, want 2", res.TotalQuestions)
	}
}

func TestAttempt_CanAdvance(t *testing.T) {
	att := StartAttempt(twoQuestionQuiz())

	if att.CanAdvance() {
		t.Error("CanAdvance() on unanswered question")
	}
	_ = att.Select(0, 0)
	if !att.CanAdvance() {
		t.Error("!CanAdvance() on answered question")
	}
}

func TestAttempt_Submit(t *testing.T) {
	t.Run("incomplete attempt is left intact", func(t *testing.T) {
		att := StartAttempt(twoQuestionQuiz())
		_ = att.Select(0, 1)

		if _, err := att.Submit(); err != ErrIncompleteAttempt {
			t.Fatalf("Submit() error = %v, want %v", err, ErrIncompleteAttempt)
		}
		if att.Submitted() {
			t.Error("attempt marked submitted after failed submit")
		}
		if att.Answered() != 1 {
			t.Errorf("Answered() = %v after failed submit, want 1", att.Answered())
		}
	})

	t.Run("half right scores 50 and fails at 70", func(t *testing.T) {
		att := StartAttempt(twoQuestionQuiz())
		_ = att.Select(0, 1) // correct
		_ = att.Select(1, 0) // wrong

		res, err := att.Submit()
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		want := Result{Score: 50, CorrectCount: 1, TotalQuestions: 2, Passed: false}
		if res != want {
			t.Errorf("Submit() = %+v, want %+v", res, want)
		}
	})

	t.Run("all right passes", func(t *testing.T) {
		att := StartAttempt(twoQuestionQuiz())
		_ = att.Select(0, 1)
		_ = att.Select(1, 2)

		res, err := att.Submit()
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		want := Result{Score: 100, CorrectCount: 2, TotalQuestions: 2, Passed: true}
		if res != want {
			t.Errorf("Submit() = %+v, want %+v", res, want)
		}
	})

	t.Run("score equal to passing score passes", func(t *testing.T) {
		q := twoQuestionQuiz()
		q.PassingScore = 50
		att := StartAttempt(q)
		_ = att.Select(0, 1)
		_ = att.Select(1, 0)

		res, err := att.Submit()
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if !res.Passed {
			t.Errorf("Passed = false at exactly the passing score; res %+v", res)
		}
	})

	t.Run("double submit is rejected, selections frozen", func(t *testing.T) {
		att := StartAttempt(twoQuestionQuiz())
		_ = att.Select(0, 1)
		_ = att.Select(1, 2)

		if _, err := att.Submit(); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if _, err := att.Submit(); err != ErrAlreadySubmitted {
			t.Errorf("second Submit() error = %v, want %v", err, ErrAlreadySubmitted)
		}

		// selections are frozen after submit
		if err := att.Select(0, 0); err != nil {
			t.Errorf("Select() after submit error = %v, want silent no-op", err)
		}
		if got, _ := att.Selection(0); got != 1 {
			t.Errorf("Selection(0) = %v after frozen select, want 1", got)
		}
	})
}
