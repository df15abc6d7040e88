package quiz

import "testing"

func TestAttemptStore(t *testing.T) {
	store := NewAttemptStore()

	if _, err := store.Get("nope"); err != ErrAttemptNotFound {
		t.Errorf("Get() error = %v, want %v", err, ErrAttemptNotFound)
	}

	att := store.Start(twoQuestionQuiz())
	if att.ID() == "" {
		t.Fatal("Start() returned attempt without id")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %v, want 1", store.Len())
	}

	got, err := store.Get(att.ID())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != att {
		t.Error("Get() returned a different attempt")
	}

	store.Remove(att.ID())
	if _, err := store.Get(att.ID()); err != ErrAttemptNotFound {
		t.Errorf("Get() after Remove error = %v, want %v", err, ErrAttemptNotFound)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %v, want 0", store.Len())
	}
}
