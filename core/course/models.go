package course

import (
	"math"

	"github.com/kanisa-app/kanisa/core/quiz"
)

type MaterialType string

const (
	MaterialPDF      MaterialType = "pdf"
	MaterialSlide    MaterialType = "slide"
	MaterialDocument MaterialType = "document"
)

type (
	// Lesson is one playable unit of a course. Order values are unique and
	// dense (1..N) within a course; Completed is fixed by the seed dataset.
	Lesson struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Duration  string `json:"duration"`
		VideoURL  string `json:"video_url"`
		Completed bool   `json:"completed"`
		Order     int    `json:"order"`
	}

	Material struct {
		ID    string       `json:"id"`
		Title string       `json:"title"`
		Type  MaterialType `json:"type"`
		URL   string       `json:"url"`
	}

	Course struct {
		ID               string     `json:"id"`
		Title            string     `json:"title"`
		Description      string     `json:"description"`
		ShortDescription string     `json:"short_description"`
		Thumbnail        string     `json:"thumbnail"`
		Instructor       string     `json:"instructor"`
		Duration         string     `json:"duration"`
		VolunteerOnly    bool       `json:"is_volunteer_only"`
		Published        bool       `json:"is_published"`
		EnrolledCount    int        `json:"enrolled_count"`
		Lessons          []Lesson   `json:"lessons"`
		Materials        []Material `json:"materials"`
		Quiz             *quiz.Quiz `json:"quiz,omitempty"`
	}
)

// Progress derives the completion percentage of a course: the rounded
// share of its lessons marked completed. A course without lessons is at 0.
func Progress(c Course) int {
	if len(c.Lessons) == 0 {
		return 0
	}
	var completed int
	for _, l := range c.Lessons {
		if l.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(c.Lessons)) * 100))
}

// QuizUnlocked reports whether every lesson has been completed; a course
// without lessons is unlocked.
func QuizUnlocked(c Course) bool {
	for _, l := range c.Lessons {
		if !l.Completed {
			return false
		}
	}
	return true
}

// Lesson looks a lesson up by id.
func (c Course) Lesson(id string) (Lesson, error) {
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, ErrLessonNotFound
}

func (c Course) LessonCount() int {
	return len(c.Lessons)
}
