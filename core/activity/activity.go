package activity

import (
	"fmt"
	"time"
)

type Type string

const (
	TypeCourseEnrolled  Type = "course_enrolled"
	TypeLessonCompleted Type = "lesson_completed"
	TypeQuizTaken       Type = "quiz_taken"
	TypeCourseCompleted Type = "course_completed"
)

type (
	Activity struct {
		ID        string    `json:"id"`
		Type      Type      `json:"type"`
		Title     string    `json:"title"`
		Timestamp time.Time `json:"timestamp"`
		CourseID  string    `json:"course_id,omitempty"`
	}

	Repository interface {
		QueryRecentActivities() ([]Activity, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryRecent() ([]Activity, error) {
	return svc.repo.QueryRecentActivities()
}

// TimeAgo buckets the elapsed time between t and now into a relative
// label. Buckets are half-open on the upper bound and computed by integer
// division of elapsed seconds; anything a week or older renders as an
// absolute date.
func TimeAgo(t, now time.Time) string {
	secs := int(now.Sub(t).Seconds())
	switch {
	case secs < 60:
		return "Just now"
	case secs < 3600:
		return fmt.Sprintf("%d minutes ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%d hours ago", secs/3600)
	case secs < 604800:
		return fmt.Sprintf("%d days ago", secs/86400)
	}
	return t.Format("Jan 2, 2006")
}
