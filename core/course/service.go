package course

import (
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core/user"
)

var (
	ErrNotFound       = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")
	ErrNoQuiz         = errors.New("course has no quiz")
)

type (
	Repository interface {
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

// QueryVisible lists the courses usr may see: published courses for
// everyone, volunteer-only courses for volunteers and admins, unpublished
// courses for admins only. usr may be nil (anonymous).
func (svc *Service) QueryVisible(usr *user.User) ([]Course, error) {
	all, err := svc.repo.QueryAllCourses()
	if err != nil {
		return nil, err
	}
	visible := make([]Course, 0, len(all))
	for _, c := range all {
		if Visible(c, usr) {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

// GetVisibleByID is GetByID restricted by the visibility rules; a hidden
// course is indistinguishable from a missing one.
func (svc *Service) GetVisibleByID(id string, usr *user.User) (Course, error) {
	c, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return Course{}, err
	}
	if !Visible(c, usr) {
		return Course{}, ErrNotFound
	}
	return c, nil
}

func (svc *Service) GetLesson(courseID, lessonID string, usr *user.User) (Lesson, error) {
	c, err := svc.GetVisibleByID(courseID, usr)
	if err != nil {
		return Lesson{}, err
	}
	return c.Lesson(lessonID)
}

// Visible decides course visibility over the closed role set; usr is nil
// for anonymous callers.
func Visible(c Course, usr *user.User) bool {
	if !c.Published && (usr == nil || !usr.IsAdmin()) {
		return false
	}
	if c.VolunteerOnly && (usr == nil || !(usr.IsVolunteer() || usr.IsAdmin())) {
		return false
	}
	return true
}
