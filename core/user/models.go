package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kanisa-app/kanisa/core"
)

// Role is the closed set of roles an account may hold. Route and content
// visibility is always decided over this enumeration, never over free-form
// string comparisons.
type Role string

const (
	RoleUser      Role = "user"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

var (
	AllRoles = []Role{RoleUser, RoleVolunteer, RoleAdmin}

	rolePriorities = map[Role]int{
		RoleAdmin:     21,
		RoleVolunteer: 11,
		RoleUser:      1,
	}
)

func (r Role) Valid() bool {
	_, ok := rolePriorities[r]
	return ok
}

// Priority ranks roles for privilege comparisons; higher wins.
func (r Role) Priority() int {
	return rolePriorities[r]
}

// User is an authenticated (or authenticatable) member account.
type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               Role      `json:"role"`
	Avatar             string    `json:"avatar,omitempty"`
	EnrolledCourseIDs  []string  `json:"enrolled_courses"`
	CompletedCourseIDs []string  `json:"completed_courses"`
	QuizzesTaken       int       `json:"quizzes_taken"`
	PasswordHash       []byte    `json:"-"`
	CreatedAt          time.Time `json:"created_at"` // UTC
	UpdatedAt          time.Time `json:"updated_at"` // UTC
	LastLogin          time.Time `json:"last_login"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsVolunteer() bool {
	return u.Role == RoleVolunteer
}

func (u *User) IsEnrolled(courseID string) bool {
	return containsID(u.EnrolledCourseIDs, courseID)
}

func (u *User) HasCompleted(courseID string) bool {
	return containsID(u.CompletedCourseIDs, courseID)
}

// Enroll adds courseID to the enrollment set; re-enrolling is a no-op.
func (u *User) Enroll(courseID string) {
	if !u.IsEnrolled(courseID) {
		u.EnrolledCourseIDs = append(u.EnrolledCourseIDs, courseID)
	}
}

// Complete moves courseID from the enrollment set to the completion set.
func (u *User) Complete(courseID string) {
	for i, id := range u.EnrolledCourseIDs {
		if id == courseID {
			u.EnrolledCourseIDs = append(u.EnrolledCourseIDs[:i], u.EnrolledCourseIDs[i+1:]...)
			break
		}
	}
	if !u.HasCompleted(courseID) {
		u.CompletedCourseIDs = append(u.CompletedCourseIDs, courseID)
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role" validate:"omitempty,role"`
}

func (nu *NewUser) Clean() {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	if nu.Role == "" {
		nu.Role = RoleUser
	}
}

// PatchUser defines what information may be merged into an existing User.
// Zero-value fields are left untouched; set fields win (last write wins).
type PatchUser struct {
	Name               string    `json:"name"`
	Email              string    `json:"email" validate:"omitempty,email"`
	Avatar             *string   `json:"avatar"`
	EnrolledCourseIDs  *[]string `json:"enrolled_courses"`
	CompletedCourseIDs *[]string `json:"completed_courses"`
	QuizzesTaken       *int      `json:"quizzes_taken"`
}

func (pu *PatchUser) Clean() {
	pu.Name = core.CleanString(pu.Name)
	pu.Email = core.CleanString(pu.Email, true /* lower */)
}

// Apply merges the set fields of pu into usr.
func (pu PatchUser) Apply(usr *User) {
	if pu.Name != "" {
		usr.Name = pu.Name
	}
	if pu.Email != "" {
		usr.Email = pu.Email
	}
	if pu.Avatar != nil {
		usr.Avatar = *pu.Avatar
	}
	if pu.EnrolledCourseIDs != nil {
		usr.EnrolledCourseIDs = *pu.EnrolledCourseIDs
	}
	if pu.CompletedCourseIDs != nil {
		usr.CompletedCourseIDs = *pu.CompletedCourseIDs
	}
	if pu.QuizzesTaken != nil {
		usr.QuizzesTaken = *pu.QuizzesTaken
	}
	usr.UpdatedAt = time.Now().UTC()
}

type QueryFilter struct {
	Search string `query:"search"`
	Role   Role   `query:"role"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Role == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
