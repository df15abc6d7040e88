package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("an account with this email already exists")
)

type (
	Repository interface {
		CheckEmailUniqueness(email string, excludedUsers ...User) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		// FilterUsers applies AND on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on User.Name or User.Email.
		FilterUsers(filter QueryFilter) ([]User, error)
		GetUserByID(id string) (User, error)
		GetUserByEmail(email string) (User, error)
		UpdateUser(usr User) (User, error)
		DeleteUsersByID(ids ...string) error
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{
		repo:    repo,
		mailSvc: mailSvc,
		conf:    conf,
	}
}

func (svc *Service) CheckEmailUniqueness(email string, exclUsers ...User) error {
	if err := svc.repo.CheckEmailUniqueness(email, exclUsers...); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(nu NewUser) (User, error) {
	now := time.Now().UTC()
	usr := User{
		ID:                 uuid.New().String(),
		Name:               nu.Name,
		Email:              nu.Email,
		Role:               nu.Role,
		EnrolledCourseIDs:  []string{},
		CompletedCourseIDs: []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, errors.Wrap(err, "setting password")
	}

	usr, err := svc.repo.CreateUser(usr)
	if err != nil {
		return User{}, err
	}

	svc.sendWelcomeEmail(usr)
	return usr, nil
}

// Fabricate creates a throwaway account for the permissive demo login
// policy: any email-looking address signs in as a fresh member.
func (svc *Service) Fabricate(email string) (User, error) {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	now := time.Now().UTC()
	usr := User{
		ID:                 uuid.New().String(),
		Name:               name,
		Email:              email,
		Role:               RoleUser,
		EnrolledCourseIDs:  []string{},
		CompletedCourseIDs: []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) Filter(filter QueryFilter) ([]User, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllUsers()
	}
	return svc.repo.FilterUsers(filter)
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

// Patch merges the set fields of pu into the stored user; last write wins
// per field.
func (svc *Service) Patch(id string, pu PatchUser) (User, error) {
	if err := core.Validate.Struct(&pu); err != nil {
		return User{}, err
	}

	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	if pu.Email != "" && pu.Email != usr.Email {
		if err := svc.CheckEmailUniqueness(pu.Email, usr); err != nil {
			return User{}, err
		}
	}
	pu.Apply(&usr)
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) SetPassword(id, pwd string) (User, error) {
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	if err := usr.SetPassword(pwd); err != nil {
		return User{}, errors.Wrap(err, "setting password")
	}
	usr.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateUser(usr)
}

// SetRole reassigns a user's role; the role must be in the closed set.
func (svc *Service) SetRole(id string, role Role) (User, error) {
	if !role.Valid() {
		return User{}, core.NewValidationError(nil, core.FieldError{Field: "role", Error: "invalid role"})
	}
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	usr.Role = role
	usr.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) SetLastLogin(usr User) (User, error) {
	usr.LastLogin = time.Now().UTC()
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteUsersByID(ids...)
}

func (svc *Service) sendWelcomeEmail(usr User) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject:      fmt.Sprintf("Welcome to %s!", svc.conf.AppName),
		TemplateName: "welcome",
		TemplateData: struct{ Name string }{usr.Name},
	})
}
