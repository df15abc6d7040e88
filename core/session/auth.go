package session

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core"
	"github.com/kanisa-app/kanisa/core/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")

	errEmailRequired    = "email is required"
	errPasswordRequired = "password is required"
	errNameRequired     = "name is required"
	errPasswordTooShort = "password must be at least 6 characters"
)

// Authenticator implements the sign-in and sign-up policies.
//
// The policies are deliberately permissive demo ones carried over from the
// seed dataset era: passwords are stored hashed but are not compared on
// sign-in, and any email-looking address that matches no account signs in
// as a freshly fabricated member.
type Authenticator struct {
	svc     *user.Service
	latency time.Duration
	minPwd  int
}

func NewAuthenticator(svc *user.Service, conf *core.Config) *Authenticator {
	return &Authenticator{
		svc:     svc,
		latency: conf.Auth.SimulatedLatency,
		minPwd:  conf.Auth.MinPasswordLen,
	}
}

// Authenticate signs in by case-insensitive email lookup. Concurrent calls
// are not coalesced; each waits out the simulated latency independently.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	if err := a.wait(ctx); err != nil {
		return user.User{}, err
	}

	var flds []core.FieldError
	if core.CleanString(email) == "" {
		flds = append(flds, core.FieldError{Field: "email", Error: errEmailRequired})
	}
	if password == "" {
		flds = append(flds, core.FieldError{Field: "password", Error: errPasswordRequired})
	}
	if len(flds) > 0 {
		return user.User{}, core.NewValidationError(nil, flds...)
	}

	usr, err := a.svc.GetByEmail(email)
	if err == nil {
		return a.svc.SetLastLogin(usr)
	}
	if errors.Cause(err) != user.ErrNotFound {
		return user.User{}, errors.Wrap(err, "finding user by email")
	}

	// demo fallback: fabricate an account for any email-like address
	if strings.Contains(email, "@") {
		usr, err = a.svc.Fabricate(core.CleanString(email, true /* lower */))
		if err != nil {
			return user.User{}, errors.Wrap(err, "fabricating user")
		}
		return a.svc.SetLastLogin(usr)
	}
	return user.User{}, ErrInvalidCredentials
}

// Register signs up a new member account with role "user".
func (a *Authenticator) Register(ctx context.Context, name, email, password string) (user.User, error) {
	if err := a.wait(ctx); err != nil {
		return user.User{}, err
	}

	name = core.CleanString(name)
	email = core.CleanString(email, true /* lower */)

	var flds []core.FieldError
	if name == "" {
		flds = append(flds, core.FieldError{Field: "name", Error: errNameRequired})
	}
	if email == "" {
		flds = append(flds, core.FieldError{Field: "email", Error: errEmailRequired})
	}
	switch {
	case password == "":
		flds = append(flds, core.FieldError{Field: "password", Error: errPasswordRequired})
	case len(password) < a.minPwd:
		flds = append(flds, core.FieldError{Field: "password", Error: errPasswordTooShort})
	}
	if len(flds) > 0 {
		return user.User{}, core.NewValidationError(nil, flds...)
	}

	if err := a.svc.CheckEmailUniqueness(email); err != nil {
		return user.User{}, err
	}

	usr, err := a.svc.Create(user.NewUser{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     user.RoleUser,
	})
	if err != nil {
		return user.User{}, errors.Wrap(err, "creating user")
	}
	return a.svc.SetLastLogin(usr)
}

// wait models the upstream round trip; it resolves after the configured
// latency or when ctx is done, whichever comes first.
func (a *Authenticator) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return nil
	}
	t := time.NewTimer(a.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
