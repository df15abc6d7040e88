package main

import (
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core"
	"github.com/kanisa-app/kanisa/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(name, email, pwd string, isAdmin bool) error {
	name = core.CleanString(name)
	email = core.CleanString(email, true /* lower */)

	role := user.RoleUser
	if isAdmin {
		role = user.RoleAdmin
	}

	usr, err := cli.usrSvc.GetByEmail(email)
	if err != nil {
		if errors.Cause(err) != user.ErrNotFound {
			return err
		}
		_, err = cli.usrSvc.Create(user.NewUser{
			Name:     name,
			Email:    email,
			Password: pwd,
			Role:     role,
		})
		return err
	}

	if _, err = cli.usrSvc.Patch(usr.ID, user.PatchUser{Name: name}); err != nil {
		return err
	}
	if isAdmin && usr.Role != user.RoleAdmin {
		if _, err = cli.usrSvc.SetRole(usr.ID, user.RoleAdmin); err != nil {
			return err
		}
	}
	_, err = cli.usrSvc.SetPassword(usr.ID, pwd)
	return err
}
