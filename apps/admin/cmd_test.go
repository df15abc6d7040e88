package main

import (
	"bytes"
	"database/sql"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/kanisa-app/kanisa/core/user"
	inmemdb "github.com/kanisa-app/kanisa/storage/database/inmem"
	testutil "github.com/kanisa-app/kanisa/tests"
)

var usrRepo user.Repository

func setup(t *testing.T) *commandLine {
	t.Helper()

	db, err := inmemdb.OpenEmpty()
	if err != nil {
		t.Fatalf("OpenEmpty(): %v", err)
	}
	conf := testutil.NewConfig()
	usrRepo = inmemdb.NewUserRepository(db)

	return &commandLine{
		conf:   conf,
		usrSvc: user.NewService(usrRepo, nil, conf),
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	pwd        string
	wantErr    error
	wantErrStr string
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)
	cli.db = sqlx.NewDb(new(sql.DB), "postgres")

	gooseRunFunc = func(command string, db *sql.DB, dir string, args ...string) error {
		switch command {
		case "up", "down", "status", "version": // pass
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
			}
		})
	}
}

func Test_commandLine_migrateNoDB(t *testing.T) {
	cli := setup(t)

	err := cli.run([]string{"admin", "migrate", "up"})
	if err == nil || err.Error() != "migrations require a configured database" {
		t.Errorf("cli.run() error = %v", err)
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	usr := testutil.CreateUser(t, usrRepo, "Awe", "awe@test.cd", "mdr", user.RoleUser)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "email but no password", args: []string{"resetpassword", "-email", "lol@test.cd"}, wantErr: errHelp},
		{name: "user not found", args: []string{"resetpassword", "-email", "lol@test.cd"}, pwd: "lol", wantErr: user.ErrNotFound},
		{name: "reset", args: []string{"resetpassword", "-email", usr.Email}, pwd: "lmao"},
		{name: "reset with mixed-case email", args: []string{"resetpassword", "-email", "AWE@Test.cd"}, pwd: "rofl"},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				refreshedUsr, err := usrRepo.GetUserByID(usr.ID)
				if err != nil {
					t.Fatalf("GetUserByID() failed, %v", err)
				}
				if bytes.Equal(refreshedUsr.PasswordHash, usr.PasswordHash) {
					t.Error("failed to update new password")
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	tests := []cliTest{
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "name but no email", args: []string{"adduser", "-name", "Jo"}, wantErr: errHelp},
		{name: "no password", args: []string{"adduser", "-name", "Jo", "-email", "jo@test.cd"}, wantErr: errHelp},
		{name: "create", args: []string{"adduser", "-name", "Jo", "-email", "jo@test.cd"}, pwd: "secret1"},
		{name: "create admin", args: []string{"adduser", "-name", "Boss", "-email", "boss@test.cd", "-admin"}, pwd: "secret1"},
		{name: "update existing", args: []string{"adduser", "-name", "Johanna", "-email", "jo@test.cd", "-admin"}, pwd: "secret2"},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	boss, err := usrRepo.GetUserByEmail("boss@test.cd")
	if err != nil {
		t.Fatalf("GetUserByEmail() failed, %v", err)
	}
	if boss.Role != user.RoleAdmin {
		t.Errorf("Role = %v, want %v", boss.Role, user.RoleAdmin)
	}

	jo, err := usrRepo.GetUserByEmail("jo@test.cd")
	if err != nil {
		t.Fatalf("GetUserByEmail() failed, %v", err)
	}
	if jo.Name != "Johanna" {
		t.Errorf("Name = %q, want %q", jo.Name, "Johanna")
	}
	if jo.Role != user.RoleAdmin {
		t.Errorf("Role = %v, want %v", jo.Role, user.RoleAdmin)
	}
	if err := jo.CheckPassword("secret2"); err != nil {
		t.Error("password was not updated")
	}
}
