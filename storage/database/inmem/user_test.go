package inmemdb

import (
	"testing"

	"github.com/kanisa-app/kanisa/core/user"
)

func setupUserRepo(t *testing.T) user.Repository {
	t.Helper()
	db, err := OpenEmpty()
	if err != nil {
		t.Fatalf("OpenEmpty(): %v", err)
	}
	return NewUserRepository(db)
}

func mustCreate(t *testing.T, repo user.Repository, usr user.User) user.User {
	t.Helper()
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser(): %v", err)
	}
	return usr
}

func TestUserRepository_CheckEmailUniqueness(t *testing.T) {
	repo := setupUserRepo(t)
	usr := mustCreate(t, repo, user.User{Name: "Jo", Email: "jo@test.cd"})

	tests := []struct {
		name    string
		email   string
		excl    []user.User
		wantErr error
	}{
		{name: "free email", email: "amani@test.cd"},
		{name: "taken email", email: "jo@test.cd", wantErr: user.ErrEmailExists},
		{name: "taken email, different case", email: "JO@TEST.CD", wantErr: user.ErrEmailExists},
		{name: "taken by an excluded user", email: "jo@test.cd", excl: []user.User{usr}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.CheckEmailUniqueness(tt.email, tt.excl...); err != tt.wantErr {
				t.Errorf("CheckEmailUniqueness() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserRepository_crud(t *testing.T) {
	repo := setupUserRepo(t)

	usr := mustCreate(t, repo, user.User{Name: "Jo", Email: "jo@test.cd", Role: user.RoleUser})
	if usr.ID == "" {
		t.Fatal("CreateUser() did not assign an id")
	}

	got, err := repo.GetUserByEmail("JO@Test.cd")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if got.ID != usr.ID {
		t.Errorf("GetUserByEmail() = %v, want %v", got.ID, usr.ID)
	}

	// stored copies are isolated from caller mutation
	got.Name = "Changed"
	again, _ := repo.GetUserByID(usr.ID)
	if again.Name != "Jo" {
		t.Error("repository copy mutated through a returned value")
	}

	usr.Name = "Johanna"
	if _, err := repo.UpdateUser(usr); err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	updated, _ := repo.GetUserByID(usr.ID)
	if updated.Name != "Johanna" {
		t.Errorf("Name = %q after update, want %q", updated.Name, "Johanna")
	}

	if _, err := repo.UpdateUser(user.User{ID: "missing"}); err != user.ErrNotFound {
		t.Errorf("UpdateUser(missing) error = %v, want %v", err, user.ErrNotFound)
	}

	if err := repo.DeleteUsersByID(usr.ID); err != nil {
		t.Fatalf("DeleteUsersByID() error = %v", err)
	}
	if _, err := repo.GetUserByID(usr.ID); err != user.ErrNotFound {
		t.Errorf("GetUserByID() after delete error = %v, want %v", err, user.ErrNotFound)
	}
}

func TestUserRepository_FilterUsers(t *testing.T) {
	repo := setupUserRepo(t)
	mustCreate(t, repo, user.User{ID: "1", Name: "John Doe", Email: "john@test.cd", Role: user.RoleUser})
	mustCreate(t, repo, user.User{ID: "2", Name: "Sarah Johnson", Email: "sarah@test.cd", Role: user.RoleVolunteer})
	mustCreate(t, repo, user.User{ID: "3", Name: "Pastor Michael", Email: "michael@test.cd", Role: user.RoleAdmin})

	tests := []struct {
		name    string
		filter  user.QueryFilter
		wantIDs []string
	}{
		{name: "by role", filter: user.QueryFilter{Role: user.RoleVolunteer}, wantIDs: []string{"2"}},
		{name: "search matches name", filter: user.QueryFilter{Search: "john"}, wantIDs: []string{"1", "2"}},
		{name: "search matches email", filter: user.QueryFilter{Search: "michael@"}, wantIDs: []string{"3"}},
		{name: "search and role", filter: user.QueryFilter{Search: "john", Role: user.RoleUser}, wantIDs: []string{"1"}},
		{name: "no match", filter: user.QueryFilter{Search: "zzz"}, wantIDs: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.FilterUsers(tt.filter)
			if err != nil {
				t.Fatalf("FilterUsers() error = %v", err)
			}
			if len(users) != len(tt.wantIDs) {
				t.Fatalf("len = %v, want %v", len(users), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if users[i].ID != want {
					t.Errorf("users[%d].ID = %v, want %v", i, users[i].ID, want)
				}
			}
		})
	}
}
