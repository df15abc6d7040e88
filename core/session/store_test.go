package session

import (
	"context"
	"testing"

	"github.com/kanisa-app/kanisa/core/user"
	"github.com/kanisa-app/kanisa/tests"
)

func setupStore(t *testing.T) (*Store, user.Repository) {
	t.Helper()
	auth, svc, repo := setup(t)
	return NewStore(auth, svc), repo
}

func TestStore_transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("starts anonymous", func(t *testing.T) {
		store, _ := setupStore(t)
		if _, ok := store.Current(); ok {
			t.Error("fresh store is not anonymous")
		}
	})

	t.Run("authenticate transitions to the identity", func(t *testing.T) {
		store, repo := setupStore(t)
		usr := testutil.CreateUser(t, repo, "Jo", "jo@test.cd", "123456", user.RoleUser)

		if _, err := store.Authenticate(ctx, "jo@test.cd", "123456"); err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		cur, ok := store.Current()
		if !ok || cur.ID != usr.ID {
			t.Errorf("Current() = %v, %v; want %v", cur.ID, ok, usr.ID)
		}
	})

	t.Run("failed authenticate leaves the session untouched", func(t *testing.T) {
		store, repo := setupStore(t)
		usr := testutil.CreateUser(t, repo, "Jo", "jo@test.cd", "123456", user.RoleUser)
		if _, err := store.Authenticate(ctx, "jo@test.cd", "123456"); err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}

		if _, err := store.Authenticate(ctx, "", ""); err == nil {
			t.Fatal("Authenticate() with empty fields succeeded")
		}
		cur, ok := store.Current()
		if !ok || cur.ID != usr.ID {
			t.Error("failed sign-in replaced the current identity")
		}
	})

	t.Run("end session returns to anonymous", func(t *testing.T) {
		store, _ := setupStore(t)
		if _, err := store.Register(ctx, "Jo", "jo@test.cd", "123456"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		store.EndSession()
		if _, ok := store.Current(); ok {
			t.Error("session survives EndSession")
		}
		store.EndSession() // idempotent
	})
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	var notifications []*user.User
	unsubscribe := store.Subscribe(func(usr *user.User) {
		notifications = append(notifications, usr)
	})

	usr, err := store.Register(ctx, "Jo", "jo@test.cd", "123456")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	store.EndSession()

	if len(notifications) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifications))
	}
	if notifications[0] == nil || notifications[0].ID != usr.ID {
		t.Errorf("first notification = %v, want the new identity", notifications[0])
	}
	if notifications[1] != nil {
		t.Errorf("second notification = %v, want nil on session end", notifications[1])
	}

	unsubscribe()
	if _, err := store.Authenticate(ctx, "jo@test.cd", "123456"); err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if len(notifications) != 2 {
		t.Error("unsubscribed callback still notified")
	}
}

func TestStore_Patch(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous patch is a no-op", func(t *testing.T) {
		store, _ := setupStore(t)

		got, err := store.Patch(user.PatchUser{Name: "X"})
		if err != nil {
			t.Fatalf("Patch() error = %v", err)
		}
		if got != nil {
			t.Errorf("Patch() = %v, want nil for anonymous", got)
		}
	})

	t.Run("patch merges into the current identity", func(t *testing.T) {
		store, repo := setupStore(t)
		if _, err := store.Register(ctx, "Jo", "jo@test.cd", "123456"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		avatar := "https://example.com/a.png"
		got, err := store.Patch(user.PatchUser{Avatar: &avatar})
		if err != nil {
			t.Fatalf("Patch() error = %v", err)
		}
		if got.Avatar != avatar {
			t.Errorf("Avatar = %q, want %q", got.Avatar, avatar)
		}
		if got.Name != "Jo" {
			t.Errorf("Name = %q, want untouched %q", got.Name, "Jo")
		}

		cur, _ := store.Current()
		if cur.Avatar != avatar {
			t.Error("store identity not refreshed after patch")
		}
		stored, err := repo.GetUserByEmail("jo@test.cd")
		if err != nil {
			t.Fatalf("GetUserByEmail(): %v", err)
		}
		if stored.Avatar != avatar {
			t.Error("patch not persisted")
		}
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		store, repo := setupStore(t)
		if _, err := store.Register(ctx, "Jo", "jo@test.cd", "123456"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		if _, err := store.Patch(user.PatchUser{Email: "not-an-email"}); err == nil {
			t.Fatal("Patch() with a malformed email succeeded")
		}

		cur, _ := store.Current()
		if cur.Email != "jo@test.cd" {
			t.Errorf("Email = %q after rejected patch, want %q", cur.Email, "jo@test.cd")
		}
		if _, err := repo.GetUserByEmail("jo@test.cd"); err != nil {
			t.Error("rejected patch reached the repository")
		}
	})
}
