package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/kanisa-app/kanisa/core"
	"github.com/kanisa-app/kanisa/core/user"
)

// NewConfig returns a self-contained test configuration: no env lookups,
// no simulated auth latency, known secret.
func NewConfig() *core.Config {
	return &core.Config{
		Debug:           false,
		TestMode:        true,
		Env:             "TEST",
		Build:           "test",
		AppName:         "Kanisa",
		SecretKey:       "secret",
		FrontendBaseURL: "http://localhost:3000",
		DefaultFromName: "Kanisa",
		DefaultFromAddr: "noreply@localhost",
		Server: core.ServerConfig{
			Host:                      "localhost",
			Addr:                      ":0",
			ShutdownTimeout:           5 * time.Second,
			JWTExpirationDelta:        10 * time.Minute,
			JWTRefreshExpirationDelta: 4 * time.Hour,
		},
		Auth: core.AuthConfig{
			SimulatedLatency: 0,
			MinPasswordLen:   6,
		},
	}
}

// CreateUser persists a user directly through the repository, bypassing
// service-level side effects like welcome emails.
func CreateUser(t *testing.T, repo user.Repository, name, email, pwd string, role user.Role) user.User {
	t.Helper()
	now := time.Now().UTC()
	usr := user.User{
		Name:               name,
		Email:              email,
		Role:               role,
		EnrolledCourseIDs:  []string{},
		CompletedCourseIDs: []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser(): %v", err)
		}
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser(): %v", err)
	}
	return usr
}

// JSONDiff renders a unified diff of two JSON documents, indented for
// readability. Empty when the documents are byte-for-byte equal after
// normalization.
func JSONDiff(t *testing.T, got, want []byte) string {
	t.Helper()
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(normalizeJSON(t, want)),
		B:        difflib.SplitLines(normalizeJSON(t, got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("JSONDiff(): %v", err)
	}
	return diff
}

func normalizeJSON(t *testing.T, b []byte) string {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("normalizeJSON(): %v", err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("normalizeJSON(): %v", err)
	}
	return string(out) + "\n"
}
