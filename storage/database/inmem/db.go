package inmemdb

import (
	"sync"

	"github.com/kanisa-app/kanisa/core/activity"
	"github.com/kanisa-app/kanisa/core/course"
	"github.com/kanisa-app/kanisa/core/leaderboard"
	"github.com/kanisa-app/kanisa/core/user"
)

// DB is the seeded in-memory data provider. It stands in for a real
// storage layer during development and demos; repositories built on it
// satisfy the same interfaces as the Postgres ones.
type DB struct {
	mu sync.RWMutex

	users       map[string]*user.User
	courses     map[string]*course.Course
	courseOrder []string
	entries     []leaderboard.Entry
	activities  []activity.Activity
}

// Open returns a DB pre-populated with the seed dataset.
func Open() (*DB, error) {
	db := &DB{
		users:   make(map[string]*user.User),
		courses: make(map[string]*course.Course),
	}
	db.seed()
	return db, nil
}

// OpenEmpty returns a DB without seed data; used by tests.
func OpenEmpty() (*DB, error) {
	return &DB{
		users:   make(map[string]*user.User),
		courses: make(map[string]*course.Course),
	}, nil
}
