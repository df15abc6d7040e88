package inmemdb

import (
	"github.com/kanisa-app/kanisa/core/activity"
)

type activityRepository struct {
	db *DB
}

func NewActivityRepository(db *DB) activity.Repository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) QueryRecentActivities() ([]activity.Activity, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	activities := make([]activity.Activity, len(repo.db.activities))
	copy(activities, repo.db.activities)
	return activities, nil
}
