package inmemdb

import (
	"github.com/kanisa-app/kanisa/core/leaderboard"
)

type leaderboardRepository struct {
	db *DB
}

func NewLeaderboardRepository(db *DB) leaderboard.Repository {
	return &leaderboardRepository{db: db}
}

func (repo *leaderboardRepository) QueryAllEntries() ([]leaderboard.Entry, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	entries := make([]leaderboard.Entry, len(repo.db.entries))
	copy(entries, repo.db.entries)
	return entries, nil
}
