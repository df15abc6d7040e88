package sqlxrepos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core/leaderboard"
)

type entryRow struct {
	ID       int    `db:"id"`
	UserID   string `db:"user_id"`
	UserName string `db:"user_name"`
	Score    int    `db:"score"`
	QuizID   string `db:"quiz_id"`
	Rank     int    `db:"rank"`
}

type leaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) leaderboard.Repository {
	return &leaderboardRepository{db: db}
}

func (repo *leaderboardRepository) QueryAllEntries() ([]leaderboard.Entry, error) {
	var rows []entryRow
	err := repo.db.Select(&rows, `SELECT * FROM leaderboard_entry ORDER BY score DESC, id`)
	if err != nil {
		return nil, errors.Wrap(err, "querying leaderboard entries")
	}

	entries := make([]leaderboard.Entry, len(rows))
	for i, r := range rows {
		entries[i] = leaderboard.Entry{
			UserID:   r.UserID,
			UserName: r.UserName,
			Score:    r.Score,
			QuizID:   r.QuizID,
			Rank:     r.Rank,
		}
	}
	return entries, nil
}
