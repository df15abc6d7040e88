package leaderboard

import "sort"

type (
	// Entry is one recorded quiz score. The stored Rank is advisory seed
	// data; displayed ranks are always recomputed (see Rank).
	Entry struct {
		UserID   string `json:"user_id"`
		UserName string `json:"user_name"`
		Score    int    `json:"score"`
		QuizID   string `json:"quiz_id"`
		Rank     int    `json:"rank"`
	}

	RankedEntry struct {
		Entry
		DisplayRank int `json:"display_rank"`
	}

	Repository interface {
		QueryAllEntries() ([]Entry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Rank orders entries by score descending and assigns 1-based display
// ranks. A non-empty quizID restricts the board to that quiz. The sort is
// stable: equal scores keep their relative input order, no secondary key.
func Rank(entries []Entry, quizID string) []RankedEntry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if quizID == "" || e.QuizID == quizID {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Score > filtered[j].Score })

	ranked := make([]RankedEntry, len(filtered))
	for i, e := range filtered {
		ranked[i] = RankedEntry{Entry: e, DisplayRank: i + 1}
	}
	return ranked
}

// Standing re-scans a ranked board for userID's row; callers never trust
// the stored Rank field.
func Standing(ranked []RankedEntry, userID string) (RankedEntry, bool) {
	for _, e := range ranked {
		if e.UserID == userID {
			return e, true
		}
	}
	return RankedEntry{}, false
}

func (svc *Service) Rank(quizID string) ([]RankedEntry, error) {
	entries, err := svc.repo.QueryAllEntries()
	if err != nil {
		return nil, err
	}
	return Rank(entries, quizID), nil
}
