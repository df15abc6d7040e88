package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"
)

func Test_leaderboardApi_query(t *testing.T) {
	get := func(t *testing.T, path, token string) LeaderboardResponse {
		t.Helper()
		req, rec := newAuthRequest(http.MethodGet, path, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var res LeaderboardResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		return res
	}

	t.Run("ranks descending with recomputed ranks", func(t *testing.T) {
		res := get(t, "/v1/leaderboard", "")
		if len(res.Entries) != 11 {
			t.Fatalf("len(entries) = %d; want 11", len(res.Entries))
		}
		for i, e := range res.Entries {
			if e.DisplayRank != i+1 {
				t.Errorf("entries[%d].DisplayRank = %d; want %d", i, e.DisplayRank, i+1)
			}
			if i > 0 && res.Entries[i-1].Score < e.Score {
				t.Errorf("entries out of order at %d: %d < %d", i, res.Entries[i-1].Score, e.Score)
			}
		}
		if res.Entries[0].UserID != "10" { // David Kim, 100
			t.Errorf("top entry = %q; want user 10", res.Entries[0].UserID)
		}
	})

	t.Run("filters by quiz", func(t *testing.T) {
		res := get(t, "/v1/leaderboard?quiz_id=q2", "")
		if len(res.Entries) != 5 {
			t.Fatalf("len(entries) = %d; want 5", len(res.Entries))
		}
		for _, e := range res.Entries {
			if e.QuizID != "q2" {
				t.Errorf("entry %q from quiz %q leaked in", e.UserID, e.QuizID)
			}
		}
		if res.Entries[0].UserName != "Sarah Lee" {
			t.Errorf("top entry = %q; want Sarah Lee", res.Entries[0].UserName)
		}
	})

	t.Run("includes the caller's standing", func(t *testing.T) {
		john := getSeedUser(t, "john@church.org")
		res := get(t, "/v1/leaderboard?quiz_id=q1", getToken(t, john))
		if res.Standing == nil {
			t.Fatal("standing missing for a ranked caller")
		}
		if res.Standing.DisplayRank != 6 || res.Standing.Score != 75 {
			t.Errorf("standing = %+v; want rank 6, score 75", res.Standing)
		}
	})

	t.Run("no standing for unranked callers", func(t *testing.T) {
		michael := getSeedUser(t, "michael@church.org")
		res := get(t, "/v1/leaderboard", getToken(t, michael))
		if res.Standing != nil {
			t.Errorf("standing = %+v; want none", res.Standing)
		}
	})
}
