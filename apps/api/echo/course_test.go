package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func Test_courseApi_query(t *testing.T) {
	listIDs := func(t *testing.T, token string) []string {
		t.Helper()
		req, rec := newAuthRequest(http.MethodGet, "/v1/courses", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var res []CourseResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		ids := make([]string, len(res))
		for i, c := range res {
			ids[i] = c.ID
		}
		return ids
	}

	t.Run("anonymous sees open catalog only", func(t *testing.T) {
		got := listIDs(t, "")
		want := []string{"1", "2", "5"}
		if len(got) != len(want) {
			t.Fatalf("ids = %v; want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("ids = %v; want %v", got, want)
			}
		}
	})

	t.Run("member sees no volunteer courses", func(t *testing.T) {
		john := getSeedUser(t, "john@church.org")
		got := listIDs(t, getToken(t, john))
		for _, id := range got {
			if id == "3" || id == "4" {
				t.Fatalf("ids = %v; volunteer-only course leaked", got)
			}
		}
	})

	t.Run("volunteer sees the full catalog", func(t *testing.T) {
		sarah := getSeedUser(t, "sarah@church.org")
		got := listIDs(t, getToken(t, sarah))
		if len(got) != 5 {
			t.Fatalf("ids = %v; want all 5 courses", got)
		}
	})
}

func Test_courseApi_retrieve(t *testing.T) {
	t.Run("derives progress and quiz lock", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/courses/1")
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var res CourseResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if res.Progress != 25 { // 2 of 8 lessons
			t.Errorf("progress = %d; want 25", res.Progress)
		}
		if res.QuizUnlocked {
			t.Error("quiz unlocked with incomplete lessons")
		}
	})

	t.Run("volunteer course hidden from anonymous", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "course not found"}),
		}
		req, rec := newRequest(http.MethodGet, "/v1/courses/3")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("volunteer course unlocked when all lessons done", func(t *testing.T) {
		sarah := getSeedUser(t, "sarah@church.org")
		req, rec := newAuthRequest(http.MethodGet, "/v1/courses/3", getToken(t, sarah))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var res CourseResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if res.Progress != 100 {
			t.Errorf("progress = %d; want 100", res.Progress)
		}
		if !res.QuizUnlocked {
			t.Error("quiz locked after all lessons completed")
		}
	})

	t.Run("answer key never leaves the server", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/courses/1")
		app.ServeHTTP(rec, req)

		var raw map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		quizRaw, _ := json.Marshal(raw["quiz"])
		if string(quizRaw) == "" {
			t.Fatal("quiz missing from response")
		}
		if bytes.Contains(quizRaw, []byte("CorrectOption")) || bytes.Contains(quizRaw, []byte("correct_option")) {
			t.Error("correct options serialized in quiz payload")
		}
	})
}

func Test_courseApi_retrieveLesson(t *testing.T) {
	tests := []httpTest{
		{
			name:     "found",
			method:   http.MethodGet,
			path:     "/v1/courses/1/lessons/l2",
			wantCode: http.StatusOK,
			wantData: []byte(`{"id": "l2", "title": "The Trinity Explained", "duration": "30:00", "video_url": "#", "completed": true, "order": 2}`),
		},
		{
			name:     "unknown lesson",
			method:   http.MethodGet,
			path:     "/v1/courses/1/lessons/nope",
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "lesson not found"}`),
		},
		{
			name:     "lesson of a hidden course is hidden too",
			method:   http.MethodGet,
			path:     "/v1/courses/3/lessons/l15",
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "course not found"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_courseApi_enroll(t *testing.T) {
	john := getSeedUser(t, "john@church.org")
	token := getToken(t, john)

	t.Run("requires auth", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		}
		req, rec := newRequest(http.MethodPost, "/v1/courses/5/enroll")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("enrolls once", func(t *testing.T) {
		for i := 0; i < 2; i++ { // idempotent
			req, rec := newAuthRequest(http.MethodPost, "/v1/courses/5/enroll", token)
			app.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
			}
		}

		usr, err := usrRepo.GetUserByID(john.ID)
		if err != nil {
			t.Fatalf("GetUserByID(): %v", err)
		}
		var count int
		for _, id := range usr.EnrolledCourseIDs {
			if id == "5" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("enrolled %d times; want 1", count)
		}
	})

	t.Run("cannot enroll in a hidden course", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "course not found"}),
		}
		req, rec := newAuthRequest(http.MethodPost, "/v1/courses/3/enroll", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
