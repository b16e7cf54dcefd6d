package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/auth"
	"github.com/pcote/learningmachine/internal/config"
	"github.com/pcote/learningmachine/internal/handlers"
	"github.com/pcote/learningmachine/internal/login"
	"github.com/pcote/learningmachine/internal/router"
	"github.com/pcote/learningmachine/internal/store/storetest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router   *gin.Engine
	sessions *auth.Sessions
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := storetest.New(t)
	sessions := auth.New(config.SessionConfig{Secret: "test-secret"})
	h := handlers.New(st, sessions, login.New(config.GoogleConfig{}), zerolog.Nop())

	return &testServer{
		router:   router.New(h, sessions, nil),
		sessions: sessions,
	}
}

func (ts *testServer) sessionCookie(t *testing.T, email, displayName string) *http.Cookie {
	t.Helper()

	token, err := ts.sessions.Generate(email, displayName)
	require.NoError(t, err)

	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func (ts *testServer) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	return w
}

func jsonInt(n int) string {
	return strconv.Itoa(n)
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	return payload
}

func TestWelcomeRedirect(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/static/welcome.html", w.Header().Get("Location"))
}

func TestUserInfoWithSession(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.sessionCookie(t, "a@x.com", "User A")

	w := ts.do(t, http.MethodGet, "/userinfo", "", cookie)

	require.Equal(t, http.StatusOK, w.Code)
	payload := decodeJSON(t, w)
	assert.Equal(t, "a@x.com", payload["email"])
	assert.Equal(t, "User A", payload["displayName"])
}

func TestUserInfoWithoutSession(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/userinfo", "", nil)

	// Missing identity is not a fault here, just a sentinel payload.
	require.Equal(t, http.StatusOK, w.Code)
	payload := decodeJSON(t, w)
	assert.Equal(t, "error", payload["email"])
	assert.Equal(t, "Could not get info for this user", payload["displayName"])
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/exercises", "/exercisehistory", "/resources"} {
		w := ts.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := ts.do(t, http.MethodPost, "/addexercise", `{"new_question": "q", "new_answer": "a"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddExerciseValidation(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.sessionCookie(t, "a@x.com", "User A")

	tests := []struct {
		name string
		body string
	}{
		{"missing answer", `{"new_question": "2+2?"}`},
		{"null question", `{"new_question": null, "new_answer": "4"}`},
		{"not an object", `["2+2?", "4"]`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/addexercise", tt.body, cookie)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, w.Body.String())
		})
	}
}

func TestExerciseLifecycle(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.sessionCookie(t, "a@x.com", "User A")

	w := ts.do(t, http.MethodPost, "/addexercise", `{"new_question": "2+2?", "new_answer": "4"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decodeJSON(t, w)["result"])

	w = ts.do(t, http.MethodGet, "/exercises", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	exercises := decodeJSON(t, w)["exercises"].([]interface{})
	require.Len(t, exercises, 1)

	exercise := exercises[0].(map[string]interface{})
	assert.Equal(t, "2+2?", exercise["question"])
	assert.Equal(t, "4", exercise["answer"])

	exerciseID := int(exercise["id"].(float64))

	w = ts.do(t, http.MethodPost, "/addscore",
		`{"exercise_id": `+jsonInt(exerciseID)+`, "score": 5}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decodeJSON(t, w)["result"])

	w = ts.do(t, http.MethodGet, "/exercisehistory", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	history := decodeJSON(t, w)["history"].([]interface{})
	require.Len(t, history, 1)

	entry := history[0].(map[string]interface{})
	attempts := entry["attempts"].([]interface{})
	require.Len(t, attempts, 1)

	attempt := attempts[0].(map[string]interface{})
	assert.Equal(t, float64(5), attempt["score"])
	assert.NotEmpty(t, attempt["when_attempted"])

	w = ts.do(t, http.MethodPost, "/deleteexercise", `{"exercise_id": `+jsonInt(exerciseID)+`}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeJSON(t, w)["result"], "deleted exercise")

	w = ts.do(t, http.MethodGet, "/exercises", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON(t, w)["exercises"])
}

func TestDeleteExerciseNotOwnerReported(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.sessionCookie(t, "a@x.com", "User A")
	intruder := ts.sessionCookie(t, "b@x.com", "User B")

	w := ts.do(t, http.MethodPost, "/addexercise", `{"new_question": "2+2?", "new_answer": "4"}`, owner)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/exercises", "", owner)
	exercises := decodeJSON(t, w)["exercises"].([]interface{})
	exerciseID := int(exercises[0].(map[string]interface{})["id"].(float64))

	w = ts.do(t, http.MethodPost, "/deleteexercise", `{"exercise_id": `+jsonInt(exerciseID)+`}`, intruder)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeJSON(t, w)["result"], "not the owner")

	// The exercise is still there for its owner.
	w = ts.do(t, http.MethodGet, "/exercises", "", owner)
	assert.Len(t, decodeJSON(t, w)["exercises"], 1)
}

func TestResourceRoutes(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.sessionCookie(t, "a@x.com", "User A")

	w := ts.do(t, http.MethodPost, "/addexercise", `{"new_question": "2+2?", "new_answer": "4"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/exercises", "", cookie)
	exercises := decodeJSON(t, w)["exercises"].([]interface{})
	exerciseID := int(exercises[0].(map[string]interface{})["id"].(float64))

	w = ts.do(t, http.MethodPost, "/addresource",
		`{"caption": "arithmetic", "url": "http://example.com/math", "exercise_id": `+jsonInt(exerciseID)+`}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decodeJSON(t, w)["result"])

	w = ts.do(t, http.MethodPost, "/addresource", `{"caption": "unlinked", "url": "http://example.com/read"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/resources", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON(t, w)["resources"], 2)

	w = ts.do(t, http.MethodGet, "/resources/exercise/"+jsonInt(exerciseID), "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	linked := decodeJSON(t, w)["resources"].([]interface{})
	require.Len(t, linked, 1)

	resource := linked[0].(map[string]interface{})
	assert.Equal(t, "arithmetic", resource["caption"])
	assert.Equal(t, "http://example.com/math", resource["url"])
	assert.Equal(t, "a@x.com", resource["user_id"])

	resourceID := int(resource["id"].(float64))

	w = ts.do(t, http.MethodPost, "/deleteresource", `{"resource_id": `+jsonInt(resourceID)+`}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeJSON(t, w)["result"], "deleted resource")

	w = ts.do(t, http.MethodGet, "/resources/exercise/"+jsonInt(exerciseID), "", cookie)
	assert.Empty(t, decodeJSON(t, w)["resources"])
}

func TestResourcesForExerciseBadID(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.sessionCookie(t, "a@x.com", "User A")

	w := ts.do(t, http.MethodGet, "/resources/exercise/notanumber", "", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
