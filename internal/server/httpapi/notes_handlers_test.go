package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvydev/notekeeper/internal/server/models"
)

func notesEnv(t *testing.T) (*testEnv, *http.Cookie) {
	t.Helper()
	env := newTestEnv(t)

	tok, err := env.tokens.Issue(1, "alice")
	require.NoError(t, err)

	return env, &http.Cookie{Name: AccessTokenCookie, Value: tok}
}

func doRequest(env *testEnv, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestListNotes_EmptyTable(t *testing.T) {
	env, session := notesEnv(t)

	w := doRequest(env, http.MethodGet, "/api/notes/get", "", session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetNote_ByID(t *testing.T) {
	env, session := notesEnv(t)
	env.notes.notes = append(env.notes.notes, &models.Note{ID: 5, Name: "taxes", Description: "file them", Urgency: "high", UserID: 1})
	env.notes.nextID = 5

	w := doRequest(env, http.MethodGet, "/api/notes/get/5", "", session)
	require.Equal(t, http.StatusOK, w.Code)

	var note noteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
	assert.Equal(t, "taxes", note.Name)
}

func TestGetNote_Unknown(t *testing.T) {
	env, session := notesEnv(t)

	w := doRequest(env, http.MethodGet, "/api/notes/get/99", "", session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetNote_InvalidID(t *testing.T) {
	env, session := notesEnv(t)

	w := doRequest(env, http.MethodGet, "/api/notes/get/abc", "", session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateNote(t *testing.T) {
	env, session := notesEnv(t)
	env.notes.notes = append(env.notes.notes, &models.Note{ID: 5, Name: "old", Description: "old", UserID: 1})

	w := doRequest(env, http.MethodPut, "/api/notes/update/5", `{"name":"new","description":"fresh"}`, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", env.notes.notes[0].Name)

	w = doRequest(env, http.MethodPut, "/api/notes/update/99", `{"name":"new","description":"fresh"}`, session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateNote_MissingFields(t *testing.T) {
	env, session := notesEnv(t)
	env.notes.notes = append(env.notes.notes, &models.Note{ID: 5, Name: "old", Description: "old", UserID: 1})

	w := doRequest(env, http.MethodPut, "/api/notes/update/5", `{"name":"new"}`, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteNote(t *testing.T) {
	env, session := notesEnv(t)
	env.notes.notes = append(env.notes.notes, &models.Note{ID: 5, Name: "n", Description: "d", UserID: 1})

	w := doRequest(env, http.MethodDelete, "/api/notes/delete/5", "", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.notes.notes)

	w = doRequest(env, http.MethodDelete, "/api/notes/delete/5", "", session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotesRoutes_RequireSession(t *testing.T) {
	env, _ := notesEnv(t)

	w := doRequest(env, http.MethodGet, "/api/notes/get", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(env, http.MethodPost, "/api/notes/create", `{"name":"n","description":"d","urgency":"low"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
