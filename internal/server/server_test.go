package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adaptic/internal/engine"
	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	snap, err := hierarchy.Build([]hierarchy.Unit{
		{ID: "c1", Kind: hierarchy.KindCourse, Children: []string{"l1"}},
		{ID: "l1", Kind: hierarchy.KindLesson, Children: []string{"s1", "s2"}},
		{ID: "s1", Kind: hierarchy.KindSection, Objective: "o1"},
		{ID: "s2", Kind: hierarchy.KindSection, Prerequisites: []string{"s1"}},
	})
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := engine.New(store.NewMemStore(), hierarchy.NewHolder(snap), nil, log)
	t.Cleanup(func() { e.Close() })

	h := &Handler{Engine: e, Log: log}
	return h.Router()
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitEventAndReadProgress(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(t, r, "/v1/events", gin.H{
		"eventId":   "ev-1",
		"learnerId": "L1",
		"unitId":    "s1",
		"fraction":  1.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res engine.CommitResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "ev-1", res.EventID)
	assert.NotEmpty(t, res.SessionID)
	assert.Len(t, res.Records, 3) // section, lesson, course

	w = get(r, "/v1/learners/L1/progress/l1")
	require.Equal(t, http.StatusOK, w.Code)
	var rec store.ProgressRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.InDelta(t, 0.5, rec.Fraction, 1e-9)
}

func TestSubmitEventValidation(t *testing.T) {
	r := setupRouter(t)

	// Missing required fields.
	w := postJSON(t, r, "/v1/events", gin.H{"learnerId": "L1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown unit.
	w = postJSON(t, r, "/v1/events", gin.H{
		"eventId":   "ev-1",
		"learnerId": "L1",
		"unitId":    "nope",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Fraction out of range.
	w = postJSON(t, r, "/v1/events", gin.H{
		"eventId":   "ev-2",
		"learnerId": "L1",
		"unitId":    "s1",
		"fraction":  1.5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrerequisiteRejectionStatus(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(t, r, "/v1/events", gin.H{
		"eventId":   "ev-1",
		"learnerId": "L1",
		"unitId":    "s2",
		"fraction":  0.5,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"s1"}, body.Missing)

	// Override flag bypasses enforcement.
	w = postJSON(t, r, "/v1/events", gin.H{
		"eventId":   "ev-2",
		"learnerId": "L1",
		"unitId":    "s2",
		"fraction":  0.5,
		"override":  true,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(t, r, "/v1/learners/L1/sessions", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	var started struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	require.NotEmpty(t, started.SessionID)

	// Idempotent start.
	w = postJSON(t, r, "/v1/learners/L1/sessions", gin.H{})
	var again struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.Equal(t, started.SessionID, again.SessionID)

	w = postJSON(t, r, "/v1/sessions/"+started.SessionID+"/end", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	// Ended session conflicts.
	w = postJSON(t, r, "/v1/sessions/"+started.SessionID+"/end", gin.H{})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMasteryEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/v1/learners/L1/mastery/o1")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(t, r, "/v1/events", gin.H{
		"eventId":     "ev-1",
		"learnerId":   "L1",
		"unitId":      "s1",
		"objectiveId": "o1",
		"score":       0.9,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = get(r, "/v1/learners/L1/mastery/o1")
	require.Equal(t, http.StatusOK, w.Code)
	var d store.MasteryDecisionData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, "in_progress", d.Decision)
	assert.InDelta(t, 0.9, d.MasteryLevel, 1e-9)

	w = get(r, "/v1/learners/L1/mastery/o1/history")
	require.Equal(t, http.StatusOK, w.Code)
	var history []store.MasteryDecisionData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history, 1)
}

func TestResetLearner(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(t, r, "/v1/events", gin.H{
		"eventId":   "ev-1",
		"learnerId": "L1",
		"unitId":    "s1",
		"fraction":  0.4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	req, _ := http.NewRequest(http.MethodDelete, "/v1/learners/L1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/v1/learners/L1/progress")
	require.Equal(t, http.StatusOK, w.Code)
	var recs []store.ProgressRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	assert.Empty(t, recs)
}
