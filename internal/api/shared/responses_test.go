package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, req, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	traceID := GetTraceID(req.Context())
	require.NotEmpty(t, traceID)

	rr := httptest.NewRecorder()
	RespondWithError(rr, req, http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	// The body carries exactly the message and the trace ID, nothing else.
	assert.JSONEq(t,
		`{"error":"Invalid request","trace_id":"`+traceID+`"}`,
		rr.Body.String())
}

func TestRespondWithErrorAndLogHidesInternalError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	internal := errors.New("pq: duplicate key value violates unique constraint")
	RespondWithErrorAndLog(rr, req, http.StatusInternalServerError, "Something went wrong", internal)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Something went wrong")
	assert.NotContains(t, rr.Body.String(), "duplicate key")
}

func TestTraceIDsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ctx := SetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
		id := GetTraceID(ctx)
		require.Len(t, id, TraceIDLength*2)
		require.False(t, seen[id], "duplicate trace ID generated")
		seen[id] = true
	}
}
