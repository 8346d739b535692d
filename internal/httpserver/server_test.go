package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"university-assistant/internal/intake/repository/memory"
	"university-assistant/internal/intake/repository/noop"
	"university-assistant/internal/intake/usecase"
	"university-assistant/internal/middleware"
	"university-assistant/pkg/log"
	"university-assistant/pkg/response"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	uc := usecase.New(l, memory.New(l), noop.New(l), nil, nil, "student_queries")
	srv, err := New(l, Config{
		Logger:        l,
		Port:          8080,
		Mode:          "test",
		Environment:   "production",
		Middleware:    middleware.Config{AllowedOrigins: []string{"http://localhost:5173"}},
		Components:    map[string]string{"storage": "noop"},
		IntakeUseCase: uc,
	})
	require.NoError(t, err)
	return srv
}

type chatData struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

func chat(t *testing.T, h http.Handler, sessionID, message string) chatData {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"session_id": sessionID, "message": message})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		response.Resp
		Data chatData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)

	_, err = New(nil, Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t).Handler()
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader), path)
	}
}

func TestReadyReportsComponents(t *testing.T) {
	h := newTestServer(t).Handler()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Status      string            `json:"status"`
			Service     string            `json:"service"`
			Environment string            `json:"environment"`
			Components  map[string]string `json:"components"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Data.Status)
	assert.Equal(t, ServiceName, resp.Data.Service)
	assert.Equal(t, "production", resp.Data.Environment)
	assert.Equal(t, map[string]string{"storage": "noop"}, resp.Data.Components)
}

func TestConversationOverHTTP(t *testing.T) {
	h := newTestServer(t).Handler()

	first := chat(t, h, "", "hi")
	require.NotEmpty(t, first.SessionID)
	assert.Contains(t, first.Response, "full name")

	sid := first.SessionID
	assert.Contains(t, chat(t, h, sid, "My name is Asha Rao").Response, "education year")
	assert.Contains(t, chat(t, h, sid, "2nd year").Response, "describe your question")

	done := chat(t, h, sid, "My query is I need a scholarship form")
	assert.Equal(t, sid, done.SessionID)
	assert.Contains(t, done.Response, "Admission/Scholarship Unit")

	assert.Equal(t, "Your query is already submitted.", chat(t, h, sid, "thanks!").Response)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sid, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"submitted":true`)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t).Handler()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_Shutdown(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
