package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"university-assistant/internal/intake"
	"university-assistant/internal/middleware"
	"university-assistant/pkg/log"
	"university-assistant/pkg/response"
)

type mockUseCase struct {
	handleIn  intake.HandleInput
	handleOut intake.HandleOutput
	handleErr error
	detailOut intake.DetailOutput
	detailErr error
}

func (m *mockUseCase) Handle(ctx context.Context, input intake.HandleInput) (intake.HandleOutput, error) {
	m.handleIn = input
	return m.handleOut, m.handleErr
}

func (m *mockUseCase) Detail(ctx context.Context, sessionID string) (intake.DetailOutput, error) {
	if sessionID == "" {
		return intake.DetailOutput{}, intake.ErrEmptySessionID
	}
	return m.detailOut, m.detailErr
}

func newTestRouter(uc intake.UseCase, mwCfg middleware.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), mwCfg)
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func postChat(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) (response.Resp, map[string]any) {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]any)
	return resp, data
}

func TestChat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{handleOut: intake.HandleOutput{Reply: "hello there", SessionID: "sid-1"}}
		r := newTestRouter(uc, middleware.Config{})

		w := postChat(r, `{"message":"hi"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, data := decode(t, w)
		assert.Equal(t, 0, resp.ErrorCode)
		assert.Equal(t, "hello there", data["response"])
		assert.Equal(t, "sid-1", data["session_id"])
		assert.Equal(t, intake.HandleInput{Message: "hi"}, uc.handleIn)
	})

	t.Run("session id forwarded", func(t *testing.T) {
		uc := &mockUseCase{handleOut: intake.HandleOutput{Reply: "ok", SessionID: "abc"}}
		r := newTestRouter(uc, middleware.Config{})

		postChat(r, `{"session_id":"abc","message":"My name is Asha"}`)
		assert.Equal(t, "abc", uc.handleIn.SessionID)
		assert.Equal(t, "My name is Asha", uc.handleIn.Message)
	})

	t.Run("bad json", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, middleware.Config{})
		w := postChat(r, `{bad`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("use case failure", func(t *testing.T) {
		uc := &mockUseCase{handleErr: errors.New("store down")}
		r := newTestRouter(uc, middleware.Config{})
		w := postChat(r, `{"message":"hi"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("rate limited", func(t *testing.T) {
		uc := &mockUseCase{handleOut: intake.HandleOutput{Reply: "ok", SessionID: "s"}}
		r := newTestRouter(uc, middleware.Config{RateLimitPerMin: 6})
		assert.Equal(t, http.StatusOK, postChat(r, `{"message":"hi"}`).Code)
		assert.Equal(t, http.StatusTooManyRequests, postChat(r, `{"message":"hi"}`).Code)
	})
}

func TestDetail(t *testing.T) {
	get := func(r *gin.Engine, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("found", func(t *testing.T) {
		uc := &mockUseCase{detailOut: intake.DetailOutput{State: intake.State{
			SessionID:    "sid-1",
			StudentName:  "Asha Rao",
			AcademicYear: intake.Year2nd,
			RoutedUnit:   intake.UnitAdmissionScholarship,
			Submitted:    true,
			CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		}}}
		r := newTestRouter(uc, middleware.Config{})

		w := get(r, "/api/v1/sessions/sid-1")
		assert.Equal(t, http.StatusOK, w.Code)
		_, data := decode(t, w)
		assert.Equal(t, "Asha Rao", data["student_name"])
		assert.Equal(t, "2nd_year", data["academic_year"])
		assert.Equal(t, "Admission/Scholarship Unit", data["routed_unit_name"])
		assert.Equal(t, true, data["submitted"])
		assert.Equal(t, "2026-03-01T10:00:00Z", data["created_at"])
	})

	t.Run("not found", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{detailErr: intake.ErrSessionNotFound}, middleware.Config{})
		w := get(r, "/api/v1/sessions/missing")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMapError(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{})
	tests := []struct {
		err    error
		status int
	}{
		{intake.ErrSessionNotFound, http.StatusNotFound},
		{intake.ErrEmptySessionID, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.Error(c, h.mapError(tt.err), nil)
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
	}
}
