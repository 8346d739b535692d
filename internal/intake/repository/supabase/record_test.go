package supabase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"university-assistant/internal/intake"
	"university-assistant/internal/intake/repository"
	"university-assistant/internal/intake/repository/supabase"
	pkgLog "university-assistant/pkg/log"
	pkgSupabase "university-assistant/pkg/supabase"
)

func sampleRecord() intake.Record {
	return intake.Record{
		StudentName:  "Asha Rao",
		AcademicYear: intake.Year2nd,
		StudentQuery: "I need help with my exam schedule",
		RoutedUnit:   intake.UnitAcademicSupport,
		Timestamp:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSupabaseRepository_Insert(t *testing.T) {
	t.Run("posts row to collection", func(t *testing.T) {
		var gotPath string
		var gotRows []map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotRows)
			w.WriteHeader(http.StatusCreated)
		}))
		defer ts.Close()

		repo := supabase.New(pkgSupabase.NewClient(ts.URL, "key"), pkgLog.NewNop())
		err := repo.Insert(context.Background(), repository.InsertRecordOptions{Record: sampleRecord()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/rest/v1/student_queries" {
			t.Errorf("expected default collection path, got %s", gotPath)
		}
		if len(gotRows) != 1 {
			t.Fatalf("expected one row, got %d", len(gotRows))
		}
		row := gotRows[0]
		if row["student_name"] != "Asha Rao" || row["routed_unit"] != "academic_support" {
			t.Errorf("unexpected row: %+v", row)
		}
		if row["tone"] != nil {
			t.Errorf("expected null tone, got %v", row["tone"])
		}
		if row["timestamp"] != "2026-03-01T10:00:00Z" {
			t.Errorf("unexpected timestamp: %v", row["timestamp"])
		}
	})

	t.Run("custom collection", func(t *testing.T) {
		var gotPath string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusCreated)
		}))
		defer ts.Close()

		repo := supabase.New(pkgSupabase.NewClient(ts.URL, "key"), pkgLog.NewNop())
		err := repo.Insert(context.Background(), repository.InsertRecordOptions{Collection: "intake_log", Record: sampleRecord()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/rest/v1/intake_log" {
			t.Errorf("unexpected path: %s", gotPath)
		}
	})

	t.Run("server error wraps ErrFailedToInsert", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		repo := supabase.New(pkgSupabase.NewClient(ts.URL, "key"), pkgLog.NewNop())
		err := repo.Insert(context.Background(), repository.InsertRecordOptions{Record: sampleRecord()})
		if !errors.Is(err, repository.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})
}
