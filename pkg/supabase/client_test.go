package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"university-assistant/pkg/supabase"
)

func TestClient_Insert(t *testing.T) {
	var gotRow map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/rest/v1/student_queries", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("apikey") != "test-key" || r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&gotRow)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/rest/v1/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})
	mux.HandleFunc("/rest/v1/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := supabase.NewClient(ts.URL+"/", "test-key")
	ctx := context.Background()

	t.Run("Insert", func(t *testing.T) {
		err := client.Insert(ctx, "student_queries", map[string]interface{}{"student_name": "Asha Rao"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotRow["student_name"] != "Asha Rao" {
			t.Errorf("unexpected row: %+v", gotRow)
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		if err := client.Insert(ctx, "broken", map[string]interface{}{}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		c := supabase.NewClient(ts.URL, "test-key")
		c.SetTimeout(50 * time.Millisecond)
		if err := c.Insert(ctx, "slow", map[string]interface{}{}); err == nil {
			t.Fatalf("expected timeout error")
		}
	})
}
