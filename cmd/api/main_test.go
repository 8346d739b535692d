package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"university-assistant/config"
	"university-assistant/pkg/gemini"
	"university-assistant/pkg/log"
)

func TestPollNgrok(t *testing.T) {
	t.Run("prefers https tunnel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tunnels", r.URL.Path)
			w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
		}))
		defer srv.Close()

		got, err := pollNgrok(context.Background(), srv.URL, 1, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "https://a.ngrok.io", got)
	})

	t.Run("retries until a tunnel appears", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.Write([]byte(`{"tunnels":[]}`))
				return
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://b.ngrok.io","proto":"http"}]}`))
		}))
		defer srv.Close()

		got, err := pollNgrok(context.Background(), srv.URL, 5, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "http://b.ngrok.io", got)
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("gives up", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels":[]}`))
		}))
		defer srv.Close()

		_, err := pollNgrok(context.Background(), srv.URL, 2, time.Millisecond)
		assert.ErrorIs(t, err, errNoTunnels)
	})
}

func TestNewRecordRepository(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()

	t.Run("auto without supabase falls back to none", func(t *testing.T) {
		repo, driver, closer, err := newRecordRepository(ctx, config.StorageConfig{Driver: config.StorageDriverAuto}, l)
		require.NoError(t, err)
		assert.NotNil(t, repo)
		assert.Equal(t, config.StorageDriverNone, driver)
		assert.NoError(t, closer.Close())
	})

	t.Run("auto with supabase credentials", func(t *testing.T) {
		cfg := config.StorageConfig{
			Driver:   config.StorageDriverAuto,
			Supabase: config.SupabaseConfig{URL: "https://x.supabase.co", Key: "k"},
		}
		_, driver, _, err := newRecordRepository(ctx, cfg, l)
		require.NoError(t, err)
		assert.Equal(t, config.StorageDriverSupabase, driver)
	})

	t.Run("explicit supabase without credentials", func(t *testing.T) {
		_, _, _, err := newRecordRepository(ctx, config.StorageConfig{Driver: config.StorageDriverSupabase}, l)
		assert.Error(t, err)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.StorageConfig{
			Driver: config.StorageDriverSQLite,
			SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "intake.db")},
		}
		repo, driver, closer, err := newRecordRepository(ctx, cfg, l)
		require.NoError(t, err)
		assert.NotNil(t, repo)
		assert.Equal(t, config.StorageDriverSQLite, driver)
		assert.NoError(t, closer.Close())
	})

	t.Run("sheets with missing credentials", func(t *testing.T) {
		cfg := config.StorageConfig{
			Driver: config.StorageDriverSheets,
			Sheets: config.SheetsConfig{CredentialsPath: filepath.Join(t.TempDir(), "missing.json")},
		}
		_, _, _, err := newRecordRepository(ctx, cfg, l)
		assert.Error(t, err)
	})
}

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	gen, model, err := newGenerator(ctx, config.ClassifierConfig{
		Transport: config.ClassifierTransportREST,
		APIKey:    "k",
		Model:     "models/gemini-custom",
		Timeout:   time.Second,
	})
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, gen)
	assert.Equal(t, "gemini-custom", model)

	gen, model, err = newGenerator(ctx, config.ClassifierConfig{
		Transport: config.ClassifierTransportSDK,
		APIKey:    "k",
	})
	require.NoError(t, err)
	assert.IsType(t, &gemini.SDKClient{}, gen)
	assert.Equal(t, gemini.DefaultModel, model)
}
