package main

import (
	"context"
	"fmt"
	"io"

	"university-assistant/config"
	"university-assistant/internal/intake/repository"
	noopRepo "university-assistant/internal/intake/repository/noop"
	sheetsRepo "university-assistant/internal/intake/repository/sheets"
	sqliteRepo "university-assistant/internal/intake/repository/sqlite"
	supabaseRepo "university-assistant/internal/intake/repository/supabase"
	"university-assistant/pkg/gsheets"
	"university-assistant/pkg/log"
	pkgSupabase "university-assistant/pkg/supabase"
)

// newRecordRepository picks the storage sink named by storage.driver.
// The returned closer releases driver resources and is never nil.
func newRecordRepository(ctx context.Context, cfg config.StorageConfig, l log.Logger) (repository.RecordRepository, string, io.Closer, error) {
	driver := cfg.Driver
	if driver == config.StorageDriverAuto {
		driver = config.StorageDriverNone
		if cfg.Supabase.URL != "" && cfg.Supabase.Key != "" {
			driver = config.StorageDriverSupabase
		}
	}

	switch driver {
	case config.StorageDriverSupabase:
		if cfg.Supabase.URL == "" || cfg.Supabase.Key == "" {
			return nil, "", nil, fmt.Errorf("storage.supabase.url and storage.supabase.key are required")
		}
		client := pkgSupabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key)
		return supabaseRepo.New(client, l), driver, nopCloser{}, nil

	case config.StorageDriverSQLite:
		db, err := sqliteRepo.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, "", nil, fmt.Errorf("open sqlite %q: %w", cfg.SQLite.Path, err)
		}
		return sqliteRepo.New(db, l), driver, db, nil

	case config.StorageDriverSheets:
		client, err := gsheets.NewClientFromCredentialsFile(ctx, cfg.Sheets.CredentialsPath)
		if err != nil {
			return nil, "", nil, fmt.Errorf("google sheets: %w", err)
		}
		return sheetsRepo.New(client, cfg.Sheets.SpreadsheetID, l), driver, nopCloser{}, nil

	default:
		return noopRepo.New(l), config.StorageDriverNone, nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
