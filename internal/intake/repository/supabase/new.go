package supabase

import (
	"university-assistant/internal/intake/repository"
	pkgLog "university-assistant/pkg/log"
	pkgSupabase "university-assistant/pkg/supabase"
)

type implRepository struct {
	client *pkgSupabase.Client
	l      pkgLog.Logger
}

// New creates a RecordRepository that writes rows through the Supabase REST API.
func New(client *pkgSupabase.Client, l pkgLog.Logger) repository.RecordRepository {
	if client == nil {
		panic("intake/repository/supabase: client is required")
	}
	return &implRepository{client: client, l: l}
}
