package noop

import (
	"context"

	"university-assistant/internal/intake/repository"
	pkgLog "university-assistant/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger
}

// New creates a RecordRepository used when no storage backend is configured.
// Every insert is logged and skipped.
func New(l pkgLog.Logger) repository.RecordRepository {
	return &implRepository{l: l}
}

func (r *implRepository) Insert(ctx context.Context, opt repository.InsertRecordOptions) error {
	r.l.Warnf(ctx, "internal.intake.repository.noop.Insert: storage not configured, skipping insert for %s", opt.Record.StudentName)
	return nil
}
