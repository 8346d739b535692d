package supabase

import (
	"context"
	"fmt"

	"university-assistant/internal/intake/repository"
)

// Insert writes one completed record into the configured collection.
func (r *implRepository) Insert(ctx context.Context, opt repository.InsertRecordOptions) error {
	collection := opt.CollectionOrDefault()
	row := repository.RecordToMap(opt.Record)

	if err := r.client.Insert(ctx, collection, []map[string]any{row}); err != nil {
		r.l.Errorf(ctx, "internal.intake.repository.supabase.Insert: collection=%s: %v", collection, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	r.l.Infof(ctx, "internal.intake.repository.supabase.Insert: stored record for %s in %s", opt.Record.StudentName, collection)
	return nil
}
