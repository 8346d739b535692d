package sheets

import (
	"context"
	"fmt"

	"university-assistant/internal/intake/repository"
)

// Insert appends the record as one row on the collection's sheet tab.
func (r *implRepository) Insert(ctx context.Context, opt repository.InsertRecordOptions) error {
	if r.spreadsheetID == "" {
		return repository.ErrSinkNotConfigured
	}

	sheetRange := fmt.Sprintf("%s!A1", opt.CollectionOrDefault())
	if _, err := r.client.AppendRow(ctx, r.spreadsheetID, sheetRange, repository.RecordToRow(opt.Record)); err != nil {
		r.l.Errorf(ctx, "internal.intake.repository.sheets.Insert: range=%s: %v", sheetRange, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return nil
}
