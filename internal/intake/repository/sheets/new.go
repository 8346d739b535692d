package sheets

import (
	"context"

	"university-assistant/internal/intake/repository"
	pkgLog "university-assistant/pkg/log"
)

// RowAppender appends a single row to a spreadsheet range.
// *gsheets.Client satisfies it.
type RowAppender interface {
	AppendRow(ctx context.Context, spreadsheetID, sheetRange string, row []interface{}) (int64, error)
}

type implRepository struct {
	client        RowAppender
	spreadsheetID string
	l             pkgLog.Logger
}

// New creates a RecordRepository that appends rows to a Google Sheet.
// The collection name selects the sheet tab.
func New(client RowAppender, spreadsheetID string, l pkgLog.Logger) repository.RecordRepository {
	if client == nil {
		panic("intake/repository/sheets: client is required")
	}
	return &implRepository{client: client, spreadsheetID: spreadsheetID, l: l}
}
