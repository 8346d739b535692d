package sqlite

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"university-assistant/internal/intake/repository"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// Insert writes one completed record into the collection table.
func (r *implRepository) Insert(ctx context.Context, opt repository.InsertRecordOptions) error {
	table := opt.CollectionOrDefault()
	if !identifierRe.MatchString(table) {
		r.l.Errorf(ctx, "%s: rejected collection %q", r.logPrefix("Insert"), table)
		return repository.ErrInvalidCollection
	}

	if err := r.ensureTable(ctx, table); err != nil {
		r.l.Errorf(ctx, "%s: create table %s: %v", r.logPrefix("Insert"), table, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(repository.RecordColumns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(repository.RecordColumns, ", "), placeholders)

	if _, err := r.db.ExecContext(ctx, query, repository.RecordToRow(opt.Record)...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.logPrefix("Insert"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return nil
}

func (r *implRepository) ensureTable(ctx context.Context, table string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tables[table] {
		return nil
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			student_name TEXT NOT NULL,
			academic_year TEXT NOT NULL,
			student_query TEXT NOT NULL,
			routed_unit TEXT NOT NULL,
			tone TEXT,
			timestamp TEXT NOT NULL
		)`, table)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return err
	}
	r.tables[table] = true
	return nil
}
