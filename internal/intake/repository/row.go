package repository

import (
	"time"

	"university-assistant/internal/intake"
)

// RecordColumns is the column order used by tabular sinks.
var RecordColumns = []string{"student_name", "academic_year", "student_query", "routed_unit", "tone", "timestamp"}

// RecordToMap converts a record into the column-keyed mapping stored by the sinks.
// An empty tone is stored as nil.
func RecordToMap(r intake.Record) map[string]any {
	var tone any
	if r.Tone != "" {
		tone = string(r.Tone)
	}
	return map[string]any{
		"student_name":  r.StudentName,
		"academic_year": string(r.AcademicYear),
		"student_query": r.StudentQuery,
		"routed_unit":   string(r.RoutedUnit),
		"tone":          tone,
		"timestamp":     r.Timestamp.UTC().Format(time.RFC3339),
	}
}

// RecordToRow converts a record into values ordered like RecordColumns.
func RecordToRow(r intake.Record) []any {
	m := RecordToMap(r)
	row := make([]any, len(RecordColumns))
	for i, col := range RecordColumns {
		row[i] = m[col]
	}
	return row
}
