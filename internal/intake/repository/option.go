package repository

import "university-assistant/internal/intake"

// DefaultCollection is the table/sheet completed records are written to.
const DefaultCollection = "student_queries"

// InsertRecordOptions holds parameters for writing one completed record.
type InsertRecordOptions struct {
	Collection string
	Record     intake.Record
}

// CollectionOrDefault returns the target collection, falling back to DefaultCollection.
func (o InsertRecordOptions) CollectionOrDefault() string {
	if o.Collection == "" {
		return DefaultCollection
	}
	return o.Collection
}
