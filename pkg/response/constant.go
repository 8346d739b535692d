package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat matches the timestamp stored with each record.
	DateTimeFormat = time.RFC3339
)
