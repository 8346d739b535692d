package log

// ZapConfig holds logger settings loaded from config.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // "production" or anything else for development
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ctxKey string

// RequestIDKey is the context key the HTTP middleware stores the request id under.
const RequestIDKey ctxKey = "request_id"
