package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Classifier transports accepted in classifier.transport.
const (
	ClassifierTransportREST = "rest"
	ClassifierTransportSDK  = "sdk"
)

// Storage drivers accepted in storage.driver.
const (
	StorageDriverAuto     = "auto"
	StorageDriverSupabase = "supabase"
	StorageDriverSQLite   = "sqlite"
	StorageDriverSheets   = "sheets"
	StorageDriverNone     = "none"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intake specifics
	Session    SessionConfig
	Classifier ClassifierConfig
	Storage    StorageConfig
	Webhook    WebhookConfig
	Telegram   TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port               int
	Mode               string
	RateLimitPerMin    int
	CORSAllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SessionConfig bounds the in-memory session store. Zero values keep sessions for the process lifetime.
type SessionConfig struct {
	MaxEntries int
	TTL        time.Duration
}

type ClassifierConfig struct {
	Enabled   bool
	Transport string
	APIKey    string
	Model     string
	APIURL    string
	Timeout   time.Duration
}

type StorageConfig struct {
	Driver     string
	Collection string
	Supabase   SupabaseConfig
	SQLite     SQLiteConfig
	Sheets     SheetsConfig
}

type SupabaseConfig struct {
	URL string
	Key string
}

type SQLiteConfig struct {
	Path string
}

type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

type WebhookConfig struct {
	URL     string
	Timeout time.Duration
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.CORSAllowedOrigins = splitList(viper.GetString("http_server.cors_allowed_origins"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Sessions
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	// Classifier
	cfg.Classifier.Enabled = viper.GetBool("classifier.enabled")
	cfg.Classifier.Transport = strings.ToLower(viper.GetString("classifier.transport"))
	cfg.Classifier.APIKey = viper.GetString("classifier.api_key")
	if apiKey := viper.GetString("google_api_key"); apiKey != "" {
		cfg.Classifier.APIKey = apiKey
	}
	cfg.Classifier.Model = viper.GetString("classifier.model")
	if model := viper.GetString("gen_model"); model != "" {
		cfg.Classifier.Model = model
	}
	cfg.Classifier.APIURL = viper.GetString("classifier.api_url")
	cfg.Classifier.Timeout = viper.GetDuration("classifier.timeout")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Collection = viper.GetString("storage.collection")
	cfg.Storage.Supabase.URL = viper.GetString("storage.supabase.url")
	if url := viper.GetString("supabase_url"); url != "" {
		cfg.Storage.Supabase.URL = url
	}
	cfg.Storage.Supabase.Key = viper.GetString("storage.supabase.key")
	if key := viper.GetString("supabase_key"); key != "" {
		cfg.Storage.Supabase.Key = key
	}
	cfg.Storage.SQLite.Path = viper.GetString("storage.sqlite.path")
	cfg.Storage.Sheets.CredentialsPath = viper.GetString("storage.sheets.credentials_path")
	cfg.Storage.Sheets.SpreadsheetID = viper.GetString("storage.sheets.spreadsheet_id")

	// Outbound webhook
	cfg.Webhook.URL = viper.GetString("webhook.url")
	if url := viper.GetString("webhook_url"); url != "" {
		cfg.Webhook.URL = url
	}
	cfg.Webhook.Timeout = viper.GetDuration("webhook.timeout")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Classifier.Transport {
	case ClassifierTransportREST, ClassifierTransportSDK:
	default:
		return fmt.Errorf("unknown classifier.transport %q", cfg.Classifier.Transport)
	}
	switch cfg.Storage.Driver {
	case StorageDriverAuto, StorageDriverSupabase, StorageDriverSQLite, StorageDriverSheets, StorageDriverNone:
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
	if cfg.Session.MaxEntries < 0 || cfg.Session.TTL < 0 {
		return fmt.Errorf("session.max_entries and session.ttl must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("http_server.cors_allowed_origins", "http://localhost:5173")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("session.max_entries", 0)
	viper.SetDefault("session.ttl", "0s")

	viper.SetDefault("classifier.enabled", true)
	viper.SetDefault("classifier.transport", ClassifierTransportREST)
	viper.SetDefault("classifier.model", "gemini-2.5-flash")
	viper.SetDefault("classifier.timeout", "10s")

	viper.SetDefault("storage.driver", StorageDriverAuto)
	viper.SetDefault("storage.collection", "student_queries")
	viper.SetDefault("storage.sqlite.path", "intake.db")

	viper.SetDefault("webhook.timeout", "10s")
}

// splitList splits a comma separated value; viper does not parse lists from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
