package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"university-assistant/config"
	_ "university-assistant/docs" // Swagger docs
	"university-assistant/internal/httpserver"
	"university-assistant/internal/intake"
	tgDelivery "university-assistant/internal/intake/delivery/telegram"
	"university-assistant/internal/intake/repository"
	memoryRepo "university-assistant/internal/intake/repository/memory"
	"university-assistant/internal/intake/usecase"
	"university-assistant/internal/middleware"
	"university-assistant/internal/router"
	"university-assistant/pkg/log"
	"university-assistant/pkg/telegram"
	"university-assistant/pkg/webhook"
)

// @title       University Intake Assistant API
// @description Conversational intake that collects a student's name, year and query, then routes it to a university unit.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting University Intake Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Sessions
	var sessions repository.SessionRepository
	if cfg.Session.MaxEntries > 0 || cfg.Session.TTL > 0 {
		sessions = memoryRepo.NewExpirable(cfg.Session.MaxEntries, cfg.Session.TTL, logger)
		logger.Infof(ctx, "Session store bounded: max_entries=%d ttl=%s", cfg.Session.MaxEntries, cfg.Session.TTL)
	} else {
		sessions = memoryRepo.New(logger)
	}

	// 4. Storage sink
	records, storageDriver, closer, err := newRecordRepository(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		return
	}
	defer closer.Close()
	if storageDriver == config.StorageDriverNone {
		logger.Warn(ctx, "Storage not configured; finished records will only be logged")
	} else {
		logger.Infof(ctx, "Storage driver: %s", storageDriver)
	}

	// 5. Outbound webhook (optional)
	var notifier intake.Notifier
	webhookState := "disabled"
	if cfg.Webhook.URL != "" {
		notifier = webhook.NewClient(cfg.Webhook.URL, cfg.Webhook.Timeout)
		webhookState = "enabled"
	}

	// 6. Classifier (optional)
	var classifier intake.Classifier = router.Disabled{}
	classifierState := "keywords"
	if cfg.Classifier.Enabled && cfg.Classifier.APIKey != "" {
		generator, model, genErr := newGenerator(ctx, cfg.Classifier)
		if genErr != nil {
			logger.Warnf(ctx, "Classifier unavailable, using keyword rules: %v", genErr)
		} else {
			classifier = router.New(generator, logger)
			classifierState = cfg.Classifier.Transport + ":" + model
			logger.Infof(ctx, "Classifier enabled: %s", classifierState)
		}
	} else {
		logger.Warn(ctx, "Classifier disabled: routing uses keyword rules only")
	}

	// 7. Intake UseCase
	intakeUC := usecase.New(logger, sessions, records, notifier, classifier, cfg.Storage.Collection)

	// 8. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, intakeUC, telegramBot)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, webhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
			AllowedOrigins:  cfg.HTTPServer.CORSAllowedOrigins,
			TelegramSecret:  cfg.Telegram.SecretToken,
		},
		Components: map[string]string{
			"storage":    storageDriver,
			"webhook":    webhookState,
			"classifier": classifierState,
		},
		IntakeUseCase:   intakeUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
