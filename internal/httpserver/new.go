package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"university-assistant/internal/intake"
	tgDelivery "university-assistant/internal/intake/delivery/telegram"
	"university-assistant/internal/middleware"
	"university-assistant/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	components  map[string]string
	startedAt   time.Time

	// Intake domain
	intakeUC        intake.UseCase
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config
	// Components names the backends in use, reported by /ready (e.g. "storage": "sqlite").
	Components  map[string]string

	// Intake domain
	IntakeUseCase   intake.UseCase
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, cfg.Middleware),
		components:      cfg.Components,
		startedAt:       time.Now(),
		intakeUC:        cfg.IntakeUseCase,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.intakeUC == nil {
		return errors.New("intake use case is required")
	}
	return nil
}
