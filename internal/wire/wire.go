// Package wire provides dependency injection for the PageTurner CLI.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"go.uber.org/zap"

	"github.com/example/pageturner/internal/adapters/httpapi"
	"github.com/example/pageturner/internal/adapters/session"
	"github.com/example/pageturner/internal/adapters/sqlite"
	"github.com/example/pageturner/internal/app"
	"github.com/example/pageturner/internal/config"
	"github.com/example/pageturner/internal/db"
	"github.com/example/pageturner/internal/ports/primary"
)

var (
	highlightService primary.HighlightService
	logger           *zap.Logger
	once             sync.Once
)

// HighlightService returns the singleton HighlightService instance.
func HighlightService() primary.HighlightService {
	once.Do(initServices)
	return highlightService
}

// NewReaderService returns a fresh ReaderService on top of the singleton
// store. Readers are per-invocation: each holds one open chapter.
func NewReaderService() *app.ReaderServiceImpl {
	once.Do(initServices)
	return app.NewReaderService(highlightService, logger)
}

// Logger returns the shared logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	logger, err = zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	if err != nil {
		logger = zap.NewNop()
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	cache := sqlite.NewHighlightCache(database)

	// Config is optional: without it there is no session and the store
	// runs purely local.
	var cfg *config.Config
	if dir, dirErr := config.DefaultDir(); dirErr == nil {
		cfg, _ = config.LoadConfig(dir)
	}

	var apiURL, token string
	if cfg != nil {
		apiURL = cfg.APIURL
		token = cfg.Token
	}
	remote := httpapi.NewClient(apiURL, token)
	sessions := session.NewConfigProvider(cfg)

	highlightService = app.NewHighlightService(cache, remote, sessions, logger)
}
