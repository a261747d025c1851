package app

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/connaissance/fest-api/internal/api"
	"github.com/connaissance/fest-api/internal/config"
	"github.com/connaissance/fest-api/internal/db"
	"github.com/connaissance/fest-api/internal/logger"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	watchConfig()

	store, err := OpenStore(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	s := api.NewServer(conf, store)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// OpenStore prefers DATABASE_URL (Postgres) over the configured store.
func OpenStore(conf *config.AppConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		zap.L().Info("using postgres from DATABASE_URL")
		return db.OpenPostgresWithURL(dbURL)
	}

	zap.L().Info("opening database", zap.String("driver", conf.Database.Driver))

	return db.Open(conf.Database)
}

func watchConfig() {
	err := config.Watch(configPath, func(e fsnotify.Event) {
		zap.L().Warn("config file changed; restart to apply",
			zap.String("file", e.Name),
			zap.String("op", e.Op.String()),
		)
	})
	if err != nil {
		zap.L().Info("config file not watched", zap.Error(err))
	}
}
