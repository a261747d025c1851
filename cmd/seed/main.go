package main

import (
	"context"
	"fmt"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/connaissance/fest-api/cmd/app"
	"github.com/connaissance/fest-api/internal/config"
	"github.com/connaissance/fest-api/internal/logger"
	"github.com/connaissance/fest-api/internal/repository"
	"github.com/connaissance/fest-api/internal/repository/dao"
	"github.com/connaissance/fest-api/internal/seed"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	store, err := app.OpenStore(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	n, err := seed.Run(context.Background(), repository.NewEventRepository(dao.NewEventDAO(store)))
	if err != nil {
		return fmt.Errorf("seed.Run -> %w", err)
	}

	if n == 0 {
		zap.L().Info("database already seeded")
		return nil
	}

	zap.L().Info(fmt.Sprintf("seeded %d events", n))

	return nil
}
