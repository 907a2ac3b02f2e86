package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/quotely-dev/quotely/db"
	"github.com/quotely-dev/quotely/internal/config"
	"github.com/quotely-dev/quotely/internal/router"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Optional in deployments where the environment is already set.
	_ = godotenv.Load()

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)

	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.Migrate(conn); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	r := router.New(cfg, conn, logger)

	logger.Info("starting server", zap.String("addr", cfg.ListenAddr))

	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return zapCfg.Build()
}
