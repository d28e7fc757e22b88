package main

import (
	"context"
	"log"
	"time"

	"tourbook/internal/config"
	"tourbook/internal/database"
	"tourbook/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync(appLog)

	appLog.Info("Creating indexes")

	mongoDB := database.NewMongoDB(cfg.MongoConnectionString(), cfg.MongoDatabase, appLog)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		appLog.Error("Index creation failed", zap.Error(err))
		return
	}
}
