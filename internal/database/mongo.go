package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/config"
)

// NewMongoDatabase connects to MongoDB and verifies the connection. The
// returned disconnect func must be called on shutdown.
func NewMongoDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*mongo.Database, func(context.Context) error, error) {
	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))
	return client.Database(cfg.Mongo.Database), client.Disconnect, nil
}
