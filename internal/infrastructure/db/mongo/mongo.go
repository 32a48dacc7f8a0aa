package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	appName        = "clinic-admin"
	dialTimeout    = 10 * time.Second
	defaultTimeout = 10 * time.Second
	maxPoolSize    = 50
	disconnectWait = 5 * time.Second
)

// Config holds the connection settings for the clinic database.
type Config struct {
	URI      string
	Database string
	// DialTimeout bounds connect plus the initial primary ping.
	DialTimeout time.Duration
}

// Connect opens a client against the primary and returns it with the clinic
// database handle.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.Database == "" {
		return nil, nil, fmt.Errorf("mongo connect: database name is empty")
	}
	wait := cfg.DialTimeout
	if wait <= 0 {
		wait = dialTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetMaxPoolSize(maxPoolSize).
		SetServerSelectionTimeout(wait)

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}

	return client, client.Database(cfg.Database), nil
}

// Disconnect closes the client, giving in-flight operations a short grace period.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectWait)
	defer cancel()
	return client.Disconnect(ctx)
}
