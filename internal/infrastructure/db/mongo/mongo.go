package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes the repositories rely on. Uniqueness on
// username and email is what makes the registration conflict check race-free.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(usersCollection)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    map[string]any{"username": 1},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    map[string]any{"email": 1},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}

	videos := db.Collection(videosCollection)
	if _, err := videos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: map[string]any{"owner_id": 1},
	}); err != nil {
		return fmt.Errorf("ensure video indexes: %w", err)
	}

	clips := db.Collection(clipsCollection)
	if _, err := clips.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: map[string]any{"video_id": 1},
	}); err != nil {
		return fmt.Errorf("ensure clip indexes: %w", err)
	}

	return nil
}
