package lib

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/theleywin/talentnest/src/config"
)

// ConnectDB opens the MongoDB client, verifies it with a ping and returns the
// application database.
func ConnectDB(ctx context.Context, cfg config.MongoConfig, log *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, errors.Wrap(err, "lib.ConnectDB.Connect")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errors.Wrap(err, "lib.ConnectDB.Ping")
	}

	log.Info("connected to MongoDB", slog.String("database", cfg.Database), slog.Bool("transactions", cfg.Transactions))

	return client, client.Database(cfg.Database), nil
}
