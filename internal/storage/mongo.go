package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"css-catalog/internal/record"
)

// Sink mirrors assembled records into a MongoDB collection, one document per
// item name. A Sink without a client is a no-op.
type Sink struct {
	Client     *mongo.Client
	Collection *mongo.Collection
	log        *zap.Logger
}

// NewSink connects to uri. An empty uri disables the sink.
// The collection is emptied so it matches the catalog written by this run.
func NewSink(ctx context.Context, uri, database, collection string, log *zap.Logger) (*Sink, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if uri == "" {
		log.Debug("MongoDB sink disabled")
		return &Sink{log: log}, nil
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	coll := client.Database(database).Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("reset collection %s.%s: %w", database, collection, err)
	}
	log.Info("MongoDB sink ready", zap.String("database", database), zap.String("collection", collection))
	return &Sink{Client: client, Collection: coll, log: log}, nil
}

func (s *Sink) Enabled() bool { return s.Client != nil }

// Put upserts r keyed by its name.
func (s *Sink) Put(ctx context.Context, r record.Record) error {
	if s.Client == nil {
		return nil
	}
	name := r.Base().Name
	_, err := s.Collection.ReplaceOne(ctx, bson.D{{Key: "name", Value: name}}, r, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %q: %w", name, err)
	}
	return nil
}

func (s *Sink) Close(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Disconnect(ctx)
}
