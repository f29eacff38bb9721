package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type MongoDBClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDBClient opens the shared connection pool. The pool is verified when
// the app starts and released when it stops.
func NewMongoDBClient(lc fx.Lifecycle, cfg *Config, log *zap.Logger) (*MongoDBClient, *mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, 10*time.Second)
			defer cancel()
			if err := client.Ping(ctx, nil); err != nil {
				return fmt.Errorf("ping MongoDB: %w", err)
			}
			log.Info("connected to MongoDB", zap.String("database", cfg.MongoDB))
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			log.Info("closing MongoDB connection")
			return client.Disconnect(stopCtx)
		},
	})

	db := client.Database(cfg.MongoDB)
	return &MongoDBClient{Client: client, Database: db}, db, nil
}

// UniqueIndex creates a unique ascending index on field.
func UniqueIndex(ctx context.Context, collection *mongo.Collection, field string) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}
