package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"LearnVerse/internal/errs"
)

var ErrDuplicateKey = errors.New("duplicate key")

// InsertResult mirrors the driver's insert acknowledgement on the wire.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Gateway performs single-document operations against named collections of
// one database. Every call is one atomic operation on the backing store.
type Gateway struct {
	db *mongo.Database
}

func NewGateway(db *mongo.Database) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) Collection(name string) *mongo.Collection {
	return g.db.Collection(name)
}

// Find decodes every document matching filter. The result is never nil.
func Find[T any](ctx context.Context, g *Gateway, collection string, filter any) ([]T, error) {
	cursor, err := g.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, dbError("find", collection, err)
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, dbError("decode", collection, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// FindOne returns nil, nil when nothing matches.
func FindOne[T any](ctx context.Context, g *Gateway, collection string, filter any) (*T, error) {
	var doc T
	err := g.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, dbError("find one", collection, err)
	}
	return &doc, nil
}

func (g *Gateway) InsertOne(ctx context.Context, collection string, doc any) (*InsertResult, error) {
	res, err := g.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("insert %s: %w", collection, ErrDuplicateKey)
		}
		return nil, dbError("insert", collection, err)
	}
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// UpdateByID applies update to the document with id, creating it when absent.
func (g *Gateway) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, update any) (*UpdateResult, error) {
	opts := options.Update().SetUpsert(true)
	res, err := g.Collection(collection).UpdateByID(ctx, id, update, opts)
	if err != nil {
		return nil, dbError("update", collection, err)
	}
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// DeleteByID removes the document with id. A missing document is not an error.
func (g *Gateway) DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := g.Collection(collection).DeleteOne(ctx, primitive.M{"_id": id})
	if err != nil {
		return nil, dbError("delete", collection, err)
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// ParseID converts a path parameter into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", errs.ErrInvalidID, hex)
	}
	return id, nil
}

func dbError(op, collection string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, collection, errs.ErrDatabase, err)
}
