package materials

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"LearnVerse/internal/store"
)

const Collection = "materials"

type MaterialRepository struct {
	gw *store.Gateway
}

func NewMaterialRepository(gw *store.Gateway) *MaterialRepository {
	return &MaterialRepository{gw: gw}
}

func (r *MaterialRepository) FindByTutor(ctx context.Context, email string) ([]Material, error) {
	return store.Find[Material](ctx, r.gw, Collection, bson.M{"tutor_email": email})
}

func (r *MaterialRepository) CreateMaterial(ctx context.Context, m *Material) (*store.InsertResult, error) {
	return r.gw.InsertOne(ctx, Collection, m)
}

func (r *MaterialRepository) UpdateMaterial(ctx context.Context, id primitive.ObjectID, fields bson.M) (*store.UpdateResult, error) {
	return r.gw.UpdateByID(ctx, Collection, id, bson.M{"$set": fields})
}

func (r *MaterialRepository) DeleteMaterial(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	return r.gw.DeleteByID(ctx, Collection, id)
}
