package notes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"LearnVerse/internal/store"
)

const Collection = "student_notes"

type NoteRepository struct {
	gw *store.Gateway
}

func NewNoteRepository(gw *store.Gateway) *NoteRepository {
	return &NoteRepository{gw: gw}
}

func (r *NoteRepository) FindByOwner(ctx context.Context, email string) ([]Note, error) {
	return store.Find[Note](ctx, r.gw, Collection, bson.M{"user_email": email})
}

func (r *NoteRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Note, error) {
	return store.FindOne[Note](ctx, r.gw, Collection, bson.M{"_id": id})
}

func (r *NoteRepository) CreateNote(ctx context.Context, n *Note) (*store.InsertResult, error) {
	return r.gw.InsertOne(ctx, Collection, n)
}

func (r *NoteRepository) UpdateNote(ctx context.Context, id primitive.ObjectID, fields bson.M) (*store.UpdateResult, error) {
	return r.gw.UpdateByID(ctx, Collection, id, bson.M{"$set": fields})
}

func (r *NoteRepository) DeleteNote(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	return r.gw.DeleteByID(ctx, Collection, id)
}
