package sessions

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"LearnVerse/internal/store"
)

const Collection = "sessions"

type SessionRepository struct {
	gw *store.Gateway
}

func NewSessionRepository(gw *store.Gateway) *SessionRepository {
	return &SessionRepository{gw: gw}
}

func (r *SessionRepository) FindAll(ctx context.Context) ([]Session, error) {
	return store.Find[Session](ctx, r.gw, Collection, bson.M{})
}

func (r *SessionRepository) FindByTutor(ctx context.Context, email string) ([]Session, error) {
	return store.Find[Session](ctx, r.gw, Collection, bson.M{"tutor_email": email})
}

func (r *SessionRepository) CreateSession(ctx context.Context, s *Session) (*store.InsertResult, error) {
	return r.gw.InsertOne(ctx, Collection, s)
}

func (r *SessionRepository) Approve(ctx context.Context, id primitive.ObjectID, fee float64) (*store.UpdateResult, error) {
	return r.gw.UpdateByID(ctx, Collection, id, approveUpdate(fee))
}

func (r *SessionRepository) Reject(ctx context.Context, id primitive.ObjectID, reason, feedback string) (*store.UpdateResult, error) {
	return r.gw.UpdateByID(ctx, Collection, id, rejectUpdate(reason, feedback))
}

func (r *SessionRepository) UpdateSession(ctx context.Context, id primitive.ObjectID, fields bson.M) (*store.UpdateResult, error) {
	return r.gw.UpdateByID(ctx, Collection, id, bson.M{"$set": fields})
}

func (r *SessionRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status Status) (*store.UpdateResult, error) {
	return r.gw.UpdateByID(ctx, Collection, id, statusUpdate(status))
}

func (r *SessionRepository) DeleteSession(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	return r.gw.DeleteByID(ctx, Collection, id)
}

func approveUpdate(fee float64) bson.M {
	return bson.M{"$set": bson.M{
		"registration_fee": fee,
		"status":           StatusApprove,
	}}
}

// rejectUpdate leaves registration_fee from any earlier approval in place.
func rejectUpdate(reason, feedback string) bson.M {
	return bson.M{"$set": bson.M{
		"status":           StatusReject,
		"rejection_reason": reason,
		"feedback":         feedback,
	}}
}

// statusUpdate is the tutor's transition; it always drops the admin's
// rejection notes.
func statusUpdate(status Status) bson.M {
	return bson.M{
		"$set":   bson.M{"status": status},
		"$unset": bson.M{"rejection_reason": "", "feedback": ""},
	}
}
