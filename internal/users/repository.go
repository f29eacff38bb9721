package users

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"LearnVerse/internal/config"
	"LearnVerse/internal/store"
)

const Collection = "users"

type UserRepository struct {
	gw *store.Gateway
}

func NewUserRepository(gw *store.Gateway) *UserRepository {
	return &UserRepository{gw: gw}
}

// EnsureIndexes makes user_email unique so concurrent first sign-ins cannot
// create two documents for one email.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	return config.UniqueIndex(ctx, r.gw.Collection(Collection), "user_email")
}

func (r *UserRepository) List(ctx context.Context, search string) ([]User, error) {
	return store.Find[User](ctx, r.gw, Collection, searchFilter(search))
}

// searchFilter matches search case-insensitively inside name or email.
// An empty search matches everything.
func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"user_name": pattern},
		bson.M{"user_email": pattern},
	}}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return store.FindOne[User](ctx, r.gw, Collection, bson.M{"user_email": email})
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User) (*store.InsertResult, error) {
	return r.gw.InsertOne(ctx, Collection, user)
}

func (r *UserRepository) SetRole(ctx context.Context, id primitive.ObjectID, role Role) (*store.UpdateResult, error) {
	return r.gw.UpdateByID(ctx, Collection, id, bson.M{"$set": bson.M{"role": role}})
}

// ResolveRole returns the stored role for email, or "" when the user is
// unknown or has no role yet.
func (r *UserRepository) ResolveRole(ctx context.Context, email string) (Role, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return "", err
	}
	return user.Role, nil
}
