package routes_test

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"LearnVerse/internal/materials"
	"LearnVerse/internal/notes"
	"LearnVerse/internal/sessions"
	"LearnVerse/internal/store"
	"LearnVerse/internal/users"
)

type userStore struct{ users []users.User }

func (s *userStore) List(_ context.Context, search string) ([]users.User, error) {
	out := []users.User{}
	for _, u := range s.users {
		if search == "" || strings.Contains(strings.ToLower(u.Email+" "+u.Name), strings.ToLower(search)) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *userStore) FindByEmail(_ context.Context, email string) (*users.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i], nil
		}
	}
	return nil, nil
}

func (s *userStore) CreateUser(_ context.Context, u *users.User) (*store.InsertResult, error) {
	s.users = append(s.users, *u)
	return &store.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (s *userStore) SetRole(_ context.Context, id primitive.ObjectID, role users.Role) (*store.UpdateResult, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = role
			return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &store.UpdateResult{Acknowledged: true}, nil
}

func (s *userStore) ResolveRole(ctx context.Context, email string) (users.Role, error) {
	u, _ := s.FindByEmail(ctx, email)
	if u == nil {
		return "", nil
	}
	return u.Role, nil
}

type sessionStore struct {
	docs map[primitive.ObjectID]*sessions.Session
}

func (s *sessionStore) FindAll(context.Context) ([]sessions.Session, error) {
	out := []sessions.Session{}
	for _, d := range s.docs {
		out = append(out, *d)
	}
	return out, nil
}

func (s *sessionStore) FindByTutor(_ context.Context, email string) ([]sessions.Session, error) {
	out := []sessions.Session{}
	for _, d := range s.docs {
		if d.TutorEmail == email {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *sessionStore) CreateSession(_ context.Context, d *sessions.Session) (*store.InsertResult, error) {
	s.docs[d.ID] = d
	return &store.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (s *sessionStore) get(id primitive.ObjectID) *sessions.Session {
	d, ok := s.docs[id]
	if !ok {
		d = &sessions.Session{ID: id}
		s.docs[id] = d
	}
	return d
}

func (s *sessionStore) Approve(_ context.Context, id primitive.ObjectID, fee float64) (*store.UpdateResult, error) {
	d := s.get(id)
	d.RegistrationFee, d.Status = fee, sessions.StatusApprove
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *sessionStore) Reject(_ context.Context, id primitive.ObjectID, reason, feedback string) (*store.UpdateResult, error) {
	d := s.get(id)
	d.Status, d.RejectionReason, d.Feedback = sessions.StatusReject, reason, feedback
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *sessionStore) UpdateSession(_ context.Context, id primitive.ObjectID, fields bson.M) (*store.UpdateResult, error) {
	d := s.get(id)
	if v, ok := fields["title"].(string); ok {
		d.Title = v
	}
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *sessionStore) SetStatus(_ context.Context, id primitive.ObjectID, status sessions.Status) (*store.UpdateResult, error) {
	d := s.get(id)
	d.Status, d.RejectionReason, d.Feedback = status, "", ""
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *sessionStore) DeleteSession(_ context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	if _, ok := s.docs[id]; !ok {
		return &store.DeleteResult{Acknowledged: true}, nil
	}
	delete(s.docs, id)
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type materialStore struct{ docs []materials.Material }

func (s *materialStore) FindByTutor(_ context.Context, email string) ([]materials.Material, error) {
	out := []materials.Material{}
	for _, m := range s.docs {
		if m.TutorEmail == email {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *materialStore) CreateMaterial(_ context.Context, m *materials.Material) (*store.InsertResult, error) {
	s.docs = append(s.docs, *m)
	return &store.InsertResult{Acknowledged: true, InsertedID: m.ID}, nil
}

func (s *materialStore) UpdateMaterial(context.Context, primitive.ObjectID, bson.M) (*store.UpdateResult, error) {
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *materialStore) DeleteMaterial(context.Context, primitive.ObjectID) (*store.DeleteResult, error) {
	return &store.DeleteResult{Acknowledged: true}, nil
}

type noteStore struct{ docs []notes.Note }

func (s *noteStore) FindByOwner(_ context.Context, email string) ([]notes.Note, error) {
	out := []notes.Note{}
	for _, n := range s.docs {
		if n.UserEmail == email {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *noteStore) FindByID(_ context.Context, id primitive.ObjectID) (*notes.Note, error) {
	for i := range s.docs {
		if s.docs[i].ID == id {
			return &s.docs[i], nil
		}
	}
	return nil, nil
}

func (s *noteStore) CreateNote(_ context.Context, n *notes.Note) (*store.InsertResult, error) {
	s.docs = append(s.docs, *n)
	return &store.InsertResult{Acknowledged: true, InsertedID: n.ID}, nil
}

func (s *noteStore) UpdateNote(context.Context, primitive.ObjectID, bson.M) (*store.UpdateResult, error) {
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *noteStore) DeleteNote(context.Context, primitive.ObjectID) (*store.DeleteResult, error) {
	return &store.DeleteResult{Acknowledged: true}, nil
}
