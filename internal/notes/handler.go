package notes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"LearnVerse/internal/auth"
	"LearnVerse/internal/errs"
	"LearnVerse/internal/store"
)

type Store interface {
	FindByOwner(ctx context.Context, email string) ([]Note, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Note, error)
	CreateNote(ctx context.Context, n *Note) (*store.InsertResult, error)
	UpdateNote(ctx context.Context, id primitive.ObjectID, fields bson.M) (*store.UpdateResult, error)
	DeleteNote(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error)
}

type NoteHandler struct {
	repo Store
	log  *zap.Logger
}

func NewNoteHandler(repo Store, log *zap.Logger) *NoteHandler {
	return &NoteHandler{repo: repo, log: log.Named("notes")}
}

// ListByOwner expects the ownership gate to have matched :email to the caller.
func (h *NoteHandler) ListByOwner(c echo.Context) error {
	notes, err := h.repo.FindByOwner(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

// Create files the note under the caller. A body naming another student is
// refused.
func (h *NoteHandler) Create(c echo.Context) error {
	claims, ok := auth.FromContext(c)
	if !ok {
		return errs.ErrUnauthorized
	}
	var n Note
	if err := c.Bind(&n); err != nil {
		return errs.ErrInvalidRequest
	}
	if n.UserEmail == "" {
		n.UserEmail = claims.Email
	}
	if n.UserEmail != claims.Email {
		h.log.Debug("note owner mismatch", zap.String("caller", claims.Email), zap.String("owner", n.UserEmail))
		return errs.ErrForbidden
	}
	n.ID = primitive.NewObjectID()

	res, err := h.repo.CreateNote(c.Request().Context(), &n)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Update merges the supplied fields into one of the caller's notes.
func (h *NoteHandler) Update(c echo.Context) error {
	id, err := h.ownedID(c)
	if err != nil {
		return err
	}
	var p Patch
	if err := c.Bind(&p); err != nil {
		return errs.ErrInvalidRequest
	}
	fields := p.fields()
	if len(fields) == 0 {
		return errs.ErrNothingToSet
	}

	res, err := h.repo.UpdateNote(c.Request().Context(), id, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *NoteHandler) Delete(c echo.Context) error {
	id, err := h.ownedID(c)
	if err != nil {
		return err
	}
	res, err := h.repo.DeleteNote(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// ownedID parses :id and refuses notes filed under another student. A missing
// note passes, so update still upserts and delete reports a zero count.
func (h *NoteHandler) ownedID(c echo.Context) (primitive.ObjectID, error) {
	claims, ok := auth.FromContext(c)
	if !ok {
		return primitive.NilObjectID, errs.ErrUnauthorized
	}
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		return primitive.NilObjectID, err
	}
	note, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if note != nil && note.UserEmail != claims.Email {
		h.log.Debug("note owner mismatch", zap.String("caller", claims.Email), zap.String("owner", note.UserEmail))
		return primitive.NilObjectID, errs.ErrForbidden
	}
	return id, nil
}
