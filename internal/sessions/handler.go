package sessions

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
	FindAll(ctx context.Context) ([]Session, error)
	FindByTutor(ctx context.Context, email string) ([]Session, error)
	CreateSession(ctx context.Context, s *Session) (*store.InsertResult, error)
	Approve(ctx context.Context, id primitive.ObjectID, fee float64) (*store.UpdateResult, error)
	Reject(ctx context.Context, id primitive.ObjectID, reason, feedback string) (*store.UpdateResult, error)
	UpdateSession(ctx context.Context, id primitive.ObjectID, fields bson.M) (*store.UpdateResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status Status) (*store.UpdateResult, error)
	DeleteSession(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error)
}

type SessionHandler struct {
	repo Store
	log  *zap.Logger
}

func NewSessionHandler(repo Store, log *zap.Logger) *SessionHandler {
	return &SessionHandler{repo: repo, log: log.Named("sessions")}
}

func (h *SessionHandler) List(c echo.Context) error {
	sessions, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) ListByTutor(c echo.Context) error {
	sessions, err := h.repo.FindByTutor(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}

// Create stores a new session as pending. The tutor defaults to the caller.
func (h *SessionHandler) Create(c echo.Context) error {
	var s Session
	if err := c.Bind(&s); err != nil {
		return errs.ErrInvalidRequest
	}
	if s.TutorEmail == "" {
		if claims, ok := auth.FromContext(c); ok {
			s.TutorEmail = claims.Email
		}
	}
	s.ID = primitive.NewObjectID()
	s.Status = StatusPending
	s.RejectionReason = ""
	s.Feedback = ""

	res, err := h.repo.CreateSession(c.Request().Context(), &s)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Approve sets the registration fee and marks the session approved.
func (h *SessionHandler) Approve(c echo.Context) error {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	var req ApproveRequest
	if err := c.Bind(&req); err != nil || req.RegAmount == nil {
		return errs.ErrInvalidRequest
	}

	res, err := h.repo.Approve(c.Request().Context(), id, *req.RegAmount)
	if err != nil {
		return err
	}
	h.log.Info("session approved", zap.String("id", id.Hex()), zap.Float64("fee", *req.RegAmount))
	return c.JSON(http.StatusOK, res)
}

func (h *SessionHandler) Reject(c echo.Context) error {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return errs.ErrInvalidRequest
	}

	res, err := h.repo.Reject(c.Request().Context(), id, req.RejectionReason, req.Feedback)
	if err != nil {
		return err
	}
	h.log.Info("session rejected", zap.String("id", id.Hex()))
	return c.JSON(http.StatusOK, res)
}

// Update merges the supplied admin-editable fields into the session.
func (h *SessionHandler) Update(c echo.Context) error {
	id, err := store.ParseID(c.Param("id"))
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

	res, err := h.repo.UpdateSession(c.Request().Context(), id, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateStatus is the tutor's resubmission; an empty status means pending.
func (h *SessionHandler) UpdateStatus(c echo.Context) error {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return errs.ErrInvalidRequest
	}
	if req.Status == "" {
		req.Status = StatusPending
	}
	if !req.Status.Valid() {
		return errs.ErrInvalidStatus
	}

	res, err := h.repo.SetStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete removes the session only; its materials are kept.
func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	res, err := h.repo.DeleteSession(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
