package materials

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
	FindByTutor(ctx context.Context, email string) ([]Material, error)
	CreateMaterial(ctx context.Context, m *Material) (*store.InsertResult, error)
	UpdateMaterial(ctx context.Context, id primitive.ObjectID, fields bson.M) (*store.UpdateResult, error)
	DeleteMaterial(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error)
}

type MaterialHandler struct {
	repo Store
	log  *zap.Logger
}

func NewMaterialHandler(repo Store, log *zap.Logger) *MaterialHandler {
	return &MaterialHandler{repo: repo, log: log.Named("materials")}
}

func (h *MaterialHandler) ListByTutor(c echo.Context) error {
	materials, err := h.repo.FindByTutor(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, materials)
}

func (h *MaterialHandler) Create(c echo.Context) error {
	var m Material
	if err := c.Bind(&m); err != nil {
		return errs.ErrInvalidRequest
	}
	if m.TutorEmail == "" {
		if claims, ok := auth.FromContext(c); ok {
			m.TutorEmail = claims.Email
		}
	}
	m.ID = primitive.NewObjectID()

	res, err := h.repo.CreateMaterial(c.Request().Context(), &m)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *MaterialHandler) Update(c echo.Context) error {
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

	res, err := h.repo.UpdateMaterial(c.Request().Context(), id, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *MaterialHandler) Delete(c echo.Context) error {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	res, err := h.repo.DeleteMaterial(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
