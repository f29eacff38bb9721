package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"LearnVerse/internal/errs"
	"LearnVerse/internal/store"
)

// Store is what the handler needs from the users collection.
type Store interface {
	List(ctx context.Context, search string) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) (*store.InsertResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role Role) (*store.UpdateResult, error)
	ResolveRole(ctx context.Context, email string) (Role, error)
}

type UserHandler struct {
	repo Store
	log  *zap.Logger
}

func NewUserHandler(repo Store, log *zap.Logger) *UserHandler {
	return &UserHandler{repo: repo, log: log.Named("users")}
}

// List returns every user, or those whose name or email contains ?search=.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.repo.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetRole returns {"role": ...} for :email, null when unknown or unset.
func (h *UserHandler) GetRole(c echo.Context) error {
	role, err := h.repo.ResolveRole(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	res := RoleResponse{}
	if role != "" {
		res.Role = &role
	}
	return c.JSON(http.StatusOK, res)
}

// Create inserts a user unless one with the same email exists, in which case
// it replies 200 with a sentinel body and changes nothing.
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return errs.ErrInvalidRequest
	}
	if req.Email == "" {
		return errs.ErrEmailRequired
	}
	ctx := c.Request().Context()

	existing, err := h.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return h.duplicate(c, req.Email)
	}

	res, err := h.repo.CreateUser(ctx, &User{
		ID:    primitive.NewObjectID(),
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return h.duplicate(c, req.Email)
		}
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// TODO: reply 409 Conflict once the web client stops relying on the 200 sentinel.
func (h *UserHandler) duplicate(c echo.Context, email string) error {
	h.log.Debug("user already exists", zap.String("email", email))
	return c.JSON(http.StatusOK, DuplicateResult{Message: "user already exists", InsertedID: nil})
}

func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return errs.ErrInvalidRequest
	}
	if !req.Role.Valid() {
		return errs.ErrInvalidRole
	}

	res, err := h.repo.SetRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return err
	}
	h.log.Info("role updated", zap.String("id", id.Hex()), zap.String("role", string(req.Role)))
	return c.JSON(http.StatusOK, res)
}
