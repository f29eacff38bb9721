package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"LearnVerse/internal/errs"
)

type AuthHandler struct {
	tokens *TokenService
	log    *zap.Logger
}

func NewAuthHandler(tokens *TokenService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, log: log.Named("auth")}
}

// IssueToken signs the posted identity claims and returns {"token": ...}.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return errs.ErrInvalidRequest
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		return err
	}
	h.log.Debug("token issued", zap.Any("email", payload["email"]))
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
