package auth

import "github.com/labstack/echo/v4"

// ContextKey is where the authenticated gate stores *Claims on the echo context.
const ContextKey = "user"

func FromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok && claims != nil
}
