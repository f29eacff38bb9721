// Package testutil builds echo contexts for handler tests.
package testutil

import (
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"LearnVerse/internal/auth"
)

// Context returns a JSON request context for target with optional path
// params given as name/value pairs.
func Context(e *echo.Echo, method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

// AsUser attaches verified claims for email, as the authenticated gate would.
func AsUser(c echo.Context, email string) echo.Context {
	c.Set(auth.ContextKey, &auth.Claims{Email: email, Payload: map[string]any{"email": email}})
	return c
}
