package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"LearnVerse/internal/errs"
	"LearnVerse/internal/observability"
)

// ErrorHandler renders every handler error as {"message": ...}. Anything it
// cannot classify is a 500, logged and sent to Sentry.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
			observability.CaptureErr(err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, map[string]string{"message": message})
		}
		if err != nil {
			log.Error("writing error response", zap.Error(err))
		}
	}
}

func classify(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}

	status, public := errs.Classify(err)
	if public == nil {
		return status, http.StatusText(status)
	}
	return status, public.Error()
}
