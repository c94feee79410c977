package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/kelanaapp/kelana/internal/pkg/logger"
	"github.com/kelanaapp/kelana/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// notices the error on the active New Relic transaction before responding
// with a 500.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zapLogger.Error("Panic recovered",
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
						logger.ErrorField(err),
					)

					if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
						txn.NoticeError(err)
					}

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c, "")
					}
				}
			}()

			return next(c)
		}
	}
}
