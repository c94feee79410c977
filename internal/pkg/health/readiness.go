package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kelanaapp/kelana/internal/pkg/database"
	natspkg "github.com/kelanaapp/kelana/internal/pkg/nats"
)

// Checker reports whether one dependency is reachable
type Checker func(ctx context.Context) error

// PostgresChecker pings the database connection pool
func PostgresChecker(client *database.PostgresClient) Checker {
	return func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	}
}

// RedisChecker pings the Redis connection
func RedisChecker(client *database.RedisClient) Checker {
	return func(ctx context.Context) error {
		return client.Ping(ctx)
	}
}

// NATSChecker verifies the NATS connection is up
func NATSChecker(client *natspkg.Client) Checker {
	return func(ctx context.Context) error {
		if conn := client.GetConn(); conn == nil || !conn.IsConnected() {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
		}
		return nil
	}
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// RegisterReadinessEndpoint registers /ready, which runs every dependency
// check and returns 503 naming the failing ones.
func RegisterReadinessEndpoint(e *echo.Echo, checks map[string]Checker) {
	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := readinessResponse{
			Status: "ready",
			Checks: make(map[string]string, len(checks)),
		}
		status := http.StatusOK

		for name, check := range checks {
			if err := check(ctx); err != nil {
				response.Checks[name] = err.Error()
				response.Status = "not ready"
				status = http.StatusServiceUnavailable
				continue
			}
			response.Checks[name] = "ok"
		}

		return c.JSON(status, response)
	})
}
