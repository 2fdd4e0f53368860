package http

import (
	"net/http"
	"strings"
	"time"

	"dealership/internal/pkg/auth"
	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// Actor is the authenticated caller of a request.
type Actor struct {
	Subject string
	Role    auth.Role
}

// demoActor acts for every request when authentication is switched off.
var demoActor = Actor{Subject: "demo", Role: auth.RoleManager}

func actorFrom(ctx echo.Context) (Actor, bool) {
	a, ok := ctx.Get(actorKey).(Actor)
	return a, ok
}

// RequestLogger stores the request id on the request context and logs one
// line per finished request.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := log.WithFields(req.Context(), map[string]any{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     req.Method,
				"path":       req.URL.Path,
			})
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			ctx = log.WithFields(c.Request().Context(), map[string]any{
				"status":      c.Response().Status,
				"duration_ms": time.Since(start).Milliseconds(),
			})
			log.Info(ctx, "request.complete")
			return nil
		}
	}
}

// Metrics observes every request by its route template.
func Metrics(m *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			m.Observe(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))
			return nil
		}
	}
}

// Authenticate requires a valid bearer token. With enabled false every
// request acts as a manager.
func Authenticate(cfg auth.Config, enabled bool, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := demoActor
			if enabled {
				token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
				if token == "" {
					return writeError(c, http.StatusUnauthorized, "missing credentials")
				}
				claims, err := auth.Parse(cfg, token)
				if err != nil {
					return writeError(c, http.StatusUnauthorized, "invalid token")
				}
				actor = Actor{Subject: claims.Subject, Role: claims.Role}
			}

			c.Set(actorKey, actor)
			ctx := log.WithActor(c.Request().Context(), actor.Subject, string(actor.Role))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequirePermission rejects callers whose role lacks perm.
func RequirePermission(perm auth.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := actorFrom(c)
			if !ok {
				return writeError(c, http.StatusUnauthorized, "missing credentials")
			}
			if !actor.Role.Can(perm) {
				return writeError(c, http.StatusForbidden, "permission "+string(perm)+" required")
			}
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
