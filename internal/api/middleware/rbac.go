package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caseflow/case-api/internal/core/domain"
)

// RequireRole rejects callers whose authenticated role does not match the
// required one. Must run after Auth.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if role != required {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
