package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caseflow/case-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a present, non-empty
// user_id proves the middleware ran.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get("role").(domain.Role)
	return userID, role, nil
}
