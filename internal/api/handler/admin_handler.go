package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caseflow/case-api/internal/api/metrics"
	"github.com/caseflow/case-api/internal/core/ports"
)

// AdminHandler handles the role-gated administrative actions and the
// operational admin bootstrap.
type AdminHandler struct {
	authService ports.AuthService
}

func NewAdminHandler(authService ports.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// ToggleBlock handles PUT /api/block/:id (admin only). Calling it twice
// returns the user to the original state.
//
// @Summary      Toggle the blocked flag on a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/block/{id} [put]
func (h *AdminHandler) ToggleBlock(c echo.Context) error {
	user, err := h.authService.ToggleBlock(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	msg := "user unblocked"
	state := "unblocked"
	if user.Blocked {
		msg = "user blocked"
		state = "blocked"
	}
	metrics.BlockTogglesTotal.WithLabelValues(state).Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// CreateAdmin handles GET /create-admin, the one-time operational bootstrap.
//
// @Summary      Seed the well-known admin account
// @Tags         admin
// @Produce      plain
// @Success      200  {string}  string
// @Failure      500  {object}  messageResponse
// @Router       /create-admin [get]
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	created, err := h.authService.SeedAdmin(c.Request().Context())
	if err != nil {
		return err
	}

	if !created {
		return c.String(http.StatusOK, "admin account already exists")
	}
	return c.String(http.StatusOK, "admin account created")
}
