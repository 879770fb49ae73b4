package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/caseflow/case-api/internal/api/metrics"
	"github.com/caseflow/case-api/internal/core/ports"
)

// CaseHandler handles HTTP requests for case operations.
type CaseHandler struct {
	service ports.CaseService
	uploads ports.UploadStore
}

func NewCaseHandler(service ports.CaseService, uploads ports.UploadStore) *CaseHandler {
	return &CaseHandler{service: service, uploads: uploads}
}

// List handles GET /api/cases.
//
// @Summary      List all cases
// @Tags         cases
// @Produce      json
// @Success      200  {array}   domain.Case
// @Failure      500  {object}  messageResponse
// @Router       /api/cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	cases, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Create handles POST /api/cases. The body is a multipart form with the
// text fields title, category, description and an optional image part.
//
// @Summary      Create a case
// @Tags         cases
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Case title"
// @Param        category     formData  string  false  "Case category"
// @Param        description  formData  string  false  "Case description"
// @Param        image        formData  file    false  "Optional attachment"
// @Success      201  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	req := createCaseRequest{
		Title:       c.FormValue("title"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		imagePath, err = h.uploads.Save(file)
		if err != nil {
			return err
		}
		metrics.UploadsStoredTotal.Inc()
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}

	if _, err := h.service.Create(c.Request().Context(), ports.CreateCaseInput{
		OwnerID:     userID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ImagePath:   imagePath,
	}); err != nil {
		return err
	}

	metrics.CasesCreatedTotal.WithLabelValues(strconv.FormatBool(imagePath != "")).Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "case created"})
}

// Delete handles DELETE /api/cases/:id (admin only).
//
// @Summary      Delete a case
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Case id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/cases/{id} [delete]
func (h *CaseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.CasesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "case deleted"})
}
