package handler

import "github.com/caseflow/case-api/internal/core/domain"

// messageResponse is the standard envelope for success confirmations and,
// via the central error handler, all error responses.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

// --- Cases ---

// createCaseRequest mirrors the multipart form fields of POST /api/cases.
// The optional image part is handled separately by the upload store.
type createCaseRequest struct {
	Title       string `form:"title"       validate:"required"`
	Category    string `form:"category"`
	Description string `form:"description"`
}
