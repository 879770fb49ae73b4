package ports

import (
	"context"

	"github.com/caseflow/case-api/internal/core/domain"
)

// CreateCaseInput carries all data needed to create a new case.
type CreateCaseInput struct {
	OwnerID     string
	Title       string
	Category    string
	Description string
	ImagePath   string
}

// CaseService defines use-case operations for case records.
type CaseService interface {
	List(ctx context.Context) ([]domain.Case, error)
	Create(ctx context.Context, input CreateCaseInput) (*domain.Case, error)
	Delete(ctx context.Context, caseID string) error
}
