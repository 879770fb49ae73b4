package ports

import (
	"context"

	"github.com/caseflow/case-api/internal/core/domain"
)

// CaseRepository defines the interface for case record persistence.
type CaseRepository interface {
	Insert(ctx context.Context, c *domain.Case) (*domain.Case, error)
	FindAll(ctx context.Context) ([]domain.Case, error)
	DeleteByID(ctx context.Context, id string) error
}

// CaseListCache caches the public case listing. Implementations are
// best-effort: a failing cache must never fail a request.
type CaseListCache interface {
	Get(ctx context.Context) ([]domain.Case, bool, error)
	Set(ctx context.Context, cases []domain.Case) error
	Invalidate(ctx context.Context) error
}
