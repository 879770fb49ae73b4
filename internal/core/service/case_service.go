package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/caseflow/case-api/internal/core/domain"
	"github.com/caseflow/case-api/internal/core/ports"
)

// CaseService implements the case listing, creation, and deletion use cases.
// The cache is optional and strictly best-effort: every cache failure falls
// through to the repository.
type CaseService struct {
	repo   ports.CaseRepository
	cache  ports.CaseListCache
	logger zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, cache ports.CaseListCache, logger zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, cache: cache, logger: logger}
}

func (s *CaseService) List(ctx context.Context) ([]domain.Case, error) {
	if s.cache != nil {
		cases, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("case list cache read failed")
		} else if hit {
			return cases, nil
		}
	}

	cases, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cases); err != nil {
			s.logger.Warn().Err(err).Msg("case list cache write failed")
		}
	}
	return cases, nil
}

func (s *CaseService) Create(ctx context.Context, input ports.CreateCaseInput) (*domain.Case, error) {
	if input.Title == "" || input.OwnerID == "" {
		return nil, domain.ErrInvalidInput
	}

	record := &domain.Case{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		ImagePath:   input.ImagePath,
		OwnerID:     input.OwnerID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, record)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create case")
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("case_id", created.ID).Str("owner_id", created.OwnerID).Msg("case created")
	return created, nil
}

func (s *CaseService) Delete(ctx context.Context, caseID string) error {
	if err := s.repo.DeleteByID(ctx, caseID); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("case_id", caseID).Msg("case deleted")
	return nil
}

func (s *CaseService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("case list cache invalidation failed")
	}
}
