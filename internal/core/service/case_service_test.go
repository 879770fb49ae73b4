package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/caseflow/case-api/internal/core/domain"
	"github.com/caseflow/case-api/internal/core/ports"
)

type stubCaseRepo struct {
	cases    []domain.Case
	nextID   int
	findErr  error
	findHits int
}

func (r *stubCaseRepo) Insert(_ context.Context, c *domain.Case) (*domain.Case, error) {
	r.nextID++
	created := *c
	created.ID = "case_" + strconv.Itoa(r.nextID)
	r.cases = append(r.cases, created)
	return &created, nil
}

func (r *stubCaseRepo) FindAll(_ context.Context) ([]domain.Case, error) {
	r.findHits++
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]domain.Case, len(r.cases))
	copy(out, r.cases)
	return out, nil
}

func (r *stubCaseRepo) DeleteByID(_ context.Context, id string) error {
	for i, c := range r.cases {
		if c.ID == id {
			r.cases = append(r.cases[:i], r.cases[i+1:]...)
			return nil
		}
	}
	return domain.ErrCaseNotFound
}

type stubCaseCache struct {
	cases       []domain.Case
	populated   bool
	invalidated int
	getErr      error
	setErr      error
}

func (c *stubCaseCache) Get(_ context.Context) ([]domain.Case, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	if !c.populated {
		return nil, false, nil
	}
	return c.cases, true, nil
}

func (c *stubCaseCache) Set(_ context.Context, cases []domain.Case) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.cases = cases
	c.populated = true
	return nil
}

func (c *stubCaseCache) Invalidate(_ context.Context) error {
	c.cases = nil
	c.populated = false
	c.invalidated++
	return nil
}

func TestCaseService_CreateThenList(t *testing.T) {
	repo := &stubCaseRepo{}
	svc := NewCaseService(repo, &stubCaseCache{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCaseInput{
		OwnerID:     "user_1",
		Title:       "t1",
		Category:    "infrastructure",
		Description: "broken street light",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.OwnerID != "user_1" {
		t.Fatalf("unexpected owner: %s", created.OwnerID)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}

	cases, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(cases) != 1 || cases[0].ID != created.ID {
		t.Fatalf("created case not visible in list: %+v", cases)
	}
}

func TestCaseService_Create_Validation(t *testing.T) {
	svc := NewCaseService(&stubCaseRepo{}, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateCaseInput{OwnerID: "user_1"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateCaseInput{Title: "t1"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing owner, got %v", err)
	}
}

func TestCaseService_List_CacheHit(t *testing.T) {
	repo := &stubCaseRepo{}
	cache := &stubCaseCache{}
	svc := NewCaseService(repo, cache, zerolog.Nop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	if !cache.populated {
		t.Fatalf("expected cache to be populated after a miss")
	}

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if repo.findHits != 1 {
		t.Fatalf("expected one repository read, got %d", repo.findHits)
	}
}

func TestCaseService_List_CacheFailureFallsThrough(t *testing.T) {
	repo := &stubCaseRepo{cases: []domain.Case{{ID: "case_1", Title: "t1"}}}
	cache := &stubCaseCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewCaseService(repo, cache, zerolog.Nop())

	cases, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list should not fail on cache errors: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("expected repository data, got %+v", cases)
	}
}

func TestCaseService_MutationsInvalidateCache(t *testing.T) {
	repo := &stubCaseRepo{}
	cache := &stubCaseCache{}
	svc := NewCaseService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCaseInput{OwnerID: "user_1", Title: "t1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected invalidation after create, got %d", cache.invalidated)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if cache.invalidated != 2 {
		t.Fatalf("expected invalidation after delete, got %d", cache.invalidated)
	}
}

func TestCaseService_Delete_ExactlyOnce(t *testing.T) {
	repo := &stubCaseRepo{}
	svc := NewCaseService(repo, nil, zerolog.Nop())

	first, _ := svc.Create(context.Background(), ports.CreateCaseInput{OwnerID: "user_1", Title: "keep"})
	doomed, _ := svc.Create(context.Background(), ports.CreateCaseInput{OwnerID: "user_1", Title: "remove"})

	if err := svc.Delete(context.Background(), doomed.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	cases, _ := svc.List(context.Background())
	if len(cases) != 1 || cases[0].ID != first.ID {
		t.Fatalf("delete removed the wrong case: %+v", cases)
	}

	if err := svc.Delete(context.Background(), doomed.ID); err != domain.ErrCaseNotFound {
		t.Fatalf("expected ErrCaseNotFound on second delete, got %v", err)
	}
}
