package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/caseflow/case-api/internal/core/domain"
	"github.com/caseflow/case-api/internal/core/ports"
	"github.com/caseflow/case-api/internal/core/token"
)

// AdminSeed holds the credentials of the well-known bootstrap admin account.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements registration, login, block toggling, and the
// one-time admin seed.
type AuthService struct {
	repo   ports.UserRepository
	issuer *token.Issuer
	seed   AdminSeed
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, seed AdminSeed, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, seed: seed, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Blocked:      false,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Blocked status is checked only after the password matched, so it is
	// never revealed to a caller who does not hold the credentials.
	if user.Blocked {
		return nil, domain.ErrUserBlocked
	}

	tkn, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{Token: tkn, Role: user.Role}, nil
}

// ToggleBlock flips the blocked flag on the target user and returns the
// updated record.
func (s *AuthService) ToggleBlock(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetBlocked(ctx, user.ID, !user.Blocked); err != nil {
		return nil, err
	}

	user.Blocked = !user.Blocked
	s.logger.Info().Str("user_id", user.ID).Bool("blocked", user.Blocked).Msg("block flag toggled")
	return user, nil
}

// SeedAdmin creates the configured admin account when absent. Idempotent:
// repeated calls after the first are no-ops.
func (s *AuthService) SeedAdmin(ctx context.Context) (bool, error) {
	if _, err := s.repo.FindByEmail(ctx, s.seed.Email); err == nil {
		return false, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	admin := &domain.User{
		Name:         s.seed.Name,
		Email:        s.seed.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, admin); err != nil {
		// lost a race against a concurrent seed call
		if errors.Is(err, domain.ErrEmailTaken) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info().Str("email", s.seed.Email).Msg("admin account seeded")
	return true, nil
}
