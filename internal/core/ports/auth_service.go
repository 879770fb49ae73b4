package ports

import (
	"context"

	"github.com/caseflow/case-api/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	Role  domain.Role
}

// AuthService implements the credential and account-administration use cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ToggleBlock(ctx context.Context, userID string) (*domain.User, error)
	// SeedAdmin creates the well-known admin account if it does not exist
	// yet. It reports true when the account was created by this call.
	SeedAdmin(ctx context.Context) (bool, error)
}
