// Package auth implements operator authentication: registration (guarded by
// the admin bootstrap secret), password login, token validation, and the
// current-operator lookup.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	internalauth "github.com/mjsalles/alertahub-backend/internal/auth"
	"github.com/mjsalles/alertahub-backend/internal/config"
	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// operatorRepo defines the operator repository interface needed by the auth
// service.
type operatorRepo interface {
	Create(ctx context.Context, operator *domain.Operator) (*domain.Operator, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
	GetByEmail(ctx context.Context, email string) (*domain.Operator, error)
}

// txManager defines the transaction manager interface needed by the auth
// service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the token management interface needed by the auth
// service.
type jwtManager interface {
	Generate(identity internalauth.Identity) (string, error)
	Validate(token string) (internalauth.Identity, error)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	operators operatorRepo
	tx        txManager
	jwt       jwtManager
	cfg       config.AuthConfig
	admin     config.AdminConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	operators operatorRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
	admin config.AdminConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		operators: operators,
		tx:        tx,
		jwt:       jwt,
		cfg:       cfg,
		admin:     admin,
	}
}

// ValidateToken checks a bearer token and returns the embedded identity.
// Returns domain.ErrUnauthorized for any invalid, expired, or foreign token.
func (s *Service) ValidateToken(_ context.Context, token string) (internalauth.Identity, error) {
	identity, err := s.jwt.Validate(token)
	if err != nil {
		return internalauth.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}
