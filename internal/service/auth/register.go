package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// Register creates a new operator. The caller must present the admin
// bootstrap secret; this is the only way operators come into existence.
// Returns ErrForbidden on a bad secret and ErrAlreadyExists on a duplicate
// email.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Operator, error) {
	if subtle.ConstantTimeCompare([]byte(input.AdminSecret), []byte(s.admin.Secret)) != 1 {
		return nil, fmt.Errorf("admin secret mismatch: %w", domain.ErrForbidden)
	}

	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Existence check and insert run in one transaction; the unique
	// constraint on email is the concurrent-registration backstop.
	var created *domain.Operator

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.operators.GetByEmail(txCtx, input.Email)
		if err == nil {
			return fmt.Errorf("email %s: %w", input.Email, domain.ErrAlreadyExists)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check existing email: %w", err)
		}

		operator := &domain.Operator{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: string(hash),
			Name:         input.Name,
			CreatedAt:    time.Now().UTC(),
		}

		created, err = s.operators.Create(txCtx, operator)
		if err != nil {
			return fmt.Errorf("create operator: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "operator registered",
		slog.String("operator_id", created.ID.String()),
	)

	return created, nil
}
