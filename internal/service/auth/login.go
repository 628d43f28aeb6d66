package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	internalauth "github.com/mjsalles/alertahub-backend/internal/auth"
	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// Login authenticates an operator with email + password and issues a signed
// token. Returns ErrUnauthorized for an unknown email or a wrong password —
// the caller cannot tell which.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	operator, err := s.operators.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get operator: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.Generate(internalauth.Identity{
		OperatorID: operator.ID,
		Email:      operator.Email,
		Name:       operator.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Login sign token: %w", err)
	}

	s.log.InfoContext(ctx, "operator logged in",
		slog.String("operator_id", operator.ID.String()),
	)

	return &LoginResult{
		Token:    token,
		Operator: operator,
	}, nil
}
