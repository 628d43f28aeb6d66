package auth

import (
	"context"
	"fmt"

	"github.com/mjsalles/alertahub-backend/internal/domain"
	"github.com/mjsalles/alertahub-backend/pkg/ctxutil"
)

// Me resolves the authenticated operator from the store. Returns
// ErrUnauthorized when the context carries no operator identity, and
// ErrNotFound when the operator record no longer exists.
func (s *Service) Me(ctx context.Context) (*domain.Operator, error) {
	operatorID, ok := ctxutil.OperatorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	operator, err := s.operators.GetByID(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}

	return operator, nil
}
