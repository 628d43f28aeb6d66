package auth

import "github.com/mjsalles/alertahub-backend/internal/domain"

// LoginResult carries the signed token and the authenticated operator.
type LoginResult struct {
	Token    string
	Operator *domain.Operator
}
