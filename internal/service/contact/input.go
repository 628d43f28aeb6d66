package contact

import (
	"strings"

	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// RegisterInput holds parameters for contact registration.
type RegisterInput struct {
	Name  string
	Alias string
	Phone string
	Notes string
}

// Normalize trims text fields and canonicalizes the phone to digits only.
func (i *RegisterInput) Normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Alias = strings.TrimSpace(i.Alias)
	i.Notes = strings.TrimSpace(i.Notes)
	i.Phone = domain.NormalizePhone(i.Phone)
}

// Validate checks the input. It must be called after Normalize.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	switch {
	case i.Phone == "":
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	case len(i.Phone) < 10 || len(i.Phone) > 15:
		errs = append(errs, domain.FieldError{Field: "phone", Message: "must have 10 to 15 digits"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
