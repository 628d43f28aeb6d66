package alert

import (
	"strings"

	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// DispatchInput holds parameters for the dispatch operation.
type DispatchInput struct {
	ContactIDs []string
	Message    string
}

// Normalize trims the message body. Contact ids are opaque and left as-is.
func (i *DispatchInput) Normalize() {
	i.Message = strings.TrimSpace(i.Message)
}

// Validate checks the input. It must be called after Normalize.
func (i DispatchInput) Validate() error {
	var errs []domain.FieldError

	if len(i.ContactIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "contactIds", Message: "required and must not be empty"})
	}

	if i.Message == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ContactResult is the per-contact outcome mirrored back to the caller.
type ContactResult struct {
	ContactID   string
	ContactName string
	Phone       string
	Success     bool
	Status      domain.DeliveryStatus
	Error       string
	MessageID   string
}

// DispatchResult aggregates the per-contact results of one dispatch.
type DispatchResult struct {
	Success              bool
	PendingConfiguration bool
	Message              string
	Results              []ContactResult
}
