// Package alert implements the alert dispatch pipeline: resolve each target
// contact, invoke the messaging gateway, append a delivery record, and
// aggregate the per-contact outcomes.
package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mjsalles/alertahub-backend/internal/domain"
	"github.com/mjsalles/alertahub-backend/internal/messaging"
	"github.com/mjsalles/alertahub-backend/pkg/ctxutil"
)

// Aggregate summary messages, selected by priority: pending configuration
// wins over the success/partial-failure distinction.
const (
	msgPendingConfig = "WhatsApp credentials not configured. Alerts logged but not sent."
	msgAllSuccess    = "All alerts sent successfully"
	msgSomeFailed    = "Some alerts failed to send"
)

// contactGetter defines the contact lookup interface needed by the dispatcher.
type contactGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
}

// messageGateway defines the messaging gateway interface needed by the
// dispatcher. Expected provider failures come back inside the Result; an
// error return is an unexpected fault.
type messageGateway interface {
	Send(ctx context.Context, phone string, message string) (messaging.Result, error)
}

// deliveryLog defines the append-only delivery record interface needed by the
// dispatcher.
type deliveryLog interface {
	Create(ctx context.Context, record *domain.DeliveryRecord) (*domain.DeliveryRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.DeliveryRecord, error)
}

// Service implements alert dispatch and delivery log queries.
type Service struct {
	log      *slog.Logger
	contacts contactGetter
	gateway  messageGateway
	records  deliveryLog
}

// NewService creates a new alert service instance.
func NewService(logger *slog.Logger, contacts contactGetter, gateway messageGateway, records deliveryLog) *Service {
	return &Service{
		log:      logger.With("service", "alert"),
		contacts: contacts,
		gateway:  gateway,
		records:  records,
	}
}

// Dispatch sends the message to every contact in input order, one at a time.
// Each contact is a fault boundary: a failure affecting one contact is
// absorbed into its result entry and never aborts the remaining contacts.
// The returned result list has exactly one entry per input id, in input
// order. Only pre-loop validation failures produce an error return.
func (s *Service) Dispatch(ctx context.Context, input DispatchInput) (*DispatchResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	results := make([]ContactResult, 0, len(input.ContactIDs))
	for _, contactID := range input.ContactIDs {
		results = append(results, s.processContact(ctx, contactID, input.Message))
	}

	allSuccess := true
	pendingConfig := false
	for _, r := range results {
		if !r.Success {
			allSuccess = false
		}
		if r.Status == domain.StatusPendingConfig {
			pendingConfig = true
		}
	}

	summary := msgSomeFailed
	switch {
	case pendingConfig:
		summary = msgPendingConfig
	case allSuccess:
		summary = msgAllSuccess
	}

	operatorID, _ := ctxutil.OperatorIDFromCtx(ctx)
	s.log.InfoContext(ctx, "alert dispatched",
		slog.String("operator_id", operatorID.String()),
		slog.Int("contacts", len(results)),
		slog.Bool("success", allSuccess),
		slog.Bool("pending_configuration", pendingConfig),
	)

	return &DispatchResult{
		Success:              allSuccess,
		PendingConfiguration: pendingConfig,
		Message:              summary,
		Results:              results,
	}, nil
}

// processContact handles one contact end to end: resolve, send, log. It
// never returns an error; every fault becomes a result entry.
func (s *Service) processContact(ctx context.Context, contactID string, message string) ContactResult {
	contact, err := s.resolveContact(ctx, contactID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// No contact snapshot exists, so no delivery record is written.
			return ContactResult{
				ContactID: contactID,
				Success:   false,
				Status:    domain.StatusNotFound,
				Error:     "Contact not found",
			}
		}
		s.log.ErrorContext(ctx, "contact lookup failed",
			slog.String("contact_id", contactID),
			slog.String("error", err.Error()),
		)
		return ContactResult{
			ContactID: contactID,
			Success:   false,
			Status:    domain.StatusError,
			Error:     err.Error(),
		}
	}

	outcome, err := s.gateway.Send(ctx, contact.Phone, message)
	if err != nil {
		// Unexpected gateway fault (e.g. malformed provider response). The
		// contact snapshot exists, so the attempt is still logged.
		outcome = messaging.Result{
			Status:       domain.StatusError,
			ErrorMessage: err.Error(),
		}
	}

	record := &domain.DeliveryRecord{
		ID:                uuid.New(),
		ContactID:         contact.ID,
		ContactName:       contact.Name,
		Phone:             contact.Phone,
		Message:           message,
		Status:            outcome.Status,
		ErrorMessage:      outcome.ErrorMessage,
		ProviderMessageID: outcome.MessageID,
		CreatedAt:         time.Now().UTC(),
	}

	if _, err := s.records.Create(ctx, record); err != nil {
		s.log.ErrorContext(ctx, "delivery record write failed",
			slog.String("contact_id", contactID),
			slog.String("error", err.Error()),
		)
		return ContactResult{
			ContactID:   contactID,
			ContactName: contact.Name,
			Phone:       contact.Phone,
			Success:     false,
			Status:      domain.StatusError,
			Error:       fmt.Sprintf("record delivery attempt: %v", err),
		}
	}

	return ContactResult{
		ContactID:   contactID,
		ContactName: contact.Name,
		Phone:       contact.Phone,
		Success:     outcome.Status.IsSuccess(),
		Status:      outcome.Status,
		Error:       outcome.ErrorMessage,
		MessageID:   outcome.MessageID,
	}
}

// resolveContact parses the raw id and looks the contact up. A malformed id
// is indistinguishable from an absent one for the caller: both are NOT_FOUND.
func (s *Service) resolveContact(ctx context.Context, contactID string) (*domain.Contact, error) {
	id, err := uuid.Parse(contactID)
	if err != nil {
		return nil, fmt.Errorf("contact %s: %w", contactID, domain.ErrNotFound)
	}
	return s.contacts.GetByID(ctx, id)
}

// Recent returns the newest delivery records for the reporting surface.
func (s *Service) Recent(ctx context.Context, limit int) ([]*domain.DeliveryRecord, error) {
	records, err := s.records.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("alert.Recent: %w", err)
	}
	return records, nil
}
