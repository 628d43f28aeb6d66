package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mjsalles/alertahub-backend/internal/domain"
	"github.com/mjsalles/alertahub-backend/internal/service/alert"
)

const (
	defaultAlertsLimit = 50
	maxAlertsLimit     = 200
)

// alertService defines the minimal interface needed by AlertHandler.
type alertService interface {
	Dispatch(ctx context.Context, input alert.DispatchInput) (*alert.DispatchResult, error)
	Recent(ctx context.Context, limit int) ([]*domain.DeliveryRecord, error)
}

// AlertHandler serves the alert dispatch and history endpoints.
type AlertHandler struct {
	svc alertService
	log *slog.Logger
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, log: logger.With("handler", "alert")}
}

type sendAlertRequest struct {
	ContactIDs []string `json:"contactIds"`
	Message    string   `json:"message"`
}

type contactResultResponse struct {
	ContactID   string `json:"contactId"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	MessageID   string `json:"messageId,omitempty"`
}

type sendAlertResponse struct {
	Success              bool                    `json:"success"`
	PendingConfiguration bool                    `json:"pendingConfiguration"`
	Message              string                  `json:"message"`
	Results              []contactResultResponse `json:"results"`
}

type deliveryRecordResponse struct {
	ID          string    `json:"id"`
	ContactID   string    `json:"contactId"`
	ContactName string    `json:"contactName"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	MessageID   string    `json:"messageId,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Send handles POST /send-alert. Per-contact failures never produce a
// non-200 response; only validation errors (400) and faults outside the
// dispatch loop (500) do.
func (h *AlertHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Dispatch(r.Context(), alert.DispatchInput{
		ContactIDs: req.ContactIDs,
		Message:    req.Message,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	results := make([]contactResultResponse, 0, len(result.Results))
	for _, res := range result.Results {
		results = append(results, contactResultResponse{
			ContactID:   res.ContactID,
			ContactName: res.ContactName,
			Phone:       res.Phone,
			Success:     res.Success,
			Status:      res.Status.String(),
			Error:       res.Error,
			MessageID:   res.MessageID,
		})
	}

	writeJSON(w, http.StatusOK, sendAlertResponse{
		Success:              result.Success,
		PendingConfiguration: result.PendingConfiguration,
		Message:              result.Message,
		Results:              results,
	})
}

// List handles GET /alerts. The optional limit parameter defaults to 50 and
// is capped at 200.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultAlertsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxAlertsLimit)
	}

	records, err := h.svc.Recent(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]deliveryRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, deliveryRecordResponse{
			ID:          rec.ID.String(),
			ContactID:   rec.ContactID.String(),
			ContactName: rec.ContactName,
			Phone:       rec.Phone,
			Message:     rec.Message,
			Status:      rec.Status.String(),
			Error:       rec.ErrorMessage,
			MessageID:   rec.ProviderMessageID,
			Timestamp:   rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"alerts":  out,
	})
}

func (h *AlertHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
