// Package whatsapp implements the messaging gateway over the WhatsApp Cloud
// API. While the configured credentials are still the PENDING_CONFIGURATION
// placeholder the gateway degrades safely: it reports PENDING_CONFIG without
// touching the network, so the system is deployable before provider
// onboarding completes.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mjsalles/alertahub-backend/internal/config"
	"github.com/mjsalles/alertahub-backend/internal/domain"
	"github.com/mjsalles/alertahub-backend/internal/messaging"
)

// Gateway sends text messages through the WhatsApp Cloud API.
type Gateway struct {
	cfg        config.WhatsAppConfig
	httpClient *http.Client
	log        *slog.Logger
}

// NewGateway creates a Gateway from configuration.
func NewGateway(cfg config.WhatsAppConfig, logger *slog.Logger) *Gateway {
	return &Gateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "whatsapp"),
	}
}

// Send delivers a text message to a digits-only phone number.
//
// Expected provider failures (rejection, transport fault) are absorbed into a
// StatusFailed result, never returned as an error. An error return means the
// provider accepted the request but the response shape was unusable; the
// caller treats that as an unexpected fault.
func (g *Gateway) Send(ctx context.Context, phone string, message string) (messaging.Result, error) {
	if g.cfg.Pending() {
		return messaging.Result{
			Status:       domain.StatusPendingConfig,
			ErrorMessage: "WhatsApp credentials not configured yet",
		}, nil
	}

	payload := sendRequest{
		MessagingProduct: "whatsapp",
		To:               domain.NormalizePhone(phone),
		Text:             textBody{Body: message},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return messaging.Result{}, fmt.Errorf("whatsapp: marshal request: %w", err)
	}

	reqURL := strings.TrimRight(g.cfg.APIURL, "/") + "/" + g.cfg.PhoneID + "/messages"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return messaging.Result{}, fmt.Errorf("whatsapp: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.doWithRetry(ctx, req, body)
	if err != nil {
		g.log.WarnContext(ctx, "whatsapp request failed", slog.String("error", err.Error()))
		return messaging.Result{
			Status:       domain.StatusFailed,
			ErrorMessage: err.Error(),
		}, nil
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return messaging.Result{}, fmt.Errorf("whatsapp: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errMsg := extractError(respBody)
		if errMsg == "" {
			errMsg = fmt.Sprintf("whatsapp: status %d", resp.StatusCode)
		}
		g.log.WarnContext(ctx, "whatsapp send rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("error", errMsg),
		)
		return messaging.Result{
			Status:       domain.StatusFailed,
			ErrorMessage: errMsg,
		}, nil
	}

	var ok sendResponse
	if err := json.Unmarshal(respBody, &ok); err != nil {
		return messaging.Result{}, fmt.Errorf("whatsapp: decode response: %w", err)
	}
	if len(ok.Messages) == 0 || ok.Messages[0].ID == "" {
		return messaging.Result{}, fmt.Errorf("whatsapp: response carries no message id")
	}

	g.log.DebugContext(ctx, "whatsapp send accepted",
		slog.String("message_id", ok.Messages[0].ID),
	)

	return messaging.Result{
		Status:    domain.StatusSuccess,
		MessageID: ok.Messages[0].ID,
	}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The request body is re-attached for the second attempt.
func (g *Gateway) doWithRetry(ctx context.Context, req *http.Request, body []byte) (*http.Response, error) {
	resp, err := g.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	g.log.WarnContext(ctx, "whatsapp retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retryReq := req.Clone(ctx)
	retryReq.Body = io.NopCloser(bytes.NewReader(body))

	return g.httpClient.Do(retryReq)
}

// extractError pulls the human-readable message out of a provider error
// payload. Returns "" when the body is not the expected error shape.
func extractError(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Error.Message
}
