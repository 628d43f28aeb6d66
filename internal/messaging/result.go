// Package messaging defines the outcome contract between the alert
// dispatcher and messaging gateway implementations.
package messaging

import "github.com/mjsalles/alertahub-backend/internal/domain"

// Result is the tri-state outcome of one delivery attempt:
//   - StatusSuccess: the provider accepted the message, MessageID is set.
//   - StatusFailed: the provider rejected the message or the call failed,
//     ErrorMessage is set.
//   - StatusPendingConfig: credentials are still the administrative
//     placeholder; nothing was sent.
type Result struct {
	Status       domain.DeliveryStatus
	MessageID    string
	ErrorMessage string
}

// Success reports whether the attempt was accepted by the provider.
func (r Result) Success() bool { return r.Status.IsSuccess() }
