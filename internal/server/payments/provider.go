// Package payments abstracts the payment processor. Only intent allocation
// and funding checks are needed by the workflow.
package payments

import "context"

// IntentRequest asks the processor for a new payment intent. IdempotencyKey
// is the job id, so a processor that honours idempotency keys returns the
// same intent for a repeated request.
type IntentRequest struct {
	IdempotencyKey string
	DraftID        string
	OwnerID        string
	AmountCents    int64
	Currency       string
	Description    string
	ReturnURL      string
}

// Intent is the processor's answer to IntentRequest.
type Intent struct {
	ID           string
	ClientSecret string
	ReturnURL    string
	AmountCents  int64
	Currency     string
}

type Provider interface {
	AllocateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	// IsFunded reports whether the payment identified by reference has
	// succeeded. Unknown references are not funded.
	IsFunded(ctx context.Context, reference string) (bool, error)
}
