package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/google/uuid"
)

// Sandbox is an in-process processor for development and tests.
type Sandbox struct {
	mu       sync.Mutex
	autoFund bool
	byKey    map[string]*Intent
	byID     map[string]*Intent
	funded   map[string]bool
	calls    int
}

// NewSandbox returns a processor. With autoFund every allocated intent
// counts as paid immediately.
func NewSandbox(autoFund bool) *Sandbox {
	return &Sandbox{
		autoFund: autoFund,
		byKey:    map[string]*Intent{},
		byID:     map[string]*Intent{},
		funded:   map[string]bool{},
	}
}

func (s *Sandbox) AllocateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", common.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if req.IdempotencyKey != "" {
		if in, ok := s.byKey[req.IdempotencyKey]; ok {
			c := *in
			return &c, nil
		}
	}

	id := "pi_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	secret, err := randomHex(12)
	if err != nil {
		return nil, err
	}
	in := &Intent{
		ID:           id,
		ClientSecret: id + "_secret_" + secret,
		ReturnURL:    req.ReturnURL,
		AmountCents:  req.AmountCents,
		Currency:     req.Currency,
	}
	s.byID[id] = in
	if req.IdempotencyKey != "" {
		s.byKey[req.IdempotencyKey] = in
	}
	if s.autoFund {
		s.funded[id] = true
	}

	c := *in
	return &c, nil
}

func (s *Sandbox) IsFunded(ctx context.Context, reference string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.funded[reference], nil
}

// MarkFunded simulates the customer completing the payment.
func (s *Sandbox) MarkFunded(reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[reference]; !ok {
		return fmt.Errorf("%w: %s", common.ErrPaymentIntentNotFound, reference)
	}
	s.funded[reference] = true
	return nil
}

// Calls returns how many times AllocateIntent was invoked.
func (s *Sandbox) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("random: %w", err)
	}
	return hex.EncodeToString(b), nil
}
