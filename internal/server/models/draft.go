// Package models defines server-side data models persisted by the draft store.
package models

import (
	"time"
)

// Step is one stage of the linear posting workflow.
type Step string

const (
	StepProfile   Step = "PROFILE"
	StepDetails   Step = "DETAILS"
	StepPricing   Step = "PRICING"
	StepPayment   Step = "PAYMENT"
	StepConfirmed Step = "CONFIRMED"
)

// Steps lists every step in workflow order.
var Steps = []Step{StepProfile, StepDetails, StepPricing, StepPayment, StepConfirmed}

// ParseStep accepts the exact upper-case step name.
func ParseStep(s string) (Step, bool) {
	for _, st := range Steps {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// FieldStatus is the client-visible save state of a single field.
type FieldStatus string

const (
	FieldIdle   FieldStatus = "idle"
	FieldSaving FieldStatus = "saving"
	FieldSaved  FieldStatus = "saved"
	FieldError  FieldStatus = "error"
)

// FieldState records the last successful save of one field path.
type FieldState struct {
	Status  FieldStatus `json:"status"`
	SavedAt *time.Time  `json:"savedAt,omitempty"`
	// Hash is the content hash of the value that was saved.
	Hash string `json:"hash,omitempty"`
}

// PaymentIntent is the persisted result of the first successful
// CreatePaymentIntent call. Retries are answered from it.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
	ReturnURL    string `json:"returnUrl"`
	AmountCents  int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// Draft is the mutable, versioned document of one in-progress job posting.
//
// Version is the only concurrency token: every successful mutation bumps it
// by exactly one. Validation is derived from Data and never set directly.
type Draft struct {
	ID          string                `json:"id"`
	OwnerID     string                `json:"ownerId"`
	Version     int64                 `json:"version"`
	CurrentStep Step                  `json:"currentStep"`
	Data        map[string]any        `json:"data"`
	Validation  map[string]string     `json:"validation"`
	FieldStates map[string]FieldState `json:"fieldStates"`

	JobID           *string `json:"jobId"`
	PaymentIntentID *string `json:"paymentIntentId"`

	// Payment holds the client secret and is therefore never part of a
	// draft snapshot sent to clients.
	Payment *PaymentIntent `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsTerminal reports whether the draft reached CONFIRMED.
func (d *Draft) IsTerminal() bool {
	return d.CurrentStep == StepConfirmed
}

// Clone returns a deep copy so callers can compute a next state without
// touching a value somebody else still holds.
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	c := *d
	c.Data = cloneTree(d.Data)

	if d.Validation != nil {
		c.Validation = make(map[string]string, len(d.Validation))
		for k, v := range d.Validation {
			c.Validation[k] = v
		}
	}
	if d.FieldStates != nil {
		c.FieldStates = make(map[string]FieldState, len(d.FieldStates))
		for k, v := range d.FieldStates {
			if v.SavedAt != nil {
				t := *v.SavedAt
				v.SavedAt = &t
			}
			c.FieldStates[k] = v
		}
	}
	if d.JobID != nil {
		s := *d.JobID
		c.JobID = &s
	}
	if d.PaymentIntentID != nil {
		s := *d.PaymentIntentID
		c.PaymentIntentID = &s
	}
	if d.Payment != nil {
		p := *d.Payment
		c.Payment = &p
	}
	return &c
}

func cloneTree(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneTree(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}
