// Package models defines the client-side view of drafts used by the
// jobwizard CLI. The gRPC client decodes wire messages into these types and
// the snapshot cache stores them as JSON.
package models

import "time"

// Outcomes reported by mutating calls.
const (
	OutcomeOK              = "ok"
	OutcomeVersionConflict = "version_conflict"
	OutcomeStepInvalid     = "step_invalid"
)

type FieldState struct {
	Status  string     `json:"status"`
	SavedAt *time.Time `json:"savedAt,omitempty"`
	Hash    string     `json:"hash,omitempty"`
}

// Draft is the decoded snapshot of a draft. Data holds the nested JSON
// document with numbers kept as json.Number.
type Draft struct {
	ID              string                `json:"id"`
	Version         int64                 `json:"version"`
	CurrentStep     string                `json:"currentStep"`
	Data            map[string]any        `json:"data"`
	Validation      map[string]string     `json:"validation"`
	FieldStates     map[string]FieldState `json:"fieldStates"`
	JobID           *string               `json:"jobId"`
	PaymentIntentID *string               `json:"paymentIntentId"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// DraftResponse answers every draft-returning call. Outcome is empty for
// plain reads.
type DraftResponse struct {
	Outcome         string
	Reason          string
	NextAllowedStep string
	Draft           *Draft
}

type PaymentIntentResponse struct {
	Outcome      string
	Reason       string
	ClientSecret string
	ReturnURL    string
	Amount       int64
	Currency     string
	Replayed     bool
	Draft        *Draft
}

type VerifyPaymentResponse struct {
	JobID      string
	Funded     bool
	Idempotent bool
}

type PhotoUploadResponse struct {
	StorageKey string
	UploadURL  string
}
