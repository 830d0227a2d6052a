package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/jobwizard/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	SetAccessToken(token string)
	GetCurrentDraft(ctx context.Context) (*models.DraftResponse, error)
	SaveField(ctx context.Context, draftID string, expected int64, key string, value json.RawMessage) (*models.DraftResponse, error)
	AdvanceStep(ctx context.Context, draftID string, expected int64, target string) (*models.DraftResponse, error)
	StartAppraisal(ctx context.Context, draftID string, expected int64) (*models.DraftResponse, error)
	CreatePaymentIntent(ctx context.Context, draftID string, expected int64) (*models.PaymentIntentResponse, error)
	VerifyPayment(ctx context.Context, reference string) (*models.VerifyPaymentResponse, error)
	RequestPhotoUpload(ctx context.Context, draftID string) (*models.PhotoUploadResponse, error)
	ResetDraft(ctx context.Context) (*models.DraftResponse, error)
	SeedPricingReady(ctx context.Context) (*models.DraftResponse, error)
}
