package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	pb "github.com/dmitrijs2005/jobwizard/internal/proto"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/dmitrijs2005/jobwizard/internal/server/services"
	"github.com/dmitrijs2005/jobwizard/internal/server/workflow"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) GetCurrentDraft(ctx context.Context, _ *pb.GetCurrentDraftRequest) (*pb.DraftResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.drafts.GetCurrentDraft(ctx, actor)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.draftResponse(ctx, "", d)
}

func (s *GRPCServer) SaveField(ctx context.Context, req *pb.SaveFieldRequest) (*pb.DraftResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	expected, err := services.CheckExpectedVersion(req.ExpectedVersion)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	value, err := workflow.DecodeValue([]byte(req.GetValueJson()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.drafts.SaveField(ctx, actor, req.GetDraftId(), expected, req.GetFieldKey(), value)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.toDraftResponse(ctx, res)
}

func (s *GRPCServer) AdvanceStep(ctx context.Context, req *pb.AdvanceStepRequest) (*pb.DraftResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	expected, err := services.CheckExpectedVersion(req.ExpectedVersion)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.drafts.AdvanceStep(ctx, actor, req.GetDraftId(), expected, req.GetTargetStep())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.toDraftResponse(ctx, res)
}

func (s *GRPCServer) StartAppraisal(ctx context.Context, req *pb.StartAppraisalRequest) (*pb.DraftResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	expected, err := services.CheckExpectedVersion(req.ExpectedVersion)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.drafts.StartAppraisal(ctx, actor, req.GetDraftId(), expected)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.toDraftResponse(ctx, res)
}

func (s *GRPCServer) CreatePaymentIntent(ctx context.Context, req *pb.CreatePaymentIntentRequest) (*pb.PaymentIntentResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	expected, err := services.CheckExpectedVersion(req.ExpectedVersion)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.drafts.CreatePaymentIntent(ctx, actor, req.GetDraftId(), expected)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	d, err := toProtoDraft(res.Draft)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.PaymentIntentResponse{
		Outcome:  string(res.Outcome),
		Reason:   res.Reason,
		Replayed: res.Replayed,
		Draft:    d,
	}
	if res.Intent != nil {
		resp.ClientSecret = res.Intent.ClientSecret
		resp.ReturnUrl = res.Intent.ReturnURL
		resp.Amount = res.Intent.AmountCents
		resp.Currency = res.Intent.Currency
	}
	return resp, nil
}

func (s *GRPCServer) VerifyPayment(ctx context.Context, req *pb.VerifyPaymentRequest) (*pb.VerifyPaymentResponse, error) {
	res, err := s.drafts.VerifyPayment(ctx, req.GetPaymentReference())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.VerifyPaymentResponse{JobId: res.JobID, Funded: res.Funded, Idempotent: res.Idempotent}, nil
}

func (s *GRPCServer) RequestPhotoUpload(ctx context.Context, req *pb.RequestPhotoUploadRequest) (*pb.PhotoUploadResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	up, err := s.drafts.RequestPhotoUpload(ctx, actor, req.GetDraftId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.PhotoUploadResponse{StorageKey: up.StorageKey, UploadUrl: up.URL}, nil
}

func (s *GRPCServer) ResetDraft(ctx context.Context, _ *pb.ResetDraftRequest) (*pb.DraftResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.drafts.ResetDraft(ctx, actor)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.draftResponse(ctx, string(services.OutcomeOK), d)
}

func (s *GRPCServer) SeedPricingReady(ctx context.Context, _ *pb.SeedPricingReadyRequest) (*pb.DraftResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.drafts.SeedPricingReady(ctx, actor)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.draftResponse(ctx, string(services.OutcomeOK), d)
}

func (s *GRPCServer) actor(ctx context.Context) (string, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "unauthorized")
	}
	return actor, nil
}

// toStatus maps service errors onto gRPC codes. Unexpected errors are
// logged and hidden behind a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidRequest), errors.Is(err, common.ErrInvalidFieldKey):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrPaymentIntentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrPaymentNotFunded), errors.Is(err, common.ErrNotConfigured), errors.Is(err, common.ErrStepInvalid):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrTestHooksDisabled):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}

func (s *GRPCServer) draftResponse(ctx context.Context, outcome string, d *models.Draft) (*pb.DraftResponse, error) {
	pd, err := toProtoDraft(d)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DraftResponse{Outcome: outcome, Draft: pd}, nil
}

func (s *GRPCServer) toDraftResponse(ctx context.Context, res *services.DraftResult) (*pb.DraftResponse, error) {
	resp, err := s.draftResponse(ctx, string(res.Outcome), res.Draft)
	if err != nil {
		return nil, err
	}
	resp.Reason = res.Reason
	resp.NextAllowedStep = string(res.NextAllowedStep)
	return resp, nil
}

func toProtoDraft(d *models.Draft) (*pb.Draft, error) {
	if d == nil {
		return nil, nil
	}

	data := d.Data
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode draft %s data: %w", d.ID, err)
	}

	out := &pb.Draft{
		Id:              d.ID,
		Version:         d.Version,
		CurrentStep:     string(d.CurrentStep),
		DataJson:        string(raw),
		Validation:      d.Validation,
		FieldStates:     make(map[string]*pb.FieldState, len(d.FieldStates)),
		JobId:           d.JobID,
		PaymentIntentId: d.PaymentIntentID,
		CreatedAt:       timestamppb.New(d.CreatedAt),
		UpdatedAt:       timestamppb.New(d.UpdatedAt),
	}
	for k, fs := range d.FieldStates {
		state := &pb.FieldState{Status: string(fs.Status), Hash: fs.Hash}
		if fs.SavedAt != nil {
			state.SavedAt = timestamppb.New(*fs.SavedAt)
		}
		out.FieldStates[k] = state
	}
	return out, nil
}
