package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jobwizard/internal/client/models"
	pb "github.com/dmitrijs2005/jobwizard/internal/proto"
)

func draftFromProto(d *pb.Draft) (*models.Draft, error) {
	if d == nil {
		return nil, nil
	}

	out := &models.Draft{
		ID:              d.GetId(),
		Version:         d.GetVersion(),
		CurrentStep:     d.GetCurrentStep(),
		Data:            map[string]any{},
		Validation:      d.GetValidation(),
		FieldStates:     make(map[string]models.FieldState, len(d.GetFieldStates())),
		JobID:           d.JobId,
		PaymentIntentID: d.PaymentIntentId,
	}
	if out.Validation == nil {
		out.Validation = map[string]string{}
	}
	if ts := d.GetCreatedAt(); ts != nil {
		out.CreatedAt = ts.AsTime()
	}
	if ts := d.GetUpdatedAt(); ts != nil {
		out.UpdatedAt = ts.AsTime()
	}

	if raw := d.GetDataJson(); raw != "" {
		dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
		dec.UseNumber()
		if err := dec.Decode(&out.Data); err != nil {
			return nil, fmt.Errorf("decode draft data: %w", err)
		}
	}

	for k, fs := range d.GetFieldStates() {
		state := models.FieldState{Status: fs.GetStatus(), Hash: fs.GetHash()}
		if ts := fs.GetSavedAt(); ts != nil {
			t := ts.AsTime()
			state.SavedAt = &t
		}
		out.FieldStates[k] = state
	}
	return out, nil
}

func draftResponseFromProto(r *pb.DraftResponse) (*models.DraftResponse, error) {
	d, err := draftFromProto(r.GetDraft())
	if err != nil {
		return nil, err
	}
	return &models.DraftResponse{
		Outcome:         r.GetOutcome(),
		Reason:          r.GetReason(),
		NextAllowedStep: r.GetNextAllowedStep(),
		Draft:           d,
	}, nil
}

func paymentIntentFromProto(r *pb.PaymentIntentResponse) (*models.PaymentIntentResponse, error) {
	d, err := draftFromProto(r.GetDraft())
	if err != nil {
		return nil, err
	}
	return &models.PaymentIntentResponse{
		Outcome:      r.GetOutcome(),
		Reason:       r.GetReason(),
		ClientSecret: r.GetClientSecret(),
		ReturnURL:    r.GetReturnUrl(),
		Amount:       r.GetAmount(),
		Currency:     r.GetCurrency(),
		Replayed:     r.GetReplayed(),
		Draft:        d,
	}, nil
}
