// Package services contains application services for the jobwizard CLI.
// A DraftSession plays the role of one browser tab: it remembers the last
// draft snapshot it saw and sends that snapshot's version with every
// mutation, adopting the server's copy whenever the server says it is stale.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/client/client"
	"github.com/dmitrijs2005/jobwizard/internal/client/models"
	"github.com/dmitrijs2005/jobwizard/internal/client/repositories/snapshots"
	"github.com/dmitrijs2005/jobwizard/internal/netx"
)

// SyncedNotice is shown when another tab or device changed the draft first.
const SyncedNotice = "updated elsewhere, synced to latest"

// ErrNoSnapshot is returned by Restore when nothing has been cached yet.
var ErrNoSnapshot = errors.New("no cached draft")

// Result is what the CLI shows after a mutation.
type Result struct {
	Outcome         string
	Reason          string
	NextAllowedStep string
	// Notice is set when the local snapshot was replaced by a newer one.
	Notice string
	Draft  *models.Draft
}

// PaymentResult adds the payment handle to a Result.
type PaymentResult struct {
	Result
	ClientSecret string
	ReturnURL    string
	Amount       int64
	Currency     string
	Replayed     bool
}

type uploadFunc func(ctx context.Context, url, contentType string, data []byte) error

type DraftSession struct {
	client client.Client
	upload uploadFunc

	cache    snapshots.Repository
	cacheKey string
	now      func() time.Time

	mu    sync.Mutex
	draft *models.Draft
}

func NewDraftSession(c client.Client) *DraftSession {
	return &DraftSession{client: c, upload: netx.UploadToPresignedURL, now: time.Now}
}

// WithCache makes the session persist every snapshot it adopts under key.
func (s *DraftSession) WithCache(repo snapshots.Repository, key string) *DraftSession {
	s.cache = repo
	s.cacheKey = key
	return s
}

// remember writes d to the cache. Cache failures never fail the command.
func (s *DraftSession) remember(ctx context.Context, d *models.Draft) {
	if s.cache == nil || d == nil {
		return
	}
	body, err := json.Marshal(d)
	if err != nil {
		log.Printf("cache: %v", err)
		return
	}
	err = s.cache.Put(ctx, snapshots.Snapshot{
		Key: s.cacheKey, DraftID: d.ID, Version: d.Version, Body: body, SavedAt: s.now(),
	})
	if err != nil {
		log.Printf("cache: %v", err)
	}
}

// Restore makes the cached snapshot current without contacting the server
// and reports when it was cached.
func (s *DraftSession) Restore(ctx context.Context) (*models.Draft, time.Time, error) {
	if s.cache == nil {
		return nil, time.Time{}, ErrNoSnapshot
	}
	snap, err := s.cache.Get(ctx, s.cacheKey)
	if err != nil {
		return nil, time.Time{}, err
	}
	if snap == nil {
		return nil, time.Time{}, ErrNoSnapshot
	}
	var d models.Draft
	if err := json.Unmarshal(snap.Body, &d); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode cached draft: %w", err)
	}
	s.set(&d)
	return &d, snap.SavedAt, nil
}

// Current returns the last snapshot seen, or nil before the first Load.
func (s *DraftSession) Current() *models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *DraftSession) set(d *models.Draft) {
	if d == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
}

// Ping reports whether the server is reachable.
func (s *DraftSession) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Load fetches the actor's current draft, creating it server-side on first use.
func (s *DraftSession) Load(ctx context.Context) (*models.Draft, error) {
	resp, err := s.client.GetCurrentDraft(ctx)
	if err != nil {
		return nil, err
	}
	s.set(resp.Draft)
	s.remember(ctx, resp.Draft)
	return resp.Draft, nil
}

func (s *DraftSession) ensure(ctx context.Context) (*models.Draft, error) {
	if d := s.Current(); d != nil {
		return d, nil
	}
	return s.Load(ctx)
}

// adopt makes the server's draft the local snapshot. A conflict is not an
// error: the tab simply catches up and tells the user.
func (s *DraftSession) adopt(ctx context.Context, resp *models.DraftResponse) *Result {
	s.set(resp.Draft)
	s.remember(ctx, resp.Draft)
	r := &Result{
		Outcome:         resp.Outcome,
		Reason:          resp.Reason,
		NextAllowedStep: resp.NextAllowedStep,
		Draft:           resp.Draft,
	}
	if resp.Outcome == models.OutcomeVersionConflict {
		r.Notice = SyncedNotice
	}
	return r
}

// SaveField writes one field against the local snapshot's version.
func (s *DraftSession) SaveField(ctx context.Context, key string, value json.RawMessage) (*Result, error) {
	d, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.SaveField(ctx, d.ID, d.Version, key, value)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, resp), nil
}

// Advance asks to move the draft to target.
func (s *DraftSession) Advance(ctx context.Context, target string) (*Result, error) {
	d, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.AdvanceStep(ctx, d.ID, d.Version, target)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, resp), nil
}

// Appraise requests a price range for the draft.
func (s *DraftSession) Appraise(ctx context.Context) (*Result, error) {
	d, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.StartAppraisal(ctx, d.ID, d.Version)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, resp), nil
}

// Pay creates the payment intent, or replays the one created earlier.
func (s *DraftSession) Pay(ctx context.Context) (*PaymentResult, error) {
	d, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.CreatePaymentIntent(ctx, d.ID, d.Version)
	if err != nil {
		return nil, err
	}
	r := s.adopt(ctx, &models.DraftResponse{Outcome: resp.Outcome, Reason: resp.Reason, Draft: resp.Draft})
	return &PaymentResult{
		Result:       *r,
		ClientSecret: resp.ClientSecret,
		ReturnURL:    resp.ReturnURL,
		Amount:       resp.Amount,
		Currency:     resp.Currency,
		Replayed:     resp.Replayed,
	}, nil
}

// Verify confirms the payment. An empty reference means the draft's own
// payment intent. The local snapshot is refreshed afterwards.
func (s *DraftSession) Verify(ctx context.Context, reference string) (*models.VerifyPaymentResponse, error) {
	if reference == "" {
		d, err := s.ensure(ctx)
		if err != nil {
			return nil, err
		}
		if d.PaymentIntentID == nil {
			return nil, fmt.Errorf("%w: no payment has been started", client.ErrRejected)
		}
		reference = *d.PaymentIntentID
	}

	resp, err := s.client.VerifyPayment(ctx, reference)
	if err != nil {
		return nil, err
	}
	if _, err := s.Load(ctx); err != nil {
		return resp, err
	}
	return resp, nil
}

// UploadPhoto sends data to object storage and appends the stored key to
// the draft's photo list.
func (s *DraftSession) UploadPhoto(ctx context.Context, filename string, data []byte) (*Result, error) {
	d, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}

	target, err := s.client.RequestPhotoUpload(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	if err := s.upload(ctx, target.UploadURL, contentTypeFor(filename), data); err != nil {
		return nil, fmt.Errorf("upload %s: %w", filename, err)
	}

	photos := append(photoKeys(s.Current()), target.StorageKey)
	value, err := json.Marshal(photos)
	if err != nil {
		return nil, err
	}
	return s.SaveField(ctx, "details.photos", value)
}

// Reset and Seed call the server's test hooks.
func (s *DraftSession) Reset(ctx context.Context) (*Result, error) {
	resp, err := s.client.ResetDraft(ctx)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, resp), nil
}

func (s *DraftSession) Seed(ctx context.Context) (*Result, error) {
	resp, err := s.client.SeedPricingReady(ctx)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, resp), nil
}

func photoKeys(d *models.Draft) []string {
	if d == nil {
		return nil
	}
	details, _ := d.Data["details"].(map[string]any)
	raw, _ := details["photos"].([]any)
	keys := make([]string, 0, len(raw)+1)
	for _, v := range raw {
		if k, ok := v.(string); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func contentTypeFor(filename string) string {
	switch path.Ext(filename) {
	case ".jpg", ".jpeg", ".JPG", ".JPEG":
		return "image/jpeg"
	case ".png", ".PNG":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
