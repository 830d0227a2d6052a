package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/client/client"
	"github.com/dmitrijs2005/jobwizard/internal/client/models"
	"github.com/dmitrijs2005/jobwizard/internal/client/repositories/snapshots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake client ----

// fakeClient keeps one server-side draft. Writes with a stale version
// come back as conflicts carrying the server copy.
type fakeClient struct {
	server    *models.Draft
	saves     []string
	verified  string
	uploadURL string
	err       error
}

func newFakeClient() *fakeClient {
	return &fakeClient{server: &models.Draft{ID: "d1", Version: 0, CurrentStep: "DETAILS", Data: map[string]any{}}}
}

func (f *fakeClient) clone() *models.Draft {
	c := *f.server
	return &c
}

func (f *fakeClient) bump() *models.DraftResponse {
	f.server.Version++
	return &models.DraftResponse{Outcome: models.OutcomeOK, Draft: f.clone()}
}

func (f *fakeClient) check(expected int64) *models.DraftResponse {
	if expected != f.server.Version {
		return &models.DraftResponse{Outcome: models.OutcomeVersionConflict, Reason: "stale", Draft: f.clone()}
	}
	return nil
}

func (f *fakeClient) Close() error { return nil }
func (f *fakeClient) Ping(context.Context) error { return f.err }
func (f *fakeClient) SetAccessToken(token string) {}
func (f *fakeClient) GetCurrentDraft(context.Context) (*models.DraftResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DraftResponse{Draft: f.clone()}, nil
}
func (f *fakeClient) SaveField(_ context.Context, _ string, expected int64, key string, value json.RawMessage) (*models.DraftResponse, error) {
	if r := f.check(expected); r != nil {
		return r, nil
	}
	f.saves = append(f.saves, key+"="+string(value))
	return f.bump(), nil
}
func (f *fakeClient) AdvanceStep(_ context.Context, _ string, expected int64, target string) (*models.DraftResponse, error) {
	if r := f.check(expected); r != nil {
		return r, nil
	}
	f.server.CurrentStep = target
	return f.bump(), nil
}
func (f *fakeClient) StartAppraisal(_ context.Context, _ string, expected int64) (*models.DraftResponse, error) {
	if r := f.check(expected); r != nil {
		return r, nil
	}
	return f.bump(), nil
}
func (f *fakeClient) CreatePaymentIntent(_ context.Context, _ string, expected int64) (*models.PaymentIntentResponse, error) {
	if f.server.PaymentIntentID != nil {
		return &models.PaymentIntentResponse{Outcome: models.OutcomeOK, ClientSecret: "cs", Replayed: true, Draft: f.clone()}, nil
	}
	if r := f.check(expected); r != nil {
		return &models.PaymentIntentResponse{Outcome: r.Outcome, Draft: r.Draft}, nil
	}
	id := "pi_1"
	f.server.PaymentIntentID = &id
	d := f.bump().Draft
	return &models.PaymentIntentResponse{Outcome: models.OutcomeOK, ClientSecret: "cs", Amount: 15000, Currency: "usd", Draft: d}, nil
}
func (f *fakeClient) VerifyPayment(_ context.Context, ref string) (*models.VerifyPaymentResponse, error) {
	f.verified = ref
	f.server.CurrentStep = "CONFIRMED"
	f.server.Version++
	return &models.VerifyPaymentResponse{JobID: "job-1", Funded: true}, nil
}
func (f *fakeClient) RequestPhotoUpload(context.Context, string) (*models.PhotoUploadResponse, error) {
	return &models.PhotoUploadResponse{StorageKey: "drafts/d1/new.jpg", UploadURL: f.uploadURL}, nil
}
func (f *fakeClient) ResetDraft(context.Context) (*models.DraftResponse, error) {
	f.server.CurrentStep = "DETAILS"
	return f.bump(), nil
}
func (f *fakeClient) SeedPricingReady(context.Context) (*models.DraftResponse, error) {
	f.server.CurrentStep = "PRICING"
	return f.bump(), nil
}

var _ client.Client = (*fakeClient)(nil)

// ---- tests ----

func TestSession_SaveUsesLocalVersion(t *testing.T) {
	fc := newFakeClient()
	s := NewDraftSession(fc)

	r, err := s.SaveField(context.Background(), "details.title", json.RawMessage(`"Fix fence"`))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, r.Outcome)
	assert.Empty(t, r.Notice)
	assert.Equal(t, int64(1), s.Current().Version)

	_, err = s.SaveField(context.Background(), "details.scope", json.RawMessage(`"Replace four broken panels"`))
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.Current().Version)
	assert.Len(t, fc.saves, 2)
}

func TestSession_TwoTabsConflictThenSync(t *testing.T) {
	fc := newFakeClient()
	tabA := NewDraftSession(fc)
	tabB := NewDraftSession(fc)
	ctx := context.Background()

	_, err := tabA.Load(ctx)
	require.NoError(t, err)
	_, err = tabB.Load(ctx)
	require.NoError(t, err)

	_, err = tabA.SaveField(ctx, "details.title", json.RawMessage(`"From A"`))
	require.NoError(t, err)

	r, err := tabB.SaveField(ctx, "details.title", json.RawMessage(`"From B"`))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeVersionConflict, r.Outcome)
	assert.Equal(t, SyncedNotice, r.Notice)
	assert.Equal(t, int64(1), tabB.Current().Version, "tab adopts the server copy")

	// Retrying after the sync succeeds.
	r, err = tabB.SaveField(ctx, "details.title", json.RawMessage(`"From B"`))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, r.Outcome)
	assert.Equal(t, int64(2), tabB.Current().Version)
}

func TestSession_PayAndVerify(t *testing.T) {
	fc := newFakeClient()
	s := NewDraftSession(fc)
	ctx := context.Background()

	_, err := s.Verify(ctx, "")
	assert.ErrorIs(t, err, client.ErrRejected)

	p, err := s.Pay(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cs", p.ClientSecret)
	assert.False(t, p.Replayed)

	again, err := s.Pay(ctx)
	require.NoError(t, err)
	assert.True(t, again.Replayed)

	v, err := s.Verify(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "pi_1", fc.verified)
	assert.True(t, v.Funded)
	assert.Equal(t, "CONFIRMED", s.Current().CurrentStep)
}

func TestSession_UploadPhotoAppendsKey(t *testing.T) {
	fc := newFakeClient()
	fc.server.Data = map[string]any{"details": map[string]any{"photos": []any{"drafts/d1/old.jpg"}}}
	fc.uploadURL = "https://s3.example/put"

	s := NewDraftSession(fc)
	var gotURL, gotType string
	s.upload = func(_ context.Context, url, contentType string, data []byte) error {
		gotURL, gotType = url, contentType
		return nil
	}

	_, err := s.UploadPhoto(context.Background(), "sink.jpg", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example/put", gotURL)
	assert.Equal(t, "image/jpeg", gotType)
	require.Len(t, fc.saves, 1)
	assert.Equal(t, `details.photos=["drafts/d1/old.jpg","drafts/d1/new.jpg"]`, fc.saves[0])
}

func TestSession_UploadFailureSavesNothing(t *testing.T) {
	fc := newFakeClient()
	s := NewDraftSession(fc)
	s.upload = func(context.Context, string, string, []byte) error { return errors.New("403") }

	_, err := s.UploadPhoto(context.Background(), "a.png", []byte("x"))
	require.Error(t, err)
	assert.Empty(t, fc.saves)
}

func TestSession_HooksAndErrors(t *testing.T) {
	fc := newFakeClient()
	s := NewDraftSession(fc)
	ctx := context.Background()

	r, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PRICING", r.Draft.CurrentStep)

	r, err = s.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, "DETAILS", s.Current().CurrentStep)

	fc.err = client.ErrUnavailable
	fresh := NewDraftSession(fc)
	_, err = fresh.Advance(ctx, "PRICING")
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.ErrorIs(t, fresh.Ping(ctx), client.ErrUnavailable)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", contentTypeFor("x.png"))
	assert.Equal(t, "image/jpeg", contentTypeFor("dir/x.JPEG"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("notes.txt"))
}

// memCache is an in-memory snapshots.Repository.
type memCache struct {
	items map[string]snapshots.Snapshot
	err   error
}

func (m *memCache) Put(_ context.Context, s snapshots.Snapshot) error {
	if m.err != nil {
		return m.err
	}
	m.items[s.Key] = s
	return nil
}

func (m *memCache) Get(_ context.Context, key string) (*snapshots.Snapshot, error) {
	s, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	delete(m.items, key)
	return nil
}

func TestSession_CachesAdoptedSnapshots(t *testing.T) {
	fc := newFakeClient()
	cache := &memCache{items: map[string]snapshots.Snapshot{}}
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	s := NewDraftSession(fc).WithCache(cache, "profile")
	s.now = func() time.Time { return at }
	ctx := context.Background()

	_, err := s.SaveField(ctx, "details.title", json.RawMessage(`"Fix fence"`))
	require.NoError(t, err)
	require.Contains(t, cache.items, "profile")
	assert.Equal(t, int64(1), cache.items["profile"].Version)

	// A fresh session with the server down restores the cached copy.
	fc.err = client.ErrUnavailable
	offline := NewDraftSession(fc).WithCache(cache, "profile")
	_, err = offline.Load(ctx)
	require.ErrorIs(t, err, client.ErrUnavailable)

	d, savedAt, err := offline.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)
	assert.Equal(t, int64(1), d.Version)
	assert.Equal(t, at, savedAt)
	assert.Equal(t, d, offline.Current())
}

func TestSession_RestoreWithoutSnapshot(t *testing.T) {
	_, _, err := NewDraftSession(newFakeClient()).Restore(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)

	s := NewDraftSession(newFakeClient()).WithCache(&memCache{items: map[string]snapshots.Snapshot{}}, "p")
	_, _, err = s.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSession_CacheFailureDoesNotFailCommand(t *testing.T) {
	cache := &memCache{items: map[string]snapshots.Snapshot{}, err: errors.New("disk full")}
	s := NewDraftSession(newFakeClient()).WithCache(cache, "p")

	r, err := s.SaveField(context.Background(), "details.title", json.RawMessage(`"Fix fence"`))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, r.Outcome)
	assert.Empty(t, cache.items)
}
