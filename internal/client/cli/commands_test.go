package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/jobwizard/internal/client/client"
	"github.com/dmitrijs2005/jobwizard/internal/client/config"
	"github.com/dmitrijs2005/jobwizard/internal/client/models"
	"github.com/dmitrijs2005/jobwizard/internal/client/repositories/snapshots"
	"github.com/dmitrijs2005/jobwizard/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient answers every call from fixed responses and records the
// last saved value.
type stubClient struct {
	draft     *models.Draft
	saveResp  *models.DraftResponse
	lastKey   string
	lastValue json.RawMessage
	pingErr   error
	getErr    error
}

func (s *stubClient) Close() error { return nil }
func (s *stubClient) Ping(context.Context) error { return s.pingErr }
func (s *stubClient) SetAccessToken(string) {}
func (s *stubClient) GetCurrentDraft(context.Context) (*models.DraftResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &models.DraftResponse{Draft: s.draft}, nil
}
func (s *stubClient) SaveField(_ context.Context, _ string, _ int64, key string, value json.RawMessage) (*models.DraftResponse, error) {
	s.lastKey, s.lastValue = key, value
	return s.saveResp, nil
}
func (s *stubClient) AdvanceStep(context.Context, string, int64, string) (*models.DraftResponse, error) {
	return &models.DraftResponse{Outcome: models.OutcomeStepInvalid, Reason: "details.title is required", Draft: s.draft}, nil
}
func (s *stubClient) StartAppraisal(context.Context, string, int64) (*models.DraftResponse, error) {
	return &models.DraftResponse{Outcome: models.OutcomeOK, Draft: s.draft}, nil
}
func (s *stubClient) CreatePaymentIntent(context.Context, string, int64) (*models.PaymentIntentResponse, error) {
	return &models.PaymentIntentResponse{Outcome: models.OutcomeOK, ClientSecret: "pi_1_secret", Amount: 15000,
		Currency: "usd", Replayed: true, Draft: s.draft}, nil
}
func (s *stubClient) VerifyPayment(context.Context, string) (*models.VerifyPaymentResponse, error) {
	return &models.VerifyPaymentResponse{JobID: "job-9", Funded: true, Idempotent: true}, nil
}
func (s *stubClient) RequestPhotoUpload(context.Context, string) (*models.PhotoUploadResponse, error) {
	return nil, client.ErrRejected
}
func (s *stubClient) ResetDraft(context.Context) (*models.DraftResponse, error) {
	return nil, client.ErrUnauthorized
}
func (s *stubClient) SeedPricingReady(context.Context) (*models.DraftResponse, error) {
	return nil, client.ErrUnauthorized
}

func newTestApp(sc *stubClient, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	c := &config.Config{}
	c.LoadDefaults()
	return &App{
		config:   c,
		client:   sc,
		session:  services.NewDraftSession(sc),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      &out,
		readFile: func(string) ([]byte, error) { return nil, errors.New("no such file") },
	}, &out
}

func sampleDraft(version int64) *models.Draft {
	return &models.Draft{
		ID: "d1", Version: version, CurrentStep: "DETAILS",
		Data:       map[string]any{"details": map[string]any{"title": "Fix"}},
		Validation: map[string]string{"details.title": "must be at least 5 characters"},
	}
}

func TestApp_SaveReportsConflictNotice(t *testing.T) {
	sc := &stubClient{
		draft:    sampleDraft(1),
		saveResp: &models.DraftResponse{Outcome: models.OutcomeVersionConflict, Draft: sampleDraft(3)},
	}
	app, out := newTestApp(sc, "")

	require.NoError(t, app.Save(context.Background(), "details.title", "Fix the fence"))

	assert.Equal(t, "details.title", sc.lastKey)
	assert.JSONEq(t, `"Fix the fence"`, string(sc.lastValue))
	assert.Contains(t, out.String(), services.SyncedNotice)
	assert.Equal(t, int64(3), app.session.Current().Version)
	assert.Contains(t, app.getStatus(), "DETAILS v3")
}

func TestApp_SavePromptsForMissingValue(t *testing.T) {
	sc := &stubClient{draft: sampleDraft(0), saveResp: &models.DraftResponse{Outcome: models.OutcomeOK, Draft: sampleDraft(1)}}
	app, out := newTestApp(sc, "Remove the old fence\nand install a new one\n\n")

	require.NoError(t, app.Save(context.Background(), "details.scope", ""))

	assert.JSONEq(t, `"Remove the old fence\nand install a new one"`, string(sc.lastValue))
	assert.Contains(t, out.String(), "OK")
}

func TestApp_ShowListsIssues(t *testing.T) {
	app, out := newTestApp(&stubClient{draft: sampleDraft(2)}, "")

	require.NoError(t, app.Show(context.Background()))

	assert.Contains(t, out.String(), "Draft d1  step=DETAILS  version=2")
	assert.Contains(t, out.String(), "details.title: must be at least 5 characters")
}

func TestApp_AdvanceStepInvalid(t *testing.T) {
	app, out := newTestApp(&stubClient{draft: sampleDraft(2)}, "")

	require.NoError(t, app.Advance(context.Background(), "PRICING"))
	assert.Contains(t, out.String(), "Not allowed: details.title is required")
}

func TestApp_PayAndVerify(t *testing.T) {
	app, out := newTestApp(&stubClient{draft: sampleDraft(5)}, "")

	require.NoError(t, app.Pay(context.Background()))
	assert.Contains(t, out.String(), "Payment 15000 usd (existing payment)")
	assert.Contains(t, out.String(), "pi_1_secret")

	require.NoError(t, app.Verify(context.Background(), "pi_1"))
	assert.Contains(t, out.String(), "Job job-9 was already confirmed")
}

func TestApp_ErrorsPropagate(t *testing.T) {
	app, _ := newTestApp(&stubClient{draft: sampleDraft(0)}, "")
	ctx := context.Background()

	assert.Error(t, app.Photo(ctx, "missing.jpg"))
	app.readFile = func(string) ([]byte, error) { return []byte("img"), nil }
	assert.ErrorIs(t, app.Photo(ctx, "sink.jpg"), client.ErrRejected)
	assert.ErrorIs(t, app.Reset(ctx), client.ErrUnauthorized)
	assert.ErrorIs(t, app.Seed(ctx), client.ErrUnauthorized)
}

func TestApp_OnlineWatcher(t *testing.T) {
	sc := &stubClient{draft: sampleDraft(0)}
	app, _ := newTestApp(sc, "")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.StartOnlineStatusWatcher(ctx, 0)
	assert.Equal(t, Mode(""), app.Mode, "disabled interval never checks")

	app.setMode(ModeOnline)
	assert.Contains(t, app.getStatus(), "online")
}

type oneSnapshot struct{ s *snapshots.Snapshot }

func (o *oneSnapshot) Put(_ context.Context, s snapshots.Snapshot) error {
	o.s = &s
	return nil
}
func (o *oneSnapshot) Get(context.Context, string) (*snapshots.Snapshot, error) {
	return o.s, nil
}
func (o *oneSnapshot) Delete(context.Context, string) error {
	o.s = nil
	return nil
}

func TestApp_OfflineFallsBackToCache(t *testing.T) {
	sc := &stubClient{draft: sampleDraft(4)}
	app, out := newTestApp(sc, "")
	cache := &oneSnapshot{}
	app.session.WithCache(cache, cacheKey("127.0.0.1:50051", "tok"))
	ctx := context.Background()

	require.NoError(t, app.Get(ctx))
	require.NotNil(t, cache.s)
	assert.Equal(t, int64(4), cache.s.Version)

	sc.getErr = client.ErrUnavailable
	offline, out2 := newTestApp(sc, "")
	offline.session.WithCache(cache, cacheKey("127.0.0.1:50051", "tok"))
	offline.loadFailed(ctx, offline.Get(ctx))

	assert.Equal(t, ModeOffline, offline.Mode)
	assert.Contains(t, out2.String(), "Server unreachable, showing the draft cached at")
	assert.Contains(t, out2.String(), "version=4")
	assert.NotEmpty(t, out.String())
}

func TestCacheKey(t *testing.T) {
	a := cacheKey("host:1", "token-a")
	assert.True(t, strings.HasPrefix(a, "host:1#"))
	assert.Len(t, a, len("host:1#")+16)
	assert.NotEqual(t, a, cacheKey("host:1", "token-b"))
	assert.NotEqual(t, a, cacheKey("host:2", "token-a"))
}
