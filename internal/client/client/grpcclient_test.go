package client

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/client/models"
	"github.com/dmitrijs2005/jobwizard/internal/common"
	pb "github.com/dmitrijs2005/jobwizard/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake stubs
 *************/

type fakeRPC struct {
	lastSave    *pb.SaveFieldRequest
	lastAdvance *pb.AdvanceStepRequest
	lastVerify  *pb.VerifyPaymentRequest
	hadDeadline bool

	draftResp  *pb.DraftResponse
	intentResp *pb.PaymentIntentResponse
	err        error
}

func (f *fakeRPC) note(ctx context.Context) {
	_, f.hadDeadline = ctx.Deadline()
}

func (f *fakeRPC) GetCurrentDraft(ctx context.Context, _ *pb.GetCurrentDraftRequest, _ ...grpc.CallOption) (*pb.DraftResponse, error) {
	f.note(ctx)
	return f.draftResp, f.err
}
func (f *fakeRPC) SaveField(ctx context.Context, in *pb.SaveFieldRequest, _ ...grpc.CallOption) (*pb.DraftResponse, error) {
	f.note(ctx)
	f.lastSave = in
	return f.draftResp, f.err
}
func (f *fakeRPC) AdvanceStep(ctx context.Context, in *pb.AdvanceStepRequest, _ ...grpc.CallOption) (*pb.DraftResponse, error) {
	f.lastAdvance = in
	return f.draftResp, f.err
}
func (f *fakeRPC) StartAppraisal(context.Context, *pb.StartAppraisalRequest, ...grpc.CallOption) (*pb.DraftResponse, error) {
	return f.draftResp, f.err
}
func (f *fakeRPC) CreatePaymentIntent(context.Context, *pb.CreatePaymentIntentRequest, ...grpc.CallOption) (*pb.PaymentIntentResponse, error) {
	return f.intentResp, f.err
}
func (f *fakeRPC) VerifyPayment(_ context.Context, in *pb.VerifyPaymentRequest, _ ...grpc.CallOption) (*pb.VerifyPaymentResponse, error) {
	f.lastVerify = in
	return &pb.VerifyPaymentResponse{JobId: "job-1", Funded: true}, f.err
}
func (f *fakeRPC) RequestPhotoUpload(context.Context, *pb.RequestPhotoUploadRequest, ...grpc.CallOption) (*pb.PhotoUploadResponse, error) {
	return &pb.PhotoUploadResponse{StorageKey: "k", UploadUrl: "u"}, f.err
}
func (f *fakeRPC) ResetDraft(context.Context, *pb.ResetDraftRequest, ...grpc.CallOption) (*pb.DraftResponse, error) {
	return f.draftResp, f.err
}
func (f *fakeRPC) SeedPricingReady(context.Context, *pb.SeedPricingReadyRequest, ...grpc.CallOption) (*pb.DraftResponse, error) {
	return f.draftResp, f.err
}

type fakeHealth struct {
	healthpb.HealthClient
	resp *healthpb.HealthCheckResponse
	err  error
}

func (f *fakeHealth) Check(context.Context, *healthpb.HealthCheckRequest, ...grpc.CallOption) (*healthpb.HealthCheckResponse, error) {
	return f.resp, f.err
}

func newTestClient(rpc *fakeRPC) *GRPCClient {
	return &GRPCClient{client: rpc, timeout: time.Second, health: &fakeHealth{
		resp: &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING},
	}}
}

/*************
 * Tests
 *************/

func TestSaveField_ShapesRequest(t *testing.T) {
	rpc := &fakeRPC{draftResp: &pb.DraftResponse{Outcome: models.OutcomeOK}}
	c := newTestClient(rpc)

	resp, err := c.SaveField(context.Background(), "d1", 4, "details.title", json.RawMessage(`"Fix fence"`))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, resp.Outcome)

	require.NotNil(t, rpc.lastSave)
	assert.Equal(t, "d1", rpc.lastSave.GetDraftId())
	require.NotNil(t, rpc.lastSave.ExpectedVersion, "expected version is always sent")
	assert.Equal(t, int64(4), rpc.lastSave.GetExpectedVersion())
	assert.Equal(t, "details.title", rpc.lastSave.GetFieldKey())
	assert.JSONEq(t, `"Fix fence"`, rpc.lastSave.GetValueJson())
	assert.True(t, rpc.hadDeadline, "calls carry the configured timeout")
}

func TestAdvanceAndVerify_ShapeRequests(t *testing.T) {
	rpc := &fakeRPC{draftResp: &pb.DraftResponse{}}
	c := newTestClient(rpc)

	_, err := c.AdvanceStep(context.Background(), "d1", 2, "PRICING")
	require.NoError(t, err)
	assert.Equal(t, "PRICING", rpc.lastAdvance.GetTargetStep())
	assert.Equal(t, int64(2), rpc.lastAdvance.GetExpectedVersion())

	v, err := c.VerifyPayment(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "pi_1", rpc.lastVerify.GetPaymentReference())
	assert.Equal(t, "job-1", v.JobID)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}
	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.Unauthenticated, ErrUnauthorized},
		{codes.PermissionDenied, ErrUnauthorized},
		{codes.Unavailable, ErrUnavailable},
		{codes.DeadlineExceeded, ErrUnavailable},
		{codes.NotFound, ErrNotFound},
		{codes.InvalidArgument, ErrRejected},
		{codes.FailedPrecondition, ErrRejected},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(status.Error(tt.code, "x")), tt.want)
		})
	}

	assert.NoError(t, c.mapError(nil))
	other := c.mapError(status.Error(codes.Internal, "boom"))
	for _, sentinel := range []error{ErrUnauthorized, ErrUnavailable, ErrNotFound, ErrRejected} {
		assert.False(t, errors.Is(other, sentinel))
	}
}

func TestErrorsAreMapped(t *testing.T) {
	rpc := &fakeRPC{err: status.Error(codes.NotFound, "draft")}
	c := newTestClient(rpc)

	_, err := c.GetCurrentDraft(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.CreatePaymentIntent(context.Background(), "d", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPing(t *testing.T) {
	c := newTestClient(&fakeRPC{})
	require.NoError(t, c.Ping(context.Background()))

	c.health = &fakeHealth{resp: &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}}
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c.health = &fakeHealth{err: status.Error(codes.Unavailable, "down")}
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestAccessTokenInterceptor(t *testing.T) {
	c := &GRPCClient{}

	var got []string
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(common.AccessTokenHeaderName)
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), "/m", nil, nil, nil, invoker))
	assert.Empty(t, got, "no token, no header")

	c.SetAccessToken("tok-1")
	base := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "stale")
	require.NoError(t, c.accessTokenInterceptor(base, "/m", nil, nil, nil, invoker))
	assert.Equal(t, []string{"tok-1"}, got)
}

func TestClose_NoConnection(t *testing.T) {
	assert.NoError(t, (&GRPCClient{}).Close())
}
