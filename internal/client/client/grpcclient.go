package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/client/models"
	"github.com/dmitrijs2005/jobwizard/internal/common"
	pb "github.com/dmitrijs2005/jobwizard/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// draftRPC is the generated stub surface GRPCClient calls.
type draftRPC interface {
	GetCurrentDraft(ctx context.Context, in *pb.GetCurrentDraftRequest, opts ...grpc.CallOption) (*pb.DraftResponse, error)
	SaveField(ctx context.Context, in *pb.SaveFieldRequest, opts ...grpc.CallOption) (*pb.DraftResponse, error)
	AdvanceStep(ctx context.Context, in *pb.AdvanceStepRequest, opts ...grpc.CallOption) (*pb.DraftResponse, error)
	StartAppraisal(ctx context.Context, in *pb.StartAppraisalRequest, opts ...grpc.CallOption) (*pb.DraftResponse, error)
	CreatePaymentIntent(ctx context.Context, in *pb.CreatePaymentIntentRequest, opts ...grpc.CallOption) (*pb.PaymentIntentResponse, error)
	VerifyPayment(ctx context.Context, in *pb.VerifyPaymentRequest, opts ...grpc.CallOption) (*pb.VerifyPaymentResponse, error)
	RequestPhotoUpload(ctx context.Context, in *pb.RequestPhotoUploadRequest, opts ...grpc.CallOption) (*pb.PhotoUploadResponse, error)
	ResetDraft(ctx context.Context, in *pb.ResetDraftRequest, opts ...grpc.CallOption) (*pb.DraftResponse, error)
	SeedPricingReady(ctx context.Context, in *pb.SeedPricingReadyRequest, opts ...grpc.CallOption) (*pb.DraftResponse, error)
}

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      draftRPC
	health      healthpb.HealthClient

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewDraftClient(endpointURL, accessToken string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken, timeout: timeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewDraftServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Ping asks the standard health service whether the draft service serves.
func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.DraftService_ServiceDesc.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) GetCurrentDraft(ctx context.Context) (*models.DraftResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetCurrentDraft(ctx, &pb.GetCurrentDraftRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return draftResponseFromProto(resp)
}

func (s *GRPCClient) SaveField(ctx context.Context, draftID string, expected int64, key string, value json.RawMessage) (*models.DraftResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.SaveFieldRequest{DraftId: draftID, ExpectedVersion: proto.Int64(expected), FieldKey: key, ValueJson: string(value)}
	resp, err := s.client.SaveField(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return draftResponseFromProto(resp)
}

func (s *GRPCClient) AdvanceStep(ctx context.Context, draftID string, expected int64, target string) (*models.DraftResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.AdvanceStepRequest{DraftId: draftID, ExpectedVersion: proto.Int64(expected), TargetStep: target}
	resp, err := s.client.AdvanceStep(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return draftResponseFromProto(resp)
}

func (s *GRPCClient) StartAppraisal(ctx context.Context, draftID string, expected int64) (*models.DraftResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.StartAppraisal(ctx, &pb.StartAppraisalRequest{DraftId: draftID, ExpectedVersion: proto.Int64(expected)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return draftResponseFromProto(resp)
}

func (s *GRPCClient) CreatePaymentIntent(ctx context.Context, draftID string, expected int64) (*models.PaymentIntentResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreatePaymentIntent(ctx, &pb.CreatePaymentIntentRequest{DraftId: draftID, ExpectedVersion: proto.Int64(expected)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return paymentIntentFromProto(resp)
}

func (s *GRPCClient) VerifyPayment(ctx context.Context, reference string) (*models.VerifyPaymentResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.VerifyPayment(ctx, &pb.VerifyPaymentRequest{PaymentReference: reference})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.VerifyPaymentResponse{JobID: resp.GetJobId(), Funded: resp.GetFunded(), Idempotent: resp.GetIdempotent()}, nil
}

func (s *GRPCClient) RequestPhotoUpload(ctx context.Context, draftID string) (*models.PhotoUploadResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.RequestPhotoUpload(ctx, &pb.RequestPhotoUploadRequest{DraftId: draftID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.PhotoUploadResponse{StorageKey: resp.GetStorageKey(), UploadURL: resp.GetUploadUrl()}, nil
}

func (s *GRPCClient) ResetDraft(ctx context.Context) (*models.DraftResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ResetDraft(ctx, &pb.ResetDraftRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return draftResponseFromProto(resp)
}

func (s *GRPCClient) SeedPricingReady(ctx context.Context) (*models.DraftResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.SeedPricingReady(ctx, &pb.SeedPricingReadyRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return draftResponseFromProto(resp)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition, codes.Aborted:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
