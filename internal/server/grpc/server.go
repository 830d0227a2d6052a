// Package grpc exposes the draft service over gRPC.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/jobwizard/internal/logging"
	pb "github.com/dmitrijs2005/jobwizard/internal/proto"
	"github.com/dmitrijs2005/jobwizard/internal/server/attachments"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/dmitrijs2005/jobwizard/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// draftService is the part of services.DraftService the transport calls.
type draftService interface {
	GetCurrentDraft(ctx context.Context, actor string) (*models.Draft, error)
	SaveField(ctx context.Context, actor, draftID string, expected int64, key string, value any) (*services.DraftResult, error)
	AdvanceStep(ctx context.Context, actor, draftID string, expected int64, target string) (*services.DraftResult, error)
	StartAppraisal(ctx context.Context, actor, draftID string, expected int64) (*services.DraftResult, error)
	CreatePaymentIntent(ctx context.Context, actor, draftID string, expected int64) (*services.PaymentIntentResult, error)
	VerifyPayment(ctx context.Context, reference string) (*services.VerifyResult, error)
	RequestPhotoUpload(ctx context.Context, actor, draftID string) (*attachments.Upload, error)
	ResetDraft(ctx context.Context, actor string) (*models.Draft, error)
	SeedPricingReady(ctx context.Context, actor string) (*models.Draft, error)
}

type GRPCServer struct {
	pb.UnimplementedDraftServiceServer
	address   string
	drafts    draftService
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.DraftServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, ds draftService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		drafts:    ds,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with tracing, logging and token checks
// and registers the draft and health services on it.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)
	pb.RegisterDraftServiceServer(srv, s)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.DraftService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv, hs
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(lis)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}
