// Package server initializes and runs the jobwizard server: storage,
// collaborators, the draft service and its gRPC endpoint, with graceful
// shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/jobwizard/internal/logging"
	"github.com/dmitrijs2005/jobwizard/internal/server/appraisal"
	"github.com/dmitrijs2005/jobwizard/internal/server/attachments"
	"github.com/dmitrijs2005/jobwizard/internal/server/config"
	"github.com/dmitrijs2005/jobwizard/internal/server/payments"
	"github.com/dmitrijs2005/jobwizard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jobwizard/internal/server/services"
	"github.com/dmitrijs2005/jobwizard/internal/telemetry"

	gs "github.com/dmitrijs2005/jobwizard/internal/server/grpc"
)

const serviceName = "jobwizard"

type App struct {
	config            *config.Config
	logger            logging.Logger
	repos             repomanager.RepositoryManager
	draftService      *services.DraftService
	shutdownTelemetry telemetry.ShutdownFunc
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel, c.LogFormat)

	shutdown, err := telemetry.Setup(ctx, c.OTELEndpoint, serviceName)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	repos, err := repomanager.Open(ctx, c.StorageDriver, c.DatabaseDSN)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var photos attachments.Presigner
	if c.S3Bucket != "" {
		photos = attachments.NewS3Presigner(attachments.Settings{
			Region:    c.S3Region,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Bucket:    c.S3Bucket,
			Endpoint:  c.S3BaseEndpoint,
		})
	}

	ds := services.NewDraftService(repos, payments.NewSandbox(c.SandboxAutoFund), appraisal.NewRuleEstimator(),
		photos, logger, services.Options{
			Currency:         c.Currency,
			ReturnURL:        c.PaymentReturnURL,
			TestHooksEnabled: c.TestHooksEnabled,
		})

	if c.TestHooksEnabled {
		logger.Warn(ctx, "test hooks are enabled, do not run this configuration in production")
	}
	logger.Info(ctx, "storage ready", "driver", c.StorageDriver)

	return &App{config: c, logger: logger, repos: repos, draftService: ds, shutdownTelemetry: shutdown}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a signal arrives or the gRPC server fails, then
// releases storage and flushes traces.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.draftService, app.config.SecretKey)
	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "gRPC server stopped", "error", runErr)
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}
	if err := app.shutdownTelemetry(context.WithoutCancel(ctx)); err != nil {
		app.logger.Error(ctx, "flushing traces", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
