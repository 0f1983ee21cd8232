package main

import (
	"context"
	"log/slog"
	"os"

	"foodlink/config"
	"foodlink/internal/delivery"
	"foodlink/internal/delivery/http"
	"foodlink/internal/delivery/http/middleware"
	"foodlink/internal/delivery/http/router/handler"
	"foodlink/internal/delivery/scheduler"
	"foodlink/internal/domain/service"
	"foodlink/internal/infra/auth"
	"foodlink/internal/infra/lock"
	logs "foodlink/internal/infra/log"
	"foodlink/internal/infra/notification"
	"foodlink/internal/infra/persistence/postgres"
	"foodlink/internal/infra/pubsub"
	"foodlink/internal/infra/qrcode"
	"foodlink/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			scheduler.RegisterJobs,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clockwork.NewRealClock,
		postgres.New,
		lock.NewLocker,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDonationRepository,
			postgres.NewOrganizationRepository,
			postgres.NewPickupLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTHandoffService,
			auth.NewJWTAccessVerifier,
			newQRCodeService,
			pubsub.NewEventPublisher,
			fx.Annotate(
				notification.NewDispatcher,
				fx.As(new(service.NotificationDispatcher)),
			),
		),
	)
}

// newQRCodeService renders handoff codes with the configured size and error correction
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.Handoff.QRSize, cfg.Handoff.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMatchingService,
			impl.NewDonationService,
			impl.NewReassignmentService,
			impl.NewReliabilityService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDonationHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			scheduler.New,
			newJobGuard,
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewDelivery,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// newJobGuard lets admin endpoints share the scheduler's job exclusion.
func newJobGuard(s *scheduler.Scheduler) handler.JobGuard {
	return s
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
