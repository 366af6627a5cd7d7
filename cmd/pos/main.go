package main

import (
	"context"
	"log/slog"
	"os"

	"cofipos/config"
	"cofipos/internal/delivery"
	"cofipos/internal/delivery/http"
	"cofipos/internal/delivery/http/middleware"
	"cofipos/internal/delivery/http/router/handler"
	"cofipos/internal/domain/service"
	"cofipos/internal/infra/auth"
	"cofipos/internal/infra/insight"
	logs "cofipos/internal/infra/log"
	"cofipos/internal/infra/persistence/firestore"
	"cofipos/internal/infra/pubsub"
	"cofipos/internal/infra/receipt"
	"cofipos/internal/infra/storage"
	"cofipos/internal/usecase"
	"cofipos/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewProductRepository,
			firestore.NewOrderRepository,
			firestore.NewEventConfigRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newFirebaseVerifier,
			newReceiptService,
			storage.NewBlobImageStore,
			insight.NewGeminiGenerator,
		),
	)
}

// newFirebaseVerifier creates the staff identity verifier with dependency injection
func newFirebaseVerifier(ctx context.Context, cfg *config.Config) (service.IdentityVerifier, error) {
	return auth.NewFirebaseVerifier(ctx, cfg.Firebase)
}

// newReceiptService creates the receipt QR service with dependency injection
func newReceiptService(cfg *config.Config) service.ReceiptService {
	if cfg.Receipt == nil {
		// Use default values if not configured
		return receipt.NewReceiptService(256, "M")
	}

	return receipt.NewReceiptService(cfg.Receipt.Size, cfg.Receipt.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewEventPoolService,
			impl.NewOrderService,
			impl.NewHistoryService,
			impl.NewInsightsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewReceiptHandler,
			handler.NewEventHandler,
			handler.NewHistoryHandler,
			handler.NewInsightsHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog loads the starter menu into an empty store when enabled.
func seedCatalog(ctx context.Context, cfg *config.Config, catalog usecase.CatalogUsecase, logger *slog.Logger) error {
	if cfg.Catalog == nil || !cfg.Catalog.SeedDefaults {
		return nil
	}

	if err := catalog.SeedDefaults(ctx); err != nil {
		return err
	}

	logger.Info("Catalog seeding checked")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
