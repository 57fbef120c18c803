package main

import (
	"context"
	"log/slog"
	"os"

	"showroom/config"
	"showroom/internal/delivery"
	"showroom/internal/delivery/http"
	"showroom/internal/delivery/http/middleware"
	"showroom/internal/delivery/http/router/handler"
	"showroom/internal/domain/service"
	"showroom/internal/infra/auth"
	"showroom/internal/infra/catalog"
	"showroom/internal/infra/llm"
	logs "showroom/internal/infra/log"
	"showroom/internal/infra/mail"
	"showroom/internal/infra/persistence/postgres"
	"showroom/internal/infra/qrcode"
	"showroom/internal/infra/ratelimit"
	"showroom/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		catalog.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewChatSessionRepository,
			postgres.NewChatMessageRepository,
			postgres.NewLeadRepository,
			postgres.NewMagicLinkRepository,
			postgres.NewRateLimitRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewCookieSigner,
			auth.NewJWTService,
			ratelimit.NewFixedWindowLimiter,
			mail.NewResendSender,
			llm.NewChatModel,
			llm.NewImageGenerator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the QR code service used for verification emails.
func newQRCodeService() service.QRCodeService {
	return qrcode.NewQRCodeService(256, "M")
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVerificationService,
			impl.NewChatService,
			impl.NewCatalogService,
			impl.NewLeadService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAdminMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewChatHandler,
			handler.NewVerificationHandler,
			handler.NewQuoteHandler,
			handler.NewAdminHandler,
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
