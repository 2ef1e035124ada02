package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/storefront-client/internal/application/admin"
	"github.com/jhoicas/storefront-client/internal/application/cart"
	"github.com/jhoicas/storefront-client/internal/application/catalog"
	"github.com/jhoicas/storefront-client/internal/application/checkout"
	"github.com/jhoicas/storefront-client/internal/application/guard"
	"github.com/jhoicas/storefront-client/internal/application/session"
	"github.com/jhoicas/storefront-client/internal/infrastructure/api"
	"github.com/jhoicas/storefront-client/internal/infrastructure/feed"
	infrapdf "github.com/jhoicas/storefront-client/internal/infrastructure/pdf"
	"github.com/jhoicas/storefront-client/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/storefront-client/internal/interfaces/http"
	"github.com/jhoicas/storefront-client/pkg/config"
	"github.com/jhoicas/storefront-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, closeStorage, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}
	defer closeStorage()

	// El adaptador HTTP necesita la sesión para leer y borrar la credencial, y la sesión
	// necesita el adaptador: se conectan después de construir ambos.
	client := api.NewClient(api.Config{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		UploadTimeout: cfg.API.UploadTimeout,
	}, nil, log.Component("api"))
	productSvc := api.NewProductService(client)
	orderSvc := api.NewOrderService(client)
	authSvc := api.NewAuthService(client)

	sessionStore := session.NewStore(authSvc, session.NewCredentialStore(kv), log.Component("session"))
	client.UseCredentials(sessionStore)

	cartStore := cart.NewStore(productSvc, kv, log.Component("cart"))
	defer cartStore.Close()
	catalogStore := catalog.NewStore(productSvc, log.Component("catalog"))

	receipts := infrapdf.NewReceiptGenerator(cfg.App.StoreName)
	checkoutUC := checkout.NewUseCase(cartStore, orderSvc, api.NewPaymentService(client), receipts, log.Component("checkout"))
	adminUC := admin.NewUseCase(sessionStore, authSvc, orderSvc, api.NewUploadService(client), log.Component("admin"))

	restored := cartStore.LoadFromStorage(ctx)
	log.Info().Int("lines", restored).Msg("carrito restaurado")
	if err := sessionStore.InitializeAuth(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudo restaurar la sesión de administración")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 35,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    cfg.App.StoreName,
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Cart:     cartStore,
		Catalog:  catalogStore,
		Session:  sessionStore,
		Guard:    guard.New(sessionStore, log.Component("guard")),
		Checkout: checkoutUC,
		Admin:    adminUC,
		Feed: feed.Channel{
			Title:       cfg.App.StoreName,
			Link:        cfg.App.PublicURL,
			Description: "Catálogo de " + cfg.App.StoreName,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
