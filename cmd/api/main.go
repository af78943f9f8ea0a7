package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/kiosco-stock/internal/application/auth"
	"github.com/tu-usuario/kiosco-stock/internal/application/state"
	"github.com/tu-usuario/kiosco-stock/internal/application/usecase"
	"github.com/tu-usuario/kiosco-stock/internal/infrastructure/jsonstore"
	httpRouter "github.com/tu-usuario/kiosco-stock/internal/interfaces/http"
	"github.com/tu-usuario/kiosco-stock/pkg/config"
	"github.com/tu-usuario/kiosco-stock/pkg/logger"
	"github.com/tu-usuario/kiosco-stock/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	metrics.Init(cfg.Metrics.Prefix)

	blobStore, err := jsonstore.New(cfg.Storage.Dir, cfg.Storage.Prefix, log)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.Dir).Msg("abrir almacén de blobs")
	}

	productRepo := jsonstore.NewProductRepository(blobStore)
	movementRepo := jsonstore.NewMovementRepository(blobStore, cfg.Storage.MaxMovements)
	userRepo := jsonstore.NewUserRepository(blobStore,
		jsonstore.SeedUsers(cfg.Seed.AdminPassword, cfg.Seed.EmployeePassword))

	appState := state.NewStore(productRepo, movementRepo)
	if err := appState.Load(); err != nil {
		log.Fatal().Err(err).Msg("cargar estado inicial")
	}
	snapshot := appState.Snapshot()
	log.Info().
		Int("products", len(snapshot.Products)).
		Int("movements", len(snapshot.Movements)).
		Msg("estado cargado")

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(appState)
	movementUC := usecase.NewMovementUseCase(appState)
	dashboardUC := usecase.NewDashboardUseCase(appState)
	backupUC := usecase.NewBackupUseCase(appState)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		MovementUC:  movementUC,
		DashboardUC: dashboardUC,
		BackupUC:    backupUC,
		JWTSecret:   cfg.JWT.Secret,
		AppName:     cfg.App.Name,
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
