package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/kiosco-stock/internal/application/auth"
	"github.com/tu-usuario/kiosco-stock/internal/application/usecase"
	"github.com/tu-usuario/kiosco-stock/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	MovementUC  *usecase.MovementUseCase
	DashboardUC *usecase.DashboardUseCase
	BackupUC    *usecase.BackupUseCase
	JWTSecret   string
	AppName     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo: lectura para cualquier autenticado, escritura solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequirePermission(permission.ProductCreate), productHandler.Create)
	products.Put("/:id", RequirePermission(permission.ProductCreate), productHandler.Update)
	products.Delete("/:id", RequirePermission(permission.ProductDeactivate), productHandler.Deactivate)

	// Ledger de movimientos: el permiso por tipo se chequea en el handler
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/sales-hours", dashboardHandler.SalesHours)

	// Backup (solo admin)
	backup := protected.Group("/backup", RequirePermission(permission.BackupManage))
	backupHandler := NewBackupHandler(deps.BackupUC)
	backup.Get("/export", backupHandler.Export)
	backup.Post("/import", backupHandler.Import)
	backup.Post("/reset", backupHandler.Reset)
}
