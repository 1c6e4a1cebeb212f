package main

import (
	"strings"

	"stoktakip-backend/internal/auth"
	"stoktakip-backend/internal/backup"
	"stoktakip-backend/internal/config"
	"stoktakip-backend/internal/inventory"
	"stoktakip-backend/internal/ledger"
	"stoktakip-backend/internal/logger"
	"stoktakip-backend/internal/report"
	"stoktakip-backend/internal/sales"
	"stoktakip-backend/internal/storage"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load() // .env varsa yüklenir, yoksa sessizce geçilir

	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer func() { _ = zap.L().Sync() }()

	// Backend seçimi açılışta bir kez yapılır: önce kalıcı veritabanı,
	// açılamazsa JSON snapshot fallback'i (bkz. storage.Open).
	store, err := storage.Open(cfg)
	if err != nil {
		zap.S().Fatalw("Hiçbir storage backend'i açılamadı", "error", err)
	}
	defer store.Close()

	co := ledger.NewCoordinator(store, cfg.ExchangeRate)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			zap.S().Errorw("Beklenmeyen hata", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "mode": string(store.Mode())})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Stok
	protected.Post("/stock", inventory.CreateShipmentHandler(co))
	protected.Get("/stock", inventory.ListStockHandler(co))
	protected.Delete("/stock/:name", inventory.DeleteStockHandler(co))
	protected.Post("/stock/import", inventory.ImportStockHandler(co))

	// Satışlar
	protected.Post("/sales", sales.RecordSaleHandler(co))
	protected.Get("/sales", sales.ListSalesHandler(co))
	protected.Post("/sales/:id/undo", sales.UndoSaleHandler(co))

	// Yedekleme
	protected.Get("/backup", backup.ExportHandler(co))
	protected.Post("/backup", backup.ImportHandler(co))

	// Raporlar
	protected.Get("/reports/summary", report.SummaryHandler(co))
	protected.Get("/reports/export", report.ExportHandler(co))

	zap.S().Infow("Server çalışıyor", "port", cfg.HTTPPort, "mode", string(store.Mode()))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		zap.S().Fatalw("Server durdu", "error", err)
	}
}
