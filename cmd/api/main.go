package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/pos-ledger/internal/application/analytics"
	"github.com/jhoicas/pos-ledger/internal/application/auth"
	appinventory "github.com/jhoicas/pos-ledger/internal/application/inventory"
	"github.com/jhoicas/pos-ledger/internal/application/report"
	"github.com/jhoicas/pos-ledger/internal/application/usecase"
	"github.com/jhoicas/pos-ledger/internal/domain"
	infrapdf "github.com/jhoicas/pos-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/snapshot"
	"github.com/jhoicas/pos-ledger/internal/interfaces/http"
	"github.com/jhoicas/pos-ledger/internal/ledger"
	"github.com/jhoicas/pos-ledger/internal/seed"
	"github.com/jhoicas/pos-ledger/pkg/config"
	"github.com/jhoicas/pos-ledger/pkg/logger"
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

	// Snapshot previo o datos de fábrica
	store := snapshot.NewStore(cfg.Store.DataDir)
	book := ledger.New()
	snap, err := store.Load()
	switch {
	case err == nil:
		book.Restore(snap)
		log.Info().
			Int("products", len(snap.Products)).
			Int("orders", len(snap.Orders)).
			Int("movements", len(snap.Movements)).
			Msg("snapshot restaurado")
	case errors.Is(err, domain.ErrNoSnapshot):
		book.Restore(seed.Snapshot())
		log.Info().Msg("sin snapshot previo, datos de fábrica cargados")
	default:
		log.Fatal().Err(err).Msg("cargar snapshot")
	}

	productUC := usecase.NewProductUseCase(book)
	orderUC := usecase.NewOrderUseCase(book)
	inventoryUC := appinventory.NewUseCase(book)
	dashboardUC := appanalytics.NewDashboardUseCase(book)
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportUC := report.NewUseCase(book, pdfGenerator)
	authUC := auth.NewAuthUseCase(
		auth.Credentials{
			Username:     cfg.Auth.Username,
			Password:     cfg.Auth.Password,
			PasswordHash: cfg.Auth.PasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	http.Router(app, http.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		OrderUC:     orderUC,
		InventoryUC: inventoryUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	// Autosave periódico del snapshot
	stopAutosave := make(chan struct{})
	if cfg.Store.AutosaveInterval > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.Store.AutosaveInterval) * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if err := store.Save(book.Snapshot()); err != nil {
						log.Error().Err(err).Msg("autosave del snapshot")
					}
				case <-stopAutosave:
					return
				}
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	close(stopAutosave)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Volcado final: el snapshot se escribe entero al apagar
	if err := store.Save(book.Snapshot()); err != nil {
		log.Error().Err(err).Msg("guardar snapshot final")
	} else {
		log.Info().Str("dir", cfg.Store.DataDir).Msg("snapshot guardado")
	}

	log.Info().Msg("aplicación detenida")
}
