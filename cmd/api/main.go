package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MUNTAZIR1234/Invoice/internal/app"
	httpRouter "github.com/MUNTAZIR1234/Invoice/internal/interfaces/http"
	"github.com/MUNTAZIR1234/Invoice/pkg/config"
	"github.com/MUNTAZIR1234/Invoice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("starting application")

	ctx := context.Background()
	repos, err := app.OpenRepositories(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("open storage")
	}
	defer repos.Close()

	svc, err := app.NewServices(cfg, repos, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build services")
	}

	server := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 << 20,
	})
	server.Use(recover.New())

	server.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(server, httpRouter.RouterDeps{
		PropertyUC: svc.Properties,
		TenantUC:   svc.Tenants,
		ExpenseUC:  svc.Expenses,
		CompanyUC:  svc.Company,
		InvoiceUC:  svc.Invoices,
		InvoicePDF: svc.InvoicePDF,
		ImportUC:   svc.Import,
		ReportUC:   svc.Reports,
		LedgerPDF:  svc.LedgerPDF,
		Dashboard:  svc.Dashboard,
		BackupUC:   svc.Backup,
		Log:        log.Component("http"),
	})

	go func() {
		if err := server.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
