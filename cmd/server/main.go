package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"invoicestudio/internal/config"
	"invoicestudio/internal/handler"
	"invoicestudio/internal/render"
	"invoicestudio/internal/repository/memory"
	"invoicestudio/internal/router"
	"invoicestudio/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repository and the template registry
	sessionRepo := memory.NewSessionRepo()
	memory.StartJanitor(ctx, sessionRepo, cfg.Session.TTL, cfg.Session.SweepInterval)
	registry := render.NewRegistry()

	// Initialize services
	invoiceSvc := service.NewInvoiceService(sessionRepo, registry, nil)
	exportSvc := service.NewExportService(invoiceSvc, registry)

	// Initialize handlers
	sessionH := handler.NewSessionHandler(invoiceSvc)
	templateH := handler.NewTemplateHandler(invoiceSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, sessionH, templateH, exportH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
