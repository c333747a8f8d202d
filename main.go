package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"langham-hms/config"
	"langham-hms/controllers"
	"langham-hms/routes"
	"langham-hms/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	logger, err := config.NewLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}

	var archive services.BillArchive
	if cfg.ArchiveEnabled {
		db, err := config.ConnectDatabase(cfg.Database, logger)
		if err != nil {
			logger.Fatalf("❌ bill archive database connect failed: %v", err)
		}
		archive = services.NewGormBillArchive(db, cfg.SessionID)
		logger.Info("✅ bill archive connected")
	}

	rooms := services.NewRoomRegistry()
	ledger := services.NewAllocationLedger(rooms)
	hotel := services.NewHotelService(rooms, ledger, archive, logger)
	reports := services.NewReportService(hotel, cfg.ReportDir, cfg.SessionID, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var srv *http.Server
	if cfg.HTTPAddr != "" {
		gin.SetMode(gin.ReleaseMode)
		router := routes.SetupRouter(
			controllers.NewRoomController(hotel),
			controllers.NewAllocationController(hotel, reports),
			cfg.CORSOrigins,
			logger,
		)
		srv = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      20 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
		go func() {
			logger.Infof("🚀 status API listening on %s", cfg.HTTPAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("❌ ListenAndServe(): %v", err)
			}
		}()
	}

	menu := controllers.NewMenuController(hotel, reports, os.Stdin, os.Stdout, logger)
	menu.Run(ctx)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("❌ status API forced to shutdown: %v", err)
		}
	}
}
