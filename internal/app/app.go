package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uberclone/config"
	httpserver "uberclone/internal/adapter/http/server"
	wshandler "uberclone/internal/adapter/http/ws"
	"uberclone/internal/service/auth"
	"uberclone/internal/service/booking"
	"uberclone/internal/service/catalog"
	"uberclone/internal/service/history"
	"uberclone/internal/service/location"
	"uberclone/internal/service/pricing"
	"uberclone/internal/service/trip"
	"uberclone/pkg/logger"
	"uberclone/pkg/wshub"
)

// App wires the simulated backends, the workflow state machine and the HTTP
// surface into one runnable service.
type App struct {
	httpServer *httpserver.API
	hub        *wshub.ConnectionHub

	cfg config.Config
	log logger.Logger
}

func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	sim := cfg.Simulation

	// simulated backends
	tokenSvc := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL, log)
	authSvc := auth.NewAuthService(tokenSvc, sim.AuthLatency, log)
	locationSvc := location.NewLocationService(sim.LocationLatency, log)
	catalogSvc := catalog.NewCatalogService(sim.CatalogLatency, log)
	estimator := pricing.NewEstimator(sim.PriceLatency, log)
	bookingSvc := booking.NewBookingService(sim.BookingLatency, log)
	historySvc := history.NewHistoryService(sim.HistoryLatency, log)

	// workflow state machine
	tripSvc := trip.NewTripService(locationSvc, catalogSvc, estimator, bookingSvc, log)

	// websocket hub + driver-arrival stream
	hub := wshub.NewConnHub(log)
	bookingStream := wshandler.NewBookingStream(tripSvc, hub, sim.DriverUpdateInterval, log)

	server, err := httpserver.New(cfg, authSvc, tripSvc, historySvc, bookingStream, log)
	if err != nil {
		return nil, err
	}

	return &App{
		httpServer: server,
		hub:        hub,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "service closed")
	}()

	errCh := make(chan error, 1)
	a.httpServer.Run(ctx, errCh)

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "service started")
	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	a.hub.Close()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error(ctx, "failed to shutdown HTTP server", err)
	}
}
