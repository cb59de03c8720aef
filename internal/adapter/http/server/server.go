package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"uberclone/config"
	"uberclone/internal/adapter/http/handler"
	"uberclone/internal/adapter/http/middleware"
	wshandler "uberclone/internal/adapter/http/ws"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
)

const serviceName = "uberclone"

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health  *handler.Health
	auth    *handler.Auth
	trip    *handler.Trip
	history *handler.History
	booking *wshandler.BookingStream
}

func New(
	cfg config.Config,
	authService handler.AuthService,
	tripService handler.TripService,
	historyService handler.HistoryService,
	bookingStream *wshandler.BookingStream,
	log logger.Logger,
) (*API, error) {
	if authService == nil {
		return nil, errors.New("auth service is required")
	}
	if tripService == nil {
		return nil, errors.New("trip service is required")
	}

	routes := &handlers{
		health:  handler.NewHealth(serviceName, log),
		auth:    handler.NewAuth(authService, tripService, log),
		trip:    handler.NewTrip(tripService, log),
		history: handler.NewHistory(historyService, log),
		booking: bookingStream,
	}

	mid := middleware.NewMiddleware(authService, log)

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      mid,
		addr:   cfg.Server.Addr(),
		cfg:    cfg,
		log:    log,
	}

	setupRoutes(api.mux, api.routes, api.m)

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	return api, nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

// withMiddleware applies the middleware chain to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(
		a.m.RequestID(
			a.m.Metrics(serviceName)(
				a.m.Logging(
					a.m.Auth(a.mux),
				),
			),
		),
	)
}
