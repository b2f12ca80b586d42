package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "rider/internal/app"
	"rider/internal/handlers/rest/healthcheck_head"
	"rider/internal/handlers/rest/order_status_patch"
	"rider/internal/handlers/rest/orders_active_get"
	"rider/internal/handlers/rest/orders_history_get"
	"rider/internal/handlers/rest/ping_get"
	"rider/internal/handlers/rest/profile_get"
	"rider/internal/handlers/rest/profile_put"
	"rider/internal/handlers/rest/rider_status_patch"
	"rider/internal/handlers/rest/session_get"
	"rider/internal/handlers/rest/session_login_post"
	"rider/internal/handlers/rest/session_logout_post"
	"rider/internal/handlers/rest/session_register_post"
	"rider/internal/pkg/config"
	"rider/internal/pkg/dotenv"
	metrics_system "rider/internal/pkg/metrics"
	"rider/internal/pkg/middlewares/graceful_shutdown"
	"rider/internal/pkg/middlewares/metrics"
	"rider/internal/pkg/middlewares/rate_limiter"
	"rider/internal/pkg/middlewares/timeout"
	"rider/internal/pkg/sqlitedb"
	"rider/pkg/logger"
	"rider/pkg/logger/zap_adapter"
	"rider/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting rider application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Наследование от context.Background() — часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	db, err := sqlitedb.Open(ctx, log, cfg.Session.DBPath)
	if err != nil {
		return fmt.Errorf("session database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			runLog.Error("failed to close session database",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.Initialize(ctx, log, db, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной управляющий http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной управляющий http сервер

	// http сервер входящих push-сообщений
	pushServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.PushListener.Port),
		Handler: initPushRouter(&isShuttingDown, businessApp),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	pushServerErr := make(chan error, 1)
	go func() {
		defer close(pushServerErr)
		runLog.Info("push listener starting",
			logger.NewField("port", cfg.PushListener.Port),
		)
		if err := pushServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			pushServerErr <- err
		}
	}()
	// http сервер входящих push-сообщений

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pushServerErr:
		return fmt.Errorf("push listener: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	businessApp.Bridge.Unlisten()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pushErr := pushServer.Shutdown(shutdownCtx); pushErr != nil {
		runLog.Error("push listener shutdown error", logger.NewField("error", pushErr))
		shutdownErr = pushErr
	}
	if pprofServer != nil {
		if pprofErr := pprofServer.Shutdown(shutdownCtx); pprofErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", pprofErr))
			shutdownErr = pprofErr
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/session", session_get.New(log, app.Auth)).Methods("GET")
	router.Handle("/session/login", session_login_post.New(log, app.Auth)).Methods("POST")
	router.Handle("/session/register", session_register_post.New(log, app.Auth)).Methods("POST")
	router.Handle("/session/logout", session_logout_post.New(log, app.Auth)).Methods("POST")

	router.Handle("/orders/active", orders_active_get.New(log, app.Auth, app.Orders)).Methods("GET")
	router.Handle("/orders/history", orders_history_get.New(log, app.Auth, app.Orders)).Methods("GET")
	router.Handle("/orders/{id}/status", order_status_patch.New(log, app.Orders)).Methods("PATCH")

	router.Handle("/profile", profile_get.New(log, app.Auth, app.Profile)).Methods("GET")
	router.Handle("/profile", profile_put.New(log, app.Auth, app.Profile)).Methods("PUT")
	router.Handle("/rider/status", rider_status_patch.New(log, app.Auth, app.Profile)).Methods("PATCH")

	return router
}

func initPushRouter(isShuttingDown *atomic.Bool, app *application.Application) http.Handler {
	router := app.Push.Router()
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
