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

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "fleet/internal/app"
	"fleet/internal/handlers/rest/drone_delete"
	"fleet/internal/handlers/rest/drone_get"
	"fleet/internal/handlers/rest/drone_post"
	"fleet/internal/handlers/rest/drone_put"
	"fleet/internal/handlers/rest/drone_status_patch"
	"fleet/internal/handlers/rest/drones_get"
	"fleet/internal/handlers/rest/healthcheck_head"
	"fleet/internal/handlers/rest/order_assign_put"
	"fleet/internal/handlers/rest/order_post"
	"fleet/internal/handlers/rest/order_put"
	"fleet/internal/handlers/rest/order_status_put"
	"fleet/internal/handlers/rest/orders_assigned_get"
	"fleet/internal/handlers/rest/orders_by_drone_get"
	"fleet/internal/handlers/rest/orders_by_restaurant_get"
	"fleet/internal/handlers/rest/orders_delivered_get"
	"fleet/internal/handlers/rest/orders_my_get"
	"fleet/internal/handlers/rest/orders_unassigned_get"
	"fleet/internal/handlers/rest/ping_get"
	"fleet/internal/pkg/config"
	"fleet/internal/pkg/dotenv"
	metrics_system "fleet/internal/pkg/metrics"
	"fleet/internal/pkg/middlewares/auth"
	"fleet/internal/pkg/middlewares/graceful_shutdown"
	"fleet/internal/pkg/middlewares/metrics"
	"fleet/internal/pkg/middlewares/rate_limiter"
	"fleet/internal/pkg/middlewares/timeout"
	"fleet/internal/pkg/postgres"
	"fleet/pkg/logger"
	"fleet/pkg/logger/zap_adapter"
	"fleet/pkg/token_bucket"
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

	mainLog.Info("starting drone-fleet application")

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

//nolint:contextcheck // наследование от context.Background() здесь часть graceful shutdown
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

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
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
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

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
	case err := <-pprofServerErr: // если pprof выключен, канал nil и кейс игнорируется
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
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

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// реестр дронов, без аутентификации
	drones := router.PathPrefix("/api/drones").Subrouter()
	drones.Handle("", drone_post.New(log, app.ServiceDrone)).Methods("POST")
	drones.Handle("", drones_get.New(log, app.ServiceDrone)).Methods("GET")
	drones.Handle("/{id}", drone_get.New(log, app.ServiceDrone)).Methods("GET")
	drones.Handle("/{id}", drone_put.New(log, app.ServiceDrone)).Methods("PUT")
	drones.Handle("/{id}", drone_delete.New(log, app.ServiceDrone)).Methods("DELETE")
	drones.Handle("/{id}/status", drone_status_patch.New(log, app.ServiceDrone)).Methods("PATCH")

	// заказы, только с JWT
	orders := router.PathPrefix("/api/orders").Subrouter()
	orders.Use(auth.Middleware(log, cfg.Auth.JWTSecret))
	orders.Handle("/newOrder", order_post.New(log, app.ServiceOrder)).Methods("POST")
	orders.Handle("/updateOrder/{id}", order_put.New(log, app.ServiceOrder)).Methods("PUT")
	orders.Handle("/updateOrderStatus/{id}", order_status_put.New(log, app.ServiceOrder)).Methods("PUT")
	orders.Handle("/assignDrone/{id}", order_assign_put.New(log, app.ServiceOrder)).Methods("PUT")
	orders.Handle("/getOrdersByResId/{id}", orders_by_restaurant_get.New(log, app.ServiceOrder)).Methods("GET")
	orders.Handle("/getOrdersByDroneId/{id}", orders_by_drone_get.New(log, app.ServiceOrder)).Methods("GET")
	orders.Handle("/getOrdersByUserId", orders_my_get.New(log, app.ServiceOrder)).Methods("GET")
	orders.Handle("/getAllOrders", orders_unassigned_get.New(log, app.ServiceOrder)).Methods("GET")
	orders.Handle("/getAllAcceptedOrders", orders_assigned_get.New(log, app.ServiceOrder)).Methods("GET")
	orders.Handle("/getAllDeliveredOrders", orders_delivered_get.New(log, app.ServiceOrder)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
