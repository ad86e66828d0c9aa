package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/locationd/internal/pkg/config"
	"github.com/piresc/locationd/internal/pkg/database"
	"github.com/piresc/locationd/internal/pkg/health"
	"github.com/piresc/locationd/internal/pkg/logger"
	"github.com/piresc/locationd/internal/pkg/models"
	natspkg "github.com/piresc/locationd/internal/pkg/nats"
	"github.com/piresc/locationd/internal/pkg/retry"
	"github.com/piresc/locationd/internal/pkg/server"
	"github.com/piresc/locationd/services/location"
	"github.com/piresc/locationd/services/location/failing"
	"github.com/piresc/locationd/services/location/gateway"
	"github.com/piresc/locationd/services/location/handler"
	"github.com/piresc/locationd/services/location/live"
	locmodels "github.com/piresc/locationd/services/location/models"
	"github.com/piresc/locationd/services/location/platform"
	"github.com/piresc/locationd/services/location/repository"
	"github.com/piresc/locationd/services/location/simulator"
	"github.com/piresc/locationd/services/location/usecase"
)

func main() {
	appName := "locationd"
	configPath := config.GetEnv("CONFIG_PATH", "config/locationd.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("device_id", configs.Location.DeviceID),
		logger.Bool("route_replay", configs.Location.RouteFile != ""),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize the location manager
	sim := newSimulator(configs.Location)
	liveClient := live.New(func() (platform.Manager, error) { return sim, nil })
	registry := location.Registry{
		Live: liveClient,
		Test: failing.New(),
	}
	client := registry.Resolve(configs.App.Environment)

	err = client.Set(ctx, locmodels.ServiceConfiguration{
		DesiredAccuracy: locmodels.Ptr(configs.Location.DesiredAccuracy),
		DistanceFilter:  locmodels.Ptr(configs.Location.DistanceFilter),
	})
	if err != nil {
		zapLogger.Fatal("Failed to configure location service", logger.Err(err))
	}

	// Initialize repository, gateway and usecase
	snapshotRepo := repository.NewSnapshotRepository(redisClient, time.Duration(configs.Location.SnapshotTTLSec)*time.Second)
	actionGW := gateway.NewActionGW(natsClient, configs.Location.GeohashPrecision)
	locationUC := usecase.NewLocationUC(client, actionGW, snapshotRepo, configs.Location.DeviceID,
		usecase.WithRetrier(retry.NewWithDefaults()))

	relayDone := make(chan struct{})
	go func() {
		defer close(relayDone)
		if err := locationUC.Run(ctx); err != nil {
			zapLogger.Error("Location relay stopped", logger.Err(err))
		}
	}()

	if configs.Location.RouteFile != "" {
		go replayRoute(ctx, sim, configs.Location)
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	healthService.AddChecker("location", health.CheckerFunc(func(ctx context.Context) error {
		_, err := client.LocationServicesEnabled(ctx)
		return err
	}))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	handler.NewHTTPHandler(locationUC).RegisterRoutes(e)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(context.Context) error { return redisClient.Close() })
	shutdown.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdown.Register(func(context.Context) error {
		sim.Close()
		return nil
	})
	shutdown.Register(func(ctx context.Context) error {
		cancel()
		liveClient.Close()
		select {
		case <-relayDone:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	serveErr := srv.Start(ctx)
	if serveErr != nil {
		zapLogger.Error("Server stopped with error", logger.Err(serveErr))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}

	if serveErr != nil {
		zapLogger.Close()
		os.Exit(1)
	}
}

// newSimulator builds the manager used when no device is attached
func newSimulator(cfg models.LocationConfig) *simulator.Simulator {
	grant := locmodels.AuthorizationAuthorizedWhenInUse
	if err := grant.UnmarshalText([]byte(cfg.GrantStatus)); err != nil {
		logger.Warn("Unknown grant status, using default",
			logger.String("grant_status", cfg.GrantStatus),
			logger.String("default", grant.String()))
		grant = locmodels.AuthorizationAuthorizedWhenInUse
	}
	return simulator.New(
		simulator.WithGrant(grant),
		simulator.WithAccuracyAuthorization(locmodels.AccuracyFull),
	)
}

// replayRoute plays the configured route in a loop until ctx is done
func replayRoute(ctx context.Context, sim *simulator.Simulator, cfg models.LocationConfig) {
	f, err := os.Open(cfg.RouteFile)
	if err != nil {
		logger.Error("Failed to open route file", logger.String("path", cfg.RouteFile), logger.Err(err))
		return
	}
	route, err := simulator.LoadRoute(f)
	f.Close()
	if err != nil {
		logger.Error("Failed to load route", logger.String("path", cfg.RouteFile), logger.Err(err))
		return
	}

	interval := time.Duration(cfg.ReplayIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	logger.Info("Replaying route",
		logger.String("path", cfg.RouteFile),
		logger.Int("waypoints", len(route)),
		logger.Duration("interval", interval))

	if err := sim.Replay(ctx, route, interval); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("Route replay stopped", logger.Err(err))
	}
}
