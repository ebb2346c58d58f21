package main

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/metrics"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	sink, err := metrics.NewPromSink(nil)
	if err != nil {
		log.Fatalf("Error registering metrics: %v", err)
	}

	hub := httpin.NewTrackingHub(sink)

	app := cmd.NewCompositionRoot(configs, gormDB, hub)

	jobManager := jobs.NewJobManager(
		jobs.NewOrderSyncJob(app.CreateSyncConfirmedOrdersCommandHandler(), configs.SyncCron, logger),
		jobs.NewDispatchJob(
			app.UnitOfWorkFactory(),
			app.CreateFindNearestDriverQueryHandler(),
			app.CreateAssignDriverCommandHandler(),
			depotLocation(configs),
			configs.DispatchCron,
			logger,
			sink,
		),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, hub, sink, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		SyncCron:     goDotEnvVariable("SYNC_CRON"),
		DispatchCron: goDotEnvVariable("DISPATCH_CRON"),
		DepotLat:     goDotEnvVariable("DEPOT_LAT"),
		DepotLon:     goDotEnvVariable("DEPOT_LON"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func depotLocation(configs cmd.Config) kernel.GeoPoint {
	lat, err := strconv.ParseFloat(configs.DepotLat, 64)
	if err != nil {
		log.Fatalf("Error parsing DEPOT_LAT: %v", err)
	}

	lon, err := strconv.ParseFloat(configs.DepotLon, 64)
	if err != nil {
		log.Fatalf("Error parsing DEPOT_LON: %v", err)
	}

	depot, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		log.Fatalf("Error validating depot location: %v", err)
	}
	return depot
}

func startWebServer(app *cmd.CompositionRoot, hub *httpin.TrackingHub, sink *metrics.PromSink, port string) {
	server := httpin.NewServer(httpin.Handlers{
		CreateDelivery:     app.CreateCreateDeliveryCommandHandler(),
		AssignDriver:       app.CreateAssignDriverCommandHandler(),
		TransitionDelivery: app.CreateTransitionDeliveryCommandHandler(),
		CloseDelivery:      app.CreateCloseDeliveryCommandHandler(),
		RegisterDriver:     app.CreateRegisterDriverCommandHandler(),
		VerifyDriver:       app.CreateVerifyDriverCommandHandler(),
		GoOnline:           app.CreateGoOnlineCommandHandler(),
		GoOffline:          app.CreateGoOfflineCommandHandler(),
		IngestLocation:     app.CreateIngestLocationCommandHandler(),
		CompleteDelivery:   app.CreateCompleteDeliveryCommandHandler(),
		SyncOrders:         app.CreateSyncConfirmedOrdersCommandHandler(),

		GetActiveDeliveries: app.CreateGetActiveDeliveriesQueryHandler(),
		GetAvailableDrivers: app.CreateGetAvailableDriversQueryHandler(),
		FindNearestDriver:   app.CreateFindNearestDriverQueryHandler(),
		GetTracking:         app.CreateGetTrackingQueryHandler(),
		GetDeliveryByOrder:  app.CreateGetDeliveryByOrderQueryHandler(),
	}, sink)

	e := echo.New()
	e.Use(httpin.MetricsMiddleware(sink))

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.GET("/ws/tracking", hub.Subscribe)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.NoContent(nethttp.StatusInternalServerError)
		}
		return c.JSON(nethttp.StatusOK, swagger)
	})

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != nethttp.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
