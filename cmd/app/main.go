package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fueldispatch/cmd"
	_ "fueldispatch/docs"
	httpin "fueldispatch/internal/adapters/in/http"
	"fueldispatch/internal/adapters/out/postgres/deliveryrepo"
	"fueldispatch/internal/adapters/out/postgres/destinationrepo"
	"fueldispatch/internal/adapters/out/postgres/productrepo"
	"fueldispatch/internal/adapters/out/postgres/vehiclerepo"
	"fueldispatch/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDb(configs)
	migrateDb(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		VroomURL:       goDotEnvVariable("VROOM_URL"),
		DepotLongitude: goDotEnvVariable("DEPOT_LONGITUDE"),
		DepotLatitude:  goDotEnvVariable("DEPOT_LATITUDE"),
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

func mustOpenDb(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDb(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&vehiclerepo.CompartmentDTO{},
		&productrepo.ProductDTO{},
		&destinationrepo.DestinationDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateCompleteCompartmentCleaningCommandHandler(),
		app.CreateGetTankerVehiclesQueryHandler(),
		app.CreateGetFuelProductsQueryHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
		app.CreateGetSolverPayloadQueryHandler(),
		app.CreateSolveDeliveryRouteQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
