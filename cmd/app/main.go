package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/driverrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/routerepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := startJobs(&app, configs, logger)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		LunchCutover:         goDotEnvVariable("LUNCH_CUTOVER"),
		DinnerCutover:        goDotEnvVariable("DINNER_CUTOVER"),
		SchedulerTimezone:    goDotEnvVariable("SCHEDULER_TIMEZONE"),
		SchedulerTickSeconds: goDotEnvVariable("SCHEDULER_TICK_SECONDS"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&routerepo.ZoneDTO{},
		&routerepo.RouteDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	cutovers := map[kernel.Slot]commands.Cutover{
		kernel.SlotLunch:  mustParseCutover(configs.LunchCutover),
		kernel.SlotDinner: mustParseCutover(configs.DinnerCutover),
	}

	completeSlotHandler, err := app.CreateCompleteSlotDeliveriesCommandHandler(cutovers)
	if err != nil {
		log.Fatalf("Failed to create scheduler handler: %v", err)
	}

	location, err := time.LoadLocation(configs.SchedulerTimezone)
	if err != nil {
		log.Fatalf("Invalid SCHEDULER_TIMEZONE %q: %v", configs.SchedulerTimezone, err)
	}

	tickSeconds, err := strconv.Atoi(configs.SchedulerTickSeconds)
	if err != nil || tickSeconds <= 0 {
		log.Fatalf("Invalid SCHEDULER_TICK_SECONDS %q", configs.SchedulerTickSeconds)
	}

	jobManager := jobs.NewJobManager(
		completeSlotHandler, location, time.Duration(tickSeconds)*time.Second, logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

// mustParseCutover reads a wall-clock moment in "HH:MM" form.
func mustParseCutover(value string) commands.Cutover {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		log.Fatalf("Invalid cutover %q, expected HH:MM: %v", value, err)
	}
	return commands.Cutover{Hour: parsed.Hour(), Minute: parsed.Minute()}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateCreateZoneCommandHandler(),
		app.CreateCreateRouteCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateAdvanceDeliveryCommandHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
		app.CreateGetAvailableDriversQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
