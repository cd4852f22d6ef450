package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spantra1997/SecondServe/cmd"
	"github.com/spantra1997/SecondServe/internal/adapters/out/postgres/donationrepo"
	"github.com/spantra1997/SecondServe/internal/adapters/out/postgres/orderrepo"
	"github.com/spantra1997/SecondServe/internal/adapters/out/postgres/userrepo"
	"github.com/spantra1997/SecondServe/internal/core/application/usecases/commands"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	seedAdmin(configs, &app, logger)

	if configs.JobsEnabled {
		jobManager := app.CreateJobManager(logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		JobsEnabled: goDotEnvVariable("JOBS_ENABLED") == "true",
		AdminEmail:  goDotEnvVariable("ADMIN_EMAIL"),
		AdminName:   goDotEnvVariable("ADMIN_NAME"),
	}
	if config.AdminEmail == "" {
		config.AdminEmail = "admin@secondserve.com"
	}
	if config.AdminName == "" {
		config.AdminName = "Platform Admin"
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
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&donationrepo.DonationDTO{},
		&orderrepo.OrderDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedAdmin registers the platform administrator account. A conflict means a
// previous boot already created it.
func seedAdmin(configs cmd.Config, app *cmd.CompositionRoot, logger *slog.Logger) {
	ctx := context.Background()

	command, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), configs.AdminEmail, configs.AdminName, account.RoleAdmin, "",
	)
	if err != nil {
		log.Fatalf("Failed to build admin seed command: %v", err)
	}

	handler := app.CreateRegisterUserCommandHandler()
	if err := handler.Handle(ctx, command); err != nil {
		if errors.Is(err, errs.ErrStatusConflict) {
			logger.InfoContext(ctx, "Admin account already seeded", "email", configs.AdminEmail)
			return
		}
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	logger.InfoContext(ctx, "Admin account seeded", "email", configs.AdminEmail)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
