package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ordertrack/cmd"
	outkafka "ordertrack/internal/adapters/out/kafka"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/postgres/tagrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	publisher, err := outkafka.NewTransitionPublisher(
		[]string{configs.KafkaHost}, configs.KafkaTransitionsTopic, logger,
	)
	if err != nil {
		logger.Error("Failed to create transition publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = publisher.Close()
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()

	consumer, err := app.CreateTransitionConsumer()
	if err != nil {
		logger.Error("Failed to create transition consumer", "error", err)
		os.Exit(1)
	}
	consumer.Start(consumerCtx)
	defer func() {
		_ = consumer.Stop()
	}()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		StatusAPIBaseURL: goDotEnvVariable("STATUS_API_BASE_URL"),

		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:    goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaTransitionsTopic: goDotEnvVariable("KAFKA_TRANSITIONS_TOPIC"),

		EmailEnabled:   goDotEnvVariable("NOTIFY_EMAIL_ENABLED") == "true",
		EmailRecipient: goDotEnvVariable("NOTIFY_EMAIL_RECIPIENT"),
		MailFrom:       goDotEnvVariable("MAIL_FROM_ADDRESS"),
		SMTPAddr:       goDotEnvVariable("SMTP_ADDR"),

		SMSEnabled:   goDotEnvVariable("NOTIFY_SMS_ENABLED") == "true",
		SMSRecipient: goDotEnvVariable("NOTIFY_SMS_RECIPIENT"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&tagrepo.TagDTO{}, &orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("Shutting down HTTP server")
		if err := e.Shutdown(context.Background()); err != nil {
			logger.Error("HTTP server shutdown failed", "error", err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
		e.Logger.Fatal(err)
	}
}
