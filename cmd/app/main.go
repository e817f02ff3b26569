package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/migrations"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dsn := postgres.DSN(
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	if err := migrations.Up(dsn); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}
	gormDB, err := postgres.Open(dsn)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	defer redisClient.Close()

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := newWebServer(app, configs, logger)
	startWebServer(e, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// Deployed environments set variables directly; .env is for local runs.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:               goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:           goDotEnvVariable("REDIS_PASSWORD"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		JWTSecret:               goDotEnvVariable("JWT_SECRET"),
		PaymentWebhookSecret:    goDotEnvVariable("PAYMENT_WEBHOOK_SECRET"),
		PaymentGatewayURL:       goDotEnvVariable("PAYMENT_GATEWAY_URL"),
		PaymentGatewayKeyID:     goDotEnvVariable("PAYMENT_GATEWAY_KEY_ID"),
		PaymentGatewaySecret:    goDotEnvVariable("PAYMENT_GATEWAY_KEY_SECRET"),
		OutboxRelaySchedule:     goDotEnvVariable("OUTBOX_RELAY_SCHEDULE"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is required")
	}
	return config
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func newWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *echo.Echo {
	server, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error creating HTTP server: %v", err)
	}

	e, err := httpin.NewRouter(server, httpin.DefaultRouterConfig([]byte(configs.JWTSecret)), logger)
	if err != nil {
		log.Fatalf("Error creating router: %v", err)
	}
	return e
}

func startWebServer(e *echo.Echo, port string, logger *slog.Logger) {
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	logger.Info("HTTP server started", "port", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
