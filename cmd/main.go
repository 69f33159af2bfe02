package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/captain_radius/internal/config"
	"github.com/shenikar/captain_radius/internal/geocoder"
	v1 "github.com/shenikar/captain_radius/internal/handler/http/v1"
	"github.com/shenikar/captain_radius/internal/repository"
	"github.com/shenikar/captain_radius/internal/service"
	"github.com/shenikar/captain_radius/internal/webhook"
	"github.com/shenikar/captain_radius/pkg/logger"
	"github.com/shenikar/captain_radius/pkg/postgres"
	redisclient "github.com/shenikar/captain_radius/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/captain_radius/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Captain Radius API
// @version 1.0
// @description Checks that a ride destination lies within the captain's operating radius.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newGeocoder собирает цепочку: кэш -> повторы -> Nominatim
func newGeocoder(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) geocoder.Provider {
	var provider geocoder.Provider = geocoder.NewNominatimProvider(geocoder.NominatimConfig{
		BaseURL:        cfg.GeocoderURL,
		UserAgent:      cfg.GeocoderUserAgent,
		AcceptLanguage: cfg.GeocoderAcceptLanguage,
		Timeout:        cfg.GeocoderTimeout,
	})
	provider = geocoder.NewRetryingProvider(provider, cfg.GeocoderMaxRetries, cfg.GeocoderRetryBaseDelay, log)

	if cfg.GeocodeCacheTTL > 0 {
		provider = geocoder.NewCachingProvider(provider, repository.NewGeocodeCache(redisClient), cfg.GeocodeCacheTTL, log)
	} else {
		log.Info("Geocode cache disabled")
	}
	return provider
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, postgres.Options{
		MaxConns:        10,
		MaxConnLifetime: time.Hour,
		PingTimeout:     5 * time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Геокодер и проверка радиуса
	geoValidator := service.NewGeoValidator(newGeocoder(cfg, redisClient, log), log, cfg)

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	if cfg.WebhookURL != "" {
		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Warn("WEBHOOK_URL is not set, rejection events will stay in the queue")
	}

	// Инициализация репозиториев
	radiusCheckRepo := repository.NewRadiusCheckRepository(dbpool)

	// Инициализация сервисов
	radiusCheckService := service.NewRadiusCheckService(geoValidator, radiusCheckRepo, log, cfg, webhookPublisher)

	// Инициализация хэндлеров
	handler := v1.NewHandler(radiusCheckService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
