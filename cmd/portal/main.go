package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medlink/portal/internal/pkg/config"
	"github.com/medlink/portal/internal/pkg/database"
	"github.com/medlink/portal/internal/pkg/health"
	jwtpkg "github.com/medlink/portal/internal/pkg/jwt"
	"github.com/medlink/portal/internal/pkg/logger"
	"github.com/medlink/portal/internal/pkg/middleware"
	nsqpkg "github.com/medlink/portal/internal/pkg/nsq"
	"github.com/medlink/portal/internal/pkg/server"
	"github.com/medlink/portal/services/auth/gateway"
	"github.com/medlink/portal/services/auth/handler"
	httpHandler "github.com/medlink/portal/services/auth/handler/http"
	"github.com/medlink/portal/services/auth/repository"
	"github.com/medlink/portal/services/auth/usecase"
)

func main() {
	appName := "portal-auth"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// A missing signing secret is fatal; the service must not run unsigned
	codec, err := jwtpkg.NewCodec(configs.JWT)
	if err != nil {
		if errors.Is(err, jwtpkg.ErrMissingSecret) {
			zapLogger.Fatal("JWT_SECRET is not configured", logger.Err(err))
		}
		zapLogger.Fatal("Failed to initialize token codec", logger.Err(err))
	}

	shutdownManager := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})

	// Repositories
	identityRepo := repository.NewIdentityRepo(postgresClient.GetDB())
	challengeRepo := repository.NewChallengeRepo(redisClient)

	// Gateways
	notifierGW := gateway.NewNotifierGW(producer)
	oauthGW := gateway.NewOAuthGW(configs.OAuth)

	// UseCase
	authUC := usecase.NewAuthUC(identityRepo, challengeRepo, notifierGW, oauthGW, codec, configs)

	// Handlers
	authHandler := httpHandler.NewAuthHandler(authUC, configs)
	adminHandler := httpHandler.NewAdminHandler(authUC)
	h := handler.NewHandler(authHandler, adminHandler, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	// Mounted on the root so the route table fences every portal surface,
	// including ones this service registers no handlers for
	e.Use(handler.SessionMiddleware(configs, codec))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped unexpectedly", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown finished with errors", logger.Err(err))
	}
}
