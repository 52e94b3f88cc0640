package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mealsmith/backend/config"
	"github.com/mealsmith/backend/internal/api"
	"github.com/mealsmith/backend/internal/database"
	"github.com/mealsmith/backend/internal/repository"
	"github.com/mealsmith/backend/internal/router"
	"github.com/mealsmith/backend/internal/server"
	"github.com/mealsmith/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, disconnect, err := database.NewMongoDatabase(connectCtx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Fatal("Redis connection failed", zap.Error(err))
	}

	authService := service.NewAuthService(cfg.Auth.JWTSecret)
	llmService := service.NewLLMService(cfg, logger)
	generationService := service.NewGenerationService(llmService, logger)
	nutritionService := service.NewNutritionService(cfg, logger)
	draftService := service.NewDraftService(redisClient, logger)
	recipes := repository.NewMongoRecipes(db, logger)
	recipeService := service.NewRecipeService(recipes, nutritionService, logger)

	recipeHandler := api.NewRecipeHandler(recipeService, logger)
	llmHandler := api.NewLLMHandler(generationService, draftService, logger)

	engine := router.SetupRouter(cfg, logger, authService, recipeHandler, llmHandler)
	srv := server.New(cfg, engine, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	if err := disconnect(shutdownCtx); err != nil {
		logger.Error("MongoDB disconnect error", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Redis close error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
