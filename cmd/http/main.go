package main

import (
	"context"
	"log"
	"mindwell-service/internal/app/config"
	"mindwell-service/internal/app/delivery/http/middlewares"
	"mindwell-service/internal/app/delivery/http/routers"
	"mindwell-service/internal/app/drivers/database"
	"mindwell-service/internal/app/drivers/logger"
	"mindwell-service/internal/app/services/core/assessments"
	"mindwell-service/internal/app/services/core/auth"
	"mindwell-service/internal/app/services/core/profiles"
	"mindwell-service/internal/app/services/core/users"
	"mindwell-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests to be processed before shutdown")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Profile
	profileMongoRepository := profiles.NewProfileMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	profileUsecase := profiles.NewProfileUsecase(profileMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	profileController := profiles.NewProfileController(bootstrap.Logger, profileUsecase)

	// Assessment
	assessmentMongoRepository := assessments.NewAssessmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	assessmentUsecase := assessments.NewAssessmentUsecase(assessmentMongoRepository, profileMongoRepository, redisRepository, bootstrap.Logger)
	assessmentController := assessments.NewAssessmentController(bootstrap.Logger, assessmentUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, authController, assessmentController, profileController)
}
