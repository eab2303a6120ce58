package main

import (
	"context"
	"net/http"

	"gearguard/internal/routes"
	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	applogger "gearguard/pkg/logger"
	appmiddleware "gearguard/pkg/middleware"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	e.HideBanner = true

	logger := applogger.NewLogger()
	defer func() { _ = logger.Sync() }()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				return c.JSON(http.StatusInternalServerError, utils.ErrorBody{Error: "server error"})
			}
			return err
		},
	}))
	e.Use(middleware.CORS())
	e.Use(appmiddleware.RequestLogger(logger))

	e.Validator = utils.NewValidator(validator.New())

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.TokenTTL)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, logger, cfg)

	logger.Info("server listening", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
