package routes

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn repositories.DB, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	// repositories
	userRepo := repositories.NewUserRepository(dbConn, logger)
	teamRepo := repositories.NewTeamRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	requestRepo := repositories.NewRequestRepository(dbConn, logger)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)

	var cacheRepo repositories.CacheRepositoryInterface
	if redisClient != nil {
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	}

	// services
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	teamService := services.NewTeamService(teamRepo, dashboardRepo, cacheRepo, cfg.Auth.MembershipCacheTTL, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, teamRepo, logger)
	requestService := services.NewRequestService(txManager, requestRepo, equipmentRepo, teamService, cfg.Auth.EnforceTeamGate, logger)
	dashboardService := services.NewDashboardService(requestRepo, dashboardRepo, logger)

	// controllers
	authCtrl := controllers.NewAuthController(authService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, requestService, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl)
	runRequestRouter(secureGroup, requestCtrl)
	runTeamRouter(secureGroup, teamCtrl)
	runDashboardRouter(secureGroup, dashboardCtrl)
}
