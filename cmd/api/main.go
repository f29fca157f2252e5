package main

import (
	"os"

	"parking/internal/database"
	"parking/internal/handler"
	"parking/internal/logger"
	"parking/internal/middleware"
	"parking/internal/repository"
	"parking/internal/service"
	"parking/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	if err := godotenv.Load("configs/.env"); err != nil {
		log.Info("no configs/.env file found, using environment")
	}

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPassword := envOr("DB_PASSWORD", "postgres")
	dbName := envOr("DB_NAME", "parqueo")
	dbSslMode := envOr("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("connected to PostgreSQL")

	if err := database.Bootstrap(db); err != nil {
		log.Fatal("bootstrap failed", zap.Error(err))
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Repository -> Service -> Handler
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	tariffRepo := repository.NewTariffRepository(db)
	configRepo := repository.NewConfigurationRepository(db)
	fieldRepo := repository.NewFormFieldRepository(db)
	reportRepo := repository.NewReportRepository(db)

	middleware.InitAuth(userRepo)

	authService := service.NewAuthService(userRepo)
	parkingService := service.NewParkingService(vehicleRepo, spaceRepo, recordRepo, tariffRepo, txManager, wsHub)
	dashboardService := service.NewDashboardService(spaceRepo, vehicleRepo, reportRepo)
	reportService := service.NewReportService(reportRepo)
	exportService := service.NewExportService(reportService)
	settingsService := service.NewSettingsService(configRepo, fieldRepo, tariffRepo, spaceRepo, txManager)

	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(parkingService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	reportHandler := handler.NewReportHandler(reportService, exportService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	systemHandler := handler.NewSystemHandler(userRepo, spaceRepo, configRepo)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	api := router.Group("/api")
	systemHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)
	vehicleHandler.RegisterRoutes(api)
	dashboardHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)

	port := envOr("PORT", "8080")
	log.Info("server listening", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
