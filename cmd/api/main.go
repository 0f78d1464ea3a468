package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lakeside-exchange/marketplace-backend/internal/admin"
	"lakeside-exchange/marketplace-backend/internal/assets"
	"lakeside-exchange/marketplace-backend/internal/auth"
	"lakeside-exchange/marketplace-backend/internal/config"
	"lakeside-exchange/marketplace-backend/internal/dashboard"
	"lakeside-exchange/marketplace-backend/internal/investments"
	"lakeside-exchange/marketplace-backend/internal/marketplace"
	"lakeside-exchange/marketplace-backend/internal/matching"
	"lakeside-exchange/marketplace-backend/internal/notifications"
	"lakeside-exchange/marketplace-backend/internal/projects"
	"lakeside-exchange/marketplace-backend/internal/seed"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()

	// Stores
	userRepo := auth.NewMemoryRepository()
	projectRepo := projects.NewMemoryRepository()
	listingRepo := assets.NewMemoryRepository()
	investmentRepo := investments.NewMemoryRepository()

	// Event fanout: websocket subscribers plus the dashboard feed
	hub := notifications.NewHub(logger)
	activity := dashboard.NewActivityLog()
	events := notifications.Fanout{hub, activity}

	// Services
	authService := auth.NewService(userRepo, cfg.Security, logger)
	projectService := projects.NewService(projectRepo, logger)
	listingService := assets.NewService(listingRepo, logger)
	bridge := marketplace.NewService(projectService, listingRepo, events, cfg.Market, logger)
	investmentService := investments.NewService(investmentRepo, listingService, events, cfg.Market, logger)
	matchingService := matching.NewService(listingService, logger)
	adminService := admin.NewService(listingService, logger)

	// Demo dataset
	trends, err := seed.Apply(context.Background(), seed.Stores{
		Users:       userRepo,
		Projects:    projectRepo,
		Listings:    listingRepo,
		Investments: investmentRepo,
		Activity:    activity,
	}, logger)
	if err != nil {
		logger.Fatal("failed to load demo dataset", zap.Error(err))
	}

	dashboardService := dashboard.NewService(listingService, investmentRepo, trends, activity, logger)

	scheduler := cron.New()
	if err := dashboardService.StartSnapshotJob(scheduler); err != nil {
		logger.Fatal("failed to schedule kpi refresh", zap.Error(err))
	}
	scheduler.Start()

	// Router
	router := gin.Default()
	router.Use(corsMiddleware(cfg.Server.CORSOrigin))

	api := router.Group("/api")
	{
		auth.NewHandler(authService, logger).RegisterRoutes(api)
		projects.NewHandler(projectService, bridge, logger).RegisterRoutes(api)
		assets.NewHandler(listingService, bridge, logger).RegisterRoutes(api)
		investments.NewHandler(investmentService, logger).RegisterRoutes(api)
		matching.NewHandler(matchingService, logger).RegisterRoutes(api)
		dashboard.NewHandler(dashboardService, logger).RegisterRoutes(api)
		admin.NewHandler(adminService, listingService, bridge, activity, logger).RegisterRoutes(api)
	}
	hub.RegisterRoutes(router.Group(""))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	srv := &http.Server{
		Addr:    cfg.Server.GetServerAddr(),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()
	logger.Info("Server started", zap.String("addr", cfg.Server.GetServerAddr()))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	<-scheduler.Stop().Done()
	hub.Close()
	logger.Info("Server exiting")
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-User-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
