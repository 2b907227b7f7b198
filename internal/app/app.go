package app

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"finvest_backend/internal/auth"
	"finvest_backend/internal/config"
	"finvest_backend/internal/handlers"
	"finvest_backend/internal/logger"
	"finvest_backend/internal/middleware"
	"finvest_backend/internal/models"
	"finvest_backend/internal/routes"
	"finvest_backend/pkg/apperrors"
)

// Run wires the whole server and blocks serving HTTP.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("development")
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the repositories depend on.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.User{}, &models.UserDetails{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	googleVerifier := auth.NewGoogleVerifier(cfg.Google.ClientID)
	ginRouter := SetupRouter(cfg, gormDB, sqlDB, googleVerifier)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with the full middleware chain and
// route table. Tests call it directly with their own database and a
// stub Google verifier.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB, googleVerifier auth.GoogleVerifier) *gin.Engine {
	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	appHandlers := handlers.NewAppHandlers(tokens, googleVerifier, sqlDB)

	ginRouter := gin.New()
	// Panics become the structured 500 envelope, not a bare status.
	ginRouter.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.CtxError(c.Request.Context(), "panic recovered", "panic", fmt.Sprintf("%v", recovered))
		apperrors.HandleError(c, apperrors.InternalError(fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	}))
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(cors.New(corsConfig(cfg)))
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.AllowCredentials = true
	return corsCfg
}
