package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quotely-dev/quotely/internal/auth"
	"github.com/quotely-dev/quotely/internal/config"
	"github.com/quotely-dev/quotely/internal/handlers"
	"github.com/quotely-dev/quotely/internal/middleware"
	"github.com/quotely-dev/quotely/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func New(cfg *config.Config, conn *gorm.DB, logger *zap.Logger) *gin.Engine {
	issuer := auth.NewTokenIssuer(cfg)
	authHandler := handlers.NewAuthHandler(store.NewCredentialStore(conn), issuer, logger)
	quoteHandler := handlers.NewQuoteHandler(store.NewQuoteRepository(conn), store.NewQuoteQueries(conn), logger)

	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	// The extension posts from arbitrary page origins, hence the
	// wildcard default; credentials ride in the Authorization header,
	// never in cookies, so AllowCredentials stays off with "*".
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		quotes := api.Group("/quotes", middleware.AuthMiddleware(issuer, conn))
		{
			quotes.POST("", quoteHandler.Create)
			quotes.GET("", quoteHandler.List)
			quotes.GET("/random", quoteHandler.Random)
			quotes.PUT("/:id", quoteHandler.Update)
			quotes.DELETE("/:id", quoteHandler.Delete)
		}
	}

	return r
}
