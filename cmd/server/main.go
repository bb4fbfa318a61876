package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kindnet/kindness-api/internal/audit"
	"github.com/kindnet/kindness-api/internal/config"
	"github.com/kindnet/kindness-api/internal/database"
	"github.com/kindnet/kindness-api/internal/handler"
	"github.com/kindnet/kindness-api/internal/middleware"
	"github.com/kindnet/kindness-api/internal/repository"
	"github.com/kindnet/kindness-api/internal/service"
	"github.com/kindnet/kindness-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db := database.Connect(cfg)
	database.Migrate(db)

	// Lifecycle audit trail (append-only file)
	trail, err := audit.NewTrail(cfg.AuditLogPath)
	if err != nil {
		log.Fatalf("Failed to initialize audit trail: %v", err)
	}
	defer trail.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	actRepo := repository.NewActRepository(db)
	savedRepo := repository.NewSavedActRepository(db)
	completedRepo := repository.NewCompletedActRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg.TokenSecret, cfg.TokenExpiry)
	actService := service.NewActService(actRepo, trail)
	savedService := service.NewSavedActService(savedRepo, actRepo, completedRepo, trail)
	completedService := service.NewCompletedActService(completedRepo, actRepo, trail)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	actHandler := handler.NewActHandler(actService)
	savedHandler := handler.NewSavedHandler(savedService)
	completedHandler := handler.NewCompletedHandler(completedService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			middleware.TokenHeader,
			"Origin", "X-Requested-With", "Content-Type", "Accept",
		},
		ExposeHeaders: []string{middleware.TokenHeader},
	}))

	auth := middleware.AuthMiddleware(cfg.TokenSecret)

	// Public routes
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Random Acts of Kindness API! :)")
	})
	router.POST("/user/register", authHandler.Register)
	router.POST("/user/login", authHandler.Login)
	router.GET("/acts", actHandler.ListApproved)

	// Act routes (require token)
	acts := router.Group("/acts", auth)
	{
		acts.POST("", actHandler.Create)
		acts.GET("/user", actHandler.ListMine)
		acts.GET("/all", middleware.AdminMiddleware(), actHandler.ListAll)
		acts.GET("/:id", actHandler.GetByID)
		acts.PUT("/:id", actHandler.Update)
		acts.DELETE("/:id", actHandler.Delete)
	}

	// Saved-act ledger (require token; admins rejected by the service)
	saved := router.Group("/saved", auth)
	{
		saved.POST("", savedHandler.Save)
		saved.GET("", savedHandler.List)
		saved.PUT("/:id/complete", savedHandler.Complete)
		saved.DELETE("/:id", savedHandler.Unsave)
	}

	// Completed-act ledger (require token)
	completed := router.Group("/completed", auth)
	{
		completed.POST("", completedHandler.Create)
		completed.GET("/:userId", completedHandler.ListByUser)
	}

	log.Printf("Random Acts of Kindness API starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
