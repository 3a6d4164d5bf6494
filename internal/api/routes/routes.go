package routes

import (
	"net/http"
	"time"

	"erp-backend/internal/api/handlers"
	"erp-backend/internal/api/middleware"
	"erp-backend/internal/auth"
	"erp-backend/internal/config"
	"erp-backend/internal/logger"
	"erp-backend/internal/metrics"
	"erp-backend/internal/repository"
	"erp-backend/internal/sequence"
	"erp-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// redisClient is optional; when set it backs document numbering if configured and is health checked.
func SetupRoutes(db *gorm.DB, redisClient redis.UniversalClient, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.MetricsEnabled {
		metrics.Register(prometheus.DefaultRegisterer)
		router.Use(middleware.Metrics())
	}

	// Initialize validator
	validator := validator.New()

	// Document number allocation
	var allocator sequence.Allocator = sequence.NewTableAllocator()
	if cfg.SequenceBackend == config.SequenceBackendRedis && redisClient != nil {
		allocator = sequence.NewRedisAllocator(redisClient)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewProductionPlanRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	taskRepo := repository.NewWorkOrderTaskRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	planService := service.NewProductionPlanService(planRepo, allocator, validator)
	workOrderService := service.NewWorkOrderService(workOrderRepo, planRepo, userRepo, allocator, validator)
	taskService := service.NewWorkOrderTaskService(taskRepo, workOrderRepo, userRepo, allocator, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	userHandler := handlers.NewUserHandler(userService)
	planHandler := handlers.NewProductionPlanHandler(planService)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderService)
	taskHandler := handlers.NewWorkOrderTaskHandler(taskService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - every endpoint is scoped to the caller's tenant
	v1 := router.Group("/api/v1")

	if cfg.AuthEnabled {
		authService, err := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
		if err != nil {
			logger.New().WithError(err).Fatal("Failed to initialize auth service")
		}
		v1.Use(auth.NewAuthMiddleware(authService).RequireAuth())

		// Token issuance for local tooling only
		if !cfg.IsProduction() {
			authHandler := auth.NewAuthHandler(authService, userRepo)
			router.POST("/api/auth/token", authHandler.IssueToken)
		}
	} else {
		logger.New().Warn("Authentication disabled, identity is taken from X-Tenant-ID and X-User-ID headers")
		v1.Use(middleware.TenantFromHeaders())
	}

	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/me", userHandler.GetCurrentUser)
		}

		// Production plan routes
		plans := v1.Group("/production-plans")
		{
			plans.GET("", planHandler.ListProductionPlans)
			plans.POST("", planHandler.CreateProductionPlan)
			plans.GET("/:id", planHandler.GetProductionPlan)
			plans.PUT("/:id", planHandler.UpdateProductionPlan)
			plans.DELETE("/:id", planHandler.DeleteProductionPlan)
			plans.POST("/:id/approve", planHandler.ApproveProductionPlan)
		}

		// Work order routes
		workOrders := v1.Group("/work-orders")
		{
			workOrders.GET("", workOrderHandler.ListWorkOrders)
			workOrders.POST("", workOrderHandler.CreateWorkOrder)
			workOrders.GET("/:id", workOrderHandler.GetWorkOrder)
			workOrders.PUT("/:id", workOrderHandler.UpdateWorkOrder)
			workOrders.DELETE("/:id", workOrderHandler.DeleteWorkOrder)
			workOrders.POST("/:id/release", workOrderHandler.ReleaseWorkOrder)
			workOrders.POST("/:id/start", workOrderHandler.StartWorkOrder)
			workOrders.POST("/:id/complete", workOrderHandler.CompleteWorkOrder)
			workOrders.GET("/:id/tasks", taskHandler.ListTasks)
			workOrders.POST("/:id/tasks", taskHandler.CreateTask)
		}

		// Work order task routes
		tasks := v1.Group("/work-order-tasks")
		{
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/start", taskHandler.StartTask)
			tasks.POST("/:id/complete", taskHandler.CompleteTask)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
