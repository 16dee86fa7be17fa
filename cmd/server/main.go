package main

import (
	"time"

	"delivery_admin/internal/config"
	"delivery_admin/internal/database"
	"delivery_admin/internal/events"
	"delivery_admin/internal/handlers"
	"delivery_admin/internal/logger"
	"delivery_admin/internal/redis"
	"delivery_admin/internal/repository"
	"delivery_admin/internal/services"
	"delivery_admin/pkg/objectstore"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init()
	defer logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logger.Fatal("failed to connect to Redis", "error", err)
	}
	defer redisClient.Close()

	// Initialize object storage client
	storeClient := objectstore.NewClient(cfg.StorageAPIURL, cfg.StorageUsername, cfg.StoragePassword, cfg.StorageBucket)

	// Initialize Kafka producer for order status events
	producer := events.NewProducer(cfg.KafkaBrokers, cfg.OrderEventTopic)
	defer producer.Close()

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize services
	orderService := services.NewOrderService(orderRepo, producer)
	reportService := services.NewReportService(orderRepo)
	branchService := services.NewBranchService(branchRepo)
	restaurantService := services.NewRestaurantService(restaurantRepo)
	catalogService := services.NewCatalogService(categoryRepo, subcategoryRepo, productRepo, storeClient)
	partnerService := services.NewPartnerService(partnerRepo)
	userService := services.NewUserService(userRepo)
	bannerService := services.NewBannerService(branchRepo, storeClient)
	authService := services.NewAuthService(adminRepo, redisClient, time.Duration(cfg.SessionTTL)*time.Second)
	analyticsService := services.NewAnalyticsService(
		orderRepo, userRepo, productRepo, categoryRepo, subcategoryRepo,
		restaurantRepo, partnerRepo, branchRepo,
		redisClient, time.Duration(cfg.StatsCacheTTL)*time.Second,
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService, reportService)
	dashboardHandler := handlers.NewDashboardHandler(analyticsService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	storeHandler := handlers.NewStoreHandler(branchService, restaurantService, partnerService, bannerService)
	userHandler := handlers.NewUserHandler(userService)

	// Setup routes
	router := gin.Default()

	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)
	router.POST("/api/auth/logout", authHandler.Logout)

	api := router.Group("/api")
	api.Use(authHandler.RequireSession())
	{
		// Orders
		api.GET("/orders", orderHandler.ListForDay)
		api.GET("/orders/export", orderHandler.Export)
		api.GET("/orders/charges", orderHandler.Charges)
		api.GET("/orders/monthly-totals", orderHandler.MonthlyTotals)
		api.GET("/orders/:id", orderHandler.Search)
		api.GET("/orders/:id/items", orderHandler.Items)
		api.POST("/orders/:id/cancel", orderHandler.Cancel)

		// Dashboard
		api.GET("/dashboard/stats", dashboardHandler.Stats)
		api.GET("/dashboard/monthly-totals", dashboardHandler.MonthlyTotals)

		// Catalog
		api.GET("/categories", catalogHandler.ListCategories)
		api.POST("/categories", catalogHandler.AddCategory)
		api.PUT("/categories/:id", catalogHandler.UpdateCategory)
		api.DELETE("/categories/:id", catalogHandler.DeleteCategory)

		api.GET("/subcategories", catalogHandler.ListSubcategories)
		api.POST("/subcategories", catalogHandler.AddSubcategory)
		api.PUT("/subcategories/:id", catalogHandler.UpdateSubcategory)
		api.DELETE("/subcategories/:id", catalogHandler.RemoveSubcategory)

		api.GET("/products", catalogHandler.ListProducts)
		api.POST("/products", catalogHandler.CreateProduct)
		api.PUT("/products/:id", catalogHandler.UpdateProduct)
		api.DELETE("/products/:id", catalogHandler.DeleteProduct)

		// Branches
		api.GET("/branches", storeHandler.ListBranches)
		api.POST("/branches", storeHandler.AddBranch)
		api.GET("/branches/:id", storeHandler.GetBranch)
		api.PUT("/branches/:id", storeHandler.UpdateBranch)

		// Restaurants
		api.GET("/restaurants", storeHandler.ListRestaurants)
		api.POST("/restaurants", storeHandler.AddRestaurant)
		api.PUT("/restaurants/:id", storeHandler.UpdateRestaurant)
		api.PUT("/restaurants/:id/active", storeHandler.ToggleRestaurant)

		// Delivery partners
		api.GET("/partners", storeHandler.ListPartners)
		api.POST("/partners", storeHandler.AddPartner)
		api.PUT("/partners/:id", storeHandler.UpdatePartner)
		api.PUT("/partners/:id/active", storeHandler.TogglePartner)
		api.DELETE("/partners/:id", storeHandler.DeletePartner)

		// Banners
		api.GET("/banners", storeHandler.ListBanners)
		api.POST("/banners", storeHandler.UploadBanner)
		api.DELETE("/banners", storeHandler.DeleteBanner)

		// App users
		api.GET("/users", userHandler.List)
		api.PUT("/users/:id/active", userHandler.ToggleActive)
		api.DELETE("/users/:id", userHandler.Delete)
	}

	// Start server
	logger.Info("server starting", "port", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", "error", err)
	}
}
