package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/cache"
	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/controllers"
	"github.com/samudra-tours/samudra-tours-api/middleware"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/services"
)

func main() {
	log.Println("Starting Samudra Tours API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetConfig(cfg)

	// Connect to database
	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Destination{},
		&models.Order{},
		&models.BlogPost{},
		&models.Review{},
		&models.AppSettings{},
		&models.Admin{},
		&models.Invoice{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize S3-backed image storage
	s3Service, err := services.InitS3Service()
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}
	services.InitImageService(s3Service)

	router := setupRouter(cfg)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires every route onto a fresh engine. The public surface is
// unauthenticated (write endpoints are rate limited); the admin surface sits
// behind an Auth0 JWT plus an admins-table membership check.
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	limiter := cache.NewTTLStore()

	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		// Public catalog and content
		v1.GET("/destinations", controllers.ListDestinations)
		v1.GET("/destinations/:slug", controllers.GetDestination)
		v1.GET("/blog", controllers.ListBlogPosts)
		v1.GET("/blog/:slug", controllers.GetBlogPost)
		v1.GET("/reviews", controllers.ListReviews)
		v1.GET("/settings", controllers.GetSettings)
		v1.GET("/invoices/shared/:token", controllers.GetSharedInvoice)

		// Public write endpoints, rate limited per client IP
		v1.POST("/orders",
			middleware.RateLimit(limiter, "orders", cfg.RateLimitMax, cfg.RateLimitWindow),
			controllers.CreateOrder)
		v1.POST("/reviews",
			middleware.RateLimit(limiter, "reviews", cfg.RateLimitMax, cfg.RateLimitWindow),
			controllers.CreateReview)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.EnsureValidToken(cfg), middleware.RequireAdmin())
	{
		admin.GET("/me", controllers.GetMe)

		admin.GET("/orders", controllers.ListOrders)
		admin.GET("/orders/:id", controllers.GetOrder)
		admin.POST("/orders/:id/contact", controllers.ContactCustomer)
		admin.POST("/orders/:id/payments", controllers.RecordPayment)
		admin.POST("/orders/:id/complete", controllers.CompleteOrder)
		admin.POST("/orders/:id/cancel", controllers.CancelOrder)
		admin.PATCH("/orders/:id/participants", controllers.UpdateParticipants)
		admin.PATCH("/orders/:id/departure-date", controllers.UpdateDepartureDate)
		admin.DELETE("/orders/:id", controllers.DeleteOrder)

		admin.POST("/destinations", controllers.UpsertDestination)
		admin.DELETE("/destinations/:id", controllers.DeleteDestination)

		admin.POST("/blog", controllers.UpsertBlogPost)
		admin.DELETE("/blog/:id", controllers.DeleteBlogPost)

		admin.DELETE("/reviews/:id", controllers.DeleteReview)

		admin.PUT("/settings", controllers.UpsertSettings)

		admin.POST("/uploads", controllers.UploadImage)
		admin.DELETE("/uploads", controllers.DeleteImage)

		admin.POST("/invoices", controllers.CreateInvoice)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Samudra Tours API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
