package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/config"
	"bakery_frontdesk/pkg/database"
	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/routes"
	"bakery_frontdesk/pkg/upstream"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database (pending-order store)
	log.Println("🔌 Initializing database connection...")
	if err := database.InitDatabase(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDatabase()

	// Initialize the upstream API client
	upstream.Init(config.AppConfig.UpstreamAPIURL, config.AppConfig.PaymentAPIURL, config.AppConfig.UpstreamTimeout)
	log.Printf("📡 Upstream API: %s", config.AppConfig.UpstreamAPIURL)

	// Set Gin mode based on environment
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Session middleware - cookie store holds the identity and bearer token
	store := cookie.NewStore([]byte(config.AppConfig.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   config.IsProduction(),
	})
	router.Use(sessions.Sessions("session", store))

	// CORS middleware
	setupCORS(router)

	// Multipart memory cap for product image uploads
	router.MaxMultipartMemory = 10 << 20 // 10 MB

	// Routes
	setupRoutes(router)

	// Start server
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: router,
	}

	// Server startup in goroutine
	go func() {
		log.Printf("🚀 Server running in %s mode\n", config.AppConfig.Environment)
		log.Printf("📡 Server listening on http://localhost:%s\n", config.AppConfig.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

// setupCORS configures CORS for the browser clients
func setupCORS(router *gin.Engine) {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if config.IsProduction() {
		allowOrigins := parseOrigins(config.AppConfig.AllowedOrigins)
		if len(allowOrigins) == 0 {
			allowOrigins = []string{config.AppConfig.PublicBaseURL}
		}
		corsConfig.AllowOrigins = allowOrigins
		router.Use(cors.New(corsConfig))
		log.Printf("🔒 CORS enabled for origins: %v\n", allowOrigins)
		return
	}

	// In development, trust any origin
	corsConfig.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(corsConfig))
	log.Println("🔓 CORS enabled for all origins (development mode)")
}

// parseOrigins splits comma-separated origin string
func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setupRoutes sets up all application routes
func setupRoutes(router *gin.Engine) {
	searchLimiter := middleware.NewSearchRateLimiter(
		config.AppConfig.SearchRatePerSecond,
		config.AppConfig.SearchBurst,
	)

	// Root route
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bakery front-desk gateway is running...")
	})

	// API routes group
	api := router.Group("/api")
	{
		routes.RegisterAuthRoutes(api)
		routes.RegisterAdminRoutes(api, searchLimiter)
		routes.RegisterManagerRoutes(api, searchLimiter)
		routes.RegisterCustomerRoutes(api, searchLimiter)

		// Health check route
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":      "ok",
				"environment": config.AppConfig.Environment,
			})
		})
	}

	router.NoRoute(middleware.NotFoundHandler())
}
