package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/africanqueen007/ctl-travel-budget-app/database"
	"github.com/africanqueen007/ctl-travel-budget-app/handlers"
	"github.com/africanqueen007/ctl-travel-budget-app/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	// Initialize database
	database.InitDB()

	// Initialize AI service (rates + secondary airfare oracle)
	services.InitAI()

	// Oracle price cache: Redis when configured, in-process otherwise
	var cache services.PriceCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = services.NewRedisCache(addr)
		log.Println("✅ Airfare cache backed by Redis at", addr)
	} else {
		cache = services.NewMemoryCache()
		log.Println("⚠️  REDIS_ADDR not set — airfare cache is in-process only")
	}
	services.InitAirfare(cache)

	// Fetch exchange rates once at startup; the fallback set stays active
	// if the provider is unreachable.
	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
	services.RefreshRates(ctx)
	cancel()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/budget", handlers.CalculateHandler)
		api.GET("/rates", handlers.RatesHandler)
		api.POST("/rates/refresh", handlers.RefreshRatesHandler)
		api.GET("/reference/countries", handlers.CountriesHandler)
		api.GET("/reference/cities", handlers.CitiesHandler)
		api.POST("/requests", handlers.SaveRequestHandler)
		api.GET("/requests", handlers.ListRequestsHandler)
		api.GET("/requests/export", handlers.ExportCSVHandler)
		api.GET("/requests/:id/pdf", handlers.RequestPDFHandler)
		api.PUT("/requests/:id", handlers.UpdateRequestHandler)
		api.DELETE("/requests/:id", handlers.DeleteRequestHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Travel budget backend starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
