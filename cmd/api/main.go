package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/profast/parcel-server/internal/config"
	"github.com/profast/parcel-server/internal/database"
	"github.com/profast/parcel-server/internal/handlers"
	"github.com/profast/parcel-server/internal/middleware"
	"github.com/profast/parcel-server/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	verifier, err := services.NewVerifier(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize token verifier: %v", err)
	}

	intents := services.NewStripeIntents(cfg.StripeSecretKey)

	publisher, err := services.NewTrackingPublisher(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Live tracking feed hub
	hub := services.NewHub()
	go hub.Run()

	r := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	authRequired := middleware.AuthMiddleware(verifier)
	adminOnly := middleware.RequireAdmin(db)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Parcel server is running")
	})

	// User routes. Gin cannot register a static /users/search next to the
	// :email wildcard, so the search route is dispatched by hand.
	userRole := handlers.GetUserRole(db)
	userSearch := handlers.SearchUsers(db)
	r.POST("/users", handlers.RegisterUser(db))
	r.GET("/users/:email", func(c *gin.Context) {
		if c.Param("email") == "search" {
			userSearch(c)
			return
		}
		userRole(c)
	})
	r.PATCH("/users/:id/role", authRequired, adminOnly, handlers.UpdateUserRole(db))

	// Parcel routes
	r.POST("/parcels", authRequired, handlers.CreateParcel(db))
	r.GET("/parcels", handlers.GetParcels(db))
	r.GET("/parcels/:id", handlers.GetParcelByID(db))
	r.DELETE("/parcels/:id", handlers.DeleteParcel(db))

	// Payment routes
	r.POST("/create-payment-intent", handlers.CreatePaymentIntent(intents))
	r.GET("/payments", authRequired, handlers.ListPayments(db))
	r.POST("/payments", handlers.RecordPayment(db, cfg))

	// Rider routes
	r.POST("/riders", handlers.ApplyRider(db))
	r.GET("/riders/pending", authRequired, adminOnly, handlers.GetPendingRiders(db))
	r.GET("/riders/active", authRequired, adminOnly, handlers.GetActiveRiders(db))
	r.PATCH("/riders/:id/status", handlers.UpdateRiderStatus(db))

	// Tracking routes
	r.POST("/tracking", handlers.CreateTrackingEvent(db, hub, publisher))
	r.GET("/tracking/live", authRequired, handlers.TrackingFeed(hub))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
