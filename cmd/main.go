package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/mahlalem-eng/themosthigh-backend/internal/api"
	"github.com/mahlalem-eng/themosthigh-backend/internal/config"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
	"github.com/mahlalem-eng/themosthigh-backend/migrations"
)

func connectDB(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", cfg.DBName)
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB %s (%s:%s): %v", i+1, cfg.DBName, cfg.DBHost, cfg.DBPort, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
}

func main() {
	cfg := config.Load()

	var store *repository.Store
	if cfg.StoreDriver == "memory" {
		store = repository.NewMemoryStore()
		log.Println("Using in-memory store")
	} else {
		db, err := connectDB(cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := migrations.AutoMigrate(db, 3); err != nil {
			log.Fatalf("Failed to migrate tables: %v", err)
		}
		store = repository.NewMySQLStore(db)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	var events *service.EventPublisher
	if cfg.KafkaEnabled {
		events = service.NewEventPublisher(config.NewKafkaWriter("storefront-events"))
	}

	guestCart := service.NewGuestCartStore()

	catalogService := service.NewCatalogService(store.Products, rdb)
	cartService := service.NewCartService(store.Carts, store.Products, guestCart)
	orderService := service.NewOrderService(store.Orders, cartService, events, rdb)
	posService := service.NewPOSService(store.Sales, store.Products, events)
	membershipService := service.NewMembershipService(store.Members, events)
	eftService := service.NewEFTService(store.Orders, events)
	userService := service.NewUserService(store.Users, rdb, cfg.JWTSecret)
	paymentClient := service.NewPaymentClient(cfg.PaymentURL)

	productHandler := api.NewProductHandler(catalogService)
	cartHandler := api.NewCartHandler(cartService)
	orderHandler := api.NewOrderHandler(orderService)
	posHandler := api.NewPOSHandler(posService)
	membershipHandler := api.NewMembershipHandler(membershipService)
	eftHandler := api.NewEFTHandler(eftService)
	userHandler := api.NewUserHandler(userService)
	paymentHandler := api.NewPaymentHandler(paymentClient)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     50,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	g := e.Group("/api", api.Identity(userService))
	admin := api.RequireAdmin(cfg.AdminSecret)

	g.GET("/products", productHandler.ListProducts)
	g.GET("/products/:id", productHandler.GetProduct)
	g.POST("/products", productHandler.CreateProduct, admin)
	g.PATCH("/products/:id", productHandler.UpdateProduct, admin)
	g.DELETE("/products/:id", productHandler.DeleteProduct, admin)
	g.POST("/admin/refresh-products", productHandler.RefreshProducts, admin)

	g.GET("/cart", cartHandler.ListCart)
	g.POST("/cart", cartHandler.AddToCart)
	g.PUT("/cart/:id", cartHandler.UpdateCartItem)
	g.DELETE("/cart/:id", cartHandler.RemoveCartItem)
	g.DELETE("/cart", cartHandler.ClearCart)

	g.POST("/orders", orderHandler.CreateOrder)
	g.GET("/orders", orderHandler.ListOrders)

	g.POST("/membership-applications", membershipHandler.SubmitApplication)
	g.GET("/membership-applications", membershipHandler.ListApplications, admin)
	g.GET("/membership-applications/:id", membershipHandler.GetApplication, admin)
	g.PATCH("/membership-applications/:id/status", membershipHandler.SetStatus, admin)
	// Alias kept for the storefront admin page, which patches the
	// application directly.
	g.PATCH("/membership-applications/:id", membershipHandler.SetStatus, admin)
	g.DELETE("/membership-applications/:id", membershipHandler.DeleteApplication, admin)
	g.GET("/member-lookup", membershipHandler.MemberLookup)
	g.GET("/member-verify", membershipHandler.MemberVerify)

	g.POST("/pos/sales", posHandler.RecordSale)
	g.GET("/pos/sales", posHandler.SalesStats)
	g.GET("/pos/sales/all", posHandler.ListSales)

	g.POST("/eft-orders", eftHandler.CreateOrder)
	g.POST("/eft-orders/confirm-payment", eftHandler.ConfirmPayment)
	g.GET("/eft-orders", eftHandler.ListOrders)
	g.PUT("/eft-orders/:reference/status", eftHandler.SetStatus, admin)

	g.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)

	g.POST("/users", userHandler.Register)
	g.POST("/users/login", userHandler.Login)
	g.GET("/users/:id", userHandler.GetUser)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "themosthigh-backend",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
