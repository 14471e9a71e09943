package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/HectorSandate/Hilosaki/config"
	"github.com/HectorSandate/Hilosaki/events"
	"github.com/HectorSandate/Hilosaki/middleware"
	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/notifications"
	"github.com/HectorSandate/Hilosaki/realtime"
	"github.com/HectorSandate/Hilosaki/repository"
	"github.com/HectorSandate/Hilosaki/routes"
	"github.com/HectorSandate/Hilosaki/services"
)

func main() {
	log.Println("Starting storefront API...")

	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderCounter{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	// Notification pipeline is optional: without a broker the checkout path
	// simply skips the email side effect.
	var notifier services.Notifier
	if cfg.RabbitMQURL != "" {
		rmq, err := notifications.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("RabbitMQ initialization failed: %v", err)
		}
		defer rmq.Close()
		if err := rmq.SetupQueues(cfg.OrderExchange, cfg.OrderNotifyQueue); err != nil {
			log.Fatalf("Failed to setup RabbitMQ queues: %v", err)
		}
		notifier = notifications.NewPublisher(rmq, cfg.OrderExchange)
		if cfg.RunNotifyConsumer {
			if err := notifications.StartOrderConsumer(rmq, cfg.OrderNotifyQueue, notifications.LogSender{}); err != nil {
				log.Fatalf("Failed to start notification consumer: %v", err)
			}
		}
	} else {
		log.Println("RABBITMQ_URL not set, order notifications disabled")
	}

	products := repository.NewGormProducts(db)
	categories := repository.NewGormCategories(db)
	carts := repository.NewGormCarts(db)
	orders := repository.NewGormOrders(db)
	counters := repository.NewGormCounters(db)

	hub := realtime.NewHub()
	cartEvents := events.NewRedisPublisher(rdb)

	cartStore := services.NewCartStore(carts, products, cartEvents)
	numbers := services.NewOrderNumberGenerator(counters)
	checkout := services.NewCheckoutCoordinator(carts, products, orders, numbers, cartStore, notifier, hub)
	lifecycle := services.NewOrderLifecycleManager(orders, hub)
	catalog := services.NewProductCatalogGuard(products, categories)
	stats := services.NewStatsAggregator(orders, products)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupRoutes(r, &routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Cart:      cartStore,
		Checkout:  checkout,
		Lifecycle: lifecycle,
		Catalog:   catalog,
		Stats:     stats,
		Orders:    orders,
		Hub:       hub,
		CartCount: realtime.NewCartCountSocket(rdb, cartStore),
	})

	log.Printf("Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection. TranslateError lets the
// repositories detect unique-constraint hits as gorm.ErrDuplicatedKey.
func initDatabase(cfg *config.Config) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	return db
}
