package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/cache"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/controller"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/gateway"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/idempotency"
	kafkax "github.com/ZRiley36/dragin-take-home-assignment/payment-service/kafka"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/model"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/recon"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/routes"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/store"
)

var DB *gorm.DB

// ======================
// INIT DATABASE
// ======================
func initDB() {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "payments")
	pass := getEnv("DB_PASS", "payments")
	name := getEnv("DB_NAME", "payments")

	dsn := "host=" + host +
		" user=" + user +
		" password=" + pass +
		" dbname=" + name +
		" port=" + port +
		" sslmode=disable TimeZone=UTC"

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect payment db:", err)
	}

	if err := DB.AutoMigrate(&model.Payment{}); err != nil {
		log.Fatal(err)
	}
}

func main() {
	initDB()

	// kafka producer
	producer := kafkax.NewProducer()

	// redis-backed list cache, optional
	var paymentCache *cache.PaymentCache
	if addr := getEnv("REDIS_ADDR", "localhost:6379"); addr != "" {
		paymentCache = cache.NewPaymentCache(cache.Connect(addr))
	}

	// idempotency keys
	keys, err := idempotency.Open(getEnv("IDEMPOTENCY_DB_PATH", "idempotency.db"))
	if err != nil {
		log.Fatal("failed to open idempotency db:", err)
	}
	defer keys.Close()

	// gateway transport
	timeout := time.Duration(envInt("GATEWAY_TIMEOUT_SECONDS", 30)) * time.Second
	gw := gateway.NewClient(getEnv("GATEWAY_URL", gateway.DefaultBaseURL), timeout)

	paymentStore := store.New(DB)

	var invalidator recon.Cache
	if paymentCache != nil {
		invalidator = paymentCache
	}
	engine := recon.NewEngine(paymentStore, gw, producer, invalidator)

	// ======================
	// HTTP SERVER (Fiber)
	// ======================
	app := fiber.New()
	app.Use(logger.New())

	routes.RegisterPaymentRoutes(
		app,
		controller.NewPaymentController(engine, paymentStore, paymentCache, keys),
	)

	port := getEnv("PORT", "8000")
	log.Println("payment tracker running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("fiber error:", err)
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using default %d", k, v, d)
	}
	return d
}
