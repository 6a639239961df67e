package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/ZRiley36/dragin-take-home-assignment/gateway-service/routes"
	"github.com/ZRiley36/dragin-take-home-assignment/gateway-service/storage"
)

func main() {
	delay := time.Duration(envInt("PAYMENT_DELAY_SECONDS", 10)) * time.Second
	store := storage.New(delay)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	routes.RegisterGatewayRoutes(app, store)

	port := getEnv("PORT", "8001")
	log.Printf("gateway running on port %s (payment delay %s)", port, delay)
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
