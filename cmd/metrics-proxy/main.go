package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/pwstools/pws-forward/internal/api/http"
	"github.com/pwstools/pws-forward/internal/config"
	"github.com/pwstools/pws-forward/internal/mqttclient"
	"github.com/pwstools/pws-forward/internal/station"
)

// metrics-proxy subscribes to the station's rtl_433 MQTT events and serves
// the current conditions as a plaintext /metrics snapshot for the forwarder.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	tracker := station.NewTracker()

	client := mqttclient.New(cfg.MQTT)

	log.Printf("Connecting to tcp://%s", cfg.MQTT.Server)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect failed: %v", token.Error())
	}
	defer client.Disconnect(250)

	handler := func(c mqtt.Client, msg mqtt.Message) {
		log.Printf("Received weather message: %s from topic: %s", msg.Payload(), msg.Topic())
		if err := tracker.Apply(msg.Payload()); err != nil {
			log.Printf("ERROR: %v", err)
		}
	}
	mqttclient.Subscribe(client, cfg.MQTT.Topic, handler)
	defer client.Unsubscribe(cfg.MQTT.Topic)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "metrics-proxy",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "metrics-proxy",
		})
	})

	httpapi.RegisterRoutes(app, tracker)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
