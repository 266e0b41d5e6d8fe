package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/pwstools/pws-forward/internal/mqttclient"
	"github.com/pwstools/pws-forward/internal/pws"
)

var validate = validator.New()

// AppConfig carries settings for the long-running services. The one-shot
// forwarder takes its inputs as positional arguments instead.
type AppConfig struct {
	MQTT mqttclient.Config

	// CredentialsPath points at the station's upload credentials file.
	CredentialsPath string

	// UploadURL is the PWS upload endpoint; overridable for local testing.
	UploadURL string `validate:"required,url"`

	// PublishInterval controls how often accumulated readings are uploaded.
	PublishInterval time.Duration

	// HTTPTimeout bounds outbound upload requests from the publisher.
	HTTPTimeout time.Duration

	Port string `validate:"required"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.MQTT = mqttclient.Config{
		Server:   getenvDefault("MQTT_SERVER", "mqtt:1883"),
		Topic:    getenvDefault("MQTT_TOPIC", "rtl_433/+/events"),
		Username: os.Getenv("MQTT_USERNAME"),
		Password: os.Getenv("MQTT_PASSWORD"),
		ClientID: getenvDefault("MQTT_CLIENTID", "pws-forward"),
	}

	if (cfg.MQTT.Username != "") != (cfg.MQTT.Password != "") {
		return nil, fmt.Errorf("must specify both MQTT_USERNAME and MQTT_PASSWORD")
	}

	cfg.CredentialsPath = os.Getenv("PWS_CREDENTIALS_FILE")
	cfg.UploadURL = getenvDefault("PWS_UPLOAD_URL", pws.DefaultUploadURL)

	// Publish interval: default one minute, matching the sensor cadence.
	intervalStr := getenvDefault("PUBLISH_INTERVAL", "1m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PUBLISH_INTERVAL: %w", err)
	}
	cfg.PublishInterval = interval

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
