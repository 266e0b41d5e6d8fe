package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/pwstools/pws-forward/internal/config"
	"github.com/pwstools/pws-forward/internal/credentials"
	"github.com/pwstools/pws-forward/internal/mqttclient"
	"github.com/pwstools/pws-forward/internal/pws"
	"github.com/pwstools/pws-forward/internal/scheduler"
	"github.com/pwstools/pws-forward/internal/station"
)

// pws-publisher is the long-running counterpart of pws-forward: it listens to
// the station's MQTT events directly and uploads accumulated readings on a
// fixed interval.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.CredentialsPath == "" {
		log.Fatal("PWS_CREDENTIALS_FILE must be set")
	}
	creds, err := credentials.Load(cfg.CredentialsPath)
	if err != nil {
		log.Fatalf("failed to load credentials: %v", err)
	}

	acc := station.NewAccumulator()

	client := mqttclient.New(cfg.MQTT)

	log.Printf("Connecting to tcp://%s", cfg.MQTT.Server)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect failed: %v", token.Error())
	}
	defer client.Disconnect(250)

	handler := func(c mqtt.Client, msg mqtt.Message) {
		log.Printf("Received weather message: %s from topic: %s", msg.Payload(), msg.Topic())
		if err := acc.Apply(msg.Payload()); err != nil {
			log.Printf("ERROR: %v", err)
		}
	}
	mqttclient.Subscribe(client, cfg.MQTT.Topic, handler)
	defer client.Unsubscribe(cfg.MQTT.Topic)

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	uploader := pws.NewResilientClient(pws.NewClientWithURL(httpClient, cfg.UploadURL))

	sched := scheduler.New(cfg.PublishInterval, func(ctx context.Context) {
		result, err := uploader.Upload(ctx, acc.Params(), creds)
		if err != nil {
			log.Printf("upload failed: %v", err)
			return
		}
		log.Printf("%d %s", result.StatusCode, result.Body)
	})
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
}
