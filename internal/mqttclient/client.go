package mqttclient

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/url"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Config holds MQTT broker settings.
type Config struct {
	Server   string `validate:"required"`
	Topic    string `validate:"required"`
	Username string
	Password string
	ClientID string
}

// New builds a paho client from the config. The client reconnects on its own;
// Connect must still be called once.
func New(cfg Config) mqtt.Client {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Server))
	opts.SetClientID(cfg.ClientID)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(2 * time.Second)
	opts.SetConnectionAttemptHandler(connectAttemptHandler)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetDefaultPublishHandler(messagePubHandler)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	return mqtt.NewClient(opts)
}

// Subscribe subscribes at QoS 1 and waits for the broker to acknowledge.
func Subscribe(client mqtt.Client, topic string, handler mqtt.MessageHandler) {
	token := client.Subscribe(topic, 1, handler)
	token.Wait()
	log.Printf("Subscribed to topic: %s", topic)
}

func messagePubHandler(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received message: %s from topic: %s", msg.Payload(), msg.Topic())
}

func connectHandler(client mqtt.Client) {
	log.Println("Connected")
}

func connectAttemptHandler(broker *url.URL, tlsCfg *tls.Config) *tls.Config {
	log.Printf("Attempting connection to %s", broker.Host)
	return tlsCfg
}

func connectLostHandler(client mqtt.Client, err error) {
	log.Printf("Connect lost: %v", err)
}
