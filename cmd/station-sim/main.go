package main

import (
	"encoding/json"
	"flag"
	"log"
	"time"

	"github.com/pwstools/pws-forward/internal/config"
	"github.com/pwstools/pws-forward/internal/mqttclient"
)

// station-sim publishes synthetic Acurite-5n1 events so the proxy and
// publisher can be exercised without real hardware. Like the sensor itself,
// it alternates between temp/humidity and wind/rain messages.
func main() {
	topic := flag.String("topic", "rtl_433/station-sim/events", "Topic to publish to")
	temp := flag.Float64("temp", 69.1, "Temperature in degrees F")
	humidity := flag.Float64("humidity", 55, "Relative humidity percent")
	windSpeed := flag.Float64("wind-speed", 4.8, "Wind speed in km/h")
	windDir := flag.Float64("wind-dir", 157.5, "Wind direction in degrees")
	rain := flag.Float64("rain", 0.23, "Cumulative rain counter in inches")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := mqttclient.New(cfg.MQTT)

	log.Printf("Connecting to tcp://%s", cfg.MQTT.Server)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect failed: %v", token.Error())
	}
	defer client.Disconnect(250)

	for i := 0; ; i++ {
		ts := time.Now().UTC().Format("2006-01-02 15:04:05")

		var payload interface{}
		if i%2 == 0 {
			payload = mqttclient.TempHumidityMeasurement{
				Timestamp:   ts,
				TempF:       *temp,
				Humidity:    *humidity,
				Battery:     1,
				MessageType: mqttclient.TempHumidityMessage,
			}
		} else {
			payload = mqttclient.WindRainMeasurement{
				Timestamp:     ts,
				WindSpeedKmh:  *windSpeed,
				WindDirection: *windDir,
				RainInches:    *rain,
				Battery:       1,
				MessageType:   mqttclient.WindRainMessage,
			}
		}

		data, err := json.Marshal(payload)
		if err != nil {
			log.Fatalf("marshal message: %v", err)
		}

		log.Printf("Publishing to %s: %s", *topic, data)
		client.Publish(*topic, 0, false, data)

		time.Sleep(time.Second)
	}
}
