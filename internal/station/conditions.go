package station

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pwstools/pws-forward/internal/mqttclient"
)

// Conditions is the latest known reading from each sensor message type.
type Conditions struct {
	Timestamp     string
	TempF         float64
	Humidity      float64
	Battery       int
	WindSpeedKmh  float64
	WindDirection float64
	RainInches    float64
}

// Snapshot renders the conditions in the plaintext metrics format the
// forwarder consumes: one "<name> <value>" pair per line.
func (c Conditions) Snapshot() string {
	return fmt.Sprintf("temperature %f\n"+
		"humidity %f\n"+
		"rain_in %f\n"+
		"wind_direction %f\n"+
		"wind_speed %f\n",
		c.TempF,
		c.Humidity,
		c.RainInches,
		c.WindDirection,
		c.WindSpeedKmh,
	)
}

// Tracker is a concurrency-safe accumulator for the station's current
// conditions. Each message type overwrites only the fields it carries.
type Tracker struct {
	mu         sync.RWMutex
	conditions Conditions
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Apply decodes one rtl_433 JSON payload and folds it into the tracker.
func (t *Tracker) Apply(payload []byte) error {
	var windRain mqttclient.WindRainMeasurement
	if err := json.Unmarshal(payload, &windRain); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if windRain.MessageType == mqttclient.WindRainMessage {
		t.SetWindRain(windRain)
		return nil
	}

	var tempHumidity mqttclient.TempHumidityMeasurement
	if err := json.Unmarshal(payload, &tempHumidity); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if tempHumidity.MessageType == mqttclient.TempHumidityMessage {
		t.SetTempHumidity(tempHumidity)
		return nil
	}

	return fmt.Errorf("unrecognized message type %d", tempHumidity.MessageType)
}

// SetTempHumidity records a temperature/humidity reading.
func (t *Tracker) SetTempHumidity(m mqttclient.TempHumidityMeasurement) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.conditions.Timestamp = m.Timestamp
	t.conditions.TempF = m.TempF
	t.conditions.Humidity = m.Humidity
	t.conditions.Battery = m.Battery
}

// SetWindRain records a wind/rain reading.
func (t *Tracker) SetWindRain(m mqttclient.WindRainMeasurement) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.conditions.Timestamp = m.Timestamp
	t.conditions.Battery = m.Battery
	t.conditions.WindSpeedKmh = m.WindSpeedKmh
	t.conditions.WindDirection = m.WindDirection
	t.conditions.RainInches = m.RainInches
}

// Current returns a copy of the latest conditions.
func (t *Tracker) Current() Conditions {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.conditions
}
