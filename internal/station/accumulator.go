package station

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pwstools/pws-forward/internal/mqttclient"
	"github.com/pwstools/pws-forward/internal/pws"
)

// uploadFields fixes the parameter order for accumulated uploads.
var uploadFields = []string{"tempf", "humidity", "windspeedmph", "wind_dir", "dailyrainin"}

// Accumulator folds incoming sensor messages into the upload parameters for
// the next publish tick. The station's rain counter is cumulative, so daily
// rainfall is reported as the delta from a baseline captured at midnight.
type Accumulator struct {
	mu           sync.Mutex
	fields       map[string]string
	lastRainFall float64

	now func() time.Time
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		fields:       make(map[string]string),
		lastRainFall: -1.0,
		now:          time.Now,
	}
}

// Apply decodes one rtl_433 JSON payload and merges it into the accumulator.
func (a *Accumulator) Apply(payload []byte) error {
	var windRain mqttclient.WindRainMeasurement
	if err := json.Unmarshal(payload, &windRain); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if windRain.MessageType == mqttclient.WindRainMessage {
		a.setWindRain(windRain)
		return nil
	}

	var tempHumidity mqttclient.TempHumidityMeasurement
	if err := json.Unmarshal(payload, &tempHumidity); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if tempHumidity.MessageType == mqttclient.TempHumidityMessage {
		a.setTempHumidity(tempHumidity)
		return nil
	}

	return fmt.Errorf("unrecognized message type %d", tempHumidity.MessageType)
}

func (a *Accumulator) setWindRain(m mqttclient.WindRainMeasurement) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t := a.now()
	if t.Hour() == 0 && t.Minute() == 0 {
		a.lastRainFall = -1.0
	}
	if a.lastRainFall < 0 {
		a.lastRainFall = m.RainInches
	}

	a.fields["windspeedmph"] = fmt.Sprintf("%0.2f", m.WindSpeedKmh*pws.KmhToMph)
	a.fields["wind_dir"] = fmt.Sprintf("%0.2f", m.WindDirection)
	a.fields["dailyrainin"] = fmt.Sprintf("%0.2f", m.RainInches-a.lastRainFall)
}

func (a *Accumulator) setTempHumidity(m mqttclient.TempHumidityMeasurement) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.fields["tempf"] = fmt.Sprintf("%0.2f", m.TempF)
	a.fields["humidity"] = fmt.Sprintf("%0.2f", m.Humidity)
}

// Params returns the accumulated fields as upload parameters, seeded with
// the upload constants. Field order is fixed regardless of arrival order.
func (a *Accumulator) Params() *pws.Params {
	a.mu.Lock()
	defer a.mu.Unlock()

	params := pws.SeedParams()
	for _, name := range uploadFields {
		if value, ok := a.fields[name]; ok {
			params.Set(name, value)
		}
	}
	return params
}
