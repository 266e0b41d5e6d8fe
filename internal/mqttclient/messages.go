package mqttclient

// rtl_433 message types emitted by the Acurite-5n1 sensor suite. The sensor
// alternates between the two, so current conditions are assembled from both.
const (
	TempHumidityMessage = 56
	WindRainMessage     = 49
)

// TempHumidityMeasurement mirrors a message_type 56 rtl_433 event, e.g.
//
//	{"time":"2025-08-03 21:51:44","model":"Acurite-5n1","message_type":56,
//	 "battery_ok":1,"wind_avg_km_h":0,"temperature_F":69.1,"humidity":97}
type TempHumidityMeasurement struct {
	Timestamp   string  `json:"time"`
	TempF       float64 `json:"temperature_F"`
	Humidity    float64 `json:"humidity"`
	Battery     int     `json:"battery_ok"`
	MessageType int     `json:"message_type"`
}

// WindRainMeasurement mirrors a message_type 49 rtl_433 event. RainInches is
// a cumulative counter, not a rate.
type WindRainMeasurement struct {
	Timestamp     string  `json:"time"`
	WindSpeedKmh  float64 `json:"wind_avg_km_h"`
	WindDirection float64 `json:"wind_dir_deg"`
	RainInches    float64 `json:"rain_in"`
	Battery       int     `json:"battery_ok"`
	MessageType   int     `json:"message_type"`
}
