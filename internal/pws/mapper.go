package pws

import (
	"strconv"
	"strings"
)

// KmhToMph converts wind speeds from km/h, as the station reports them, to
// the mph the upload endpoint expects.
const KmhToMph = 0.621371

// fieldNames translates station metric names to upload parameter names.
// Metric names missing from this table are dropped from the upload.
var fieldNames = map[string]string{
	"temperature":    "tempf",
	"humidity":       "humidity",
	"rain_in":        "dailyrainin",
	"wind_direction": "win_dir",
}

// Field is a single mapped upload parameter.
type Field struct {
	Name  string
	Value string
}

// ParseLine maps one snapshot line to an upload field. ok is false for blank
// lines, lines that do not split into exactly two tokens, unknown metric
// names and non-numeric wind speeds; such lines are skipped, never fatal.
func ParseLine(line string) (Field, bool) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return Field{}, false
	}
	name, value := tokens[0], tokens[1]

	if mapped, ok := fieldNames[name]; ok {
		return Field{Name: mapped, Value: value}, true
	}

	if name == "wind_speed" {
		kmh, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Field{}, false
		}
		mph := kmh * KmhToMph
		return Field{Name: "windspeedmph", Value: strconv.FormatFloat(mph, 'f', -1, 64)}, true
	}

	return Field{}, false
}

// MapSnapshot folds a plaintext measurement snapshot into upload parameters,
// starting from the seed constants. Fields keep snapshot line order.
func MapSnapshot(snapshot string) *Params {
	params := SeedParams()
	for _, line := range strings.Split(snapshot, "\n") {
		if field, ok := ParseLine(line); ok {
			params.Set(field.Name, field.Value)
		}
	}
	return params
}
