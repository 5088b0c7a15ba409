package weather

import (
	"encoding/json"
	"testing"
)

// validPayload returns a decoded forecast answer that passes validation.
// Tests mutate it to produce specific failures.
func validPayload() map[string]any {
	hourly := make([]any, 0, 24)
	for h := 0; h < 24; h++ {
		hourly = append(hourly, map[string]any{
			"time":         clock(h),
			"temp":         12.5 + float64(h%6),
			"condition":    "Partly Cloudy",
			"precipChance": h * 2,
		})
	}

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	daily := make([]any, 0, len(days))
	for i, d := range days {
		daily = append(daily, map[string]any{
			"day":          d,
			"date":         "Oct " + string(rune('1'+i)),
			"minTemp":      8.0 + float64(i),
			"maxTemp":      15.0 + float64(i),
			"condition":    "Light rain",
			"precipChance": 10 * i,
		})
	}

	return map[string]any{
		"location": map[string]any{
			"city":    "London",
			"country": "United Kingdom",
			"lat":     51.5072,
			"lon":     -0.1276,
		},
		"current": map[string]any{
			"temp":        14.2,
			"condition":   "Cloudy",
			"description": "Overcast with a light breeze",
			"humidity":    72,
			"windSpeed":   18.5,
			"feelsLike":   12.9,
			"uvIndex":     2,
			"visibility":  10.0,
			"isDay":       true,
		},
		"hourly":    hourly,
		"daily":     daily,
		"aiSummary": "Grey but dry for now. Bring a brolly for the afternoon.",
	}
}

func clock(h int) string {
	return string([]byte{byte('0' + h/10), byte('0' + h%10), ':', '0', '0'})
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(b)
}

func section(p map[string]any, key string) map[string]any {
	return p[key].(map[string]any)
}

func entry(p map[string]any, key string, i int) map[string]any {
	return p[key].([]any)[i].(map[string]any)
}
