package weather

import (
	"fmt"
	"regexp"
	"strings"
)

// SamplingTemperature is sent with every forecast request. The summary field
// reads better with some variety; structured fields are copied from search
// results and are not expected to drift.
const SamplingTemperature float32 = 0.7

// forecastShape is the literal JSON layout the model must answer with. The
// provider cannot enforce a response schema while search grounding is on, so
// this text is the only contract and ParseForecast re-checks all of it.
const forecastShape = `{
  "location": {
    "city": "string",
    "country": "string",
    "lat": number,
    "lon": number
  },
  "current": {
    "temp": number (Celsius),
    "condition": "string (Sunny, Clear, Cloudy, PartlyCloudy, Rain, Drizzle, Thunderstorm, Snow, Mist, Fog)",
    "description": "string",
    "humidity": integer (0-100),
    "windSpeed": number (km/h),
    "feelsLike": number (Celsius),
    "uvIndex": integer,
    "visibility": number (km),
    "isDay": boolean (true if local time is between sunrise and sunset)
  },
  "hourly": [
    { "time": "HH:MM", "temp": number, "condition": "string", "precipChance": integer (0-100) }
  ],
  "daily": [
    { "day": "string", "date": "string", "minTemp": number, "maxTemp": number, "condition": "string", "precipChance": integer (0-100) }
  ],
  "aiSummary": "string (a witty, 2-sentence lifestyle recommendation)"
}`

// BuildPrompt returns the instruction sent for one location query.
func BuildPrompt(query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Use web search to find the CURRENT and REAL-TIME weather forecast for \"%s\".\n\n", query)
	b.WriteString("Task:\n")
	fmt.Fprintf(&b, "1. Search for the current temperature, conditions, humidity, wind and UV index for %s.\n", query)
	b.WriteString("2. Search for the 24-hour hourly forecast (24 entries starting now) and the 7-day daily forecast (exactly 7 entries).\n")
	b.WriteString("3. Extract this data and format it STRICTLY as a raw JSON object matching the structure below.\n")
	b.WriteString("4. Do NOT wrap the answer in markdown code fences (like ```json). Return only the raw JSON object.\n")
	b.WriteString("5. Make sure \"isDay\" is accurate for the current local time at the location.\n\n")
	b.WriteString("Required JSON structure:\n")
	b.WriteString(forecastShape)
	b.WriteString("\n")
	return b.String()
}

var (
	fenceOpen  = regexp.MustCompile("^```[A-Za-z0-9_+-]*[ \t]*")
	fenceClose = regexp.MustCompile("```$")
)

// StripCodeFence removes a leading ``` (optionally tagged, e.g. ```json) and a
// trailing ``` from a model answer. Text without fences is returned trimmed.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	s = fenceOpen.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = fenceClose.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
