package weather

import "github.com/i474232898/weather-dashboard/internal/common"

// Condition is one of the fixed weather vocabulary words the dashboard knows.
// Forecast text is free-form; ParseCondition maps it onto this set.
type Condition string

const (
	ConditionUnknown      Condition = "Unknown"
	ConditionSunny        Condition = "Sunny"
	ConditionClear        Condition = "Clear"
	ConditionCloudy       Condition = "Cloudy"
	ConditionPartlyCloudy Condition = "PartlyCloudy"
	ConditionRain         Condition = "Rain"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionSnow         Condition = "Snow"
	ConditionMist         Condition = "Mist"
	ConditionFog          Condition = "Fog"
)

// conditionRules is evaluated top to bottom; the first rule whose keywords
// all appear in the text wins. "thunder" must precede "cloud" and "rain"
// because providers describe storms as "thundery showers" or "storm clouds".
var conditionRules = []struct {
	keywords  []string
	condition Condition
}{
	{[]string{"thunder"}, ConditionThunderstorm},
	{[]string{"drizzle"}, ConditionDrizzle},
	{[]string{"rain"}, ConditionRain},
	{[]string{"snow"}, ConditionSnow},
	{[]string{"mist"}, ConditionMist},
	{[]string{"fog"}, ConditionFog},
	{[]string{"partly", "cloud"}, ConditionPartlyCloudy},
	{[]string{"cloud"}, ConditionCloudy},
	{[]string{"sunny"}, ConditionSunny},
	{[]string{"clear"}, ConditionClear},
}

// ParseCondition maps free condition text onto the vocabulary using
// case-insensitive substring matching.
func ParseCondition(text string) Condition {
	for _, r := range conditionRules {
		if common.HasAll(text, r.keywords...) {
			return r.condition
		}
	}
	return ConditionUnknown
}

// Location identifies where a forecast applies.
type Location struct {
	City    string   `json:"city"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
}

// Current holds the conditions right now at the location.
type Current struct {
	Temp        float64 `json:"temp"`      // °C
	Condition   string  `json:"condition"` // free text, see ParseCondition
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`  // percent
	WindSpeed   float64 `json:"windSpeed"` // km/h
	FeelsLike   float64 `json:"feelsLike"` // °C
	UVIndex     int     `json:"uvIndex"`
	Visibility  float64 `json:"visibility"` // km
	IsDay       bool    `json:"isDay"`
}

// Kind returns the vocabulary condition for the current conditions.
func (c Current) Kind() Condition {
	return ParseCondition(c.Condition)
}

// HourlyEntry is one hour of the forecast, starting from now.
type HourlyEntry struct {
	Time         string  `json:"time"` // "HH:MM"
	Temp         float64 `json:"temp"`
	Condition    string  `json:"condition"`
	PrecipChance int     `json:"precipChance"`
}

// DailyEntry is one day of the 7-day outlook.
type DailyEntry struct {
	Day          string  `json:"day"`
	Date         string  `json:"date"`
	MinTemp      float64 `json:"minTemp"`
	MaxTemp      float64 `json:"maxTemp"`
	Condition    string  `json:"condition"`
	PrecipChance int     `json:"precipChance"`
}

// Forecast is the validated result of one acquisition. It is never modified
// after ParseForecast returns it; a new query produces a new Forecast.
type Forecast struct {
	Location  Location      `json:"location"`
	Current   Current       `json:"current"`
	Hourly    []HourlyEntry `json:"hourly"`
	Daily     []DailyEntry  `json:"daily"`
	AISummary string        `json:"aiSummary"`
}

// Clone returns a deep copy so callers can hand the forecast out without
// sharing its slices or coordinate pointers.
func (f Forecast) Clone() Forecast {
	out := f
	out.Location.Lat = cloneFloat(f.Location.Lat)
	out.Location.Lon = cloneFloat(f.Location.Lon)
	if f.Hourly != nil {
		out.Hourly = append([]HourlyEntry(nil), f.Hourly...)
	}
	if f.Daily != nil {
		out.Daily = append([]DailyEntry(nil), f.Daily...)
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
