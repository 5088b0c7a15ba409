package weather

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// The wire types mirror the prompt's JSON shape. Numbers are pointers so a
// missing field is distinguishable from a zero reading. Text fields must hold
// more than whitespace.

type wireForecast struct {
	Location  *wireLocation `json:"location" validate:"required"`
	Current   *wireCurrent  `json:"current" validate:"required"`
	Hourly    []wireHourly  `json:"hourly" validate:"required,min=1,dive"`
	Daily     []wireDaily   `json:"daily" validate:"required,len=7,dive"`
	AISummary string        `json:"aiSummary" validate:"notblank"`
}

type wireLocation struct {
	City    string   `json:"city" validate:"notblank"`
	Country string   `json:"country" validate:"notblank"`
	Lat     *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon     *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
}

type wireCurrent struct {
	Temp        *float64 `json:"temp" validate:"required"`
	Condition   string   `json:"condition" validate:"notblank"`
	Description string   `json:"description" validate:"notblank"`
	Humidity    *int     `json:"humidity" validate:"required,min=0,max=100"`
	WindSpeed   *float64 `json:"windSpeed" validate:"required,min=0"`
	FeelsLike   *float64 `json:"feelsLike" validate:"required"`
	UVIndex     *int     `json:"uvIndex" validate:"required,min=0"`
	Visibility  *float64 `json:"visibility" validate:"required,min=0"`
	IsDay       *bool    `json:"isDay" validate:"required"`
}

type wireHourly struct {
	Time         string   `json:"time" validate:"required,clock"`
	Temp         *float64 `json:"temp" validate:"required"`
	Condition    string   `json:"condition" validate:"notblank"`
	PrecipChance *int     `json:"precipChance" validate:"required,min=0,max=100"`
}

type wireDaily struct {
	Day          string   `json:"day" validate:"notblank"`
	Date         string   `json:"date" validate:"notblank"`
	MinTemp      *float64 `json:"minTemp" validate:"required"`
	MaxTemp      *float64 `json:"maxTemp" validate:"required"`
	Condition    string   `json:"condition" validate:"notblank"`
	PrecipChance *int     `json:"precipChance" validate:"required,min=0,max=100"`
}

// ParseForecast decodes a model answer and checks it against the forecast
// schema. Any missing field, wrong type or out-of-range value is an error;
// nothing is defaulted.
func ParseForecast(text string) (Forecast, error) {
	var w wireForecast
	if err := json.Unmarshal([]byte(text), &w); err != nil {
		return Forecast{}, fmt.Errorf("decode forecast: %w", err)
	}
	if err := validate.Struct(w); err != nil {
		return Forecast{}, fmt.Errorf("invalid forecast: %w", err)
	}
	return w.toForecast()
}

func (w wireForecast) toForecast() (Forecast, error) {
	f := Forecast{
		Location: Location{
			City:    strings.TrimSpace(w.Location.City),
			Country: strings.TrimSpace(w.Location.Country),
			Lat:     cloneFloat(w.Location.Lat),
			Lon:     cloneFloat(w.Location.Lon),
		},
		Current: Current{
			Temp:        *w.Current.Temp,
			Condition:   w.Current.Condition,
			Description: w.Current.Description,
			Humidity:    *w.Current.Humidity,
			WindSpeed:   *w.Current.WindSpeed,
			FeelsLike:   *w.Current.FeelsLike,
			UVIndex:     *w.Current.UVIndex,
			Visibility:  *w.Current.Visibility,
			IsDay:       *w.Current.IsDay,
		},
		Hourly:    make([]HourlyEntry, 0, len(w.Hourly)),
		Daily:     make([]DailyEntry, 0, len(w.Daily)),
		AISummary: w.AISummary,
	}

	for _, h := range w.Hourly {
		f.Hourly = append(f.Hourly, HourlyEntry{
			Time:         h.Time,
			Temp:         *h.Temp,
			Condition:    h.Condition,
			PrecipChance: *h.PrecipChance,
		})
	}

	for i, d := range w.Daily {
		if *d.MinTemp > *d.MaxTemp {
			return Forecast{}, fmt.Errorf("invalid forecast: daily[%d] minTemp %g exceeds maxTemp %g", i, *d.MinTemp, *d.MaxTemp)
		}
		f.Daily = append(f.Daily, DailyEntry{
			Day:          d.Day,
			Date:         d.Date,
			MinTemp:      *d.MinTemp,
			MaxTemp:      *d.MaxTemp,
			Condition:    d.Condition,
			PrecipChance: *d.PrecipChance,
		})
	}

	return f, nil
}
