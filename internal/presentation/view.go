package presentation

import "github.com/i474232898/weather-dashboard/internal/weather"

// View is everything the dashboard needs to render one forecast.
type View struct {
	Theme    Theme            `json:"theme"`
	Light    bool             `json:"light"`
	Tone     TextTone         `json:"tone"`
	Location weather.Location `json:"location"`
	Current  CurrentView      `json:"current"`
	Hourly   []HourlyView     `json:"hourly"`
	Daily    []DailyView      `json:"daily"`
	Summary  string           `json:"aiSummary"`
}

type CurrentView struct {
	weather.Current
	Kind    weather.Condition `json:"kind"`
	UVLabel UVLevel           `json:"uvLabel"`
	Icon    string            `json:"icon"`
}

type HourlyView struct {
	weather.HourlyEntry
	Icon string `json:"icon"`
}

type DailyView struct {
	weather.DailyEntry
	Label      string   `json:"label"`
	Icon       string   `json:"icon"`
	ShowPrecip bool     `json:"showPrecip"`
	Bar        RangeBar `json:"bar"`
}

// BuildView derives the view for a validated forecast.
func BuildView(f weather.Forecast) View {
	theme := SelectTheme(f.Current.Condition, f.Current.IsDay)

	v := View{
		Theme:    theme,
		Light:    IsLightTheme(theme),
		Tone:     ToneFor(theme),
		Location: f.Location,
		Current: CurrentView{
			Current: f.Current,
			Kind:    f.Current.Kind(),
			UVLabel: UVLabel(f.Current.UVIndex),
			Icon:    IconFor(f.Current.Condition, !f.Current.IsDay),
		},
		Summary: f.AISummary,
	}

	for _, h := range HourlyWindow(f.Hourly) {
		v.Hourly = append(v.Hourly, HourlyView{
			HourlyEntry: h,
			Icon:        IconFor(h.Condition, false),
		})
	}

	bars := ScaleTemperatureRange(f.Daily)
	for i, d := range f.Daily {
		v.Daily = append(v.Daily, DailyView{
			DailyEntry: d,
			Label:      DayLabel(i, d.Day),
			Icon:       IconFor(d.Condition, false),
			ShowPrecip: ShowPrecipBadge(d.PrecipChance),
			Bar:        bars[i],
		})
	}

	return v
}
