package presentation

import (
	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// UVLevel buckets a UV index.
type UVLevel int

const (
	UVLow UVLevel = iota
	UVModerate
	UVHigh
	UVVeryHigh
)

func (l UVLevel) String() string {
	switch l {
	case UVLow:
		return "Low"
	case UVModerate:
		return "Moderate"
	case UVHigh:
		return "High"
	default:
		return "Very High"
	}
}

// MarshalText encodes the level as its label.
func (l UVLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UVLabel buckets a UV index: ≤2 Low, ≤5 Moderate, ≤7 High, otherwise Very High.
func UVLabel(uv int) UVLevel {
	switch {
	case uv <= 2:
		return UVLow
	case uv <= 5:
		return UVModerate
	case uv <= 7:
		return UVHigh
	default:
		return UVVeryHigh
	}
}

// MinBarWidth keeps narrow temperature bars visible, in percent.
const MinBarWidth = 15.0

// RangeBar positions one day's min..max bar on the week's temperature scale.
type RangeBar struct {
	LeftPercent  float64 `json:"left"`
	WidthPercent float64 `json:"width"`
}

// ScaleTemperatureRange maps each day's min/max onto the week's overall range.
// Widths below MinBarWidth are raised to it after scaling. When every day has
// the same temperature the range is zero and each bar is drawn at the minimum
// width, centered.
func ScaleTemperatureRange(days []weather.DailyEntry) []RangeBar {
	if len(days) == 0 {
		return nil
	}

	lo, hi := days[0].MinTemp, days[0].MaxTemp
	for _, d := range days[1:] {
		if d.MinTemp < lo {
			lo = d.MinTemp
		}
		if d.MaxTemp > hi {
			hi = d.MaxTemp
		}
	}
	span := hi - lo

	bars := make([]RangeBar, len(days))
	if span <= 0 {
		for i := range bars {
			bars[i] = RangeBar{LeftPercent: (100 - MinBarWidth) / 2, WidthPercent: MinBarWidth}
		}
		return bars
	}

	for i, d := range days {
		left := (d.MinTemp - lo) / span * 100
		width := (d.MaxTemp - d.MinTemp) / span * 100
		if width < MinBarWidth {
			width = MinBarWidth
		}
		bars[i] = RangeBar{LeftPercent: left, WidthPercent: width}
	}
	return bars
}

// PrecipBadgeThreshold is the daily precipitation chance above which the
// outlook shows a rain badge.
const PrecipBadgeThreshold = 20

// ShowPrecipBadge reports whether a day's precipitation chance earns a badge.
func ShowPrecipBadge(chance int) bool {
	return chance > PrecipBadgeThreshold
}

// HourlyWindowSize is how many hourly entries the chart shows.
const HourlyWindowSize = 24

// HourlyWindow returns the first HourlyWindowSize entries.
func HourlyWindow(hourly []weather.HourlyEntry) []weather.HourlyEntry {
	if len(hourly) > HourlyWindowSize {
		return hourly[:HourlyWindowSize]
	}
	return hourly
}

// DayLabel is "Today" for the first outlook row and a three-letter day name
// otherwise.
func DayLabel(index int, day string) string {
	if index == 0 {
		return "Today"
	}
	r := []rune(day)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// Icon keys understood by the dashboard.
const (
	IconThunder      = "cloud-lightning"
	IconDrizzle      = "cloud-drizzle"
	IconRain         = "cloud-rain"
	IconSnow         = "cloud-snow"
	IconFog          = "cloud-fog"
	IconPartlyCloudy = "cloud-sun"
	IconCloudy       = "cloud"
	IconMoon         = "moon"
	IconSun          = "sun"
)

// IconFor picks an icon key for a condition text.
func IconFor(condition string, night bool) string {
	switch {
	case common.HasAny(condition, "thunder"):
		return IconThunder
	case common.HasAny(condition, "drizzle"):
		return IconDrizzle
	case common.HasAny(condition, "rain"):
		return IconRain
	case common.HasAny(condition, "snow"):
		return IconSnow
	case common.HasAny(condition, "mist", "fog"):
		return IconFog
	case common.HasAll(condition, "partly", "cloud"):
		return IconPartlyCloudy
	case common.HasAny(condition, "cloud"):
		return IconCloudy
	case night:
		return IconMoon
	default:
		return IconSun
	}
}
