package presentation

import (
	"math"
	"testing"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func TestUVLabel(t *testing.T) {
	cases := map[int]UVLevel{
		0:  UVLow,
		2:  UVLow,
		3:  UVModerate,
		5:  UVModerate,
		6:  UVHigh,
		7:  UVHigh,
		8:  UVVeryHigh,
		11: UVVeryHigh,
	}
	for uv, want := range cases {
		if got := UVLabel(uv); got != want {
			t.Errorf("UVLabel(%d) = %s, want %s", uv, got, want)
		}
	}
	if UVVeryHigh.String() != "Very High" {
		t.Fatalf("unexpected label %q", UVVeryHigh.String())
	}
}

func TestScaleTemperatureRange(t *testing.T) {
	bars := ScaleTemperatureRange([]weather.DailyEntry{
		{MinTemp: 10, MaxTemp: 20},
		{MinTemp: 15, MaxTemp: 15},
	})
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}

	want := []RangeBar{
		{LeftPercent: 0, WidthPercent: 100},
		{LeftPercent: 50, WidthPercent: MinBarWidth},
	}
	for i := range want {
		if !almostEqual(bars[i].LeftPercent, want[i].LeftPercent) || !almostEqual(bars[i].WidthPercent, want[i].WidthPercent) {
			t.Errorf("bar %d = %+v, want %+v", i, bars[i], want[i])
		}
	}
}

func TestScaleTemperatureRangeZeroSpan(t *testing.T) {
	bars := ScaleTemperatureRange([]weather.DailyEntry{
		{MinTemp: 12, MaxTemp: 12},
		{MinTemp: 12, MaxTemp: 12},
		{MinTemp: 12, MaxTemp: 12},
	})
	for i, b := range bars {
		if math.IsNaN(b.LeftPercent) || math.IsInf(b.LeftPercent, 0) || math.IsNaN(b.WidthPercent) {
			t.Fatalf("bar %d is not finite: %+v", i, b)
		}
		if b.WidthPercent != MinBarWidth || !almostEqual(b.LeftPercent+b.WidthPercent/2, 50) {
			t.Fatalf("bar %d not centered at minimum width: %+v", i, b)
		}
	}
}

func TestScaleTemperatureRangeEmpty(t *testing.T) {
	if bars := ScaleTemperatureRange(nil); bars != nil {
		t.Fatalf("expected nil, got %+v", bars)
	}
}

func TestShowPrecipBadge(t *testing.T) {
	if ShowPrecipBadge(20) {
		t.Fatal("20% should not show a badge")
	}
	if !ShowPrecipBadge(21) {
		t.Fatal("21% should show a badge")
	}
}

func TestHourlyWindow(t *testing.T) {
	hourly := make([]weather.HourlyEntry, 30)
	if got := len(HourlyWindow(hourly)); got != 24 {
		t.Fatalf("expected 24 entries, got %d", got)
	}
	if got := len(HourlyWindow(hourly[:5])); got != 5 {
		t.Fatalf("expected 5 entries, got %d", got)
	}
}

func TestDayLabel(t *testing.T) {
	if DayLabel(0, "Monday") != "Today" {
		t.Fatal("first row should read Today")
	}
	if got := DayLabel(3, "Thursday"); got != "Thu" {
		t.Fatalf("expected Thu, got %q", got)
	}
	if got := DayLabel(1, "Mo"); got != "Mo" {
		t.Fatalf("expected short names unchanged, got %q", got)
	}
}

func TestIconFor(t *testing.T) {
	cases := []struct {
		condition string
		night     bool
		want      string
	}{
		{"Thunderstorm", false, IconThunder},
		{"Drizzle and rain", false, IconDrizzle},
		{"Rain", false, IconRain},
		{"Snow", false, IconSnow},
		{"Fog", false, IconFog},
		{"Partly cloudy", false, IconPartlyCloudy},
		{"Cloudy", true, IconCloudy},
		{"Clear", true, IconMoon},
		{"Sunny", false, IconSun},
	}
	for _, tc := range cases {
		if got := IconFor(tc.condition, tc.night); got != tc.want {
			t.Errorf("IconFor(%q, %v) = %s, want %s", tc.condition, tc.night, got, tc.want)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
