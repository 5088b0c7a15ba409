package weather

import "testing"

func TestParseCondition(t *testing.T) {
	cases := map[string]Condition{
		"Thunderstorm, heavy cloud": ConditionThunderstorm,
		"Thundery showers":          ConditionThunderstorm,
		"Light drizzle":             ConditionDrizzle,
		"Heavy Rain":                ConditionRain,
		"snow showers":              ConditionSnow,
		"Mist":                      ConditionMist,
		"Freezing fog":              ConditionFog,
		"Partly cloudy":             ConditionPartlyCloudy,
		"PartlyCloudy":              ConditionPartlyCloudy,
		"Cloudy":                    ConditionCloudy,
		"SUNNY":                     ConditionSunny,
		"Clear":                     ConditionClear,
		"Overcast":                  ConditionUnknown,
		"":                          ConditionUnknown,
	}
	for in, want := range cases {
		if got := ParseCondition(in); got != want {
			t.Errorf("ParseCondition(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestForecastCloneIsIndependent(t *testing.T) {
	lat := 10.0
	f := Forecast{
		Location: Location{City: "X", Lat: &lat},
		Hourly:   []HourlyEntry{{Time: "00:00", Temp: 1}},
		Daily:    []DailyEntry{{Day: "Monday", MinTemp: 1, MaxTemp: 2}},
	}

	c := f.Clone()
	c.Hourly[0].Temp = 99
	c.Daily[0].MaxTemp = 99
	*c.Location.Lat = 99

	if f.Hourly[0].Temp != 1 || f.Daily[0].MaxTemp != 2 || *f.Location.Lat != 10 {
		t.Fatal("mutating the clone changed the original")
	}
}
