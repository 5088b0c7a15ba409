package presentation

import "github.com/i474232898/weather-dashboard/internal/common"

// Bucket names a theme. Themes are fixed; there is no blending between them.
type Bucket string

const (
	BucketNightThunderstorm Bucket = "night-thunderstorm"
	BucketNightClear        Bucket = "night-clear"
	BucketThunderstorm      Bucket = "thunderstorm"
	BucketRain              Bucket = "rain"
	BucketSnow              Bucket = "snow"
	BucketMist              Bucket = "mist"
	BucketCloudy            Bucket = "cloudy"
	BucketSunny             Bucket = "sunny"
	BucketDefault           Bucket = "default"
)

// Theme is the set of color tokens the dashboard is painted with.
type Theme struct {
	Bucket     Bucket `json:"bucket"`
	Background string `json:"bg"`
	Blob1      string `json:"blob1"`
	Blob2      string `json:"blob2"`
	Blob3      string `json:"blob3"`
	Accent     string `json:"accent"`   // text and borders
	AccentBg   string `json:"accentBg"` // filled shapes
	ChartHex   string `json:"chartHex"` // chart stroke/fill
}

var themes = map[Bucket]Theme{
	BucketNightThunderstorm: {
		Background: "bg-slate-950",
		Blob1:      "bg-purple-900",
		Blob2:      "bg-yellow-900",
		Blob3:      "bg-slate-900",
		Accent:     "text-yellow-400",
		AccentBg:   "bg-yellow-400",
		ChartHex:   "#facc15",
	},
	BucketNightClear: {
		Background: "bg-slate-950",
		Blob1:      "bg-indigo-900",
		Blob2:      "bg-violet-900",
		Blob3:      "bg-fuchsia-950",
		Accent:     "text-violet-300",
		AccentBg:   "bg-violet-300",
		ChartHex:   "#c4b5fd",
	},
	BucketThunderstorm: {
		Background: "bg-slate-900",
		Blob1:      "bg-purple-600",
		Blob2:      "bg-yellow-600",
		Blob3:      "bg-gray-800",
		Accent:     "text-yellow-300",
		AccentBg:   "bg-yellow-300",
		ChartHex:   "#fde047",
	},
	BucketRain: {
		Background: "bg-blue-900",
		Blob1:      "bg-blue-600",
		Blob2:      "bg-cyan-600",
		Blob3:      "bg-indigo-600",
		Accent:     "text-cyan-300",
		AccentBg:   "bg-cyan-300",
		ChartHex:   "#67e8f9",
	},
	BucketSnow: {
		Background: lightBackground,
		Blob1:      "bg-white",
		Blob2:      "bg-sky-200",
		Blob3:      "bg-blue-200",
		Accent:     "text-sky-600",
		AccentBg:   "bg-sky-500",
		ChartHex:   "#0ea5e9",
	},
	BucketMist: {
		Background: "bg-teal-800",
		Blob1:      "bg-emerald-600",
		Blob2:      "bg-teal-600",
		Blob3:      "bg-slate-500",
		Accent:     "text-emerald-300",
		AccentBg:   "bg-emerald-300",
		ChartHex:   "#5eead4",
	},
	BucketCloudy: {
		Background: "bg-blue-600",
		Blob1:      "bg-blue-400",
		Blob2:      "bg-slate-400",
		Blob3:      "bg-indigo-400",
		Accent:     "text-blue-200",
		AccentBg:   "bg-blue-200",
		ChartHex:   "#bfdbfe",
	},
	BucketSunny: {
		Background: "bg-sky-500",
		Blob1:      "bg-orange-400",
		Blob2:      "bg-yellow-300",
		Blob3:      "bg-pink-400",
		Accent:     "text-yellow-200",
		AccentBg:   "bg-yellow-300",
		ChartHex:   "#fde047",
	},
	BucketDefault: {
		Background: "bg-indigo-600",
		Blob1:      "bg-purple-500",
		Blob2:      "bg-pink-500",
		Blob3:      "bg-blue-500",
		Accent:     "text-indigo-200",
		AccentBg:   "bg-indigo-200",
		ChartHex:   "#c7d2fe",
	},
}

// lightBackground is the only background bright enough to need dark text.
const lightBackground = "bg-sky-100"

type themeRule struct {
	keywords []string
	bucket   Bucket
}

// Rules are checked in order; the first match wins. Storms are tested before
// rain and cloud because storm descriptions usually mention both.
var (
	nightRules = []themeRule{
		{[]string{"thunder"}, BucketNightThunderstorm},
	}
	dayRules = []themeRule{
		{[]string{"thunder"}, BucketThunderstorm},
		{[]string{"rain", "drizzle"}, BucketRain},
		{[]string{"snow"}, BucketSnow},
		{[]string{"mist", "fog"}, BucketMist},
		{[]string{"cloud"}, BucketCloudy},
		{[]string{"sunny", "clear"}, BucketSunny},
	}
)

// SelectTheme picks the theme for a condition text and time of day. Matching
// is case-insensitive by substring. Every input maps to exactly one theme.
func SelectTheme(condition string, isDay bool) Theme {
	if !isDay {
		return themeFor(match(nightRules, condition, BucketNightClear))
	}
	return themeFor(match(dayRules, condition, BucketDefault))
}

// DefaultTheme is shown before the first forecast arrives.
func DefaultTheme() Theme {
	return SelectTheme("", true)
}

// IsLightTheme reports whether the theme background needs dark foreground text.
func IsLightTheme(t Theme) bool {
	return t.Background == lightBackground
}

// TextTone holds the foreground tokens that depend on theme brightness.
type TextTone struct {
	Text        string `json:"text"`
	Placeholder string `json:"placeholder"`
	Glass       string `json:"glass"`
}

// ToneFor returns foreground tokens for the theme.
func ToneFor(t Theme) TextTone {
	if IsLightTheme(t) {
		return TextTone{
			Text:        "text-slate-800",
			Placeholder: "placeholder-slate-500",
			Glass:       "bg-black/5 border-black/5",
		}
	}
	return TextTone{
		Text:        "text-white",
		Placeholder: "placeholder-white/50",
		Glass:       "bg-white/10 border-white/20",
	}
}

func match(rules []themeRule, condition string, fallback Bucket) Bucket {
	for _, r := range rules {
		if common.HasAny(condition, r.keywords...) {
			return r.bucket
		}
	}
	return fallback
}

func themeFor(b Bucket) Theme {
	t := themes[b]
	t.Bucket = b
	return t
}
