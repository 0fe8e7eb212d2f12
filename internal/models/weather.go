package models

import (
	"sort"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CurrentConditions represents the weather right now at the configured location
type CurrentConditions struct {
	Description   string  // lower-cased, e.g. "clear sky"
	Temperature   float64 // rounded to 1 decimal
	FeelsLike     float64 // rounded to 1 decimal
	Humidity      int     // percent
	WindSpeed     float64 // rounded to 1 decimal
	WindDirection WindDirection
	Rainfall      float64 // mm, 0 if the source omits it
}

// ForecastDay represents one calendar day of the daily forecast
type ForecastDay struct {
	Timestamp                int64 // unix seconds identifying the day
	MinTemperature           float64
	MaxTemperature           float64
	Description              string
	Humidity                 int
	Rainfall                 float64 // mm, 0 if the source omits it
	PrecipitationProbability float64 // as provided by the source
	WindSpeed                float64
	Weekday                  string // e.g. "monday"
}

// Forecast holds forecast days keyed by their timestamp
type Forecast struct {
	days map[int64]ForecastDay
}

// NewForecast builds a forecast from days in any order. A day whose
// timestamp repeats an earlier one replaces it.
func NewForecast(days ...ForecastDay) Forecast {
	f := Forecast{days: make(map[int64]ForecastDay, len(days))}
	for _, d := range days {
		f.days[d.Timestamp] = d
	}
	return f
}

// Len returns the number of distinct forecast days
func (f Forecast) Len() int {
	return len(f.days)
}

// Days returns the forecast days ordered by ascending timestamp
func (f Forecast) Days() []ForecastDay {
	keys := make([]int64, 0, len(f.days))
	for k := range f.days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	days := make([]ForecastDay, 0, len(keys))
	for _, k := range keys {
		days = append(days, f.days[k])
	}
	return days
}

// Weather is the complete model rendered for one invocation
type Weather struct {
	Current  CurrentConditions
	Forecast Forecast
}

// WeekdayFromUnix returns the lower-case weekday name of a unix timestamp in
// the process's local timezone
func WeekdayFromUnix(ts int64) string {
	return WeekdayIn(ts, time.Local)
}

// WeekdayIn returns the lower-case weekday name of a unix timestamp in loc
func WeekdayIn(ts int64, loc *time.Location) string {
	return cases.Lower(language.Und).String(time.Unix(ts, 0).In(loc).Weekday().String())
}

// Round1 rounds x to one decimal place
func Round1(x float64) float64 {
	// FormatFloat rounds the exact binary value half to even:
	// 0.15 (stored just below) gives 0.1, 0.25 gives 0.2.
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return x
	}
	return r
}
