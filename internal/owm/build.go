package owm

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ngmaloney/waybar-weather/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrMalformedPayload is returned by Build when the response is missing a
// required section or field, or a field has the wrong type.
var ErrMalformedPayload = errors.New("malformed payload")

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedPayload, field)
}

func mistyped(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedPayload, field, err)
}

// Build converts a One Call payload into the domain model. It either returns
// a complete model or an error wrapping ErrMalformedPayload.
func Build(p *Payload) (*models.Weather, error) {
	if p == nil {
		return nil, missing("payload")
	}

	lower := cases.Lower(language.Und)

	current, err := buildCurrent(p.Current, lower)
	if err != nil {
		return nil, err
	}

	forecast, err := buildForecast(p.Daily, lower)
	if err != nil {
		return nil, err
	}

	return &models.Weather{
		Current:  current,
		Forecast: forecast,
	}, nil
}

func buildCurrent(raw json.RawMessage, lower cases.Caser) (models.CurrentConditions, error) {
	if isAbsent(raw) {
		return models.CurrentConditions{}, missing("current")
	}

	var data currentData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.CurrentConditions{}, mistyped("current", err)
	}

	description, err := firstDescription(data.Weather, "current.weather")
	if err != nil {
		return models.CurrentConditions{}, err
	}

	switch {
	case data.Temp == nil:
		return models.CurrentConditions{}, missing("current.temp")
	case data.FeelsLike == nil:
		return models.CurrentConditions{}, missing("current.feels_like")
	case data.Humidity == nil:
		return models.CurrentConditions{}, missing("current.humidity")
	case data.WindSpeed == nil:
		return models.CurrentConditions{}, missing("current.wind_speed")
	case data.WindDeg == nil:
		return models.CurrentConditions{}, missing("current.wind_deg")
	}

	return models.CurrentConditions{
		Description:   lower.String(description),
		Temperature:   models.Round1(*data.Temp),
		FeelsLike:     models.Round1(*data.FeelsLike),
		Humidity:      *data.Humidity,
		WindSpeed:     models.Round1(*data.WindSpeed),
		WindDirection: models.WindDirectionFromDegrees(*data.WindDeg),
		Rainfall:      rainfall(data.Rain),
	}, nil
}

func buildForecast(raw json.RawMessage, lower cases.Caser) (models.Forecast, error) {
	if isAbsent(raw) {
		return models.Forecast{}, missing("daily")
	}

	var entries []dailyData
	if err := json.Unmarshal(raw, &entries); err != nil {
		return models.Forecast{}, mistyped("daily", err)
	}

	days := make([]models.ForecastDay, 0, len(entries))
	for i, entry := range entries {
		day, err := buildDay(entry, fmt.Sprintf("daily[%d]", i), lower)
		if err != nil {
			return models.Forecast{}, err
		}
		days = append(days, day)
	}

	return models.NewForecast(days...), nil
}

func buildDay(entry dailyData, path string, lower cases.Caser) (models.ForecastDay, error) {
	description, err := firstDescription(entry.Weather, path+".weather")
	if err != nil {
		return models.ForecastDay{}, err
	}

	switch {
	case entry.Dt == nil:
		return models.ForecastDay{}, missing(path + ".dt")
	case entry.Temp == nil:
		return models.ForecastDay{}, missing(path + ".temp")
	case entry.Temp.Min == nil:
		return models.ForecastDay{}, missing(path + ".temp.min")
	case entry.Temp.Max == nil:
		return models.ForecastDay{}, missing(path + ".temp.max")
	case entry.Humidity == nil:
		return models.ForecastDay{}, missing(path + ".humidity")
	case entry.Pop == nil:
		return models.ForecastDay{}, missing(path + ".pop")
	case entry.WindSpeed == nil:
		return models.ForecastDay{}, missing(path + ".wind_speed")
	}

	return models.ForecastDay{
		Timestamp:                *entry.Dt,
		MinTemperature:           *entry.Temp.Min,
		MaxTemperature:           *entry.Temp.Max,
		Description:              lower.String(description),
		Humidity:                 *entry.Humidity,
		Rainfall:                 rainfall(entry.Rain),
		PrecipitationProbability: *entry.Pop,
		WindSpeed:                *entry.WindSpeed,
		Weekday:                  models.WeekdayFromUnix(*entry.Dt),
	}, nil
}

func firstDescription(conditions []condition, path string) (string, error) {
	if len(conditions) == 0 {
		return "", missing(path + "[0]")
	}
	if conditions[0].Description == nil {
		return "", missing(path + "[0].description")
	}
	return *conditions[0].Description, nil
}

// rainfall treats absent precipitation as zero
func rainfall(p *precipitation) float64 {
	if p == nil {
		return 0
	}
	return p.mm
}
