package waybar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ngmaloney/waybar-weather/internal/models"
)

// Output is the record Waybar reads from a custom module
type Output struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
}

// Render produces the widget text and tooltip for w
func Render(w *models.Weather) Output {
	return Output{
		Text:    Widget(w.Current),
		Tooltip: Tooltip(w),
	}
}

// Widget renders the compact status bar text
func Widget(c models.CurrentConditions) string {
	return fmt.Sprintf("%s %s°", Colorize(c.Description, Dark), formatNumber(c.Temperature))
}

// Tooltip renders the current conditions and forecast sections
func Tooltip(w *models.Weather) string {
	var b strings.Builder
	b.WriteString(Colorize("current weather", Green))
	b.WriteString("\n")
	b.WriteString(CurrentBlock(w.Current))
	b.WriteString("\n")
	b.WriteString(Colorize("forecast", Green))
	b.WriteString("\n")
	b.WriteString(ForecastBlock(w.Forecast))
	return b.String()
}

// CurrentBlock renders the five current-condition entries
func CurrentBlock(c models.CurrentConditions) string {
	var b strings.Builder

	b.WriteString(Entry("weather", Colorize(c.Description, Yellow)))

	b.WriteString(Entry("temp",
		Colorize(formatNumber(c.Temperature)+" °F", Orange)+
			Colorize(", feels like ", Gray)+
			Colorize(formatNumber(c.FeelsLike)+" °F", Orange)))

	b.WriteString(Entry("humidity", Colorize(fmt.Sprintf("%d %% RH", c.Humidity), Red)))

	b.WriteString(Entry("wind",
		Colorize(formatNumber(c.WindSpeed)+" mph", Purple)+" "+
			Colorize("("+string(c.WindDirection)+")", Gray)))

	b.WriteString(Entry("rain", Colorize(formatNumber(c.Rainfall)+" mm", Blue)))

	return b.String()
}

// ForecastBlock renders one entry per day in chronological order, with
// trailing whitespace removed
func ForecastBlock(f models.Forecast) string {
	var b strings.Builder

	for _, day := range f.Days() {
		b.WriteString(Entry(day.Weekday, forecastLine(day)))
	}

	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

func forecastLine(day models.ForecastDay) string {
	line := Colorize(fmt.Sprintf("%2s°", formatNumber(day.MaxTemperature)), Orange) +
		Colorize(" / ", Gray) +
		Colorize(fmt.Sprintf("%2s°", formatNumber(day.MinTemperature)), Orange) +
		Colorize(", ", Gray) +
		Colorize(day.Description, Yellow)

	if day.Rainfall > 0 {
		// Probability is shown as the source reports it
		line += Colorize(": ", Gray) +
			Colorize(formatNumber(day.Rainfall)+"mm ", Blue) +
			Colorize("("+formatNumber(day.PrecipitationProbability)+"%)", Gray)
	}

	return line
}

// formatNumber prints the shortest decimal form: 0, 72.3, 5
func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
