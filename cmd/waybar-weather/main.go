package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ngmaloney/waybar-weather/internal/config"
	"github.com/ngmaloney/waybar-weather/internal/owm"
	"github.com/ngmaloney/waybar-weather/internal/waybar"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr, newClient))
}

// clientFactory builds the weather client once configuration is known
type clientFactory func(apiKey string, timeout time.Duration) owm.WeatherClient

func newClient(apiKey string, timeout time.Duration) owm.WeatherClient {
	return owm.NewClient(apiKey, owm.WithTimeout(timeout))
}

// run executes one fetch-build-render cycle and returns the exit status.
// Diagnostics go to stdout where Waybar reads them; flag usage goes to stderr.
func run(args []string, getenv func(string) string, stdout, stderr io.Writer, clients clientFactory) int {
	flags := flag.NewFlagSet("waybar-weather", flag.ContinueOnError)
	flags.SetOutput(stderr)
	envFile := flags.String("env-file", ".env", "Path to an optional dotenv file with the API key and coordinates")
	timeout := flags.Duration("timeout", 30*time.Second, "Timeout for the OpenWeatherMap request (0 disables it)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := config.LoadEnvFile(*envFile); err != nil {
		waybar.PrintError(stdout, err.Error())
		return 1
	}

	cfg, err := config.Load(getenv)
	if err != nil {
		if errors.Is(err, config.ErrMissing) {
			// Not fatal: Waybar just shows an empty module until the variables are set
			waybar.PrintError(stdout, "please set required API key and latitude and longitude environment variables")
			return 0
		}
		waybar.PrintError(stdout, err.Error())
		return 1
	}

	// Same convention as http.Client: a zero timeout means none
	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	payload, err := clients(cfg.APIKey, *timeout).GetOneCall(ctx, cfg.Latitude, cfg.Longitude)
	if err != nil {
		waybar.PrintError(stdout, fmt.Sprintf("Request did not succeed: %v", err))
		return 1
	}

	weather, err := owm.Build(payload)
	if err != nil {
		waybar.PrintError(stdout, fmt.Sprintf("malformed weather data: %v", err))
		return 1
	}

	if err := waybar.Emit(stdout, waybar.Render(weather)); err != nil {
		waybar.PrintError(stdout, err.Error())
		return 1
	}

	return 0
}
