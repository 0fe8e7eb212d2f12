package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvAPIKey    = "OPEN_WEATHER_API_KEY"
	EnvLatitude  = "LATITUDE"
	EnvLongitude = "LONGITUDE"
)

var (
	// ErrMissing is returned when a required variable is unset or empty
	ErrMissing = errors.New("missing required configuration")

	// ErrInvalid is returned when a coordinate is not a decimal number
	ErrInvalid = errors.New("invalid configuration")
)

// Config holds the location and credentials used to query OpenWeatherMap
type Config struct {
	APIKey    string
	Latitude  string // decimal degrees, passed through to the API as given
	Longitude string
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set in the environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration through getenv, typically os.Getenv.
// All missing variables are reported together.
func Load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		APIKey:    strings.TrimSpace(getenv(EnvAPIKey)),
		Latitude:  strings.TrimSpace(getenv(EnvLatitude)),
		Longitude: strings.TrimSpace(getenv(EnvLongitude)),
	}

	var missing []string
	if cfg.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if cfg.Latitude == "" {
		missing = append(missing, EnvLatitude)
	}
	if cfg.Longitude == "" {
		missing = append(missing, EnvLongitude)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}

	if err := checkDegrees(EnvLatitude, cfg.Latitude, 90); err != nil {
		return nil, err
	}
	if err := checkDegrees(EnvLongitude, cfg.Longitude, 180); err != nil {
		return nil, err
	}

	return cfg, nil
}

func checkDegrees(name, value string, limit float64) error {
	deg, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a decimal number", ErrInvalid, name, value)
	}
	if deg < -limit || deg > limit {
		return fmt.Errorf("%w: %s=%s is outside [-%g, %g]", ErrInvalid, name, value, limit, limit)
	}
	return nil
}
