package owm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/3.0/onecall"
	defaultTimeout = 30 * time.Second
)

// WeatherClient defines the interface for fetching weather data from OpenWeatherMap
type WeatherClient interface {
	// GetOneCall retrieves current conditions and the daily forecast for a location
	GetOneCall(ctx context.Context, lat, lon string) (*Payload, error)
}

// OneCallClient implements WeatherClient using the One Call 3.0 API
type OneCallClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option configures a OneCallClient
type Option func(*OneCallClient)

// WithBaseURL points the client at a different endpoint
func WithBaseURL(u string) Option {
	return func(c *OneCallClient) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(c *OneCallClient) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new One Call client
func NewClient(apiKey string, opts ...Option) *OneCallClient {
	c := &OneCallClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: "WaybarWeather/1.0 (github.com/ngmaloney/waybar-weather)",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOneCall retrieves current and daily weather in imperial units
func (c *OneCallClient) GetOneCall(ctx context.Context, lat, lon string) (*Payload, error) {
	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("appid", c.apiKey)
	params.Set("units", "imperial")
	params.Set("exclude", "minutely,hourly")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", c.redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, apiMessage(body))
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &payload, nil
}

// redact drops the query string from a transport error so the API key in
// appid never reaches the status bar
func (c *OneCallClient) redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return &url.Error{Op: ue.Op, URL: c.baseURL, Err: ue.Err}
	}
	return err
}

// apiMessage extracts the "message" field OpenWeatherMap puts in error
// bodies, falling back to the raw body
func apiMessage(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
