package owm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient("secret")

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}

	if client.baseURL != "https://api.openweathermap.org/data/3.0/onecall" {
		t.Errorf("baseURL = %s, want https://api.openweathermap.org/data/3.0/onecall", client.baseURL)
	}

	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}

	if client.apiKey != "secret" {
		t.Errorf("apiKey = %s, want secret", client.apiKey)
	}

	if client.userAgent == "" {
		t.Error("userAgent should not be empty")
	}
}

func TestNewClient_Options(t *testing.T) {
	client := NewClient("secret", WithBaseURL("http://localhost:1234"), WithTimeout(5*time.Second))

	if client.baseURL != "http://localhost:1234" {
		t.Errorf("baseURL = %s, want http://localhost:1234", client.baseURL)
	}

	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.httpClient.Timeout)
	}
}

func TestOneCallClient_GetOneCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		want := map[string]string{
			"lat":     "47.6062",
			"lon":     "-122.3321",
			"appid":   "secret",
			"units":   "imperial",
			"exclude": "minutely,hourly",
		}
		for key, value := range want {
			if got := q.Get(key); got != value {
				t.Errorf("query %s = %q, want %q", key, got, value)
			}
		}

		if r.Header.Get("Accept") != "application/json" {
			t.Error("Accept header should be application/json")
		}

		data, _ := os.ReadFile("testdata/onecall_response.json")
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL))

	payload, err := client.GetOneCall(context.Background(), "47.6062", "-122.3321")
	if err != nil {
		t.Fatalf("GetOneCall() error = %v", err)
	}

	if payload == nil {
		t.Fatal("GetOneCall() returned nil")
	}

	if isAbsent(payload.Current) {
		t.Error("payload.Current is empty")
	}

	var daily []json.RawMessage
	if err := json.Unmarshal(payload.Daily, &daily); err != nil {
		t.Fatalf("payload.Daily is not an array: %v", err)
	}
	if len(daily) != 2 {
		t.Errorf("len(daily) = %d, want 2", len(daily))
	}
}

func TestOneCallClient_ErrorHandling(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantInErr  string
	}{
		{"401 invalid key", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key."}`, "Invalid API key."},
		{"404 not found", http.StatusNotFound, "not found", "not found"},
		{"500 server error", http.StatusInternalServerError, "error", "status 500"},
		{"200 with garbage body", http.StatusOK, "<html>", "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient("secret", WithBaseURL(server.URL))

			_, err := client.GetOneCall(context.Background(), "1", "2")
			if err == nil {
				t.Fatal("GetOneCall() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantInErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantInErr)
			}
		})
	}
}

func TestOneCallClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client := NewClient("secret", WithBaseURL(endpoint))

	_, err := client.GetOneCall(context.Background(), "1", "2")
	if err == nil {
		t.Fatal("GetOneCall() error = nil, want transport error")
	}
	if strings.Contains(err.Error(), "secret") {
		t.Errorf("error leaks the API key: %v", err)
	}
}

func TestOneCallClient_TransportErrorHidesAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL), WithTimeout(20*time.Millisecond))

	_, err := client.GetOneCall(context.Background(), "47.6062", "-122.3321")
	if err == nil {
		t.Fatal("GetOneCall() error = nil, want timeout")
	}
	if strings.Contains(err.Error(), "secret") || strings.Contains(err.Error(), "appid") {
		t.Errorf("error leaks the query string: %v", err)
	}
	if !strings.Contains(err.Error(), server.URL) {
		t.Errorf("error = %v, want it to name the endpoint %s", err, server.URL)
	}

	var ue *url.Error
	if !errors.As(err, &ue) || !ue.Timeout() {
		t.Errorf("error = %v, want a timeout *url.Error", err)
	}
}
