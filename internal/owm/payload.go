package owm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Payload is the decoded One Call response body. The sections are kept raw
// so Build can report missing or mistyped fields as a malformed payload
// rather than a transport failure.
type Payload struct {
	Current json.RawMessage `json:"current"`
	Daily   json.RawMessage `json:"daily"`
}

// Internal types for the One Call sections. Pointers distinguish an absent
// field from a zero value.

type condition struct {
	Description *string `json:"description"`
}

type currentData struct {
	Temp      *float64       `json:"temp"`
	FeelsLike *float64       `json:"feels_like"`
	Humidity  *int           `json:"humidity"`
	WindSpeed *float64       `json:"wind_speed"`
	WindDeg   *float64       `json:"wind_deg"`
	Rain      *precipitation `json:"rain"`
	Weather   []condition    `json:"weather"`
}

type dailyData struct {
	Dt   *int64 `json:"dt"`
	Temp *struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	} `json:"temp"`
	Humidity  *int           `json:"humidity"`
	Rain      *precipitation `json:"rain"`
	Pop       *float64       `json:"pop"`
	WindSpeed *float64       `json:"wind_speed"`
	Weather   []condition    `json:"weather"`
}

// precipitation accepts both shapes the API uses for rain: a plain number of
// millimetres (daily) or an object keyed by accumulation window (current).
type precipitation struct {
	mm float64
}

func (p *precipitation) UnmarshalJSON(data []byte) error {
	var mm float64
	if err := json.Unmarshal(data, &mm); err == nil {
		p.mm = mm
		return nil
	}

	var window struct {
		OneHour float64 `json:"1h"`
	}
	if err := json.Unmarshal(data, &window); err != nil {
		return fmt.Errorf("rain must be a number or {\"1h\": number}: %w", err)
	}
	p.mm = window.OneHour
	return nil
}

// isAbsent reports whether a raw section was missing or null
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
