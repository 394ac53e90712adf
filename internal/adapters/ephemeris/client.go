// Package ephemeris talks to the external computation service that derives
// lunar classifications from birth particulars. Only the derived triple ever
// crosses this boundary into the engine.
package ephemeris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stellar/internal/domain"
	"stellar/internal/ports"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type panchangaRequest struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type panchangaResponse struct {
	Sign        int `json:"sign"`
	Asterism    int `json:"asterism"`
	Subdivision int `json:"subdivision"`
}

// LunarPosition asks the service for the (sign, asterism, subdivision) triple.
// The response is validated against the closed domains so a misbehaving
// service cannot push out-of-range values past this boundary.
func (c *Client) LunarPosition(ctx context.Context, birth ports.BirthDetails) (domain.BirthProfile, error) {
	body, err := json.Marshal(panchangaRequest{
		Date:      birth.Date,
		Time:      birth.Time,
		Timezone:  birth.Timezone,
		Latitude:  birth.Latitude,
		Longitude: birth.Longitude,
	})
	if err != nil {
		return domain.BirthProfile{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/panchanga", bytes.NewReader(body))
	if err != nil {
		return domain.BirthProfile{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.BirthProfile{}, fmt.Errorf("ephemeris request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.BirthProfile{}, fmt.Errorf("ephemeris request: status %d", resp.StatusCode)
	}

	var out panchangaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.BirthProfile{}, fmt.Errorf("ephemeris response: %w", err)
	}
	profile := domain.BirthProfile{Sign: out.Sign, Asterism: out.Asterism, Subdivision: out.Subdivision}
	if err := profile.Validate(); err != nil {
		return domain.BirthProfile{}, fmt.Errorf("ephemeris response: %w", err)
	}
	return profile, nil
}
