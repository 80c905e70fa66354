package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WeatherService fetches the current ambient temperature from open-meteo.
// Absence of weather data is never an error for goal computation; callers
// treat a nil temperature as "no adjustment".
type WeatherService struct {
	baseURL string
	client  *http.Client
}

func NewWeatherService() *WeatherService {
	return &WeatherService{
		baseURL: "https://api.open-meteo.com/v1/forecast",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type forecastResponse struct {
	Current struct {
		Temperature2m float64 `json:"temperature_2m"`
	} `json:"current"`
}

// CurrentTemperature returns the temperature in °C at the given coordinates.
func (s *WeatherService) CurrentTemperature(ctx context.Context, latitude, longitude float64) (float64, error) {
	u := fmt.Sprintf("%s?latitude=%f&longitude=%f&current=temperature_2m", s.baseURL, latitude, longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call open-meteo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read open-meteo response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("open-meteo API error %d: %s", resp.StatusCode, string(body))
	}

	var fr forecastResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return 0, fmt.Errorf("failed to parse open-meteo JSON: %w", err)
	}
	return fr.Current.Temperature2m, nil
}
