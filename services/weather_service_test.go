package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCurrentTemperature(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("current") != "temperature_2m" {
			t.Errorf("missing current=temperature_2m, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"current":{"temperature_2m":36.4}}`))
	}))
	defer srv.Close()

	ws := &WeatherService{baseURL: srv.URL, client: srv.Client()}
	got, err := ws.CurrentTemperature(context.Background(), 6.9271, 79.8612)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 36.4 {
		t.Fatalf("temperature = %v, want 36.4", got)
	}
}

func TestCurrentTemperatureAPIError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ws := &WeatherService{baseURL: srv.URL, client: srv.Client()}
	if _, err := ws.CurrentTemperature(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestCurrentTemperatureHonorsContext(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"current":{"temperature_2m":20}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	ws := &WeatherService{baseURL: srv.URL, client: srv.Client()}
	if _, err := ws.CurrentTemperature(ctx, 0, 0); err == nil {
		t.Fatal("expected error when context deadline passes")
	}
}
