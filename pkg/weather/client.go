package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Forecast mirrors the daily block of an open-meteo style response.
type Forecast struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Daily     Daily   `json:"daily"`
}

type Daily struct {
	Time          []string  `json:"time"`
	TempMax       []float64 `json:"temperature_2m_max"`
	TempMin       []float64 `json:"temperature_2m_min"`
	Precipitation []float64 `json:"precipitation_sum"`
	WindMax       []float64 `json:"wind_speed_10m_max"`
}

type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

type cached struct {
	forecast *Forecast
	at       time.Time
}

// Client fetches forecasts and geocoding results, keeping a per-coordinate
// cache so repeated dashboard loads don't hammer the upstream API.
type Client struct {
	forecastURL string
	geocodeURL  string
	httpc       *http.Client

	mu    sync.RWMutex
	cache map[string]cached
	ttl   time.Duration
}

func NewClient(forecastURL, geocodeURL string) *Client {
	return &Client{
		forecastURL: forecastURL,
		geocodeURL:  geocodeURL,
		httpc:       &http.Client{Timeout: 15 * time.Second},
		cache:       map[string]cached{},
		ttl:         time.Hour,
	}
}

func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*Forecast, error) {
	key := fmt.Sprintf("%.3f,%.3f", lat, lon)

	c.mu.RLock()
	if hit, ok := c.cache[key]; ok && time.Since(hit.at) < c.ttl {
		c.mu.RUnlock()
		return hit.forecast, nil
	}
	c.mu.RUnlock()

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.forecastURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast: unexpected status %d", resp.StatusCode)
	}
	var f Forecast
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = cached{forecast: &f, at: time.Now()}
	c.mu.Unlock()
	return &f, nil
}

// Geocode resolves a place name to coordinates using the first match.
func (c *Client) Geocode(ctx context.Context, name string) (*Place, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.geocodeURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}
	var out struct {
		Results []Place `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Results) == 0 {
		return nil, fmt.Errorf("geocode: no match for %q", name)
	}
	return &out.Results[0], nil
}
