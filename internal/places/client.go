package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const mapsBase = "https://maps.googleapis.com/maps/api"

// Client talks to the Google Maps web services. Responses are passed
// through unmodified so the frontend can use the official payload shapes.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient reads GOOGLE_MAPS_API_KEY from the environment. Returns nil if
// the key is unset.
func NewClient() *Client {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		return nil
	}
	return &Client{
		apiKey:  key,
		baseURL: mapsBase,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (json.RawMessage, error) {
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("maps api returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// Nearby runs a Places nearby search around lat,lng.
func (c *Client) Nearby(ctx context.Context, lat, lng, placeType, radius string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("location", lat+","+lng)
	q.Set("radius", radius)
	q.Set("type", placeType)
	return c.get(ctx, "/place/nearbysearch/json", q)
}

// Directions fetches a route between two coordinate pairs.
func (c *Client) Directions(ctx context.Context, originLat, originLng, destLat, destLng, mode string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("origin", originLat+","+originLng)
	q.Set("destination", destLat+","+destLng)
	q.Set("mode", mode)
	return c.get(ctx, "/directions/json", q)
}
