// Package geocode resolves free-form location text to coordinates via the OSM
// Nominatim search API. Inputs that already look like a "lat,lon" pair are
// parsed locally without a network call.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/azamatbyte/ramadan/internal/domain"
)

var ErrNotFound = errors.New("location not found")

// Place is a resolved location.
type Place struct {
	Coordinates domain.Coordinates
	DisplayName string
}

// Client talks to a Nominatim compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve turns free text or a coordinate pair into a Place.
func (c *Client) Resolve(ctx context.Context, input string) (Place, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Place{}, ErrNotFound
	}
	if p, ok := parsePair(input); ok {
		return p, nil
	}

	q := url.Values{}
	q.Set("q", input)
	q.Set("format", "json")
	q.Set("limit", "1")
	endpoint := c.baseURL + "/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Place{}, err
	}
	// Nominatim's usage policy requires an identifying UA.
	req.Header.Set("User-Agent", "ramadan-bot/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("geocode request: status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Place{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return Place{}, fmt.Errorf("%w: %q", ErrNotFound, input)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("parse longitude: %w", err)
	}
	return Place{
		Coordinates: domain.Coordinates{Latitude: lat, Longitude: lon},
		DisplayName: results[0].DisplayName,
	}, nil
}

// parsePair recognizes "41.31, 69.24" style input.
func parsePair(s string) (Place, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Place{}, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return Place{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Place{}, false
	}
	coords := domain.Coordinates{Latitude: lat, Longitude: lon}
	return Place{Coordinates: coords, DisplayName: fmt.Sprintf("%.4f, %.4f", lat, lon)}, true
}
