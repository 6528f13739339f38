// Package prayer computes the five daily prayer instants for a coordinate by
// calling the Al Adhan timings API. The calculation parameters are fixed:
// Muslim World League method (18° fajr angle) with the Hanafi school for asr.
package prayer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/azamatbyte/ramadan/internal/domain"
)

const (
	// Muslim World League.
	calculationMethod = "3"
	// Hanafi asr.
	school = "1"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Times holds the five prayer instants for one date, in the display timezone.
type Times struct {
	Fajr    domain.Clock
	Dhuhr   domain.Clock
	Asr     domain.Clock
	Maghrib domain.Clock
	Isha    domain.Clock
}

// ByKind returns the instant for a prayer trigger kind.
func (t Times) ByKind(kind domain.TriggerKind) (domain.Clock, bool) {
	switch kind {
	case domain.KindFajr:
		return t.Fajr, true
	case domain.KindDhuhr:
		return t.Dhuhr, true
	case domain.KindAsr:
		return t.Asr, true
	case domain.KindMaghrib:
		return t.Maghrib, true
	case domain.KindIsha:
		return t.Isha, true
	default:
		return 0, false
	}
}

// Client talks to an Al Adhan compatible endpoint.
type Client struct {
	baseURL  string
	timezone string
	http     *http.Client
}

// New creates a client. timezone is the IANA zone the returned instants are
// expressed in, matching the zone the scheduler reads its clock in.
func New(baseURL, timezone string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		timezone: timezone,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// response mirrors the relevant slice of the Al Adhan timings payload.
type response struct {
	Code int    `json:"code"`
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
	} `json:"data"`
}

// Times fetches the prayer instants for the given coordinate and calendar
// date (domain.DateLayout). Any failure means the caller skips the subscriber
// for this tick; nothing here is fatal.
func (c *Client) Times(ctx context.Context, coords domain.Coordinates, date string) (Times, error) {
	if coords.Latitude < -90 || coords.Latitude > 90 || coords.Longitude < -180 || coords.Longitude > 180 {
		return Times{}, fmt.Errorf("%w: %.4f,%.4f", ErrInvalidCoordinates, coords.Latitude, coords.Longitude)
	}

	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return Times{}, fmt.Errorf("parse date: %w", err)
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	q.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
	q.Set("method", calculationMethod)
	q.Set("school", school)
	q.Set("timezonestring", c.timezone)
	endpoint := fmt.Sprintf("%s/v1/timings/%s?%s", c.baseURL, day.Format("02-01-2006"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Times{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Times{}, fmt.Errorf("timings request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Times{}, fmt.Errorf("timings request: status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Times{}, fmt.Errorf("decode timings: %w", err)
	}
	if body.Code != http.StatusOK {
		return Times{}, fmt.Errorf("timings request: api code %d", body.Code)
	}

	var out Times
	for _, f := range []struct {
		raw string
		dst *domain.Clock
	}{
		{body.Data.Timings.Fajr, &out.Fajr},
		{body.Data.Timings.Dhuhr, &out.Dhuhr},
		{body.Data.Timings.Asr, &out.Asr},
		{body.Data.Timings.Maghrib, &out.Maghrib},
		{body.Data.Timings.Isha, &out.Isha},
	} {
		parsed, err := domain.ParseClock(stripZoneSuffix(f.raw))
		if err != nil {
			return Times{}, fmt.Errorf("parse timing %q: %w", f.raw, err)
		}
		*f.dst = parsed
	}
	return out, nil
}

// stripZoneSuffix drops the " (TZ)" tail the API sometimes appends,
// e.g. "05:12 (+05)" -> "05:12".
func stripZoneSuffix(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
