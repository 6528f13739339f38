package prayer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/azamatbyte/ramadan/internal/domain"
)

const sampleBody = `{
  "code": 200,
  "status": "OK",
  "data": {
    "timings": {
      "Fajr": "05:44 (+05)",
      "Sunrise": "07:05",
      "Dhuhr": "12:32",
      "Asr": "16:23",
      "Maghrib": "18:05",
      "Isha": "19:21"
    }
  }
}`

func TestTimes(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.URL.Query().Get("method") != calculationMethod {
			t.Errorf("method = %q", r.URL.Query().Get("method"))
		}
		if r.URL.Query().Get("school") != school {
			t.Errorf("school = %q", r.URL.Query().Get("school"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	c := New(srv.URL, "Asia/Tashkent")
	times, err := c.Times(context.Background(), domain.Coordinates{Latitude: 41.31, Longitude: 69.24}, "2026-02-19")
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/v1/timings/19-02-2026" {
		t.Errorf("path = %q", gotPath)
	}
	if times.Fajr.String() != "05:44" {
		t.Errorf("fajr = %s, want 05:44 (zone suffix stripped)", times.Fajr)
	}
	if times.Isha.String() != "19:21" {
		t.Errorf("isha = %s", times.Isha)
	}

	for _, kind := range domain.PrayerKinds() {
		if _, ok := times.ByKind(kind); !ok {
			t.Errorf("ByKind(%s) missing", kind)
		}
	}
	if _, ok := times.ByKind(domain.KindSahar); ok {
		t.Error("ByKind must reject fasting kinds")
	}
}

func TestTimesInvalidCoordinates(t *testing.T) {
	c := New("http://unused.invalid", "Asia/Tashkent")
	_, err := c.Times(context.Background(), domain.Coordinates{Latitude: 120, Longitude: 0}, "2026-02-19")
	if !errors.Is(err, ErrInvalidCoordinates) {
		t.Errorf("want ErrInvalidCoordinates, got %v", err)
	}
}

func TestTimesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "Asia/Tashkent")
	if _, err := c.Times(context.Background(), domain.Coordinates{Latitude: 41, Longitude: 69}, "2026-02-19"); err == nil {
		t.Fatal("expected error on HTTP failure")
	}
}
