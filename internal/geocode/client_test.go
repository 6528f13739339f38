package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveCoordinatePairLocally(t *testing.T) {
	c := New("http://unused.invalid")
	p, err := c.Resolve(context.Background(), " 41.31 , 69.24 ")
	if err != nil {
		t.Fatal(err)
	}
	if p.Coordinates.Latitude != 41.31 || p.Coordinates.Longitude != 69.24 {
		t.Errorf("coords = %+v", p.Coordinates)
	}
}

func TestResolveRejectsOutOfRangePair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	// "95,200" is not a valid pair, so it falls through to the search API,
	// which finds nothing.
	c := New(srv.URL)
	if _, err := c.Resolve(context.Background(), "95,200"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestResolveFreeText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Tashkent" {
			t.Errorf("q = %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"41.3111","lon":"69.2797","display_name":"Tashkent, Uzbekistan"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.Resolve(context.Background(), "Tashkent")
	if err != nil {
		t.Fatal(err)
	}
	if p.DisplayName != "Tashkent, Uzbekistan" {
		t.Errorf("display name = %q", p.DisplayName)
	}
	if p.Coordinates.Latitude != 41.3111 {
		t.Errorf("lat = %v", p.Coordinates.Latitude)
	}
}

func TestResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Resolve(context.Background(), "nowhere at all"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	c := New("http://unused.invalid")
	if _, err := c.Resolve(context.Background(), "   "); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}
