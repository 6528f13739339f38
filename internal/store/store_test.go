package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/azamatbyte/ramadan/internal/domain"
)

func openTemp(t *testing.T) (*FileRepo, string) {
	t.Helper()
	dir := t.TempDir()
	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return r, dir
}

func TestOpenMissingFilesIsEmpty(t *testing.T) {
	r, _ := openTemp(t)
	if got := r.All(domain.CategoryIndividual); len(got) != 0 {
		t.Errorf("expected no individuals, got %d", len(got))
	}
	if got := r.All(domain.CategoryGroup); len(got) != 0 {
		t.Errorf("expected no groups, got %d", len(got))
	}
}

func TestOpenCorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open must tolerate a corrupt file: %v", err)
	}
	if got := r.All(domain.CategoryIndividual); len(got) != 0 {
		t.Errorf("corrupt file must load as empty, got %d records", len(got))
	}
}

func TestGetOrCreateDefaults(t *testing.T) {
	r, _ := openTemp(t)

	u, err := r.GetOrCreate(domain.ChatRef{Category: domain.CategoryIndividual, ID: 42})
	if err != nil {
		t.Fatal(err)
	}
	if u.Region != "" || u.Language != "" {
		t.Errorf("individual default must be unconfigured, got %+v", u)
	}

	g, err := r.GetOrCreate(domain.ChatRef{Category: domain.CategoryGroup, ID: 42})
	if err != nil {
		t.Fatal(err)
	}
	if g.Region != "toshkent" || g.Language != domain.LangUZ {
		t.Errorf("group default = %+v, want toshkent/uz", g)
	}
}

func TestUpdatePersistsAndReloads(t *testing.T) {
	r, dir := openTemp(t)
	ref := domain.ChatRef{Category: domain.CategoryIndividual, ID: 7}

	err := r.Update(ref, func(s *domain.Subscriber) {
		s.ChatID = 7
		s.Language = domain.LangRU
		s.Region = "angren"
	})
	if err != nil {
		t.Fatal(err)
	}

	// The file must be a plain id -> record JSON mapping.
	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]domain.Subscriber
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("users.json not an id mapping: %v", err)
	}
	if raw["7"].Region != "angren" {
		t.Errorf("persisted record = %+v", raw["7"])
	}

	// A fresh repo sees the same state.
	r2, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	s, ok := r2.Get(ref)
	if !ok || s.Language != domain.LangRU || s.Region != "angren" {
		t.Errorf("reloaded record = %+v, %v", s, ok)
	}
}

func TestAllIsStableInsertionOrder(t *testing.T) {
	r, _ := openTemp(t)
	for _, id := range []int64{30, 10, 20} {
		if _, err := r.GetOrCreate(domain.ChatRef{Category: domain.CategoryIndividual, ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	got := r.All(domain.CategoryIndividual)
	want := []int64{30, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("got %d entries", len(got))
	}
	for i, e := range got {
		if e.Ref.ID != want[i] {
			t.Errorf("entry %d = %d, want %d", i, e.Ref.ID, want[i])
		}
	}
}

func TestStampPersistsMarker(t *testing.T) {
	r, dir := openTemp(t)
	ref := domain.ChatRef{Category: domain.CategoryGroup, ID: 100}
	if _, err := r.GetOrCreate(ref); err != nil {
		t.Fatal(err)
	}

	if err := r.Stamp(ref, domain.KindSahar, "2026-02-19"); err != nil {
		t.Fatal(err)
	}
	s, _ := r.Get(ref)
	if !s.FiredOn(domain.KindSahar, "2026-02-19") {
		t.Error("marker not visible in memory")
	}

	r2, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	s2, _ := r2.Get(ref)
	if !s2.FiredOn(domain.KindSahar, "2026-02-19") {
		t.Error("marker not visible after reload")
	}
}

func TestStampRollsBackOnPersistFailure(t *testing.T) {
	r, dir := openTemp(t)
	ref := domain.ChatRef{Category: domain.CategoryIndividual, ID: 5}
	if _, err := r.GetOrCreate(ref); err != nil {
		t.Fatal(err)
	}

	// Replace the users file with a directory so the rewrite fails.
	file := filepath.Join(dir, "users.json")
	if err := os.Remove(file); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(file, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := r.Stamp(ref, domain.KindIftar, "2026-02-19"); err == nil {
		t.Fatal("expected persist failure")
	}
	s, _ := r.Get(ref)
	if s.FiredOn(domain.KindIftar, "2026-02-19") {
		t.Error("marker must be rolled back when persist fails")
	}
}

func TestStampUnknownSubscriber(t *testing.T) {
	r, _ := openTemp(t)
	err := r.Stamp(domain.ChatRef{Category: domain.CategoryIndividual, ID: 999}, domain.KindFajr, "2026-02-19")
	if err == nil {
		t.Fatal("expected error for unknown subscriber")
	}
}
