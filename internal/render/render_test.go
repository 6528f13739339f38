package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/azamatbyte/ramadan/internal/domain"
)

// writeTemplate drops a plain 600x400 PNG into dir under the given name.
func writeTemplate(t *testing.T, dir, name string) {
	t.Helper()
	im := image.NewRGBA(image.Rect(0, 0, 600, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 600; x++ {
			im.Set(x, y, color.RGBA{R: 240, G: 230, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, im); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestRenderProducesPNGOfTemplateSize(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "sahar.png")

	r, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.Render(domain.KindSahar, "05:41")
	if err != nil {
		t.Fatal(err)
	}
	im, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if im.Bounds().Dx() != 600 || im.Bounds().Dy() != 400 {
		t.Errorf("output bounds = %v", im.Bounds())
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	r, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(domain.KindIftar, "18:05"); !errors.Is(err, ErrTemplateMissing) {
		t.Errorf("want ErrTemplateMissing, got %v", err)
	}
}

func TestRenderRejectsPrayerKinds(t *testing.T) {
	r, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(domain.KindFajr, "05:44"); err == nil {
		t.Error("prayer kinds have no template and must error")
	}
}
