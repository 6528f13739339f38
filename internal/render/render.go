// Package render produces the sahar/iftar notification images: a prepared
// template with the time drawn centered in its golden box.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/azamatbyte/ramadan/internal/domain"
)

var ErrTemplateMissing = errors.New("template image missing")

const (
	fontSize = 110
	// The golden box sits below the image center.
	centerYOffset = 60

	strokeColor = "#d4af37"
	fillColor   = "#1a3d2f"
)

// Renderer draws time text onto per-kind template images from an assets dir.
type Renderer struct {
	dir  string
	face font.Face
}

// New prepares the renderer. The assets dir must contain sahar.png and
// iftar.png; their absence is only reported when that kind is rendered.
func New(assetsDir string) (*Renderer, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return &Renderer{dir: assetsDir, face: face}, nil
}

// Render overlays timeText ("HH:MM") on the template for kind and returns the
// PNG bytes. Only the two fasting kinds have templates.
func (r *Renderer) Render(kind domain.TriggerKind, timeText string) ([]byte, error) {
	if !kind.Fasting() {
		return nil, fmt.Errorf("no template for kind %q", kind)
	}
	path := filepath.Join(r.dir, string(kind)+".png")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, path)
	}

	im, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", path, err)
	}

	dc := gg.NewContextForImage(im)
	dc.SetFontFace(r.face)

	bounds := im.Bounds()
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy())/2 + centerYOffset

	// Outline first, then fill on top.
	dc.SetHexColor(strokeColor)
	for dx := -2.0; dx <= 2; dx++ {
		for dy := -2.0; dy <= 2; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dc.DrawStringAnchored(timeText, cx+dx, cy+dy, 0.5, 0.5)
		}
	}
	dc.SetHexColor(fillColor)
	dc.DrawStringAnchored(timeText, cx, cy, 0.5, 0.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
