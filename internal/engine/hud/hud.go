// Package hud draws the optional on-screen overlay: the preview progress
// bar, a marker on the selected cubie and a status line.
package hud

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/Faultbox/hypercube/internal/logger"
	"github.com/Faultbox/hypercube/pkg/math"
	"github.com/Faultbox/hypercube/pkg/raster"
)

const (
	margin    = 8
	barHeight = 6
	pivotR    = 6
)

var german = [][2]string{
	{"cubie %d", "Würfel %d"},
	{"merge %d", "Einschub %d"},
	{"turn %d %.0f%%", "Drehung %d %.0f%%"},
	{"hover %d", "Zeiger %d"},
	{"frame %d", "Bild %d"},
}

var translations = sync.OnceValues(func() (*catalog.Builder, error) {
	b := catalog.NewBuilder()
	for _, m := range german {
		if err := b.SetString(language.German, m[0], m[1]); err != nil {
			return nil, err
		}
	}
	return b, nil
})

// State is what the overlay shows for one frame.
type State struct {
	Frame    uint64
	Selector int
	Merging  bool
	Preview  int
	Percent  float32
	Hovered  int

	Pivot    math.Vec2
	HasPivot bool
}

// Overlay renders State onto a canvas.
type Overlay struct {
	glyphs  raster.Glyphs
	line    int
	printer *message.Printer
	color   raster.Color
}

// New creates an overlay. lang is a BCP 47 tag; unknown tags fall back to
// English text.
func New(lang string, color raster.Color) *Overlay {
	g := BasicGlyphs()
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	var opts []message.Option
	if cat, err := translations(); err != nil {
		logger.Warn("HUD translations unavailable", zap.Error(err))
	} else {
		opts = append(opts, message.Catalog(cat))
	}
	return &Overlay{
		glyphs:  g,
		line:    g.LineHeight(),
		printer: message.NewPrinter(tag, opts...),
		color:   color,
	}
}

// Lines returns the status text for s.
func (o *Overlay) Lines(s State) []string {
	var lines []string
	lines = append(lines, o.printer.Sprintf("frame %d", s.Frame))
	if s.Merging {
		lines = append(lines, o.printer.Sprintf("merge %d", s.Selector))
	} else if s.Selector >= 0 {
		lines = append(lines, o.printer.Sprintf("cubie %d", s.Selector))
	}
	if s.Percent > 0 {
		lines = append(lines, o.printer.Sprintf("turn %d %.0f%%", s.Preview, s.Percent))
	}
	if s.Hovered >= 0 {
		lines = append(lines, o.printer.Sprintf("hover %d", s.Hovered))
	}
	return lines
}

// Draw paints the overlay.
func (o *Overlay) Draw(dst *raster.Canvas, s State) {
	y := margin
	for _, l := range o.Lines(s) {
		dst.Text(margin, y, l, o.glyphs, o.color)
		y += o.line
	}

	if s.Percent > 0 {
		full := dst.Width - 2*margin
		w := int(float32(full) * min(s.Percent, 100) / 100)
		top := dst.Height - margin - barHeight
		dst.RectBlended(margin, top, w, barHeight, o.color.WithAlpha(0x88))
		dst.Line(margin, top-1, margin+full-1, top-1, o.color)
	}

	if s.HasPivot {
		x, y := s.Pivot.Ints()
		dst.Circle(x, y, pivotR, o.color)
	}
}
